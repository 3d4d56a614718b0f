package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Taxonomy constructors. Every core operation fails with one of these kinds;
// handlers translate the status code verbatim.

// Unauthorized keeps the detail deliberately uninformative: callers must not
// learn whether the token was missing from the store, badly signed or stale.
func Unauthorized() error {
	return &ErrorWithStatusCode{Message: "Could not validate credentials", StatusCode: http.StatusUnauthorized}
}

func Forbidden(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusForbidden}
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func Conflict(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusConflict}
}

// Expired marks a confirmation link whose embedded TTL elapsed. Distinct
// from NotFound so clients can offer a resend instead of a dead end.
func Expired(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusRequestTimeout}
}

func Validation(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// StatusCode returns the embedded status code, or 500 for plain errors.
func StatusCode(err error) int {
	if e, ok := err.(*ErrorWithStatusCode); ok {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

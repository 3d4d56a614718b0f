package domain

import "time"

// Token is a row of the active-token store. A bearer token is valid only
// while its row exists and ExpiresAt has not passed; logout deletes the row.
type Token struct {
	Token     string
	ExpiresAt time.Time
}

type Credentials struct {
	Email    Email  `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

package domain

import "time"

type (
	Email  = string
	UserId = int64
)

// User is an account row. PassHash is never serialized.
type User struct {
	Id               UserId    `json:"id"`
	Email            Email     `json:"email"`
	PassHash         string    `json:"-"`
	FullName         string    `json:"full_name"`
	Active           bool      `json:"is_active"`
	Staff            bool      `json:"is_staff"`
	AvatarUrl        *string   `json:"avatar_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	ConfirmationCode *string   `json:"-"`
}

// UserCreate is the registration payload. Password strength is checked by
// the auth service on top of the length tag.
type UserCreate struct {
	Email     Email   `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FullName  string  `json:"full_name" validate:"required,min=3,max=30"`
	AvatarUrl *string `json:"avatar_url,omitempty"`
}

// UserUpdate carries a partial user mutation. Nil fields are left untouched.
// Staff is guarded by policy: only staff actors may set it.
type UserUpdate struct {
	FullName  *string `json:"full_name,omitempty" validate:"omitempty,min=3,max=30"`
	AvatarUrl *string `json:"avatar_url,omitempty"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
	Staff     *bool   `json:"is_staff,omitempty"`
}

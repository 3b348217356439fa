package auth

import "errors"

var (
	ErrMissingFields      = errors.New("missing fields")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("admin access only")
)

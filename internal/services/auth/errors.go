package auth

import "errors"

// Domain errors for auth service
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmptyPassword      = errors.New("password cannot be empty")
)

package auth

import "errors"

var (
	ErrEmailNotAuthorized = errors.New("email not authorized")
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidToken       = errors.New("invalid session token")
)

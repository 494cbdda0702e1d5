package access

import "errors"

var ErrInvalidEmail = errors.New("invalid email")

var ErrUnknownRight = errors.New("unknown right")

var ErrInvalidUserID = errors.New("invalid user id")

package reservation

import "errors"

var ErrInvalidParameter = errors.New("invalid parameter")

var ErrPastDate = errors.New("date is in the past")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

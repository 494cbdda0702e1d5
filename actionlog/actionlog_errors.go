package actionlog

import "errors"

var ErrUnknownActionType = errors.New("unknown action type")

var ErrInvalidQuery = errors.New("invalid action log query")

package licensee

import "errors"

var ErrInvalidBatch = errors.New("invalid import batch")

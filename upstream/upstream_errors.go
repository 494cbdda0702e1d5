package upstream

import (
	"errors"
	"fmt"
)

var ErrUnauthorized = errors.New("upstream rejected credential")

var ErrSlotAlreadyBooked = errors.New("slot already booked")

var ErrNotFound = errors.New("upstream resource not found")

var ErrUpstream = errors.New("upstream error")

// ErrUpstreamUnavailable wraps ErrUpstream so callers can match either.
var ErrUpstreamUnavailable = fmt.Errorf("upstream unavailable: %w", ErrUpstream)

package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrUnhandledEvent = errors.New("event does not change the selection")
)

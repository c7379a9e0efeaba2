package refq

import "errors"

// Common errors returned by queue operations. All of them are reported
// before any state changes; a failed call leaves the queue untouched.
var (
	ErrInvalidPriority  = errors.New("refq: priority must be a finite number")
	ErrInvalidPosition  = errors.New("refq: position must be a positive integer")
	ErrUnknownReference = errors.New("refq: reference was never issued by this queue")
	ErrRemovedReference = errors.New("refq: reference has already been removed")
	ErrNilCallback      = errors.New("refq: callback must not be nil")
)

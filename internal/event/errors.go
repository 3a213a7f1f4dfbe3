package event

import "errors"

// Sentinel errors for the event system.
var (
	// ErrNilCallback is returned when a nil callback is registered.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrDuplicateListener is returned when a (type, subscription) pair is
	// registered twice.
	ErrDuplicateListener = errors.New("listener already registered")

	// ErrListenerNotFound is returned when removing an unknown listener.
	ErrListenerNotFound = errors.New("listener not found")
)

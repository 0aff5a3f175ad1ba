package event

import (
	"errors"
	"fmt"
)

// Sentinel errors for the registry.
var (
	// ErrNilHandle is returned when subscribing a nil handle.
	ErrNilHandle = errors.New("handle cannot be nil")

	// ErrInvalidKind is returned for unknown event kinds.
	ErrInvalidKind = errors.New("invalid event kind")

	// ErrReentrancyLimit matches the panic raised when nested emission
	// exceeds the configured depth.
	ErrReentrancyLimit = errors.New("event re-entrancy limit exceeded")
)

// ReentrancyError is the panic value raised by Emit when listeners keep
// emitting past the configured depth. It indicates a notification cycle,
// typically a handler that mutates the component that triggered it.
type ReentrancyError struct {
	// Kind is the event whose emission was refused.
	Kind Kind

	// Source is the component that attempted the emission.
	Source ID

	// Depth is the configured maximum nesting depth.
	Depth int
}

// Error implements the error interface.
func (e *ReentrancyError) Error() string {
	return fmt.Sprintf("emit %s from component %d: nesting deeper than %d", e.Kind, e.Source, e.Depth)
}

// Is allows errors.Is to match ReentrancyError with ErrReentrancyLimit.
func (e *ReentrancyError) Is(target error) bool {
	return target == ErrReentrancyLimit
}

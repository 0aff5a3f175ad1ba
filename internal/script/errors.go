package script

import (
	"errors"
	"fmt"

	"github.com/GasparKral/WinR/internal/event"
)

// Errors for script listeners.
var (
	// ErrNoHandler is returned when a script does not define on_event.
	ErrNoHandler = errors.New("script does not define on_event")

	// ErrClosed is returned when operating on a closed listener.
	ErrClosed = errors.New("script listener is closed")

	// ErrReentrant is returned when on_event is re-entered while running.
	ErrReentrant = errors.New("script listener re-entered")
)

// Error reports a failure while running a script's on_event handler.
type Error struct {
	Script string
	Kind   event.Kind
	Source event.ID
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("script %s: on_event(%s, %d): %v", e.Script, e.Kind, e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

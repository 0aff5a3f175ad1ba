package event

import "fmt"

// ID identifies a component. IDs are allocated by a Registry, start at zero
// and are never reused by the same registry.
type ID uint64

// Kind is the type of an emitted event.
type Kind uint8

// Component events.
const (
	ComponentAdded Kind = iota
	ComponentRemoved
	ComponentResized
	ComponentMoved
	ComponentPaddingChanged
	ComponentMarginChanged
	ComponentVisibilityChanged

	// Window events
	WindowOpened
	WindowClosed
	WindowFocused
	WindowMaximized
	WindowMinimized
	WindowResized
	WindowMoved
	WindowTitleChanged
	WindowIconChanged

	// Keyboard events
	KeyPressed
	KeyReleased
	KeyTyped
	KeyHeld
	KeyCombinationPressed
	KeyCombinationReleased
	KeyCombinationHeld
	KeyCombinationTyped

	// Mouse events
	MouseButtonPressed
	MouseButtonReleased
	MouseButtonClicked
	MouseButtonDoubleClicked
	MouseMoved
	MouseScrolled

	// Animation events
	AnimationStarted
	AnimationStopped
	AnimationPaused
	AnimationResumed
	AnimationFrameUpdated
	AnimationCompleted
	AnimationTransitionStarted
	AnimationTransitionEnded

	// Form events
	FieldFocused
	FieldFocusLost
	FieldValueChanged
	FieldValidating
	FieldFocusMoved

	// System events
	RenderRequested
	UpdateRequested

	kindCount
)

var kindNames = [kindCount]string{
	ComponentAdded:             "component.added",
	ComponentRemoved:           "component.removed",
	ComponentResized:           "component.resized",
	ComponentMoved:             "component.moved",
	ComponentPaddingChanged:    "component.padding.changed",
	ComponentMarginChanged:     "component.margin.changed",
	ComponentVisibilityChanged: "component.visibility.changed",

	WindowOpened:       "window.opened",
	WindowClosed:       "window.closed",
	WindowFocused:      "window.focused",
	WindowMaximized:    "window.maximized",
	WindowMinimized:    "window.minimized",
	WindowResized:      "window.resized",
	WindowMoved:        "window.moved",
	WindowTitleChanged: "window.title.changed",
	WindowIconChanged:  "window.icon.changed",

	KeyPressed:             "key.pressed",
	KeyReleased:            "key.released",
	KeyTyped:               "key.typed",
	KeyHeld:                "key.held",
	KeyCombinationPressed:  "key.combination.pressed",
	KeyCombinationReleased: "key.combination.released",
	KeyCombinationHeld:     "key.combination.held",
	KeyCombinationTyped:    "key.combination.typed",

	MouseButtonPressed:       "mouse.button.pressed",
	MouseButtonReleased:      "mouse.button.released",
	MouseButtonClicked:       "mouse.button.clicked",
	MouseButtonDoubleClicked: "mouse.button.double_clicked",
	MouseMoved:               "mouse.moved",
	MouseScrolled:            "mouse.scrolled",

	AnimationStarted:           "animation.started",
	AnimationStopped:           "animation.stopped",
	AnimationPaused:            "animation.paused",
	AnimationResumed:           "animation.resumed",
	AnimationFrameUpdated:      "animation.frame.updated",
	AnimationCompleted:         "animation.completed",
	AnimationTransitionStarted: "animation.transition.started",
	AnimationTransitionEnded:   "animation.transition.ended",

	FieldFocused:      "field.focused",
	FieldFocusLost:    "field.focus.lost",
	FieldValueChanged: "field.value.changed",
	FieldValidating:   "field.validating",
	FieldFocusMoved:   "field.focus.moved",

	RenderRequested: "system.render.requested",
	UpdateRequested: "system.update.requested",
}

// String returns the dotted name of the kind (e.g. "component.resized").
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k < kindCount
}

// ParseKind returns the kind with the given dotted name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, name)
}

// Kinds returns every known kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ComponentKinds returns the kinds emitted by component mutators.
func ComponentKinds() []Kind {
	return []Kind{
		ComponentResized,
		ComponentMoved,
		ComponentMarginChanged,
		ComponentPaddingChanged,
		ComponentVisibilityChanged,
		RenderRequested,
	}
}

// Listener is the capability required to receive events.
type Listener interface {
	// OnEvent is called synchronously for every emitted event of a kind the
	// listener is subscribed to. source is the emitting component's ID.
	OnEvent(kind Kind, source ID)
}

// ListenerFunc is a function adapter for Listener.
type ListenerFunc func(kind Kind, source ID)

// OnEvent implements the Listener interface.
func (f ListenerFunc) OnEvent(kind Kind, source ID) {
	f(kind, source)
}

// Stats contains registry statistics.
type Stats struct {
	// Emitted is the number of Emit calls.
	Emitted uint64

	// Delivered is the number of OnEvent invocations.
	Delivered uint64

	// Pruned is the number of dead handles removed by Emit or Cleanup.
	Pruned uint64

	// Handles is the number of handles currently registered, dead or alive.
	Handles int
}

package component

import (
	"github.com/GasparKral/WinR/internal/event"
	"github.com/GasparKral/WinR/internal/geom"
)

// Base is the geometric core of a component.
//
// Base is not safe for concurrent use. All components of one toolkit share a
// single *event.Registry.
type Base struct {
	size     geom.Size
	position geom.Position
	margin   geom.Margin
	padding  geom.Padding
	mode     geom.SizingMode

	visible  bool
	wrap     bool
	overflow geom.Overflow
	policy   geom.SizePolicy

	// Derived
	bounds      geom.Boundaries
	boundsValid bool

	// Identity
	id       event.ID
	registry *event.Registry
}

// New creates a component bound to reg. The component receives the next ID
// from reg and its bounds are computed immediately. A nil reg gets a private
// registry.
func New(size geom.Size, position geom.Position, margin geom.Margin, padding geom.Padding, reg *event.Registry, opts ...Option) *Base {
	if reg == nil {
		reg = event.NewRegistry()
	}

	b := &Base{
		size:     size,
		position: position,
		margin:   margin,
		padding:  padding,
		mode:     geom.BorderBox,
		visible:  true,
		registry: reg,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.id = reg.AllocateID()
	b.CalculateBounds()
	return b
}

// ID returns the component's ID within its registry.
func (b *Base) ID() event.ID { return b.id }

// Registry returns the registry the component emits through.
func (b *Base) Registry() *event.Registry { return b.registry }

// Size returns the component size.
func (b *Base) Size() geom.Size { return b.size }

// Position returns the component position.
func (b *Base) Position() geom.Position { return b.position }

// Margin returns the component margin.
func (b *Base) Margin() geom.Margin { return b.margin }

// Padding returns the component padding.
func (b *Base) Padding() geom.Padding { return b.padding }

// SizingMode returns the sizing mode used for bounds.
func (b *Base) SizingMode() geom.SizingMode { return b.mode }

// Visible reports whether the component is visible.
func (b *Base) Visible() bool { return b.visible }

// Wrap reports whether wrap mode is enabled.
func (b *Base) Wrap() bool { return b.wrap }

// Overflow returns the overflow policy.
func (b *Base) Overflow() geom.Overflow { return b.overflow }

// SizePolicy returns the size policy.
func (b *Base) SizePolicy() geom.SizePolicy { return b.policy }

// Rebind moves the component to another registry and re-issues its ID from
// that registry. Rebinding to the current registry, or to nil, does nothing.
func (b *Base) Rebind(reg *event.Registry) {
	if reg == nil || reg == b.registry {
		return
	}
	b.registry = reg
	b.id = reg.AllocateID()
}

// Bounds returns the cached boundaries. ok is false when the cache was
// invalidated and CalculateBounds has not run since.
func (b *Base) Bounds() (bounds geom.Boundaries, ok bool) {
	return b.bounds, b.boundsValid
}

// ResolveBounds returns the boundaries, recomputing them if invalidated.
func (b *Base) ResolveBounds() geom.Boundaries {
	if !b.boundsValid {
		return b.CalculateBounds()
	}
	return b.bounds
}

// CalculateBounds recomputes the boundaries from the current geometry and
// stores them in the cache.
func (b *Base) CalculateBounds() geom.Boundaries {
	b.bounds = geom.Calculate(b.position, b.size, b.margin, b.padding, b.mode)
	b.boundsValid = true
	return b.bounds
}

// HitTest reports whether pt falls inside a visible component's bounds.
func (b *Base) HitTest(pt geom.Position) bool {
	return b.visible && b.ResolveBounds().Contains(pt)
}

// invalidate clears the cached boundaries.
func (b *Base) invalidate() {
	b.boundsValid = false
	b.bounds = geom.Boundaries{}
}

func (b *Base) emit(kind event.Kind) {
	b.registry.Emit(kind, b.id)
}

// SetSize replaces the size and emits event.ComponentResized.
func (b *Base) SetSize(size geom.Size) {
	if size == b.size {
		return
	}
	b.size = size
	b.invalidate()
	b.emit(event.ComponentResized)
}

// SetPosition replaces the position and emits event.ComponentMoved.
func (b *Base) SetPosition(position geom.Position) {
	if position == b.position {
		return
	}
	b.position = position
	b.invalidate()
	b.emit(event.ComponentMoved)
}

// SetMargin replaces the margin and emits event.ComponentMarginChanged.
func (b *Base) SetMargin(margin geom.Margin) {
	if margin == b.margin {
		return
	}
	b.margin = margin
	b.invalidate()
	b.emit(event.ComponentMarginChanged)
}

// SetPadding replaces the padding and emits event.ComponentPaddingChanged.
func (b *Base) SetPadding(padding geom.Padding) {
	if padding == b.padding {
		return
	}
	b.padding = padding
	b.invalidate()
	b.emit(event.ComponentPaddingChanged)
}

// SetSizingMode changes the sizing mode. The outer extent of the bounds
// changes, so it emits event.ComponentResized.
func (b *Base) SetSizingMode(mode geom.SizingMode) {
	if mode == b.mode {
		return
	}
	b.mode = mode
	b.invalidate()
	b.emit(event.ComponentResized)
}

// SetVisible changes visibility and emits event.ComponentVisibilityChanged.
// Bounds are unaffected.
func (b *Base) SetVisible(visible bool) {
	if visible == b.visible {
		return
	}
	b.visible = visible
	b.emit(event.ComponentVisibilityChanged)
}

// SetWrap changes wrap mode and emits event.RenderRequested.
func (b *Base) SetWrap(wrap bool) {
	if wrap == b.wrap {
		return
	}
	b.wrap = wrap
	b.emit(event.RenderRequested)
}

// SetOverflow changes the overflow policy and emits event.RenderRequested.
func (b *Base) SetOverflow(o geom.Overflow) {
	if o == b.overflow {
		return
	}
	b.overflow = o
	b.emit(event.RenderRequested)
}

// SetSizePolicy changes the size policy and emits event.RenderRequested.
func (b *Base) SetSizePolicy(p geom.SizePolicy) {
	if p == b.policy {
		return
	}
	b.policy = p
	b.emit(event.RenderRequested)
}

// State is the comparable semantic state of a component: geometry,
// visibility and sizing mode. It excludes the cache and the registry, and is
// suitable as a map key.
type State struct {
	Size     geom.Size
	Position geom.Position
	Margin   geom.Margin
	Padding  geom.Padding
	Mode     geom.SizingMode
	Visible  bool
}

// State returns the component's semantic state.
func (b *Base) State() State {
	return State{
		Size:     b.size,
		Position: b.position,
		Margin:   b.margin,
		Padding:  b.padding,
		Mode:     b.mode,
		Visible:  b.visible,
	}
}

// Equal reports whether two components have the same semantic state.
func (b *Base) Equal(other *Base) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.State() == other.State()
}

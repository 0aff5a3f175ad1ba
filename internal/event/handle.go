package event

import (
	"sync/atomic"
	"weak"
)

// Handle is a non-owning reference to a Listener.
//
// Resolve returns the listener while its owner is alive. Once Resolve has
// returned false it must keep returning false. Resolve is called with the
// registry's bookkeeping in progress and must not call back into the registry.
type Handle interface {
	Resolve() (Listener, bool)
}

// Anchor owns the strong side of a listener subscription.
// The owner keeps the Anchor; the registry only ever sees Anchor.Handle.
// Releasing the anchor drops the listener reference, after which every handle
// derived from it resolves to false.
type Anchor struct {
	cell *cell
}

// cell is shared between an Anchor and its handles. After Release it no
// longer references the listener, so a lingering handle keeps nothing alive.
type cell struct {
	listener atomic.Pointer[Listener]
}

// NewAnchor creates an anchor holding l.
func NewAnchor(l Listener) *Anchor {
	c := &cell{}
	c.listener.Store(&l)
	return &Anchor{cell: c}
}

// Handle returns a non-owning handle to the anchored listener.
func (a *Anchor) Handle() Handle {
	return anchorHandle{cell: a.cell}
}

// Release drops the listener. It is safe to call more than once.
func (a *Anchor) Release() {
	a.cell.listener.Store(nil)
}

// Alive reports whether the anchor still holds its listener.
func (a *Anchor) Alive() bool {
	return a.cell.listener.Load() != nil
}

type anchorHandle struct {
	cell *cell
}

func (h anchorHandle) Resolve() (Listener, bool) {
	l := h.cell.listener.Load()
	if l == nil {
		return nil, false
	}
	return *l, true
}

// Weak returns a handle that follows a weak pointer to p. The handle dies
// when p becomes unreachable and the garbage collector reclaims it.
func Weak[T any, P interface {
	*T
	Listener
}](p P) Handle {
	return weakHandle[T, P]{ptr: weak.Make((*T)(p))}
}

type weakHandle[T any, P interface {
	*T
	Listener
}] struct {
	ptr weak.Pointer[T]
}

func (h weakHandle[T, P]) Resolve() (Listener, bool) {
	v := h.ptr.Value()
	if v == nil {
		return nil, false
	}
	return P(v), true
}

// entry is a registered handle. dead is set the first time the handle fails
// to resolve so that nested emissions skip it until it is swept.
type entry struct {
	handle Handle
	dead   atomic.Bool
}

// resolve resolves the handle, marking the entry dead on failure.
func (e *entry) resolve() (Listener, bool) {
	if e.dead.Load() {
		return nil, false
	}
	l, ok := e.handle.Resolve()
	if !ok {
		e.dead.Store(true)
	}
	return l, ok
}

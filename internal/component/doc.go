// Package component provides Base, the geometry-owning core embedded by every
// widget of the toolkit.
//
// A Base owns its position, size, margin, padding and sizing mode together
// with a cached geom.Boundaries. Geometry only changes through the typed
// setters; each setter that changes a value invalidates the cache and then
// emits exactly one event through the shared event.Registry, carrying the
// component's ID. Setting a value equal to the current one is a no-op.
//
//	reg := event.NewRegistry()
//	btn := component.New(geom.NewSize(100, 50), geom.NewPosition(10, 10),
//	    geom.Margin{}, geom.PaddingAll(5), reg)
//
//	btn.SetPosition(geom.NewPosition(20, 10)) // emits component.moved
//	b := btn.ResolveBounds()                  // recomputed on demand
//
// The cache is never observable in a stale state: listeners reacting to an
// event see either an invalid cache or one recomputed from current fields.
package component

// Package event provides the change-notification registry shared by all
// components of a toolkit instance.
//
// The registry is a small synchronous publish/subscribe bus keyed by event
// Kind. Components announce geometry and visibility mutations through it and
// collaborators (parent containers, renderers, hit-testers) react without
// polling.
//
// # Architecture
//
//	  ┌────────────┐  Emit(kind, id)  ┌──────────────────────────────┐
//	  │ Component  │ ───────────────▶ │           Registry           │
//	  │ (mutator)  │                  │  - id allocator              │
//	  └────────────┘                  │  - kind → ordered handles    │
//	                                  │  - lazy dead-handle pruning  │
//	                                  └──────────────────────────────┘
//	                                                │ Resolve()
//	                                                ▼
//	                                  ┌──────────────────────────────┐
//	                                  │ Handle (non-owning)          │
//	                                  │  - Anchor: explicit release  │
//	                                  │  - Weak: garbage collected   │
//	                                  └──────────────────────────────┘
//	                                                │ OnEvent(kind, id)
//	                                                ▼
//	                                           Listener
//
// # Non-owning Handles
//
// The registry never keeps a listener alive. Subscriptions are made with a
// Handle that is resolved on every dispatch; a handle whose owner is gone
// resolves to false and is dropped permanently. Two handle flavors exist:
//
//	// Explicit lifetime: the owner keeps the Anchor and releases it.
//	anchor := event.NewAnchor(listener)
//	reg.Subscribe(event.ComponentResized, anchor.Handle())
//	...
//	anchor.Release() // next Emit forgets the handle
//
//	// Garbage-collected lifetime: the handle follows a weak pointer.
//	reg.Subscribe(event.ComponentMoved, event.Weak(container))
//
// Cleanup sweeps dead handles across every kind without waiting for an Emit.
//
// # Dispatch
//
// Emit is synchronous: every live listener subscribed to the kind runs in
// subscription order before Emit returns. Dispatch is re-entrant, so a
// listener may emit further events (a container re-propagating a resize).
// Nesting is bounded by WithMaxDepth; exceeding it is a programming error and
// panics with a *ReentrancyError. A listener subscribed while an emission is
// in flight receives events starting with the next Emit.
//
// # Thread Safety
//
// The registry serialises its own bookkeeping and never holds its lock while
// a listener runs. Components built on top of it are single-owner and the
// re-entrancy depth assumes one logical thread of control.
package event

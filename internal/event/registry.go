package event

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Registry allocates component IDs and dispatches events to subscribed
// listeners. A single registry is shared by every component of a toolkit
// instance so that IDs stay unique and events reach all subscribers.
type Registry struct {
	mu        sync.Mutex
	id        uuid.UUID
	nextID    ID
	listeners map[Kind][]*entry
	depth     int

	config registryConfig

	// Stats
	emitted   atomic.Uint64
	delivered atomic.Uint64
	pruned    atomic.Uint64
}

// NewRegistry creates a registry with the given options.
func NewRegistry(opts ...Option) *Registry {
	config := defaultRegistryConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Registry{
		id:        uuid.New(),
		listeners: make(map[Kind][]*entry),
		config:    config,
	}
}

// ID returns the identity of this registry instance.
func (r *Registry) ID() uuid.UUID {
	return r.id
}

// AllocateID returns the next component ID. The first ID is 0.
func (r *Registry) AllocateID() ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	return id
}

// Subscribe registers h for events of the given kind.
// Handles are dispatched in subscription order; the same handle may be
// subscribed more than once and is then invoked once per subscription.
func (r *Registry) Subscribe(kind Kind, h Handle) error {
	if h == nil {
		return ErrNilHandle
	}
	if !kind.Valid() {
		return ErrInvalidKind
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.listeners[kind] = append(r.listeners[kind], &entry{handle: h})
	return nil
}

// Emit delivers (kind, source) to every live listener subscribed to kind,
// in subscription order. Handles that no longer resolve are removed and never
// retried.
//
// Emit may be called from inside a listener. Nesting deeper than the
// configured maximum panics with a *ReentrancyError.
func (r *Registry) Emit(kind Kind, source ID) {
	r.mu.Lock()
	if r.depth >= r.config.maxDepth {
		depth := r.config.maxDepth
		r.mu.Unlock()
		r.config.logger.Error("event re-entrancy limit exceeded",
			"registry", r.id, "kind", kind.String(), "source", uint64(source), "depth", depth)
		panic(&ReentrancyError{Kind: kind, Source: source, Depth: depth})
	}
	r.depth++
	snapshot := slices.Clone(r.listeners[kind])
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.depth--
		r.mu.Unlock()
	}()

	r.emitted.Add(1)

	sweep := false
	for _, e := range snapshot {
		l, ok := e.resolve()
		if !ok {
			sweep = true
			continue
		}
		l.OnEvent(kind, source)
		r.delivered.Add(1)
	}

	if sweep {
		r.mu.Lock()
		n := r.sweepKind(kind)
		r.mu.Unlock()
		if n > 0 {
			r.config.logger.Debug("pruned dead listeners",
				"registry", r.id, "kind", kind.String(), "count", n)
		}
	}
}

// Cleanup removes every handle that no longer resolves, across all kinds.
// It returns the number of handles removed.
func (r *Registry) Cleanup() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for kind, entries := range r.listeners {
		for _, e := range entries {
			e.resolve()
		}
		removed += r.sweepKind(kind)
	}

	if removed > 0 {
		r.config.logger.Debug("cleanup removed dead listeners", "registry", r.id, "count", removed)
	}
	return removed
}

// sweepKind drops entries already marked dead. Caller must hold r.mu.
func (r *Registry) sweepKind(kind Kind) int {
	entries := r.listeners[kind]
	before := len(entries)
	entries = slices.DeleteFunc(entries, func(e *entry) bool {
		return e.dead.Load()
	})

	if len(entries) == 0 {
		delete(r.listeners, kind)
	} else {
		r.listeners[kind] = entries
	}

	removed := before - len(entries)
	r.pruned.Add(uint64(removed))
	return removed
}

// Len returns the number of handles registered for kind, including dead
// handles not yet swept.
func (r *Registry) Len(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.listeners[kind])
}

// Count returns the total number of registered handles.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.countLocked()
}

func (r *Registry) countLocked() int {
	n := 0
	for _, entries := range r.listeners {
		n += len(entries)
	}
	return n
}

// Stats returns current registry statistics.
func (r *Registry) Stats() Stats {
	r.mu.Lock()
	handles := r.countLocked()
	r.mu.Unlock()

	return Stats{
		Emitted:   r.emitted.Load(),
		Delivered: r.delivered.Load(),
		Pruned:    r.pruned.Load(),
		Handles:   handles,
	}
}

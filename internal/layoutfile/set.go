package layoutfile

import (
	"github.com/GasparKral/WinR/internal/component"
	"github.com/GasparKral/WinR/internal/event"
)

// Set is the ordered collection of components built from a document.
type Set struct {
	registry *event.Registry
	names    []string
	byName   map[string]*component.Base
}

// Build constructs one component per entry on reg, in document order.
// Each new component announces itself with event.ComponentAdded.
func Build(doc *Document, reg *event.Registry) *Set {
	if reg == nil {
		reg = event.NewRegistry()
	}
	s := &Set{
		registry: reg,
		byName:   make(map[string]*component.Base, len(doc.Components)),
	}
	for _, e := range doc.Components {
		s.add(e)
	}
	return s
}

func (s *Set) add(e Entry) *component.Base {
	b := component.FromGeometry(e.Geometry, s.registry)
	s.names = append(s.names, e.Name)
	s.byName[e.Name] = b
	s.registry.Emit(event.ComponentAdded, b.ID())
	return b
}

// Registry returns the registry shared by the set's components.
func (s *Set) Registry() *event.Registry { return s.registry }

// Len returns the number of components.
func (s *Set) Len() int { return len(s.names) }

// Names returns the component names in document order.
func (s *Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Get returns the named component.
func (s *Set) Get(name string) (*component.Base, bool) {
	b, ok := s.byName[name]
	return b, ok
}

// NameOf returns the name of the component with the given ID. It also
// resolves components while their ComponentAdded or ComponentRemoved event
// is being dispatched.
func (s *Set) NameOf(id event.ID) (string, bool) {
	for name, b := range s.byName {
		if b.ID() == id {
			return name, true
		}
	}
	return "", false
}

// Components returns the components in document order.
func (s *Set) Components() []*component.Base {
	out := make([]*component.Base, 0, len(s.names))
	for _, name := range s.names {
		out = append(out, s.byName[name])
	}
	return out
}

// Document returns the current geometry of the set as a document.
func (s *Set) Document() *Document {
	doc := &Document{Components: make([]Entry, 0, len(s.names))}
	for _, name := range s.names {
		doc.Components = append(doc.Components, Entry{
			Name:     name,
			Geometry: s.byName[name].Geometry(),
		})
	}
	return doc
}

// ApplyResult summarises a reload.
type ApplyResult struct {
	Added   []string
	Removed []string
	Changed []string
}

// Empty reports whether the reload changed nothing.
func (r ApplyResult) Empty() bool {
	return len(r.Added) == 0 && len(r.Removed) == 0 && len(r.Changed) == 0
}

// Apply reconciles the set with doc. Existing components keep their IDs and
// receive the new geometry through their setters, so only fields that really
// changed emit events. Components missing from doc emit
// event.ComponentRemoved; new names are built and emit event.ComponentAdded.
// The resulting order follows doc.
func (s *Set) Apply(doc *Document) ApplyResult {
	var res ApplyResult

	keep := make(map[string]bool, len(doc.Components))
	for _, e := range doc.Components {
		keep[e.Name] = true
	}
	for _, name := range s.names {
		if keep[name] {
			continue
		}
		s.registry.Emit(event.ComponentRemoved, s.byName[name].ID())
		delete(s.byName, name)
		res.Removed = append(res.Removed, name)
	}

	s.names = s.names[:0]
	for _, e := range doc.Components {
		b, ok := s.byName[e.Name]
		if !ok {
			s.add(e)
			res.Added = append(res.Added, e.Name)
			continue
		}
		s.names = append(s.names, e.Name)
		if b.Apply(e.Geometry) > 0 {
			res.Changed = append(res.Changed, e.Name)
		}
	}
	return res
}

package component

import (
	"github.com/GasparKral/WinR/internal/event"
	"github.com/GasparKral/WinR/internal/geom"
)

// Geometry is the persisted form of a component. The ID and the cached
// bounds are runtime data and are never part of it. The zero value describes
// a visible, empty component in border-box mode.
type Geometry struct {
	Position   geom.Position   `json:"position" yaml:"position" toml:"position"`
	Size       geom.Size       `json:"size" yaml:"size" toml:"size"`
	Margin     geom.Margin     `json:"margin" yaml:"margin" toml:"margin"`
	Padding    geom.Padding    `json:"padding" yaml:"padding" toml:"padding"`
	SizingMode geom.SizingMode `json:"sizing_mode" yaml:"sizing_mode" toml:"sizing_mode"`
	Hidden     bool            `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`
	Wrap       bool            `json:"wrap,omitempty" yaml:"wrap,omitempty" toml:"wrap,omitempty"`
	Overflow   geom.Overflow   `json:"overflow" yaml:"overflow" toml:"overflow"`
	SizePolicy geom.SizePolicy `json:"size_policy" yaml:"size_policy" toml:"size_policy"`
}

// FromGeometry creates a component from its persisted form. Bounds are
// recomputed.
func FromGeometry(g Geometry, reg *event.Registry) *Base {
	return New(g.Size, g.Position, g.Margin, g.Padding, reg,
		WithSizingMode(g.SizingMode),
		WithVisible(!g.Hidden),
		WithWrap(g.Wrap),
		WithOverflow(g.Overflow),
		WithSizePolicy(g.SizePolicy),
	)
}

// Geometry returns the persisted form of the component.
func (b *Base) Geometry() Geometry {
	return Geometry{
		Position:   b.position,
		Size:       b.size,
		Margin:     b.margin,
		Padding:    b.padding,
		SizingMode: b.mode,
		Hidden:     !b.visible,
		Wrap:       b.wrap,
		Overflow:   b.overflow,
		SizePolicy: b.policy,
	}
}

// Apply pushes g into the component through its setters, so every field that
// actually differs emits its usual event. It returns the number of fields
// that changed.
func (b *Base) Apply(g Geometry) int {
	before := b.Geometry()
	if before == g {
		return 0
	}

	b.SetSizingMode(g.SizingMode)
	b.SetSize(g.Size)
	b.SetPosition(g.Position)
	b.SetMargin(g.Margin)
	b.SetPadding(g.Padding)
	b.SetVisible(!g.Hidden)
	b.SetWrap(g.Wrap)
	b.SetOverflow(g.Overflow)
	b.SetSizePolicy(g.SizePolicy)

	return before.diff(g)
}

// diff counts the fields that differ between g and other.
func (g Geometry) diff(other Geometry) int {
	n := 0
	for _, changed := range []bool{
		g.Position != other.Position,
		g.Size != other.Size,
		g.Margin != other.Margin,
		g.Padding != other.Padding,
		g.SizingMode != other.SizingMode,
		g.Hidden != other.Hidden,
		g.Wrap != other.Wrap,
		g.Overflow != other.Overflow,
		g.SizePolicy != other.SizePolicy,
	} {
		if changed {
			n++
		}
	}
	return n
}

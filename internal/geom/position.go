package geom

import "fmt"

// Position is a point in component space.
type Position struct {
	X uint16 `json:"x" yaml:"x" toml:"x"`
	Y uint16 `json:"y" yaml:"y" toml:"y"`
}

// NewPosition creates a Position.
func NewPosition(x, y uint16) Position {
	return Position{X: x, Y: y}
}

// WithX returns a copy of p with X replaced.
func (p Position) WithX(x uint16) Position {
	p.X = x
	return p
}

// WithY returns a copy of p with Y replaced.
func (p Position) WithY(y uint16) Position {
	p.Y = y
	return p
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Size is a width/height pair.
type Size struct {
	Width  uint16 `json:"width" yaml:"width" toml:"width"`
	Height uint16 `json:"height" yaml:"height" toml:"height"`
}

// NewSize creates a Size.
func NewSize(width, height uint16) Size {
	return Size{Width: width, Height: height}
}

// WithWidth returns a copy of s with Width replaced.
func (s Size) WithWidth(w uint16) Size {
	s.Width = w
	return s
}

// WithHeight returns a copy of s with Height replaced.
func (s Size) WithHeight(h uint16) Size {
	s.Height = h
	return s
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// String returns the size as "WxH".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

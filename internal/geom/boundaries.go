package geom

// Boundaries is the rectangle a component occupies, as four corners in
// clockwise order from the top-left. Boundaries are only produced by
// Calculate.
type Boundaries struct {
	p0, p1, p2, p3 Position
}

// P0 returns the top-left corner.
func (b Boundaries) P0() Position { return b.p0 }

// P1 returns the top-right corner.
func (b Boundaries) P1() Position { return b.p1 }

// P2 returns the bottom-right corner.
func (b Boundaries) P2() Position { return b.p2 }

// P3 returns the bottom-left corner.
func (b Boundaries) P3() Position { return b.p3 }

// Corners returns P0..P3 in clockwise order.
func (b Boundaries) Corners() [4]Position {
	return [4]Position{b.p0, b.p1, b.p2, b.p3}
}

// Width returns the horizontal extent, zero when the rectangle collapsed.
func (b Boundaries) Width() uint16 {
	return subSat(b.p1.X, b.p0.X)
}

// Height returns the vertical extent, zero when the rectangle collapsed.
func (b Boundaries) Height() uint16 {
	return subSat(b.p3.Y, b.p0.Y)
}

// IsEmpty returns true if the rectangle has no area.
func (b Boundaries) IsEmpty() bool {
	return b.Width() == 0 || b.Height() == 0
}

// Contains reports whether pt lies inside the rectangle.
// All four edges are inclusive.
func (b Boundaries) Contains(pt Position) bool {
	return pt.X >= b.p0.X && pt.X <= b.p2.X &&
		pt.Y >= b.p0.Y && pt.Y <= b.p2.Y
}

package geom

import "math"

// Calculate derives the Boundaries of a component from its geometry.
//
// The mode selects which insets shrink the rectangle. Subtraction clamps at
// zero and addition clamps at math.MaxUint16, so oversized insets collapse
// the rectangle instead of wrapping around.
func Calculate(pos Position, size Size, margin Margin, padding Padding, mode SizingMode) Boundaries {
	var top, right, bottom, left uint16

	switch mode {
	case ContentBox:
		// Insets ignored
	case MarginBox:
		top = addSat(margin.Top, padding.Top)
		right = addSat(margin.Right, padding.Right)
		bottom = addSat(margin.Bottom, padding.Bottom)
		left = addSat(margin.Left, padding.Left)
	default:
		top, right, bottom, left = padding.Top, padding.Right, padding.Bottom, padding.Left
	}

	x0 := addSat(pos.X, left)
	y0 := addSat(pos.Y, top)
	x1 := subSat(addSat(pos.X, size.Width), right)
	y1 := subSat(addSat(pos.Y, size.Height), bottom)

	return Boundaries{
		p0: Position{X: x0, Y: y0},
		p1: Position{X: x1, Y: y0},
		p2: Position{X: x1, Y: y1},
		p3: Position{X: x0, Y: y1},
	}
}

func addSat(a, b uint16) uint16 {
	if a > math.MaxUint16-b {
		return math.MaxUint16
	}
	return a + b
}

func subSat(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}

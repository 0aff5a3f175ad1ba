// Package preview draws component bounds on a terminal screen.
//
// Each visible component is outlined along its resolved boundaries:
//
//	p0 ┌──────┐ p1
//	   │      │
//	p3 └──────┘ p2
//
// A rectangle with zero width or height collapses to a line, and one with
// both collapses to a single dot.
package preview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/GasparKral/WinR/internal/component"
	"github.com/GasparKral/WinR/internal/geom"
)

// Box-drawing runes.
const (
	runeHorizontal  = '─'
	runeVertical    = '│'
	runeTopLeft     = '┌'
	runeTopRight    = '┐'
	runeBottomLeft  = '└'
	runeBottomRight = '┘'
	runePoint       = '·'
)

// Palette cycles outline colours across components.
var Palette = NewPalette(6)

// NewPalette returns n colours evenly spaced around the hue circle.
func NewPalette(n int) []tcell.Color {
	if n <= 0 {
		n = 1
	}
	out := make([]tcell.Color, n)
	for i := range out {
		c := colorful.Hsv(float64(i)*360/float64(n), 0.55, 0.95)
		r, g, b := c.RGB255()
		out[i] = tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return out
}

// Draw clears screen and outlines every visible component, cycling through
// Palette. It returns the number of components drawn. The caller shows the
// screen.
func Draw(screen tcell.Screen, comps []*component.Base) int {
	screen.Clear()

	drawn := 0
	for _, b := range comps {
		if b == nil || !b.Visible() {
			continue
		}
		style := tcell.StyleDefault.Foreground(Palette[drawn%len(Palette)])
		Outline(screen, b.ResolveBounds(), style)
		drawn++
	}
	return drawn
}

// Outline draws the edges of bounds, clipped to the screen.
func Outline(screen tcell.Screen, bounds geom.Boundaries, style tcell.Style) {
	p0 := bounds.P0()
	x0, y0 := int(p0.X), int(p0.Y)
	x1, y1 := x0+int(bounds.Width()), y0+int(bounds.Height())

	width, height := screen.Size()
	set := func(x, y int, r rune) {
		if x < width && y < height {
			screen.SetContent(x, y, r, nil, style)
		}
	}

	switch {
	case x0 == x1 && y0 == y1:
		set(x0, y0, runePoint)
		return
	case y0 == y1:
		for x := x0; x <= x1 && x < width; x++ {
			set(x, y0, runeHorizontal)
		}
		return
	case x0 == x1:
		for y := y0; y <= y1 && y < height; y++ {
			set(x0, y, runeVertical)
		}
		return
	}

	for x := x0 + 1; x < x1 && x < width; x++ {
		set(x, y0, runeHorizontal)
		set(x, y1, runeHorizontal)
	}
	for y := y0 + 1; y < y1 && y < height; y++ {
		set(x0, y, runeVertical)
		set(x1, y, runeVertical)
	}
	set(x0, y0, runeTopLeft)
	set(x1, y0, runeTopRight)
	set(x1, y1, runeBottomRight)
	set(x0, y1, runeBottomLeft)
}

// Label writes text inside the top edge of bounds, truncated to fit. Wide
// runes take two cells.
func Label(screen tcell.Screen, bounds geom.Boundaries, text string, style tcell.Style) {
	p0 := bounds.P0()
	x, y := int(p0.X)+1, int(p0.Y)
	limit := int(p0.X) + int(bounds.Width())

	width, height := screen.Size()
	if y >= height {
		return
	}
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > limit || x+w > width {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

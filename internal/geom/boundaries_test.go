package geom

import "testing"

func TestBoundaries_Contains(t *testing.T) {
	b := Calculate(NewPosition(10, 10), NewSize(100, 50), Margin{}, PaddingAll(5), BorderBox)

	tests := []struct {
		pt   Position
		want bool
	}{
		{NewPosition(15, 15), true},
		{NewPosition(105, 55), true},
		{NewPosition(60, 30), true},
		{NewPosition(14, 30), false},
		{NewPosition(106, 30), false},
		{NewPosition(60, 56), false},
		{NewPosition(0, 0), false},
	}

	for _, tt := range tests {
		if got := b.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestBoundaries_Extent(t *testing.T) {
	b := Calculate(NewPosition(10, 10), NewSize(100, 50), Margin{}, PaddingAll(5), BorderBox)
	if b.Width() != 90 {
		t.Errorf("Width() = %d, want 90", b.Width())
	}
	if b.Height() != 40 {
		t.Errorf("Height() = %d, want 40", b.Height())
	}
	if b.IsEmpty() {
		t.Error("IsEmpty() = true, want false")
	}
}

func TestBoundaries_Clockwise(t *testing.T) {
	b := Calculate(NewPosition(0, 0), NewSize(8, 4), Margin{}, Padding{}, ContentBox)
	c := b.Corners()
	if c[0].Y != c[1].Y || c[2].Y != c[3].Y {
		t.Errorf("top/bottom edges not horizontal: %v", c)
	}
	if c[1].X != c[2].X || c[0].X != c[3].X {
		t.Errorf("left/right edges not vertical: %v", c)
	}
	if c[1].X <= c[0].X || c[3].Y <= c[0].Y {
		t.Errorf("corners not clockwise from top-left: %v", c)
	}
}

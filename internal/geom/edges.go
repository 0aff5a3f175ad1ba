package geom

// Margin is the outer inset of a component, CSS order top/right/bottom/left.
type Margin struct {
	Top    uint16 `json:"top" yaml:"top" toml:"top"`
	Right  uint16 `json:"right" yaml:"right" toml:"right"`
	Bottom uint16 `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   uint16 `json:"left" yaml:"left" toml:"left"`
}

// NewMargin creates a Margin following CSS order.
func NewMargin(top, right, bottom, left uint16) Margin {
	return Margin{Top: top, Right: right, Bottom: bottom, Left: left}
}

// MarginAll creates a Margin with the same value on every side.
func MarginAll(n uint16) Margin {
	return Margin{Top: n, Right: n, Bottom: n, Left: n}
}

// WithTop returns a copy of m with Top replaced.
func (m Margin) WithTop(v uint16) Margin {
	m.Top = v
	return m
}

// WithRight returns a copy of m with Right replaced.
func (m Margin) WithRight(v uint16) Margin {
	m.Right = v
	return m
}

// WithBottom returns a copy of m with Bottom replaced.
func (m Margin) WithBottom(v uint16) Margin {
	m.Bottom = v
	return m
}

// WithLeft returns a copy of m with Left replaced.
func (m Margin) WithLeft(v uint16) Margin {
	m.Left = v
	return m
}

// WithHorizontal splits total evenly between Left and Right.
// Odd totals lose the remainder.
func (m Margin) WithHorizontal(total uint16) Margin {
	m.Left, m.Right = total/2, total/2
	return m
}

// WithVertical splits total evenly between Top and Bottom.
// Odd totals lose the remainder.
func (m Margin) WithVertical(total uint16) Margin {
	m.Top, m.Bottom = total/2, total/2
	return m
}

// Horizontal returns Left+Right, saturating.
func (m Margin) Horizontal() uint16 {
	return addSat(m.Left, m.Right)
}

// Vertical returns Top+Bottom, saturating.
func (m Margin) Vertical() uint16 {
	return addSat(m.Top, m.Bottom)
}

// IsZero returns true if all sides are zero.
func (m Margin) IsZero() bool {
	return m == Margin{}
}

// Padding is the inner inset of a component, CSS order top/right/bottom/left.
type Padding struct {
	Top    uint16 `json:"top" yaml:"top" toml:"top"`
	Right  uint16 `json:"right" yaml:"right" toml:"right"`
	Bottom uint16 `json:"bottom" yaml:"bottom" toml:"bottom"`
	Left   uint16 `json:"left" yaml:"left" toml:"left"`
}

// NewPadding creates a Padding following CSS order.
func NewPadding(top, right, bottom, left uint16) Padding {
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}
}

// PaddingAll creates a Padding with the same value on every side.
func PaddingAll(n uint16) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// WithTop returns a copy of p with Top replaced.
func (p Padding) WithTop(v uint16) Padding {
	p.Top = v
	return p
}

// WithRight returns a copy of p with Right replaced.
func (p Padding) WithRight(v uint16) Padding {
	p.Right = v
	return p
}

// WithBottom returns a copy of p with Bottom replaced.
func (p Padding) WithBottom(v uint16) Padding {
	p.Bottom = v
	return p
}

// WithLeft returns a copy of p with Left replaced.
func (p Padding) WithLeft(v uint16) Padding {
	p.Left = v
	return p
}

// WithHorizontal splits total evenly between Left and Right.
func (p Padding) WithHorizontal(total uint16) Padding {
	p.Left, p.Right = total/2, total/2
	return p
}

// WithVertical splits total evenly between Top and Bottom.
func (p Padding) WithVertical(total uint16) Padding {
	p.Top, p.Bottom = total/2, total/2
	return p
}

// Horizontal returns Left+Right, saturating.
func (p Padding) Horizontal() uint16 {
	return addSat(p.Left, p.Right)
}

// Vertical returns Top+Bottom, saturating.
func (p Padding) Vertical() uint16 {
	return addSat(p.Top, p.Bottom)
}

// IsZero returns true if all sides are zero.
func (p Padding) IsZero() bool {
	return p == Padding{}
}

package component

import "github.com/GasparKral/WinR/internal/geom"

// Option configures a Base at construction.
type Option func(*Base)

// WithSizingMode sets the initial sizing mode.
func WithSizingMode(mode geom.SizingMode) Option {
	return func(b *Base) {
		b.mode = mode
	}
}

// WithVisible sets the initial visibility. Components are visible by default.
func WithVisible(visible bool) Option {
	return func(b *Base) {
		b.visible = visible
	}
}

// WithWrap sets the initial wrap mode.
func WithWrap(wrap bool) Option {
	return func(b *Base) {
		b.wrap = wrap
	}
}

// WithOverflow sets the initial overflow policy.
func WithOverflow(o geom.Overflow) Option {
	return func(b *Base) {
		b.overflow = o
	}
}

// WithSizePolicy sets the initial size policy.
func WithSizePolicy(p geom.SizePolicy) Option {
	return func(b *Base) {
		b.policy = p
	}
}

package geom

import (
	"fmt"
	"strings"
)

// SizingMode selects which insets participate in the bounds calculation.
type SizingMode uint8

const (
	// BorderBox subtracts padding only. It is the zero value and the default.
	BorderBox SizingMode = iota

	// ContentBox ignores margin and padding.
	ContentBox

	// MarginBox subtracts margin and padding combined.
	MarginBox
)

// String returns the CSS-style name of the mode.
func (m SizingMode) String() string {
	switch m {
	case BorderBox:
		return "border-box"
	case ContentBox:
		return "content-box"
	case MarginBox:
		return "margin-box"
	default:
		return "unknown"
	}
}

// ParseSizingMode parses a mode name. Both "border-box" and "BorderBox"
// spellings are accepted; the empty string yields the default.
func ParseSizingMode(s string) (SizingMode, error) {
	switch normalize(s) {
	case "", "borderbox":
		return BorderBox, nil
	case "contentbox":
		return ContentBox, nil
	case "marginbox":
		return MarginBox, nil
	default:
		return BorderBox, fmt.Errorf("%w: sizing mode %q", ErrUnknownValue, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m SizingMode) MarshalText() ([]byte, error) {
	if m > MarginBox {
		return nil, fmt.Errorf("%w: sizing mode %d", ErrUnknownValue, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *SizingMode) UnmarshalText(text []byte) error {
	v, err := ParseSizingMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Overflow controls how content exceeding the bounds is presented.
type Overflow uint8

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

// String returns the lowercase overflow name.
func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	case OverflowAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseOverflow parses an overflow name, case-insensitively.
func ParseOverflow(s string) (Overflow, error) {
	switch normalize(s) {
	case "", "visible":
		return OverflowVisible, nil
	case "hidden":
		return OverflowHidden, nil
	case "scroll":
		return OverflowScroll, nil
	case "auto":
		return OverflowAuto, nil
	default:
		return OverflowVisible, fmt.Errorf("%w: overflow %q", ErrUnknownValue, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Overflow) MarshalText() ([]byte, error) {
	if o > OverflowAuto {
		return nil, fmt.Errorf("%w: overflow %d", ErrUnknownValue, o)
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Overflow) UnmarshalText(text []byte) error {
	v, err := ParseOverflow(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// SizePolicy describes how a component's size reacts to its container.
type SizePolicy uint8

const (
	// SizeFixed keeps the declared size.
	SizeFixed SizePolicy = iota

	// SizeFill grows to the space offered by the container.
	SizeFill

	// SizeFit shrinks to the content.
	SizeFit
)

// String returns the lowercase policy name.
func (p SizePolicy) String() string {
	switch p {
	case SizeFixed:
		return "fixed"
	case SizeFill:
		return "fill"
	case SizeFit:
		return "fit"
	default:
		return "unknown"
	}
}

// ParseSizePolicy parses a policy name, case-insensitively.
func ParseSizePolicy(s string) (SizePolicy, error) {
	switch normalize(s) {
	case "", "fixed":
		return SizeFixed, nil
	case "fill":
		return SizeFill, nil
	case "fit":
		return SizeFit, nil
	default:
		return SizeFixed, fmt.Errorf("%w: size policy %q", ErrUnknownValue, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p SizePolicy) MarshalText() ([]byte, error) {
	if p > SizeFit {
		return nil, fmt.Errorf("%w: size policy %d", ErrUnknownValue, p)
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *SizePolicy) UnmarshalText(text []byte) error {
	v, err := ParseSizePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// normalize lowercases s and drops dashes and underscores so that
// "border-box", "border_box" and "BorderBox" compare equal.
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}

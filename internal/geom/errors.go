package geom

import "errors"

// ErrUnknownValue is returned when parsing an enumeration name fails.
var ErrUnknownValue = errors.New("unknown value")

package layoutfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout documents.
var (
	// ErrNotFound is returned when the document file does not exist.
	ErrNotFound = errors.New("layout file not found")

	// ErrUnsupportedFormat is returned for unknown file extensions.
	ErrUnsupportedFormat = errors.New("unsupported layout format")

	// ErrInvalidDocument is returned when a document fails validation.
	ErrInvalidDocument = errors.New("invalid layout document")
)

// ParseError represents an error while decoding a document.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s (%s): %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

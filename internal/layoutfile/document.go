package layoutfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/GasparKral/WinR/internal/component"
)

// Document is an ordered list of named component geometries.
type Document struct {
	Components []Entry `json:"components" yaml:"components" toml:"components"`
}

// Entry is one named component.
type Entry struct {
	Name               string `json:"name" yaml:"name" toml:"name"`
	component.Geometry `yaml:",inline"`
}

// Validate checks that every entry has a unique, non-empty name.
func (d *Document) Validate() error {
	seen := make(map[string]bool, len(d.Components))
	for i, e := range d.Components {
		if e.Name == "" {
			return fmt.Errorf("%w: component %d has no name", ErrInvalidDocument, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate component %q", ErrInvalidDocument, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

// Lookup returns the entry with the given name.
func (d *Document) Lookup(name string) (Entry, bool) {
	for _, e := range d.Components {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Load reads the document at path from the OS file system.
func Load(path string) (*Document, error) {
	return LoadFrom(DefaultFS(), path)
}

// LoadFrom reads the document at path from fsys.
func LoadFrom(fsys FileSystem, path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading layout file %s: %w", path, err)
	}

	return decode(path, format, data)
}

// Save writes doc to path in the format implied by its extension.
func Save(fsys FileSystem, path string, doc *Document) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := doc.Validate(); err != nil {
		return err
	}

	data, err := Encode(format, doc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := fsys.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing layout file %s: %w", path, err)
	}
	return nil
}

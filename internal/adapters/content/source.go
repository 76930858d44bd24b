// Package content reads and writes page declarations in YAML.
package content

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"relato/internal/adapters/sqlite"
	"relato/internal/domain"
	"relato/internal/ports"
)

//go:embed page.yaml
var embeddedPage []byte

// Source loads a page from a YAML file, or the embedded page when path is empty
type Source struct {
	path string
}

var _ ports.ContentSource = (*Source)(nil)

// NewSource creates a source reading path
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Embedded returns the source of the built-in page
func Embedded() *Source {
	return &Source{}
}

// LoadPage reads and validates the declaration
func (s *Source) LoadPage(ctx context.Context) (*domain.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.path == "" {
		return Decode(bytes.NewReader(embeddedPage))
	}

	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("content file %s: %w", s.path, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("opening content file: %w", err)
	}
	defer f.Close()

	page, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return page, nil
}

// Decode parses a YAML declaration. Unknown keys are rejected.
func Decode(r io.Reader) (*domain.Page, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var page domain.Page
	if err := dec.Decode(&page); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty declaration: %w", domain.ErrInvalidPage)
		}
		return nil, fmt.Errorf("parsing declaration: %w", errors.Join(domain.ErrInvalidPage, err))
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return &page, nil
}

// Encode writes page as YAML
func Encode(w io.Writer, page *domain.Page) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(page); err != nil {
		return fmt.Errorf("encoding declaration: %w", err)
	}
	return enc.Close()
}

// Resolve picks the page source. A configured database takes precedence over
// the YAML file; the returned close func releases it.
func Resolve(file, db string) (ports.ContentSource, func() error, error) {
	if db == "" {
		return NewSource(file), func() error { return nil }, nil
	}
	idx := sqlite.NewIndex()
	if err := idx.Open(db); err != nil {
		return nil, nil, fmt.Errorf("opening content index: %w", err)
	}
	return idx, idx.Close, nil
}

package ports

import (
	"context"

	"relato/internal/domain"
)

// ContentSource loads the page declaration that drives a session
type ContentSource interface {
	LoadPage(ctx context.Context) (*domain.Page, error)
}

// ContentIndex stores page declarations for lookup by other tools
type ContentIndex interface {
	ContentSource

	// Lifecycle
	Open(path string) error
	Close() error

	// Replace the stored page atomically
	Import(ctx context.Context, page *domain.Page) error
}

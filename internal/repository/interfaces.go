package repository

import (
	"context"

	"designlab/internal/cart"
	"designlab/internal/document"
	"designlab/internal/observer"
)

// DocumentRepository persists rendered documents by name
type DocumentRepository interface {
	document.Persistence

	// Load returns the last saved content for name
	Load(ctx context.Context, name string) (string, error)
}

// CartRepository persists cart snapshots
type CartRepository interface {
	cart.Store

	// Get returns the last saved snapshot of a cart
	Get(ctx context.Context, id string) (*cart.Snapshot, error)
}

// Repositories aggregates the stores chosen at startup. Documents and Carts
// may be file backed, so they are typed by their write side only.
type Repositories struct {
	Notices   observer.NoticeStore
	Documents document.Persistence
	Carts     cart.Store
}

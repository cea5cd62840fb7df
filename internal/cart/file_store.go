package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Snapshot is the serialized form of a saved cart
type Snapshot struct {
	ID       string    `json:"id"`
	Products []Product `json:"products"`
	Total    float64   `json:"total"`
	SavedAt  time.Time `json:"saved_at"`
}

// TakeSnapshot captures the cart contents at now
func TakeSnapshot(c *Cart, now time.Time) Snapshot {
	products := c.Products()
	if products == nil {
		products = []Product{}
	}
	return Snapshot{
		ID:       c.ID(),
		Products: products,
		Total:    c.Total(),
		SavedAt:  now.UTC(),
	}
}

// FileStore writes the latest cart as JSON to one path
type FileStore struct {
	Path string
	now  func() time.Time
}

// NewFileStore creates a file-backed store
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path, now: time.Now}
}

func (s *FileStore) Save(ctx context.Context, c *Cart) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(TakeSnapshot(c, s.now()), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}

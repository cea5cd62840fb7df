package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage writes every document to one fixed path, overwriting it
type FileStorage struct {
	Path string
}

// NewFileStorage creates a file storage targeting path
func NewFileStorage(path string) *FileStorage {
	if path == "" {
		path = DefaultFileName
	}
	return &FileStorage{Path: path}
}

// Save writes content to the configured path; the document name is not used
func (s *FileStorage) Save(ctx context.Context, name, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(s.Path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("unable to open %s for writing: %w", s.Path, err)
	}
	return nil
}

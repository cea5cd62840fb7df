package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"designlab/pkg/database"
	apperrors "designlab/pkg/errors"
	"designlab/pkg/redis"

	"github.com/jackc/pgx/v5"
)

// documentRepository stores documents in PostgreSQL
type documentRepository struct {
	db  database.Querier
	now func() time.Time
}

// NewDocumentRepository creates a PostgreSQL document repository
func NewDocumentRepository(db database.Querier) DocumentRepository {
	return &documentRepository{
		db:  db,
		now: time.Now,
	}
}

// Save upserts the document content by name
func (r *documentRepository) Save(ctx context.Context, name, content string) error {
	query := `
		INSERT INTO documents (name, content, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, name, content, r.now().UTC()); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Load retrieves the document content by name
func (r *documentRepository) Load(ctx context.Context, name string) (string, error) {
	query := `SELECT content FROM documents WHERE name = $1`

	var content string
	err := r.db.QueryRow(ctx, query, name).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFoundError("Document not found")
		}
		return "", fmt.Errorf("failed to load document: %w", err)
	}
	return content, nil
}

// redisDocumentRepository stores documents as plain Redis strings
type redisDocumentRepository struct {
	client *redis.Client
}

// NewRedisDocumentRepository creates a Redis document repository
func NewRedisDocumentRepository(client *redis.Client) DocumentRepository {
	return &redisDocumentRepository{client: client}
}

func (r *redisDocumentRepository) Save(ctx context.Context, name, content string) error {
	if err := r.client.Set(ctx, r.client.KeyBuilder.KeyDocument(name), content, 0); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

func (r *redisDocumentRepository) Load(ctx context.Context, name string) (string, error) {
	content, err := r.client.Get(ctx, r.client.KeyBuilder.KeyDocument(name))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperrors.NewNotFoundError("Document not found")
		}
		return "", fmt.Errorf("failed to load document: %w", err)
	}
	return content, nil
}

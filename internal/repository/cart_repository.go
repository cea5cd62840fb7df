package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"designlab/internal/cart"
	"designlab/pkg/database"
	apperrors "designlab/pkg/errors"
	"designlab/pkg/redis"

	"github.com/jackc/pgx/v5"
)

// cartRepository stores cart snapshots in PostgreSQL as JSONB
type cartRepository struct {
	db  database.Querier
	now func() time.Time
}

// NewCartRepository creates a PostgreSQL cart repository
func NewCartRepository(db database.Querier) CartRepository {
	return &cartRepository{
		db:  db,
		now: time.Now,
	}
}

// Save writes the current cart contents, replacing any earlier snapshot
func (r *cartRepository) Save(ctx context.Context, c *cart.Cart) error {
	snapshot := cart.TakeSnapshot(c, r.now())
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	query := `
		INSERT INTO cart_snapshots (id, snapshot, total, saved_at)
		VALUES ($1, $2::jsonb, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			snapshot = EXCLUDED.snapshot,
			total = EXCLUDED.total,
			saved_at = EXCLUDED.saved_at
	`

	if _, err := r.db.Exec(ctx, query, snapshot.ID, string(data), snapshot.Total, snapshot.SavedAt); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Get retrieves a cart snapshot by id
func (r *cartRepository) Get(ctx context.Context, id string) (*cart.Snapshot, error) {
	query := `SELECT snapshot FROM cart_snapshots WHERE id = $1`

	var data []byte
	if err := r.db.QueryRow(ctx, query, id).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("Cart not found")
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var snapshot cart.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &snapshot, nil
}

// redisCartRepository stores cart snapshots as JSON strings with a TTL
type redisCartRepository struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisCartRepository creates a Redis cart repository
func NewRedisCartRepository(client *redis.Client) CartRepository {
	return &redisCartRepository{
		client: client,
		now:    time.Now,
	}
}

func (r *redisCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	data, err := json.Marshal(cart.TakeSnapshot(c, r.now()))
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, r.client.KeyBuilder.KeyCart(c.ID()), data, redis.TTLCart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (r *redisCartRepository) Get(ctx context.Context, id string) (*cart.Snapshot, error) {
	data, err := r.client.Get(ctx, r.client.KeyBuilder.KeyCart(id))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.NewNotFoundError("Cart not found")
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var snapshot cart.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &snapshot, nil
}

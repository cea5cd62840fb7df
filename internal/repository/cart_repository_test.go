package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"designlab/internal/cart"
	apperrors "designlab/pkg/errors"
	"designlab/pkg/redis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCart() *cart.Cart {
	c := cart.New("cart-1")
	c.AddProduct(cart.Product{Name: "Laptop", Price: 50000})
	c.AddProduct(cart.Product{Name: "Mouse", Price: 2000})
	return c
}

func TestCartRepository_SaveAndGet(t *testing.T) {
	db := newFakeQuerier()
	repo := &cartRepository{db: db, now: func() time.Time { return fixedNow }}
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleCart()))
	require.Len(t, db.execs, 1)

	args := db.execs[0].args
	assert.Equal(t, "cart-1", args[0])
	assert.Equal(t, 52000.0, args[2])
	assert.Equal(t, fixedNow, args[3])

	var stored cart.Snapshot
	require.NoError(t, json.Unmarshal([]byte(args[1].(string)), &stored))
	assert.Len(t, stored.Products, 2)

	db.rows["cart-1"] = args[1].(string)
	snapshot, err := repo.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 52000.0, snapshot.Total)
	assert.Equal(t, "Mouse", snapshot.Products[1].Name)

	_, err = repo.Get(ctx, "cart-2")
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.AsAppError(err).Type)
}

func TestRedisCartRepository_SaveAndGet(t *testing.T) {
	mr, client := setupTestRedis(t)
	repo := &redisCartRepository{client: client, now: func() time.Time { return fixedNow }}
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleCart()))

	key := client.KeyBuilder.KeyCart("cart-1")
	assert.Equal(t, redis.TTLCart, mr.TTL(key))

	snapshot, err := repo.Get(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", snapshot.ID)
	assert.Equal(t, 52000.0, snapshot.Total)
	assert.True(t, snapshot.SavedAt.Equal(fixedNow))

	_, err = repo.Get(ctx, "missing")
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.AsAppError(err).Type)
}

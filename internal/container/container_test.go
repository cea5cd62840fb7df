package container

import (
	"context"
	"path/filepath"
	"testing"

	"designlab/internal/cart"
	"designlab/internal/config"
	"designlab/internal/document"
	"designlab/internal/observer"
	"designlab/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	mr := miniredis.RunT(t)
	dir := t.TempDir()

	tests := []struct {
		name         string
		config       *config.Config
		expectRedis  bool
		expectFileDB bool
		expectSync   bool
	}{
		{
			name: "Container with Redis backends",
			config: &config.Config{
				Environment:     "test",
				RedisURL:        "redis://" + mr.Addr(),
				JWTSecret:       "secret",
				DocumentBackend: config.BackendRedis,
				CartBackend:     config.BackendRedis,
				YouTubeAPIKey:   "test-api-key",
			},
			expectRedis: true,
			expectSync:  true,
		},
		{
			name: "Container without Redis configured",
			config: &config.Config{
				Environment:     "test",
				JWTSecret:       "secret",
				DocumentBackend: config.BackendFile,
				CartBackend:     config.BackendFile,
			},
			expectFileDB: true,
		},
		{
			name: "Container with invalid Redis URL falls back to files",
			config: &config.Config{
				Environment:     "test",
				RedisURL:        "invalid://redis-url",
				JWTSecret:       "secret",
				DocumentBackend: config.BackendRedis,
				CartBackend:     config.BackendRedis,
			},
			expectFileDB: true,
		},
		{
			name: "Postgres requested without a database",
			config: &config.Config{
				Environment:        "test",
				JWTSecret:          "secret",
				DocumentBackend:    config.BackendPostgres,
				CartBackend:        config.BackendPostgres,
				YouTubeAccessToken: "ya29.token",
			},
			expectFileDB: true,
			expectSync:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.config.DocumentPath = filepath.Join(dir, "document.txt")
			tt.config.CartPath = filepath.Join(dir, "cart.json")

			c, err := New(context.Background(), tt.config, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = c.Close() })

			assert.Equal(t, tt.expectRedis, c.HasRedis())
			assert.False(t, c.HasDatabase())
			assert.Equal(t, tt.config, c.GetConfig())
			assert.NotNil(t, c.GetLogger())
			assert.Equal(t, tt.expectSync, c.Services.YouTube != nil)

			if tt.expectRedis {
				_, isMemory := c.Repositories.Notices.(*observer.MemoryNoticeStore)
				assert.False(t, isMemory)
			} else {
				assert.IsType(t, &observer.MemoryNoticeStore{}, c.Repositories.Notices)
			}

			if tt.expectFileDB {
				assert.IsType(t, &document.FileStorage{}, c.Repositories.Documents)
				assert.IsType(t, &cart.FileStore{}, c.Repositories.Carts)
			} else {
				assert.NotNil(t, c.GetRedisClient())
			}

			assert.NotNil(t, c.Services.Channels)
			assert.NotNil(t, c.Services.Documents)
			assert.NotNil(t, c.Services.Carts)
		})
	}
}

func TestNew_ServicesAreWired(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := &config.Config{
		Environment:     "test",
		RedisURL:        "redis://" + mr.Addr(),
		JWTSecret:       "secret",
		PublicBaseURL:   "http://localhost:8080",
		DocumentBackend: config.BackendRedis,
		CartBackend:     config.BackendRedis,
	}

	c, err := New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	ch, err := c.Services.Channels.CreateChannel(ctx, "Temp")
	require.NoError(t, err)

	claims, err := c.Services.Auth.ValidateOwnerToken(ctx, ch.OwnerToken)
	require.NoError(t, err)
	assert.Equal(t, ch.ID, claims.ChannelID)

	sub, err := c.Services.Channels.CreateSubscriber(ctx, ch.ID, "Varun")
	require.NoError(t, err)
	_, err = c.Services.Channels.UploadVideo(ctx, ch.ID, "Container Video")
	require.NoError(t, err)

	assert.True(t, mr.Exists("test:inbox:subscriber:"+sub.ID))
}

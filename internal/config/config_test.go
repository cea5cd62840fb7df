package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "DOCUMENT_PATH", "DOCUMENT_BACKEND", "CART_BACKEND", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "PUBLIC_BASE_URL", "ENVIRONMENT", "JWT_SECRET", "TRUST_PROXY"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "document.txt", cfg.DocumentPath)
	assert.Equal(t, BackendFile, cfg.DocumentBackend)
	assert.Equal(t, BackendFile, cfg.CartBackend)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "http://localhost:8080", cfg.PublicBaseURL)
	assert.False(t, cfg.TrustProxy)
	assert.True(t, cfg.IsDevelopment())
	assert.Len(t, cfg.JWTSecret, 64, "development gets a random per-process secret")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("DOCUMENT_BACKEND", "Redis")
	t.Setenv("CART_BACKEND", "sql")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("PUBLIC_BASE_URL", "https://lab.example/")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, BackendRedis, cfg.DocumentBackend)
	assert.Equal(t, BackendPostgres, cfg.CartBackend)
	assert.Equal(t, 0.5, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, "https://lab.example", cfg.PublicBaseURL)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.TrustProxy)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}

func TestLoad_JWTSecret(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		secret      string
		wantErr     bool
	}{
		{name: "production requires a secret", environment: "production", wantErr: true},
		{name: "staging requires a secret", environment: "staging", wantErr: true},
		{name: "configured secret is used", environment: "production", secret: "s3cret"},
		{name: "development generates one", environment: "development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", tt.environment)
			t.Setenv("JWT_SECRET", tt.secret)

			cfg, err := Load()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "JWT_SECRET")
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cfg.JWTSecret)
			if tt.secret != "" {
				assert.Equal(t, tt.secret, cfg.JWTSecret)
			}
		})
	}
}

func TestLoad_DevelopmentSecretsDiffer(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")

	first, err := Load()
	require.NoError(t, err)
	second, err := Load()
	require.NoError(t, err)

	assert.NotEqual(t, first.JWTSecret, second.JWTSecret)
}

func TestParseOrigins_Empty(t *testing.T) {
	assert.Empty(t, parseOrigins(""))
}

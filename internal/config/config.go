package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends for documents and carts
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the application
type Config struct {
	Port               string
	AllowedOrigins     []string
	LogLevel           string
	Environment        string
	DatabaseURL        string
	RedisURL           string
	JWTSecret          string
	YouTubeAPIKey      string
	YouTubeAccessToken string // Takes precedence over the API key when set
	PublicBaseURL      string
	DocumentPath       string
	DocumentBackend    string
	CartPath           string
	CartBackend        string
	RateLimitRPS       float64
	RateLimitBurst     int
	TrustProxy         bool // Honour X-Forwarded-For / X-Real-IP from a fronting proxy
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		YouTubeAPIKey:      getEnv("YOUTUBE_API_KEY", ""),
		YouTubeAccessToken: getEnv("YOUTUBE_ACCESS_TOKEN", ""),
		PublicBaseURL:      strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
		DocumentPath:       getEnv("DOCUMENT_PATH", "document.txt"),
		DocumentBackend:    parseBackend(getEnv("DOCUMENT_BACKEND", BackendFile)),
		CartPath:           getEnv("CART_PATH", "cart.json"),
		CartBackend:        parseBackend(getEnv("CART_BACKEND", BackendFile)),
		RateLimitRPS:       getFloatEnv("RATE_LIMIT_RPS", 5),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 10),
		TrustProxy:         getBoolEnv("TRUST_PROXY", false),
	}

	if cfg.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, fmt.Errorf("JWT_SECRET must be set when ENVIRONMENT is %q", cfg.Environment)
		}
		// Owner tokens from a random secret only live as long as the process
		secret, err := randomSecret()
		if err != nil {
			return nil, fmt.Errorf("generate development JWT secret: %w", err)
		}
		cfg.JWTSecret = secret
	}

	return cfg, nil
}

// IsDevelopment reports whether the service runs in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func randomSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// parseBackend normalizes a backend name, falling back to file storage
func parseBackend(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BackendRedis:
		return BackendRedis
	case BackendPostgres, "postgresql", "sql":
		return BackendPostgres
	default:
		return BackendFile
	}
}

func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getFloatEnv(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

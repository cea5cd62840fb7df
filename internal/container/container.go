package container

import (
	"context"

	"designlab/internal/cart"
	"designlab/internal/config"
	"designlab/internal/document"
	"designlab/internal/observer"
	"designlab/internal/repository"
	"designlab/internal/service"
	"designlab/internal/service/auth"
	"designlab/internal/service/youtube"
	"designlab/pkg/database"
	"designlab/pkg/logger"
	"designlab/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *logger.Logger
	RedisClient  *redis.Client
	Database     *database.PostgresDB
	Repositories *repository.Repositories
	Services     *service.Services
}

// New creates a new dependency injection container. Redis and PostgreSQL are
// optional; backends that need a missing store fall back to the file backend.
func New(ctx context.Context, cfg *config.Config, logger *logger.Logger) (*Container, error) {
	// Initialize Redis client if Redis URL is configured
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		client, err := redis.NewClient(cfg.RedisURL, cfg.Environment, logger.Logger)
		if err != nil {
			logger.WithError(err).Warn("Failed to initialize Redis client, proceeding without Redis")
		} else {
			redisClient = client
			logger.Info("Redis client initialized successfully")
		}
	} else {
		logger.Info("Redis URL not configured, proceeding without Redis")
	}

	// Initialize PostgreSQL if configured
	var db *database.PostgresDB
	if cfg.DatabaseURL != "" {
		pg, err := database.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Warn("Failed to connect to PostgreSQL, proceeding without it")
		} else {
			db = pg
			logger.Info("PostgreSQL connection established")
		}
	}

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		RedisClient: redisClient,
		Database:    db,
	}
	c.Repositories = c.buildRepositories()

	// Initialize services
	authService := auth.NewService(cfg.JWTSecret, 0, logger)

	var youtubeService service.YouTubeService
	if cfg.YouTubeAPIKey != "" || cfg.YouTubeAccessToken != "" {
		youtubeService = youtube.NewService(cfg.YouTubeAPIKey, cfg.YouTubeAccessToken, logger)
	} else {
		logger.Info("YouTube credentials not configured, channel sync disabled")
	}

	c.Services = &service.Services{
		Auth:      authService,
		YouTube:   youtubeService,
		Channels:  service.NewChannelService(c.Repositories.Notices, authService, youtubeService, cfg.PublicBaseURL, logger),
		Documents: service.NewDocumentService(c.Repositories.Documents, logger),
		Carts:     service.NewCartService(c.Repositories.Carts, logger),
	}

	return c, nil
}

func (c *Container) buildRepositories() *repository.Repositories {
	repos := &repository.Repositories{}

	if c.RedisClient != nil {
		repos.Notices = repository.NewRedisNoticeStore(c.RedisClient)
	} else {
		repos.Notices = observer.NewMemoryNoticeStore(redis.InboxLimit)
	}

	switch {
	case c.Config.DocumentBackend == config.BackendPostgres && c.Database != nil:
		repos.Documents = repository.NewDocumentRepository(c.Database.Pool)
	case c.Config.DocumentBackend == config.BackendRedis && c.RedisClient != nil:
		repos.Documents = repository.NewRedisDocumentRepository(c.RedisClient)
	default:
		c.warnFallback("document", c.Config.DocumentBackend)
		repos.Documents = document.NewFileStorage(c.Config.DocumentPath)
	}

	switch {
	case c.Config.CartBackend == config.BackendPostgres && c.Database != nil:
		repos.Carts = repository.NewCartRepository(c.Database.Pool)
	case c.Config.CartBackend == config.BackendRedis && c.RedisClient != nil:
		repos.Carts = repository.NewRedisCartRepository(c.RedisClient)
	default:
		c.warnFallback("cart", c.Config.CartBackend)
		repos.Carts = cart.NewFileStore(c.Config.CartPath)
	}

	return repos
}

func (c *Container) warnFallback(kind, backend string) {
	if backend == "" || backend == config.BackendFile {
		return
	}
	c.Logger.WithFields(map[string]interface{}{
		"kind":    kind,
		"backend": backend,
	}).Warn("Storage backend unavailable, falling back to file")
}

// Close releases Redis and PostgreSQL connections
func (c *Container) Close() error {
	if c.Database != nil {
		c.Database.Close()
	}
	if c.RedisClient != nil {
		return c.RedisClient.Close()
	}
	return nil
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetRedisClient returns the Redis client (may be nil if not configured)
func (c *Container) GetRedisClient() *redis.Client {
	return c.RedisClient
}

// HasRedis returns true if Redis client is available
func (c *Container) HasRedis() bool {
	return c.RedisClient != nil
}

// HasDatabase returns true if PostgreSQL is available
func (c *Container) HasDatabase() bool {
	return c.Database != nil
}

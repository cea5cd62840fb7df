package handler

import (
	"net/http"
	"time"

	"designlab/internal/container"
	"designlab/internal/middleware"
	"designlab/pkg/errors"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter configures and returns the HTTP router
func NewRouter(c *container.Container) *chi.Mux {
	cfg := c.GetConfig()
	log := c.GetLogger()

	r := chi.NewRouter()

	// Setup middlewares
	r.Use(middleware.CORS(middleware.CORSConfigFor(cfg.AllowedOrigins), log))
	r.Use(middleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Create handlers
	healthHandler := NewHealthHandler(c)
	channelHandler := NewChannelHandler(c)
	documentHandler := NewDocumentHandler(c)
	cartHandler := NewCartHandler(c)

	ownerOnly := middleware.OwnerAuth(c.Services.Auth, "channelID", log)

	// Health check (no rate limit)
	r.Get("/health", healthHandler.Check)

	r.Route("/api", func(r chi.Router) {
		if cfg.RateLimitRPS > 0 {
			r.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, log).Middleware)
		}

		r.Route("/channels", func(r chi.Router) {
			r.Post("/", channelHandler.CreateChannel)

			r.Route("/{channelID}", func(r chi.Router) {
				r.Get("/", channelHandler.GetChannel)
				r.Get("/feed.rss", channelHandler.Feed)

				r.Post("/subscribers", channelHandler.CreateSubscriber)
				r.Put("/subscribers/{subscriberID}", channelHandler.Subscribe)
				r.Delete("/subscribers/{subscriberID}", channelHandler.Unsubscribe)

				// Owner token required
				r.Group(func(r chi.Router) {
					r.Use(ownerOnly)

					r.Post("/videos", channelHandler.UploadVideo)
					r.Post("/sync", channelHandler.Sync)
				})
			})
		})

		r.Get("/subscribers/{subscriberID}/notifications", channelHandler.Notifications)

		r.Route("/documents", func(r chi.Router) {
			r.Post("/legacy", documentHandler.RenderLegacy)
			r.Post("/{name}", documentHandler.Render)
			r.Get("/{name}", documentHandler.Get)
		})

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", cartHandler.Checkout)
			r.Get("/{cartID}", cartHandler.Get)
		})
	})

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errors.NewNotFoundError("Endpoint not found"), log)
	})

	log.Info("Router configured successfully")
	return r
}

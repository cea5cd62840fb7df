package handler

import (
	"context"
	"net/http"
	"time"

	"designlab/internal/container"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	container *container.Container
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(container *container.Container) *HealthHandler {
	return &HealthHandler{
		container: container,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Version      string            `json:"version"`
	Service      string            `json:"service"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()
	logger.Debug("Health check requested")

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:       "healthy",
		Timestamp:    time.Now().UTC(),
		Version:      "1.0.0",
		Service:      "designlab",
		Dependencies: map[string]string{},
	}

	if client := h.container.GetRedisClient(); client != nil {
		response.Dependencies["redis"] = dependencyStatus(client.Health(ctx))
	}
	if h.container.HasDatabase() {
		response.Dependencies["postgres"] = dependencyStatus(h.container.Database.Health(ctx))
	}

	status := http.StatusOK
	for _, s := range response.Dependencies {
		if s != "up" {
			response.Status = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	writeJSON(w, status, response, "", logger)
}

func dependencyStatus(err error) string {
	if err != nil {
		return "down"
	}
	return "up"
}

package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"designlab/internal/domain"
	"designlab/internal/service"
	"designlab/pkg/errors"
	"designlab/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ContextKey represents keys used in request context
type ContextKey string

const (
	// OwnerContextKey is the key for owner claims in context
	OwnerContextKey ContextKey = "owner"
	// RequestIDContextKey is the key for request ID in context
	RequestIDContextKey ContextKey = "request_id"
)

// OwnerAuth requires a Bearer owner token for the channel named by the
// channelParam URL parameter
func OwnerAuth(authService service.AuthService, channelParam string, logger *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				WriteError(w, r, errors.NewAuthenticationError("Authorization header is required"), logger)
				return
			}

			// Check if header starts with "Bearer "
			if !strings.HasPrefix(authHeader, "Bearer ") {
				WriteError(w, r, errors.NewAuthenticationError("Invalid authorization header format"), logger)
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				WriteError(w, r, errors.NewAuthenticationError("Token is required"), logger)
				return
			}

			ctx := r.Context()
			claims, err := authService.ValidateOwnerToken(ctx, token)
			if err != nil {
				WriteError(w, r, errors.AsAppError(err), logger)
				return
			}

			if channelID := chi.URLParam(r, channelParam); channelID != claims.ChannelID {
				WriteError(w, r, errors.NewAuthorizationError("Token does not own this channel"), logger)
				return
			}

			// Add owner to context
			ctx = context.WithValue(ctx, OwnerContextKey, claims)
			logger.WithField("channel_id", claims.ChannelID).Debug("Channel owner authenticated")

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerFromContext returns the authenticated owner, if any
func OwnerFromContext(ctx context.Context) (*domain.OwnerClaims, bool) {
	claims, ok := ctx.Value(OwnerContextKey).(*domain.OwnerClaims)
	return claims, ok
}

// RequestID adds a unique request ID to each request, reusing an incoming
// X-Request-ID header when present
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), RequestIDContextKey, requestID)
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the request ID stored by RequestID
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDContextKey).(string)
	return id
}

// WriteError writes an AppError as the standard JSON error body
func WriteError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError, logger *logger.Logger) {
	log := logger.WithError(appErr)
	if appErr.StatusCode >= http.StatusInternalServerError {
		log.Error("Request error")
	} else {
		log.Debug("Request rejected")
	}

	response := &errors.ErrorResponse{Success: false}
	response.Error.Type = appErr.Type
	response.Error.Message = appErr.Message
	response.Error.Details = appErr.Details
	response.Error.RequestID = GetRequestID(r.Context())
	response.Error.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.StatusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.WithError(err).Error("Failed to encode error response")
	}
}

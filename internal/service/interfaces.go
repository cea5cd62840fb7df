package service

import (
	"context"

	"designlab/internal/domain"
)

// AuthService defines the interface for channel owner tokens
type AuthService interface {
	// IssueOwnerToken signs a token granting upload rights on a channel
	IssueOwnerToken(ctx context.Context, channelID string) (string, error)

	// ValidateOwnerToken validates a token and returns its claims
	ValidateOwnerToken(ctx context.Context, token string) (*domain.OwnerClaims, error)
}

// YouTubeService defines the interface for YouTube operations
type YouTubeService interface {
	// LatestUpload returns the most recent upload of a YouTube channel
	LatestUpload(ctx context.Context, youtubeChannelID string) (*domain.YouTubeVideo, error)
}

// Services aggregates all services
type Services struct {
	Auth      AuthService
	YouTube   YouTubeService
	Channels  *ChannelService
	Documents *DocumentService
	Carts     *CartService
}

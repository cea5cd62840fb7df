package youtube

import (
	"context"
	"time"

	"designlab/internal/domain"
	"designlab/internal/service"
	"designlab/pkg/errors"
	"designlab/pkg/logger"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Service implements the YouTubeService interface
type Service struct {
	apiKey      string
	accessToken string
	options     []option.ClientOption
	logger      *logger.Logger
}

// NewService creates a new YouTube service. An access token takes precedence
// over the API key; extra options are appended to every client.
func NewService(apiKey, accessToken string, logger *logger.Logger, opts ...option.ClientOption) service.YouTubeService {
	return &Service{
		apiKey:      apiKey,
		accessToken: accessToken,
		options:     opts,
		logger:      logger,
	}
}

func (s *Service) clientOptions() []option.ClientOption {
	var opts []option.ClientOption
	if s.accessToken != "" {
		token := &oauth2.Token{
			AccessToken: s.accessToken,
			TokenType:   "Bearer",
		}
		opts = append(opts, option.WithTokenSource(oauth2.StaticTokenSource(token)))
	} else {
		opts = append(opts, option.WithAPIKey(s.apiKey))
	}
	return append(opts, s.options...)
}

// LatestUpload returns the most recent video published by a YouTube channel
func (s *Service) LatestUpload(ctx context.Context, youtubeChannelID string) (*domain.YouTubeVideo, error) {
	if youtubeChannelID == "" {
		return nil, errors.NewValidationError("YouTube channel ID is required", nil)
	}

	log := s.logger.WithField("youtube_channel_id", youtubeChannelID)
	log.Debug("Fetching latest YouTube upload")

	youtubeService, err := youtube.NewService(ctx, s.clientOptions()...)
	if err != nil {
		log.WithError(err).Error("Failed to create YouTube service")
		return nil, errors.NewInternalError("Failed to initialize YouTube service", err)
	}

	searchCall := youtubeService.Search.List([]string{"id", "snippet"}).
		ChannelId(youtubeChannelID).
		Type("video").
		Order("date").
		MaxResults(1).
		Context(ctx)

	searchResponse, err := searchCall.Do()
	if err != nil {
		log.WithError(err).Error("Failed to search channel uploads")
		return nil, errors.NewExternalError("Failed to get latest YouTube upload", err)
	}

	if len(searchResponse.Items) == 0 || searchResponse.Items[0].Snippet == nil {
		log.Info("Channel has no uploads")
		return nil, errors.NewNotFoundError("YouTube channel has no uploads")
	}

	item := searchResponse.Items[0]
	video := &domain.YouTubeVideo{
		ChannelID: item.Snippet.ChannelId,
		Title:     item.Snippet.Title,
	}
	if item.Id != nil {
		video.ID = item.Id.VideoId
	}
	if published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
		video.PublishedAt = published
	}

	log.WithFields(map[string]interface{}{
		"video_id":    video.ID,
		"video_title": video.Title,
	}).Debug("Retrieved latest YouTube upload")

	return video, nil
}

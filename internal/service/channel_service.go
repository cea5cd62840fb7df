package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"designlab/internal/domain"
	"designlab/internal/observer"
	"designlab/pkg/errors"
	"designlab/pkg/logger"

	"github.com/eduncan911/podcast"
	"github.com/google/uuid"
)

type channelEntry struct {
	id        string
	channel   *observer.Channel
	createdAt time.Time
}

// ChannelService owns every channel and subscriber created over the API
type ChannelService struct {
	mu          sync.RWMutex
	channels    map[string]*channelEntry
	subscribers map[string]*observer.InboxSubscriber

	notices observer.NoticeStore
	auth    AuthService
	youtube YouTubeService
	baseURL string
	now     func() time.Time
	logger  *logger.Logger
}

// NewChannelService creates a channel registry. youtube may be nil when the
// YouTube integration is not configured.
func NewChannelService(notices observer.NoticeStore, auth AuthService, youtube YouTubeService, baseURL string, logger *logger.Logger) *ChannelService {
	return &ChannelService{
		channels:    make(map[string]*channelEntry),
		subscribers: make(map[string]*observer.InboxSubscriber),
		notices:     notices,
		auth:        auth,
		youtube:     youtube,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		now:         time.Now,
		logger:      logger.Named("channels"),
	}
}

func (s *ChannelService) lookup(channelID string) (*channelEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.channels[channelID]
	if !ok {
		return nil, errors.NewNotFoundError("Channel not found")
	}
	return entry, nil
}

func (s *ChannelService) info(entry *channelEntry) *domain.ChannelInfo {
	return &domain.ChannelInfo{
		ID:          entry.id,
		Name:        entry.channel.Name(),
		LatestVideo: entry.channel.LatestVideo(),
		VideoData:   entry.channel.VideoData(),
		Subscribers: entry.channel.Subscribers(),
		Uploads:     len(entry.channel.History()),
		CreatedAt:   entry.createdAt,
	}
}

// CreateChannel registers a channel and returns its owner token
func (s *ChannelService) CreateChannel(ctx context.Context, name string) (*domain.CreateChannelResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("Channel name is required", nil)
	}

	id := uuid.NewString()
	token, err := s.auth.IssueOwnerToken(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := &channelEntry{
		id:        id,
		channel:   observer.NewChannel(name, observer.WithClock(s.now)),
		createdAt: s.now().UTC(),
	}

	s.mu.Lock()
	s.channels[id] = entry
	s.mu.Unlock()

	s.logger.WithFields(map[string]interface{}{
		"channel_id":   id,
		"channel_name": name,
	}).Info("Channel created")

	return &domain.CreateChannelResponse{
		ID:         id,
		Name:       name,
		OwnerToken: token,
	}, nil
}

// GetChannel returns the public view of a channel
func (s *ChannelService) GetChannel(ctx context.Context, channelID string) (*domain.ChannelInfo, error) {
	entry, err := s.lookup(channelID)
	if err != nil {
		return nil, err
	}
	return s.info(entry), nil
}

// CreateSubscriber creates a subscriber bound to the channel and subscribes it
func (s *ChannelService) CreateSubscriber(ctx context.Context, channelID, name string) (*domain.SubscriberInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewValidationError("Subscriber name is required", nil)
	}

	entry, err := s.lookup(channelID)
	if err != nil {
		return nil, err
	}

	sub := observer.NewInboxSubscriber(uuid.NewString(), name, channelID, entry.channel, s.notices)

	s.mu.Lock()
	s.subscribers[sub.ID()] = sub
	s.mu.Unlock()

	entry.channel.Subscribe(sub)

	s.logger.WithFields(map[string]interface{}{
		"channel_id":    channelID,
		"subscriber_id": sub.ID(),
	}).Info("Subscriber created")

	return &domain.SubscriberInfo{
		ID:         sub.ID(),
		Name:       name,
		ChannelID:  channelID,
		Subscribed: true,
	}, nil
}

func (s *ChannelService) subscriber(subscriberID string) (*observer.InboxSubscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.subscribers[subscriberID]
	if !ok {
		return nil, errors.NewNotFoundError("Subscriber not found")
	}
	return sub, nil
}

// Subscribe re-subscribes an existing subscriber; already subscribed is a no-op
func (s *ChannelService) Subscribe(ctx context.Context, channelID, subscriberID string) (*domain.SubscriberInfo, error) {
	entry, err := s.lookup(channelID)
	if err != nil {
		return nil, err
	}
	sub, err := s.subscriber(subscriberID)
	if err != nil {
		return nil, err
	}
	if sub.ChannelID() != channelID {
		return nil, errors.NewConflictError("Subscriber follows a different channel")
	}

	entry.channel.Subscribe(sub)

	return &domain.SubscriberInfo{
		ID:         sub.ID(),
		Name:       sub.Name(),
		ChannelID:  channelID,
		Subscribed: true,
	}, nil
}

// Unsubscribe removes a subscriber from the channel; absent is a no-op
func (s *ChannelService) Unsubscribe(ctx context.Context, channelID, subscriberID string) error {
	entry, err := s.lookup(channelID)
	if err != nil {
		return err
	}

	if entry.channel.UnsubscribeID(subscriberID) {
		s.logger.WithFields(map[string]interface{}{
			"channel_id":    channelID,
			"subscriber_id": subscriberID,
		}).Info("Subscriber removed")
	}
	return nil
}

// UploadVideo publishes a new video and notifies every current subscriber.
// Delivery failures are reported in the result rather than failing the upload.
func (s *ChannelService) UploadVideo(ctx context.Context, channelID, title string) (*domain.UploadResult, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.NewValidationError("Video title is required", nil)
	}

	entry, err := s.lookup(channelID)
	if err != nil {
		return nil, err
	}

	notified := entry.channel.Subscribers()
	result := &domain.UploadResult{
		ChannelID: channelID,
		Title:     title,
		Notified:  notified,
	}

	// The title is committed before delivery starts, so a cancelled context
	// still yields a successful upload with the remaining deliveries reported
	if err := entry.channel.UploadVideo(ctx, title); err != nil {
		result.DeliveryErrors = deliveryErrors(err)
		s.logger.WithError(err).WithField("channel_id", channelID).Warn("Some notices were not delivered")
	}
	result.VideoData = entry.channel.VideoData()

	s.logger.WithFields(map[string]interface{}{
		"channel_id":  channelID,
		"video_title": title,
		"notified":    len(notified),
	}).Info("Video uploaded")

	return result, nil
}

func deliveryErrors(err error) []string {
	var joined interface{ Unwrap() []error }
	if stderrors.As(err, &joined) {
		out := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// SyncFromYouTube uploads the latest YouTube video of youtubeChannelID when it
// differs from the channel's current latest video
func (s *ChannelService) SyncFromYouTube(ctx context.Context, channelID, youtubeChannelID string) (*domain.SyncResult, error) {
	if s.youtube == nil {
		return nil, errors.NewExternalError("YouTube integration is not configured", nil)
	}

	entry, err := s.lookup(channelID)
	if err != nil {
		return nil, err
	}

	video, err := s.youtube.LatestUpload(ctx, youtubeChannelID)
	if err != nil {
		return nil, err
	}

	result := &domain.SyncResult{Video: *video}
	if video.Title == entry.channel.LatestVideo() {
		return result, nil
	}

	upload, err := s.UploadVideo(ctx, channelID, video.Title)
	if err != nil {
		return nil, err
	}
	result.Uploaded = true
	result.Upload = upload
	return result, nil
}

// Feed renders the channel's upload history as RSS, newest first
func (s *ChannelService) Feed(ctx context.Context, channelID string) (string, error) {
	entry, err := s.lookup(channelID)
	if err != nil {
		return "", err
	}

	link := fmt.Sprintf("%s/api/channels/%s", s.baseURL, channelID)
	created := entry.createdAt
	updated := s.now().UTC()
	p := podcast.New(
		entry.channel.Name(),
		link,
		fmt.Sprintf("Uploads of %s", entry.channel.Name()),
		&created, &updated,
	)

	history := entry.channel.History()
	for i := len(history) - 1; i >= 0; i-- {
		video := history[i]
		published := video.UploadedAt
		item := podcast.Item{
			Title:       video.Title,
			Description: observer.VideoDataPrefix + video.Title,
			Link:        fmt.Sprintf("%s/videos/%d", link, i+1),
			PubDate:     &published,
		}
		if _, err := p.AddItem(item); err != nil {
			return "", errors.NewInternalError("Failed to build feed", err)
		}
	}

	return p.String(), nil
}

// Notifications returns the notices delivered to a subscriber
func (s *ChannelService) Notifications(ctx context.Context, subscriberID string) (*domain.NotificationsResponse, error) {
	sub, err := s.subscriber(subscriberID)
	if err != nil {
		return nil, err
	}

	notices, err := sub.Notices(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to read notifications", err)
	}
	if notices == nil {
		notices = []string{}
	}

	return &domain.NotificationsResponse{
		SubscriberID: subscriberID,
		Notices:      notices,
	}, nil
}

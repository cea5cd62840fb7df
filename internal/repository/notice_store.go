package repository

import (
	"context"
	"fmt"

	"designlab/internal/observer"
	"designlab/pkg/redis"
)

// redisNoticeStore keeps subscriber inboxes in capped Redis lists
type redisNoticeStore struct {
	client *redis.Client
	limit  int64
}

// NewRedisNoticeStore creates a notice store backed by Redis
func NewRedisNoticeStore(client *redis.Client) observer.NoticeStore {
	return &redisNoticeStore{
		client: client,
		limit:  redis.InboxLimit,
	}
}

// Append adds a notice to the subscriber's inbox, dropping the oldest past the limit
func (s *redisNoticeStore) Append(ctx context.Context, subscriberID, notice string) error {
	key := s.client.KeyBuilder.KeySubscriberInbox(subscriberID)
	if err := s.client.AppendCapped(ctx, key, notice, s.limit, redis.TTLInbox); err != nil {
		return fmt.Errorf("failed to append notice: %w", err)
	}
	return nil
}

// List returns the inbox oldest first
func (s *redisNoticeStore) List(ctx context.Context, subscriberID string) ([]string, error) {
	key := s.client.KeyBuilder.KeySubscriberInbox(subscriberID)
	notices, err := s.client.Range(ctx, key, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list notices: %w", err)
	}
	return notices, nil
}

package observer

import (
	"context"
	"slices"
	"sync"
)

// NoticeStore keeps delivered notices per subscriber
type NoticeStore interface {
	Append(ctx context.Context, subscriberID, notice string) error
	List(ctx context.Context, subscriberID string) ([]string, error)
}

// InboxSubscriber stores each notice instead of printing it
type InboxSubscriber struct {
	id        string
	name      string
	channelID string
	channel   VideoSource
	store     NoticeStore
}

// NewInboxSubscriber creates a subscriber whose notices land in store
func NewInboxSubscriber(id, name, channelID string, channel VideoSource, store NoticeStore) *InboxSubscriber {
	return &InboxSubscriber{
		id:        id,
		name:      name,
		channelID: channelID,
		channel:   channel,
		store:     store,
	}
}

func (s *InboxSubscriber) ID() string { return s.id }
func (s *InboxSubscriber) Name() string { return s.name }
func (s *InboxSubscriber) ChannelID() string { return s.channelID }

// Update appends the channel's current video data to the inbox
func (s *InboxSubscriber) Update(ctx context.Context) error {
	return s.store.Append(ctx, s.id, Notice(s.name, s.channel))
}

// Notices returns everything delivered so far, oldest first
func (s *InboxSubscriber) Notices(ctx context.Context) ([]string, error) {
	return s.store.List(ctx, s.id)
}

// MemoryNoticeStore is a process-local NoticeStore
type MemoryNoticeStore struct {
	mu      sync.RWMutex
	limit   int
	notices map[string][]string
}

// NewMemoryNoticeStore keeps at most limit notices per subscriber (0 = unbounded)
func NewMemoryNoticeStore(limit int) *MemoryNoticeStore {
	return &MemoryNoticeStore{
		limit:   limit,
		notices: make(map[string][]string),
	}
}

func (m *MemoryNoticeStore) Append(ctx context.Context, subscriberID, notice string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := append(m.notices[subscriberID], notice)
	if m.limit > 0 && len(list) > m.limit {
		list = list[len(list)-m.limit:]
	}
	m.notices[subscriberID] = list
	return nil
}

func (m *MemoryNoticeStore) List(ctx context.Context, subscriberID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.notices[subscriberID]), nil
}

package observer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

// VideoDataPrefix precedes the latest title in VideoData
const VideoDataPrefix = "Checkout our new Video : "

// Video is one entry of a channel's upload history
type Video struct {
	Title      string    `json:"title"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Channel broadcasts uploads to its subscribers
type Channel struct {
	uploadMu    sync.Mutex // serializes set-and-notify so each pass sees its own title
	mu          sync.RWMutex
	name        string
	latestVideo string
	subscribers []Subscriber
	history     []Video
	now         func() time.Time
}

// Option configures a Channel
type Option func(*Channel)

// WithClock overrides the clock used to timestamp uploads
func WithClock(now func() time.Time) Option {
	return func(c *Channel) {
		c.now = now
	}
}

// NewChannel creates a channel with no subscribers and no uploads
func NewChannel(name string, opts ...Option) *Channel {
	c := &Channel{
		name: name,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var (
	_ Publisher   = (*Channel)(nil)
	_ VideoSource = (*Channel)(nil)
)

// Name returns the channel name
func (c *Channel) Name() string {
	return c.name
}

// Subscribe adds sub unless a subscriber with the same ID is already present
func (c *Channel) Subscribe(sub Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(sub.ID()) >= 0 {
		return
	}
	c.subscribers = append(c.subscribers, sub)
}

// Unsubscribe removes sub if present
func (c *Channel) Unsubscribe(sub Subscriber) {
	c.UnsubscribeID(sub.ID())
}

// UnsubscribeID removes the subscriber with the given ID if present and
// reports whether anything was removed
func (c *Channel) UnsubscribeID(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.subscribers = slices.Delete(c.subscribers, i, i+1)
	return true
}

// IsSubscribed reports whether a subscriber with the given ID is registered
func (c *Channel) IsSubscribed(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexOf(id) >= 0
}

// Subscribers returns subscriber IDs in subscription order
func (c *Channel) Subscribers() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, len(c.subscribers))
	for i, sub := range c.subscribers {
		ids[i] = sub.ID()
	}
	return ids
}

// NotifySubscribers calls Update on every current subscriber in subscription
// order. A failing subscriber does not stop delivery to the rest.
func (c *Channel) NotifySubscribers(ctx context.Context) error {
	c.mu.RLock()
	targets := slices.Clone(c.subscribers)
	c.mu.RUnlock()

	var errs []error
	for _, sub := range targets {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := sub.Update(ctx); err != nil {
			errs = append(errs, fmt.Errorf("notify subscriber %s: %w", sub.ID(), err))
		}
	}
	return errors.Join(errs...)
}

// UploadVideo records title as the latest video and notifies subscribers.
// Concurrent uploads are delivered one after another, so every subscriber
// sees each title. Subscribers must not upload from Update.
func (c *Channel) UploadVideo(ctx context.Context, title string) error {
	c.uploadMu.Lock()
	defer c.uploadMu.Unlock()

	c.mu.Lock()
	c.latestVideo = title
	c.history = append(c.history, Video{Title: title, UploadedAt: c.now()})
	c.mu.Unlock()

	return c.NotifySubscribers(ctx)
}

// LatestVideo returns the title of the most recent upload
func (c *Channel) LatestVideo() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.latestVideo
}

// VideoData formats the latest upload for subscribers
func (c *Channel) VideoData() string {
	return VideoDataPrefix + c.LatestVideo()
}

// History returns all uploads, oldest first
func (c *Channel) History() []Video {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.history)
}

// indexOf must be called with mu held
func (c *Channel) indexOf(id string) int {
	return slices.IndexFunc(c.subscribers, func(s Subscriber) bool {
		return s.ID() == id
	})
}

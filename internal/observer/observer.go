// Package observer implements a publish/subscribe notifier modelled on a video
// channel: subscribers register with a channel and are told, in subscription
// order, whenever a new video is uploaded.
package observer

import "context"

// Subscriber reacts to channel notifications
type Subscriber interface {
	// ID identifies the subscriber; a channel holds at most one subscriber per ID
	ID() string

	// Update is invoked synchronously after each upload
	Update(ctx context.Context) error
}

// VideoSource is the read side of a channel that subscribers depend on
type VideoSource interface {
	Name() string
	VideoData() string
}

// Publisher is the subscription side of a channel
type Publisher interface {
	Subscribe(sub Subscriber)
	Unsubscribe(sub Subscriber)
	NotifySubscribers(ctx context.Context) error
}

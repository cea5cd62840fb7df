package domain

import "time"

// CreateChannelRequest is the body of POST /api/channels
type CreateChannelRequest struct {
	Name string `json:"name"`
}

// CreateChannelResponse carries the owner token needed to upload videos
type CreateChannelResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OwnerToken string `json:"owner_token"`
}

// ChannelInfo is the public view of a channel
type ChannelInfo struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LatestVideo string    `json:"latest_video"`
	VideoData   string    `json:"video_data"`
	Subscribers []string  `json:"subscribers"`
	Uploads     int       `json:"uploads"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateSubscriberRequest is the body of POST /api/channels/{id}/subscribers
type CreateSubscriberRequest struct {
	Name string `json:"name"`
}

// SubscriberInfo describes a subscriber and the channel it follows
type SubscriberInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ChannelID  string `json:"channel_id"`
	Subscribed bool   `json:"subscribed"`
}

// UploadVideoRequest is the body of POST /api/channels/{id}/videos
type UploadVideoRequest struct {
	Title string `json:"title"`
}

// UploadResult reports how a new upload was delivered. Notified lists the
// subscribers the upload was addressed to; failures appear in DeliveryErrors.
type UploadResult struct {
	ChannelID      string   `json:"channel_id"`
	Title          string   `json:"title"`
	VideoData      string   `json:"video_data"`
	Notified       []string `json:"notified"`
	DeliveryErrors []string `json:"delivery_errors,omitempty"`
}

// SyncRequest names the YouTube channel to pull the latest upload from
type SyncRequest struct {
	YouTubeChannelID string `json:"youtube_channel_id"`
}

// SyncResult reports whether a sync produced a new upload
type SyncResult struct {
	Video    YouTubeVideo  `json:"video"`
	Uploaded bool          `json:"uploaded"`
	Upload   *UploadResult `json:"upload,omitempty"`
}

// YouTubeVideo is the latest upload found on a YouTube channel
type YouTubeVideo struct {
	ID          string    `json:"id"`
	ChannelID   string    `json:"channel_id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
}

// NotificationsResponse lists a subscriber's notices, oldest first
type NotificationsResponse struct {
	SubscriberID string   `json:"subscriber_id"`
	Notices      []string `json:"notices"`
}

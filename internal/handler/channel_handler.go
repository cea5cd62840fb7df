package handler

import (
	"net/http"

	"designlab/internal/container"
	"designlab/internal/domain"

	"github.com/go-chi/chi/v5"
)

// ChannelHandler handles channel, subscriber and notification requests
type ChannelHandler struct {
	container *container.Container
}

// NewChannelHandler creates a new channel handler
func NewChannelHandler(container *container.Container) *ChannelHandler {
	return &ChannelHandler{
		container: container,
	}
}

// CreateChannel handles POST /api/channels
func (h *ChannelHandler) CreateChannel(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.CreateChannelRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	created, err := h.container.Services.Channels.CreateChannel(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusCreated, created, "Channel created", logger)
}

// GetChannel handles GET /api/channels/{channelID}
func (h *ChannelHandler) GetChannel(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	info, err := h.container.Services.Channels.GetChannel(r.Context(), chi.URLParam(r, "channelID"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, info, "", logger)
}

// CreateSubscriber handles POST /api/channels/{channelID}/subscribers
func (h *ChannelHandler) CreateSubscriber(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.CreateSubscriberRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	sub, err := h.container.Services.Channels.CreateSubscriber(r.Context(), chi.URLParam(r, "channelID"), req.Name)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusCreated, sub, "Subscribed", logger)
}

// Subscribe handles PUT /api/channels/{channelID}/subscribers/{subscriberID}
func (h *ChannelHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	sub, err := h.container.Services.Channels.Subscribe(r.Context(), chi.URLParam(r, "channelID"), chi.URLParam(r, "subscriberID"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, sub, "Subscribed", logger)
}

// Unsubscribe handles DELETE /api/channels/{channelID}/subscribers/{subscriberID}
func (h *ChannelHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	if err := h.container.Services.Channels.Unsubscribe(r.Context(), chi.URLParam(r, "channelID"), chi.URLParam(r, "subscriberID")); err != nil {
		writeError(w, r, err, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadVideo handles POST /api/channels/{channelID}/videos
func (h *ChannelHandler) UploadVideo(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.UploadVideoRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	result, err := h.container.Services.Channels.UploadVideo(r.Context(), chi.URLParam(r, "channelID"), req.Title)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusCreated, result, "Video uploaded", logger)
}

// Sync handles POST /api/channels/{channelID}/sync
func (h *ChannelHandler) Sync(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	var req domain.SyncRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err, logger)
		return
	}

	result, err := h.container.Services.Channels.SyncFromYouTube(r.Context(), chi.URLParam(r, "channelID"), req.YouTubeChannelID)
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, result, "", logger)
}

// Feed handles GET /api/channels/{channelID}/feed.rss
func (h *ChannelHandler) Feed(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	feed, err := h.container.Services.Channels.Feed(r.Context(), chi.URLParam(r, "channelID"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(feed)); err != nil {
		logger.WithError(err).Error("Failed to write feed")
	}
}

// Notifications handles GET /api/subscribers/{subscriberID}/notifications
func (h *ChannelHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	logger := h.container.GetLogger()

	notices, err := h.container.Services.Channels.Notifications(r.Context(), chi.URLParam(r, "subscriberID"))
	if err != nil {
		writeError(w, r, err, logger)
		return
	}

	writeJSON(w, http.StatusOK, notices, "", logger)
}

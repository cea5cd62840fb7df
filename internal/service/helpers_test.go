package service

import (
	"context"
	"errors"
	"time"

	"designlab/internal/domain"
	"designlab/internal/observer"
	"designlab/pkg/logger"
)

var testNow = time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

type fakeAuth struct{}

func (fakeAuth) IssueOwnerToken(ctx context.Context, channelID string) (string, error) {
	return "token-" + channelID, nil
}

func (fakeAuth) ValidateOwnerToken(ctx context.Context, token string) (*domain.OwnerClaims, error) {
	return nil, errors.New("not used")
}

type fakeYouTube struct {
	video *domain.YouTubeVideo
	err   error
	calls int
}

func (f *fakeYouTube) LatestUpload(ctx context.Context, youtubeChannelID string) (*domain.YouTubeVideo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.video, nil
}

// failingStore rejects notices for one subscriber
type failingStore struct {
	*observer.MemoryNoticeStore
	failFor string
}

func (f *failingStore) Append(ctx context.Context, subscriberID, notice string) error {
	if subscriberID == f.failFor {
		return errors.New("inbox unavailable")
	}
	return f.MemoryNoticeStore.Append(ctx, subscriberID, notice)
}

func newTestChannelService(store observer.NoticeStore, yt YouTubeService) *ChannelService {
	if store == nil {
		store = observer.NewMemoryNoticeStore(0)
	}
	svc := NewChannelService(store, fakeAuth{}, yt, "http://example.test/", logger.Nop())
	svc.now = func() time.Time { return testNow }
	return svc
}

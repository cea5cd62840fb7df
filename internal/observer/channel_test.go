package observer

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	id      string
	source  VideoSource
	seen    []string
	failure error
	calls   *[]string
}

func (r *recordingSubscriber) ID() string { return r.id }

func (r *recordingSubscriber) Update(ctx context.Context) error {
	r.seen = append(r.seen, r.source.VideoData())
	if r.calls != nil {
		*r.calls = append(*r.calls, r.id)
	}
	return r.failure
}

func TestChannel_SubscribeIgnoresDuplicates(t *testing.T) {
	ch := NewChannel("Temp")
	a := &recordingSubscriber{id: "a", source: ch}
	b := &recordingSubscriber{id: "b", source: ch}

	ch.Subscribe(a)
	ch.Subscribe(b)
	ch.Subscribe(a)
	ch.Subscribe(&recordingSubscriber{id: "a", source: ch})

	assert.Equal(t, []string{"a", "b"}, ch.Subscribers())
}

func TestChannel_UnsubscribeAbsentIsNoop(t *testing.T) {
	ch := NewChannel("Temp")
	a := &recordingSubscriber{id: "a", source: ch}
	ch.Subscribe(a)

	ch.Unsubscribe(&recordingSubscriber{id: "ghost"})
	assert.Equal(t, []string{"a"}, ch.Subscribers())

	assert.True(t, ch.UnsubscribeID("a"))
	assert.False(t, ch.UnsubscribeID("a"))
	assert.Empty(t, ch.Subscribers())
}

func TestChannel_NoDuplicatesAcrossSequences(t *testing.T) {
	ch := NewChannel("Temp")
	subs := map[string]*recordingSubscriber{}
	for _, id := range []string{"a", "b", "c"} {
		subs[id] = &recordingSubscriber{id: id, source: ch}
	}

	ops := []struct {
		subscribe bool
		id        string
	}{
		{true, "a"}, {true, "b"}, {true, "a"}, {false, "b"}, {true, "c"},
		{true, "b"}, {false, "x"}, {true, "c"}, {false, "a"}, {true, "a"},
	}

	for _, op := range ops {
		if op.subscribe {
			ch.Subscribe(subs[op.id])
		} else if s, ok := subs[op.id]; ok {
			ch.Unsubscribe(s)
		} else {
			ch.UnsubscribeID(op.id)
		}

		seen := map[string]bool{}
		for _, id := range ch.Subscribers() {
			require.False(t, seen[id], "duplicate subscriber %s", id)
			seen[id] = true
		}
	}

	assert.Equal(t, []string{"c", "b", "a"}, ch.Subscribers())
}

func TestChannel_UploadNotifiesInSubscriptionOrder(t *testing.T) {
	ch := NewChannel("Temp")
	var calls []string
	a := &recordingSubscriber{id: "a", source: ch, calls: &calls}
	b := &recordingSubscriber{id: "b", source: ch, calls: &calls}
	c := &recordingSubscriber{id: "c", source: ch, calls: &calls}

	ch.Subscribe(b)
	ch.Subscribe(a)
	ch.Subscribe(c)

	require.NoError(t, ch.UploadVideo(context.Background(), "X"))

	assert.Equal(t, []string{"b", "a", "c"}, calls)
	for _, s := range []*recordingSubscriber{a, b, c} {
		assert.Equal(t, []string{"Checkout our new Video : X"}, s.seen)
	}
}

func TestChannel_Scenario(t *testing.T) {
	ch := NewChannel("Temp")
	var out bytes.Buffer
	a := NewConsoleSubscriber("a", "A", ch, &out)
	b := NewConsoleSubscriber("b", "B", ch, &out)

	ch.Subscribe(a)
	ch.Subscribe(b)
	require.NoError(t, ch.UploadVideo(context.Background(), "V1"))

	ch.Unsubscribe(a)
	require.NoError(t, ch.UploadVideo(context.Background(), "V2"))

	assert.Equal(t,
		"Hey A,Checkout our new Video : V1\n"+
			"Hey B,Checkout our new Video : V1\n"+
			"Hey B,Checkout our new Video : V2\n",
		out.String())
}

func TestChannel_FailingSubscriberDoesNotBlockOthers(t *testing.T) {
	ch := NewChannel("Temp")
	boom := errors.New("boom")
	bad := &recordingSubscriber{id: "bad", source: ch, failure: boom}
	good := &recordingSubscriber{id: "good", source: ch}
	ch.Subscribe(bad)
	ch.Subscribe(good)

	err := ch.UploadVideo(context.Background(), "X")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "notify subscriber bad")
	assert.Len(t, good.seen, 1)
}

func TestChannel_CancelledContextStopsDelivery(t *testing.T) {
	ch := NewChannel("Temp")
	a := &recordingSubscriber{id: "a", source: ch}
	ch.Subscribe(a)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ch.UploadVideo(ctx, "X")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, a.seen)
	assert.Equal(t, "X", ch.LatestVideo())
}

func TestChannel_HistoryAndVideoData(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	ch := NewChannel("Temp", WithClock(func() time.Time { return fixed }))

	assert.Equal(t, "Checkout our new Video : ", ch.VideoData())

	require.NoError(t, ch.UploadVideo(context.Background(), "Observer Tutorial"))
	require.NoError(t, ch.UploadVideo(context.Background(), "Decorator Pattern Tutorial"))

	assert.Equal(t, "Decorator Pattern Tutorial", ch.LatestVideo())
	assert.Equal(t, "Checkout our new Video : Decorator Pattern Tutorial", ch.VideoData())
	assert.Equal(t, []Video{
		{Title: "Observer Tutorial", UploadedAt: fixed},
		{Title: "Decorator Pattern Tutorial", UploadedAt: fixed},
	}, ch.History())
	assert.Equal(t, "Temp", ch.Name())
}

func TestChannel_IsSubscribed(t *testing.T) {
	ch := NewChannel("Temp")
	ch.Subscribe(&recordingSubscriber{id: "a", source: ch})

	assert.True(t, ch.IsSubscribed("a"))
	assert.False(t, ch.IsSubscribed("b"))
}

// gatedSubscriber holds its first Update until release is closed
type gatedSubscriber struct {
	source  VideoSource
	entered chan struct{}
	release chan struct{}
	once    sync.Once

	mu   sync.Mutex
	seen []string
}

func (g *gatedSubscriber) ID() string { return "gated" }

func (g *gatedSubscriber) Update(ctx context.Context) error {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seen = append(g.seen, g.source.VideoData())
	return nil
}

func TestChannel_ConcurrentUploadsEachNotified(t *testing.T) {
	ch := NewChannel("Temp")
	sub := &gatedSubscriber{
		source:  ch,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	ch.Subscribe(sub)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, ch.UploadVideo(ctx, "A"))
	}()
	<-sub.entered

	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		assert.NoError(t, ch.UploadVideo(ctx, "B"))
	}()
	<-started
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, "A", ch.LatestVideo(), "second upload waits for the first delivery pass")
	close(sub.release)
	wg.Wait()

	assert.Equal(t, []string{VideoDataPrefix + "A", VideoDataPrefix + "B"}, sub.seen)
	assert.Equal(t, "B", ch.LatestVideo())
}

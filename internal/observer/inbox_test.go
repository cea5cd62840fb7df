package observer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInboxSubscriber_ReflectsLatestUpload(t *testing.T) {
	ctx := context.Background()
	ch := NewChannel("Temp")
	store := NewMemoryNoticeStore(0)
	varun := NewInboxSubscriber("s1", "Varun", "c1", ch, store)
	tarun := NewInboxSubscriber("s2", "Tarun", "c1", ch, store)

	ch.Subscribe(varun)
	ch.Subscribe(tarun)
	require.NoError(t, ch.UploadVideo(ctx, "Observer Tutorial"))
	ch.Unsubscribe(varun)
	require.NoError(t, ch.UploadVideo(ctx, "Decorator Pattern Tutorial"))

	got, err := varun.Notices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Hey Varun,Checkout our new Video : Observer Tutorial"}, got)

	got, err = tarun.Notices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Hey Tarun,Checkout our new Video : Observer Tutorial",
		"Hey Tarun,Checkout our new Video : Decorator Pattern Tutorial",
	}, got)

	assert.Equal(t, "c1", tarun.ChannelID())
	assert.Equal(t, "Tarun", tarun.Name())
}

func TestMemoryNoticeStore_Limit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryNoticeStore(2)

	for _, n := range []string{"one", "two", "three"} {
		require.NoError(t, store.Append(ctx, "s", n))
	}

	got, err := store.List(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []string{"two", "three"}, got)

	empty, err := store.List(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

package clock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 10, 14, 5, 0, 0, 0, time.UTC)

func TestFake_SleepUntil(t *testing.T) {
	t.Run("should wake sleepers whose deadline is reached", func(t *testing.T) {
		f := NewFake(epoch)
		woke := make(chan error, 2)

		go func() { woke <- f.SleepUntil(context.Background(), epoch.Add(time.Hour)) }()
		go func() { woke <- f.SleepUntil(context.Background(), epoch.Add(2*time.Hour)) }()
		f.BlockUntilSleepers(2)

		assert.Equal(t, []time.Time{epoch.Add(time.Hour), epoch.Add(2 * time.Hour)}, f.Sleepers())

		f.Advance(time.Hour)
		require.NoError(t, <-woke)
		assert.Len(t, f.Sleepers(), 1)

		f.Set(epoch.Add(3 * time.Hour))
		require.NoError(t, <-woke)
		assert.Empty(t, f.Sleepers())
		assert.Equal(t, epoch.Add(3*time.Hour), f.Now())
	})

	t.Run("should return immediately for a past deadline", func(t *testing.T) {
		f := NewFake(epoch)

		assert.NoError(t, f.SleepUntil(context.Background(), epoch))
		assert.NoError(t, f.SleepUntil(context.Background(), epoch.Add(-time.Minute)))
	})

	t.Run("should return on cancellation", func(t *testing.T) {
		f := NewFake(epoch)
		ctx, cancel := context.WithCancel(context.Background())
		woke := make(chan error, 1)

		go func() { woke <- f.SleepUntil(ctx, epoch.Add(time.Hour)) }()
		f.BlockUntilSleepers(1)

		cancel()
		assert.ErrorIs(t, <-woke, context.Canceled)
		f.BlockUntilSleepers(0)
	})
}

func TestSystem(t *testing.T) {
	loc := time.FixedZone("club", 3*3600)
	c := NewSystem(loc)

	assert.Equal(t, loc, c.Now().Location())
	assert.NoError(t, c.SleepUntil(context.Background(), time.Now().Add(time.Millisecond)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.SleepUntil(ctx, time.Now().Add(time.Hour)), context.Canceled)
}

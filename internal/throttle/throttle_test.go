package throttle

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Acquire(t *testing.T) {
	limiter := NewLimiter(3, 0)

	ctx := context.Background()

	t.Run("acquires and releases slots", func(t *testing.T) {
		release1, err := limiter.Acquire(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, limiter.CurrentUsage())

		release2, err := limiter.Acquire(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, limiter.CurrentUsage())

		release1()
		assert.Equal(t, 1, limiter.CurrentUsage())

		release2()
		assert.Equal(t, 0, limiter.CurrentUsage())
	})

	t.Run("respects max concurrent limit", func(t *testing.T) {
		var releases []func()
		for i := 0; i < 3; i++ {
			release, err := limiter.Acquire(ctx)
			require.NoError(t, err)
			releases = append(releases, release)
		}
		assert.Equal(t, 3, limiter.CurrentUsage())

		// One more has to wait, so a short timeout fails it
		ctxTimeout, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
		defer cancel()

		_, err := limiter.Acquire(ctxTimeout)
		assert.Error(t, err)

		for _, release := range releases {
			release()
		}
		assert.Equal(t, 0, limiter.CurrentUsage())
	})

	t.Run("handles context cancellation", func(t *testing.T) {
		var releases []func()
		for i := 0; i < 3; i++ {
			release, err := limiter.Acquire(ctx)
			require.NoError(t, err)
			releases = append(releases, release)
		}

		ctxCancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := limiter.Acquire(ctxCancelled)
		assert.Error(t, err)

		for _, release := range releases {
			release()
		}
	})
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	limiter := NewLimiter(5, 0)

	ctx := context.Background()
	var maxConcurrent int32
	var currentConcurrent int32
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := limiter.Acquire(ctx)
			if err != nil {
				return
			}
			defer release()

			current := atomic.AddInt32(&currentConcurrent, 1)
			for {
				old := atomic.LoadInt32(&maxConcurrent)
				if current <= old || atomic.CompareAndSwapInt32(&maxConcurrent, old, current) {
					break
				}
			}

			time.Sleep(10 * time.Millisecond)

			atomic.AddInt32(&currentConcurrent, -1)
		}()
	}

	wg.Wait()

	assert.LessOrEqual(t, int(maxConcurrent), 5, "Max concurrent should not exceed limit")
	assert.Equal(t, 0, limiter.CurrentUsage(), "All slots should be released")
}

func TestLimiter_TryAcquire(t *testing.T) {
	limiter := NewLimiter(2, 0)

	release1, ok := limiter.TryAcquire()
	assert.True(t, ok)
	assert.Equal(t, 1, limiter.CurrentUsage())

	release2, ok := limiter.TryAcquire()
	assert.True(t, ok)
	assert.Equal(t, 2, limiter.CurrentUsage())

	_, ok = limiter.TryAcquire()
	assert.False(t, ok)

	release1()
	release3, ok := limiter.TryAcquire()
	assert.True(t, ok)

	release2()
	release3()
	assert.Equal(t, 0, limiter.CurrentUsage())
}

func TestLimiter_MinDelay(t *testing.T) {
	limiter := NewLimiter(10, 50*time.Millisecond)

	ctx := context.Background()

	start := time.Now()
	release1, err := limiter.Acquire(ctx)
	require.NoError(t, err)
	release1()
	firstDuration := time.Since(start)

	start = time.Now()
	release2, err := limiter.Acquire(ctx)
	require.NoError(t, err)
	release2()
	secondDuration := time.Since(start)

	assert.Less(t, firstDuration, 20*time.Millisecond, "First request should be fast")
	assert.GreaterOrEqual(t, secondDuration, 40*time.Millisecond, "Second request should be delayed")
}

func TestNewLimiter_ClampsNonPositive(t *testing.T) {
	limiter := NewLimiter(0, 0)

	assert.Equal(t, 1, limiter.MaxConcurrent())

	release, ok := limiter.TryAcquire()
	require.True(t, ok)
	_, ok = limiter.TryAcquire()
	assert.False(t, ok)
	release()
}

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when the executor sleeps.
type fakeClock struct {
	mu     sync.Mutex
	t      time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) sleep(ctx context.Context, d time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.t = c.t.Add(d)
	return ctx.Err()
}

func TestExecute_Success(t *testing.T) {
	e := NewExecutor()
	result, ok := Execute(context.Background(), e, "op", func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.True(t, ok)
	assert.Equal(t, 42, result)
	assert.Equal(t, 0, e.Cooldowns())
}

func TestExecute_FatalErrorReturnsNothing(t *testing.T) {
	e := NewExecutor()
	attempts := 0
	result, ok := Execute(context.Background(), e, "op", func(ctx context.Context) (*string, error) {
		attempts++
		return nil, errors.New("boom")
	})
	assert.False(t, ok)
	assert.Nil(t, result)
	assert.Equal(t, 1, attempts, "fatal errors are not retried")
	assert.Equal(t, 0, e.Cooldowns())
}

func TestExecute_RetriesAfterRateLimit(t *testing.T) {
	clock := newFakeClock()
	e := NewExecutor(WithClock(clock.now, clock.sleep))

	attempts := 0
	result, ok := Execute(context.Background(), e, "op", func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 4 {
			return "", errors.New("API rate limit exceeded for user")
		}
		return "done", nil
	})

	require.True(t, ok)
	assert.Equal(t, "done", result)
	assert.Equal(t, 4, attempts)
	assert.Equal(t, 3, e.Cooldowns(), "each sequential rate limit after a closed window opens a new one")
	assert.Equal(t, []time.Duration{DefaultCooldown, DefaultCooldown, DefaultCooldown}, clock.sleeps)
}

func TestExecute_WrappedSentinelIsRetryable(t *testing.T) {
	clock := newFakeClock()
	e := NewExecutor(WithClock(clock.now, clock.sleep), WithCooldown(5*time.Second))

	attempts := 0
	_, ok := Execute(context.Background(), e, "op", func(ctx context.Context) (int, error) {
		attempts++
		if attempts == 1 {
			return 0, fmt.Errorf("http 429: %w", ErrRateLimited)
		}
		return 1, nil
	})

	require.True(t, ok)
	assert.Equal(t, []time.Duration{5 * time.Second}, clock.sleeps)
}

func TestCooldown_JoinsOpenWindow(t *testing.T) {
	clock := newFakeClock()
	e := NewExecutor(WithClock(clock.now, func(ctx context.Context, d time.Duration) error {
		// Record without advancing the clock so the window stays open.
		clock.mu.Lock()
		clock.sleeps = append(clock.sleeps, d)
		clock.mu.Unlock()
		return nil
	}))

	require.NoError(t, e.Cooldown(context.Background()))
	clock.mu.Lock()
	clock.t = clock.t.Add(20 * time.Second)
	clock.mu.Unlock()
	require.NoError(t, e.Cooldown(context.Background()))

	assert.Equal(t, 1, e.Cooldowns())
	assert.Equal(t, []time.Duration{60 * time.Second, 40 * time.Second}, clock.sleeps,
		"the second caller only waits for the remainder of the open window")
}

func TestWait_BlocksNewCallersDuringCooldown(t *testing.T) {
	clock := newFakeClock()
	e := NewExecutor(WithClock(clock.now, clock.sleep))

	e.mu.Lock()
	e.until = clock.t.Add(30 * time.Second)
	e.mu.Unlock()

	_, ok := Execute(context.Background(), e, "op", func(ctx context.Context) (int, error) {
		return 1, nil
	})
	require.True(t, ok)
	assert.Equal(t, []time.Duration{30 * time.Second}, clock.sleeps)
}

func TestExecute_ContextCancelledDuringCooldown(t *testing.T) {
	e := NewExecutor(WithCooldown(time.Hour))
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan bool)
	go func() {
		_, ok := Execute(ctx, e, "op", func(ctx context.Context) (int, error) {
			return 0, errors.New("rate limit")
		})
		done <- ok
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case ok := <-done:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("Execute did not return after cancellation")
	}
}

func TestExecute_ConcurrentCallersShareOneCooldown(t *testing.T) {
	e := NewExecutor(WithCooldown(150 * time.Millisecond))

	const callers = 3
	var failed sync.WaitGroup
	failed.Add(callers)
	var attempts atomic.Int32

	start := time.Now()
	results := make([]bool, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			first := true
			_, ok := Execute(context.Background(), e, "op", func(ctx context.Context) (int, error) {
				attempts.Add(1)
				if first {
					first = false
					failed.Done()
					failed.Wait()
					return 0, errors.New("rate limit reached")
				}
				return i, nil
			})
			results[i] = ok
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, e.Cooldowns(), "simultaneous rate limits converge on one window")
	assert.Equal(t, int32(2*callers), attempts.Load())
	assert.GreaterOrEqual(t, time.Since(start), 150*time.Millisecond)
	for i, ok := range results {
		assert.True(t, ok, "caller %d should succeed after the cooldown", i)
	}
}

func TestIsRateLimit(t *testing.T) {
	assert.True(t, IsRateLimit(errors.New("You have exceeded a secondary rate limit")))
	assert.True(t, IsRateLimit(errors.New("Rate limit reached for gpt-4o-mini")))
	assert.True(t, IsRateLimit(fmt.Errorf("wrapped: %w", ErrRateLimited)))
	assert.False(t, IsRateLimit(errors.New("connection refused")))
	assert.False(t, IsRateLimit(nil))
}

package batch

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

func recordSleeps(pauses *[]time.Duration) Option {
	var mu sync.Mutex
	return WithSleep(func(ctx context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		*pauses = append(*pauses, d)
		return ctx.Err()
	})
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestRun_ChunksAndDelays(t *testing.T) {
	var pauses []time.Duration
	r := NewRunner[int](Config{Name: "test", BatchSize: 10, Delay: 2500 * time.Millisecond}, recordSleeps(&pauses))

	var seen sync.Map
	report, err := r.Run(context.Background(), Items(numbers(25)...), func(ctx context.Context, n int) error {
		seen.Store(n, true)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, Report{Selected: 25, Succeeded: 25, Failed: 0, Chunks: 3}, report)
	assert.True(t, report.OK())
	assert.Equal(t, []time.Duration{2500 * time.Millisecond, 2500 * time.Millisecond}, pauses, "no delay after the last chunk")
	for n := range 25 {
		_, ok := seen.Load(n)
		assert.True(t, ok, "item %d processed", n)
	}
}

func TestRun_ChunkIsConcurrentAndSequentialAcrossChunks(t *testing.T) {
	r := NewRunner[int](Config{BatchSize: 4})

	var mu sync.Mutex
	var maxActive, active int
	var order []int

	_, err := r.Run(context.Background(), Items(numbers(8)...), func(ctx context.Context, n int) error {
		mu.Lock()
		active++
		maxActive = max(maxActive, active)
		order = append(order, n/4)
		mu.Unlock()

		time.Sleep(20 * time.Millisecond)

		mu.Lock()
		active--
		mu.Unlock()
		return nil
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, maxActive, 4)
	assert.Greater(t, maxActive, 1, "items of a chunk overlap")
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0, order[i], "the first chunk finishes before the second starts")
	}
}

func TestRun_FailuresAreCounted(t *testing.T) {
	r := NewRunner[int](Config{BatchSize: 3})

	report, err := r.Run(context.Background(), Items(numbers(7)...), func(ctx context.Context, n int) error {
		switch n {
		case 1:
			return fmt.Errorf("item %d: %w", n, errors.New("provider down"))
		case 4:
			panic("boom")
		}
		return nil
	})
	require.NoError(t, err, "item failures never abort the run")
	assert.Equal(t, Report{Selected: 7, Succeeded: 5, Failed: 2, Chunks: 3}, report)
	assert.False(t, report.OK())
}

func TestRun_SelectionFailure(t *testing.T) {
	r := NewRunner[int](Config{Name: "broken"})
	selectErr := errors.New("db down")

	_, err := r.Run(context.Background(), func(ctx context.Context) ([]int, error) {
		return nil, selectErr
	}, func(ctx context.Context, n int) error { return nil })
	assert.ErrorIs(t, err, selectErr)
}

func TestRun_Requires(t *testing.T) {
	r := NewRunner[int](Config{})
	_, err := r.Run(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrSourceRequired)
}

func TestRun_EmptySelection(t *testing.T) {
	r := NewRunner[int](Config{})
	var calls atomic.Int32
	report, err := r.Run(context.Background(), Items[int](), func(ctx context.Context, n int) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Report{}, report)
	assert.Zero(t, calls.Load())
}

func TestRun_CancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewRunner[int](Config{BatchSize: 2, Delay: time.Hour}, WithSleep(func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}))

	report, err := r.Run(ctx, Items(numbers(6)...), func(ctx context.Context, n int) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Chunks)
	assert.Equal(t, 2, report.Succeeded)
}

func TestNewRunner_Defaults(t *testing.T) {
	r := NewRunner[string](Config{BatchSize: -1})
	assert.Equal(t, 1, r.Config().BatchSize)
	assert.Equal(t, "batch", r.Config().Name)
	assert.Equal(t, 1, r.Config().ReportInterval)
}

func TestRunChunks(t *testing.T) {
	var pauses []time.Duration
	r := NewRunner[int](Config{BatchSize: 4, Delay: time.Second}, recordSleeps(&pauses))

	var chunks [][]int
	report, err := r.RunChunks(context.Background(), Items(numbers(10)...), func(ctx context.Context, chunk []int) (int, error) {
		chunks = append(chunks, append([]int(nil), chunk...))
		switch len(chunks) {
		case 2:
			return 1, nil
		case 3:
			return 0, errors.New("store down")
		}
		return 0, nil
	})
	require.NoError(t, err)

	assert.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9}}, chunks)
	assert.Equal(t, Report{Selected: 10, Succeeded: 7, Failed: 3, Chunks: 3}, report)
	assert.Len(t, pauses, 2)

	_, err = r.RunChunks(context.Background(), nil, nil)
	assert.ErrorIs(t, err, ErrSourceRequired)
}

package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Source snapshots the items a run will process.
type Source[T any] func(ctx context.Context) ([]T, error)

// Process handles one item. A returned error marks the item failed.
type Process[T any] func(ctx context.Context, item T) error

// Config controls chunking and pacing.
type Config struct {
	// Name identifies the job in logs.
	Name string

	// BatchSize is the number of items processed concurrently per chunk.
	BatchSize int

	// Delay is the pause between chunks. It is skipped after the last chunk.
	Delay time.Duration

	// ReportInterval is how often to report progress (number of items)
	ReportInterval int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:           "batch",
		BatchSize:      10,
		Delay:          0,
		ReportInterval: 10,
	}
}

// Report summarizes a run.
type Report struct {
	Selected  int
	Succeeded int
	Failed    int
	Chunks    int
}

// OK reports whether every processed item succeeded.
func (r Report) OK() bool {
	return r.Failed == 0
}

type settings struct {
	logger   *slog.Logger
	progress io.Writer
	sleep    func(ctx context.Context, d time.Duration) error
}

// Option configures a Runner.
type Option func(*settings)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress writes a progress line to w (typically os.Stderr).
func WithProgress(w io.Writer) Option {
	return func(s *settings) {
		s.progress = w
	}
}

// WithSleep replaces the between-chunk delay. Intended for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *settings) {
		if sleep != nil {
			s.sleep = sleep
		}
	}
}

// Runner executes one job.
type Runner[T any] struct {
	config   Config
	logger   *slog.Logger
	progress io.Writer
	sleep    func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a runner. A non-positive BatchSize becomes 1.
func NewRunner[T any](config Config, opts ...Option) *Runner[T] {
	s := settings{logger: slog.Default(), sleep: sleepContext}
	for _, opt := range opts {
		opt(&s)
	}
	if config.BatchSize < 1 {
		config.BatchSize = 1
	}
	if config.ReportInterval < 1 {
		config.ReportInterval = config.BatchSize
	}
	if config.Name == "" {
		config.Name = DefaultConfig().Name
	}
	return &Runner[T]{
		config:   config,
		logger:   s.logger.With("job", config.Name),
		progress: s.progress,
		sleep:    s.sleep,
	}
}

// Config returns the effective configuration.
func (r *Runner[T]) Config() Config {
	return r.config
}

// ChunkProcess handles a whole chunk and returns how many of its items
// failed. A returned error fails the entire chunk.
type ChunkProcess[T any] func(ctx context.Context, chunk []T) (failed int, err error)

// Run selects the items, then processes them chunk by chunk. The returned
// error covers selection failures and cancellation only; item failures are
// counted in the report.
func (r *Runner[T]) Run(ctx context.Context, source Source[T], process Process[T]) (Report, error) {
	if source == nil || process == nil {
		return Report{}, ErrSourceRequired
	}
	return r.run(ctx, source, func(ctx context.Context, offset int, chunk []T) (int, int) {
		return r.runChunk(ctx, offset, chunk, process)
	})
}

// RunChunks is Run for jobs that handle a chunk in one call, such as a
// batched vector upsert.
func (r *Runner[T]) RunChunks(ctx context.Context, source Source[T], process ChunkProcess[T]) (Report, error) {
	if source == nil || process == nil {
		return Report{}, ErrSourceRequired
	}
	return r.run(ctx, source, func(ctx context.Context, offset int, chunk []T) (int, int) {
		failed, err := process(ctx, chunk)
		if err != nil {
			r.logger.Warn("chunk failed", "offset", offset, "size", len(chunk), "err", err)
			return 0, len(chunk)
		}
		failed = min(max(failed, 0), len(chunk))
		return len(chunk) - failed, failed
	})
}

func (r *Runner[T]) run(ctx context.Context, source Source[T], chunkFn func(ctx context.Context, offset int, chunk []T) (int, int)) (Report, error) {
	items, err := source(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("%s: selecting items: %w", r.config.Name, err)
	}

	report := Report{Selected: len(items)}
	r.logger.Info("selected items", "count", len(items), "batch_size", r.config.BatchSize, "delay", r.config.Delay)
	if len(items) == 0 {
		return report, nil
	}

	tracker := NewProgressTracker(r.progress, len(items), r.config.ReportInterval)
	tracker.Start()

	for start := 0; start < len(items); start += r.config.BatchSize {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		end := min(start+r.config.BatchSize, len(items))
		succeeded, failed := chunkFn(ctx, start, items[start:end])
		report.Succeeded += succeeded
		report.Failed += failed
		report.Chunks++
		tracker.Increment(end - start)

		r.logger.Debug("chunk finished", "chunk", report.Chunks, "succeeded", succeeded, "failed", failed)

		if end < len(items) && r.config.Delay > 0 {
			if err := r.sleep(ctx, r.config.Delay); err != nil {
				return report, err
			}
		}
	}

	tracker.Finish()
	r.logger.Info("run complete",
		"selected", report.Selected,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"chunks", report.Chunks,
		"elapsed", tracker.Elapsed().Round(time.Millisecond))
	return report, nil
}

// runChunk processes every item on a pool sized to the chunk and waits for
// all of them.
func (r *Runner[T]) runChunk(ctx context.Context, offset int, chunk []T, process Process[T]) (int, int) {
	var succeeded, failed atomic.Int64

	pool, err := ants.NewPool(len(chunk), ants.WithPanicHandler(func(p any) {
		r.logger.Error("item panicked", "panic", p)
	}))
	if err != nil {
		r.logger.Error("failed to create worker pool", "err", err)
		return 0, len(chunk)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i, item := range chunk {
		index := offset + i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			ok := false
			// Runs during a panic too, before the pool's handler.
			defer func() {
				if ok {
					succeeded.Add(1)
				} else {
					failed.Add(1)
				}
			}()

			if err := process(ctx, item); err != nil {
				r.logger.Warn("item failed", "index", index, "err", err)
				return
			}
			ok = true
		})
		if submitErr != nil {
			wg.Done()
			failed.Add(1)
			r.logger.Error("failed to submit item", "index", index, "err", submitErr)
		}
	}
	wg.Wait()

	return int(succeeded.Load()), int(failed.Load())
}

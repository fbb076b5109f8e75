package derive

import (
	"context"
	"log/slog"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/ratelimit"
)

// DefaultModel is the completion model every derivation was tuned for.
const DefaultModel = "gpt-4o-mini"

// Deriver runs model-backed derivations.
type Deriver struct {
	completer ai.Completer
	executor  *ratelimit.Executor
	model     string
	logger    *slog.Logger
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithExecutor shares a rate-limit executor with other clients.
func WithExecutor(e *ratelimit.Executor) Option {
	return func(d *Deriver) {
		if e != nil {
			d.executor = e
		}
	}
}

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(d *Deriver) {
		if model != "" {
			d.model = model
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deriver) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Deriver around completer.
func New(completer ai.Completer, opts ...Option) *Deriver {
	d := &Deriver{
		completer: completer,
		model:     DefaultModel,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.executor == nil {
		d.executor = ratelimit.NewExecutor(ratelimit.WithLogger(d.logger))
	}
	d.logger = d.logger.With("component", "deriver")
	return d
}

// complete runs one completion through the executor. ok is false when the
// call failed for a reason other than rate limiting.
func (d *Deriver) complete(ctx context.Context, name, system, user string, opts ...ai.CallOption) (string, bool) {
	opts = append([]ai.CallOption{ai.WithModel(d.model)}, opts...)
	return ratelimit.Execute(ctx, d.executor, name, func(ctx context.Context) (string, error) {
		return d.completer.Complete(ctx, system, user, opts...)
	})
}

// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package ratelimit

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultCooldown is how long every caller backs off after a rate-limit signal.
	DefaultCooldown = 60 * time.Second
)

// Executor runs external calls and coordinates a single cooldown window
// shared by every concurrent caller.
//
// The window is a monotonic deadline: a caller that hits a rate limit while a
// window is open joins it instead of starting its own.
type Executor struct {
	mu       sync.Mutex
	until    time.Time
	windows  int
	cooldown time.Duration
	now      func() time.Time
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *slog.Logger
}

// Option configures an Executor.
type Option func(*Executor)

// WithCooldown overrides the cooldown duration.
func WithCooldown(d time.Duration) Option {
	return func(e *Executor) {
		if d > 0 {
			e.cooldown = d
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Executor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock replaces the time source and the sleep function. Intended for tests.
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Executor) {
		if now != nil {
			e.now = now
		}
		if sleep != nil {
			e.sleep = sleep
		}
	}
}

// NewExecutor creates an executor with a 60 second cooldown.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		cooldown: DefaultCooldown,
		now:      time.Now,
		sleep:    sleepContext,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With("component", "rate-limiter")
	return e
}

// Execute runs op until it succeeds or fails with an error that is not a rate limit.
//
// Rate-limit failures put every caller into the shared cooldown and then retry
// the same operation, without an attempt cap. Any other failure is logged and
// reported as (zero, false) so the caller can continue with missing data.
// Cancelling ctx while waiting also yields (zero, false).
func Execute[T any](ctx context.Context, e *Executor, name string, op func(ctx context.Context) (T, error)) (T, bool) {
	var zero T
	for {
		if err := e.Wait(ctx); err != nil {
			return zero, false
		}

		result, err := op(ctx)
		if err == nil {
			return result, true
		}

		if !IsRateLimit(err) {
			e.logger.Error("external call failed", "operation", name, "err", err)
			return zero, false
		}

		e.logger.Warn("rate limited", "operation", name, "err", err)
		if err := e.Cooldown(ctx); err != nil {
			return zero, false
		}
	}
}

// Cooldown opens a cooldown window, or joins the one already open, and blocks
// until it closes.
func (e *Executor) Cooldown(ctx context.Context) error {
	e.mu.Lock()
	now := e.now()
	if !now.Before(e.until) {
		e.until = now.Add(e.cooldown)
		e.windows++
		e.logger.Info("rate limit hit, cooling down", "duration", e.cooldown)
	}
	wait := e.until.Sub(now)
	e.mu.Unlock()

	return e.sleep(ctx, wait)
}

// Wait blocks while a cooldown window is open. It returns immediately otherwise.
func (e *Executor) Wait(ctx context.Context) error {
	e.mu.Lock()
	wait := e.until.Sub(e.now())
	e.mu.Unlock()

	if wait <= 0 {
		return ctx.Err()
	}
	return e.sleep(ctx, wait)
}

// Cooldowns returns the number of cooldown windows opened so far.
func (e *Executor) Cooldowns() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.windows
}

// IsRateLimit reports whether err signals a quota or rate-limit condition.
func IsRateLimit(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "rate limit")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

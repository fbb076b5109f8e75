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


package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

const (
	// DefaultPageSize is the number of rows fetched per page.
	DefaultPageSize = 500

	// DefaultMaxAttempts is how often a page read is tried before giving up.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the first backoff between page read attempts.
	DefaultRetryDelay = time.Second
)

// PageFunc reads one page of at most limit items starting at offset.
type PageFunc[T any] func(ctx context.Context, limit, offset int) ([]T, error)

// PageIterator walks a paged source until a short page is returned.
type PageIterator[T any] struct {
	fetch       PageFunc[T]
	pageSize    int
	maxAttempts int
	retryDelay  time.Duration
}

// NewPageIterator creates an iterator over fetch.
// pageSize: number of items per page (DefaultPageSize when <= 0)
func NewPageIterator[T any](fetch PageFunc[T], pageSize int) *PageIterator[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PageIterator[T]{
		fetch:       fetch,
		pageSize:    pageSize,
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
	}
}

// WithRetry overrides the page read retry policy.
func (it *PageIterator[T]) WithRetry(maxAttempts int, delay time.Duration) *PageIterator[T] {
	it.maxAttempts = maxAttempts
	it.retryDelay = delay
	return it
}

// ForEach calls fn for every page in order.
// Iteration stops on first error from fn or when a page comes back short.
// Context cancellation is checked between pages.
func (it *PageIterator[T]) ForEach(ctx context.Context, fn func([]T) error) error {
	for offset := 0; ; offset += it.pageSize {
		var page []T
		err := RetryWithBackoff(ctx, func(ctx context.Context) error {
			var err error
			page, err = it.fetch(ctx, it.pageSize, offset)
			return err
		}, it.maxAttempts, it.retryDelay)
		if err != nil {
			return fmt.Errorf("reading page at offset %d: %w", offset, err)
		}

		if len(page) > 0 {
			if err := fn(page); err != nil {
				return err
			}
		}
		if len(page) < it.pageSize {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Collect reads every page into one slice.
func (it *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	var all []T
	err := it.ForEach(ctx, func(page []T) error {
		all = append(all, page...)
		return nil
	})
	return all, err
}

// SelectPersons returns a Source that snapshots every person matching f.
// f's Limit and Offset are managed by the iterator.
func SelectPersons(repo storage.PersonRepository, f storage.Filter, pageSize int) Source[*core.Person] {
	return func(ctx context.Context) ([]*core.Person, error) {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		it := NewPageIterator(func(ctx context.Context, limit, offset int) ([]*core.Person, error) {
			page := f
			page.Limit, page.Offset = limit, offset
			return repo.Select(ctx, page)
		}, pageSize)
		return it.Collect(ctx)
	}
}

// Items returns a Source over a fixed list.
func Items[T any](items ...T) Source[T] {
	return func(context.Context) ([]T, error) {
		return items, nil
	}
}

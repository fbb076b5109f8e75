package embedding

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/poiesic/prospector/storage"
)

// DefaultBioPace is the pause after each bio embedding.
const DefaultBioPace = 200 * time.Millisecond

// Upserter embeds text and writes the vectors to a store.
type Upserter struct {
	embedder ai.Embedder
	store    storage.VectorStore
	executor *ratelimit.Executor
	bioPace  time.Duration
	sleep    func(ctx context.Context, d time.Duration) error
	logger   *slog.Logger
}

// Option configures an Upserter.
type Option func(*Upserter)

// WithExecutor shares a rate-limit executor with other clients.
func WithExecutor(e *ratelimit.Executor) Option {
	return func(u *Upserter) {
		if e != nil {
			u.executor = e
		}
	}
}

// WithBioPace overrides DefaultBioPace. Zero disables the pause.
func WithBioPace(d time.Duration) Option {
	return func(u *Upserter) {
		if d >= 0 {
			u.bioPace = d
		}
	}
}

// WithSleep replaces the pacing sleep, for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(u *Upserter) {
		if sleep != nil {
			u.sleep = sleep
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(u *Upserter) {
		if logger != nil {
			u.logger = logger
		}
	}
}

// NewUpserter creates an Upserter writing embeddings from embedder into store.
func NewUpserter(embedder ai.Embedder, store storage.VectorStore, opts ...Option) (*Upserter, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if store == nil {
		return nil, fmt.Errorf("vector store required")
	}
	u := &Upserter{
		embedder: embedder,
		store:    store,
		bioPace:  DefaultBioPace,
		sleep:    sleepContext,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.executor == nil {
		u.executor = ratelimit.NewExecutor(ratelimit.WithLogger(u.logger))
	}
	u.logger = u.logger.With("component", "upserter")
	return u, nil
}

func (u *Upserter) embed(ctx context.Context, text string) ([]float32, error) {
	vec, ok := ratelimit.Execute(ctx, u.executor, "embed", func(ctx context.Context) ([]float32, error) {
		return u.embedder.EmbedText(ctx, text)
	})
	if !ok || len(vec) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmbeddingFailed, text)
	}
	return vec, nil
}

func (u *Upserter) embedAll(ctx context.Context, texts []string) ([][]float32, error) {
	vecs, ok := ratelimit.Execute(ctx, u.executor, "embed-batch", func(ctx context.Context) ([][]float32, error) {
		return u.embedder.EmbedTexts(ctx, texts)
	})
	if !ok {
		return nil, fmt.Errorf("%w: batch of %d", ErrEmbeddingFailed, len(texts))
	}
	if len(vecs) != len(texts) {
		return nil, fmt.Errorf("%w: expected %d vectors, received %d", ErrEmbeddingFailed, len(texts), len(vecs))
	}
	return vecs, nil
}

// ItemResult counts the outcome of UpsertItems.
type ItemResult struct {
	Upserted int
	Skipped  int
}

// UpsertItems embeds each item and writes it under ownerID with metadata
// {candidateId: ownerID, field: item}. Items with non-ASCII bytes are skipped.
// Every item is written under the same id, so the namespace keeps the last
// one.
func (u *Upserter) UpsertItems(ctx context.Context, namespace, ownerID, field string, items []string) (ItemResult, error) {
	var res ItemResult
	for _, item := range items {
		if !core.IsASCII(item) {
			u.logger.Info("skipping non-ASCII item", "namespace", namespace, "owner", ownerID, "item", item)
			res.Skipped++
			continue
		}

		vec, err := u.embed(ctx, item)
		if err != nil {
			return res, err
		}
		err = u.store.Upsert(ctx, namespace, []core.Vector{{
			ID:     ownerID,
			Values: vec,
			Metadata: map[string]any{
				"candidateId": ownerID,
				field:         item,
			},
		}})
		if err != nil {
			return res, fmt.Errorf("upsert %s into %s: %w", ownerID, namespace, err)
		}
		res.Upserted++
	}
	return res, nil
}

// UpsertAverage writes the mean embedding of items under ownerID with
// metadata {userId: ownerID, field: items}. An empty list is a deliberate
// skip and reports (false, nil).
func (u *Upserter) UpsertAverage(ctx context.Context, namespace, ownerID, field string, items []string) (bool, error) {
	if len(items) == 0 {
		u.logger.Debug("no items to average", "namespace", namespace, "owner", ownerID)
		return false, nil
	}

	vecs, err := u.embedAll(ctx, items)
	if err != nil {
		return false, err
	}
	mean, err := Mean(vecs)
	if err != nil {
		return false, err
	}

	err = u.store.Upsert(ctx, namespace, []core.Vector{{
		ID:     ownerID,
		Values: mean,
		Metadata: map[string]any{
			"userId": ownerID,
			field:    append([]string(nil), items...),
		},
	}})
	if err != nil {
		return false, fmt.Errorf("upsert average %s into %s: %w", ownerID, namespace, err)
	}
	return true, nil
}

// Bio is one X/Twitter bio awaiting embedding.
type Bio struct {
	UserID   string
	Username string
	Text     string
}

// BioID is the vector id of a user's bio.
func BioID(username string) string {
	return username + "-bio"
}

// UpsertBios embeds the bios one at a time, pausing between calls, and writes
// them to the x-bio namespace in one request. A bio whose embedding fails is
// dropped. It returns the user ids whose vectors were written.
func (u *Upserter) UpsertBios(ctx context.Context, bios []Bio) ([]string, error) {
	vectors := make([]core.Vector, 0, len(bios))
	written := make([]string, 0, len(bios))

	for _, bio := range bios {
		if bio.Text == "" {
			u.logger.Info("user has no bio", "username", bio.Username)
		} else if vec, err := u.embed(ctx, bio.Text); err != nil {
			u.logger.Error("error embedding bio", "username", bio.Username, "err", err)
		} else {
			id := BioID(bio.Username)
			vectors = append(vectors, core.Vector{
				ID:     id,
				Values: vec,
				Metadata: map[string]any{
					"id":       id,
					"text":     bio.Text,
					"username": bio.Username,
					"userId":   bio.UserID,
				},
			})
			written = append(written, bio.UserID)
		}

		if err := u.sleep(ctx, u.bioPace); err != nil {
			return nil, err
		}
	}

	if len(vectors) == 0 {
		return nil, nil
	}
	if err := u.store.Upsert(ctx, core.NamespaceXBio, vectors); err != nil {
		return nil, fmt.Errorf("upsert %d bios: %w", len(vectors), err)
	}
	u.logger.Info("upserted bios", "count", len(vectors))
	return written, nil
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

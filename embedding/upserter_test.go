package embedding

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/poiesic/prospector/ai/mock"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/poiesic/prospector/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStore struct {
	mu      sync.Mutex
	calls   map[string][][]core.Vector
	failing bool
}

func (s *recordingStore) Upsert(ctx context.Context, namespace string, vectors []core.Vector) error {
	if s.failing {
		return errors.New("store down")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls == nil {
		s.calls = map[string][][]core.Vector{}
	}
	s.calls[namespace] = append(s.calls[namespace], vectors)
	return nil
}

func (s *recordingStore) Query(ctx context.Context, namespace string, vector []float32, topK int, includeMetadata bool) ([]core.Match, error) {
	return nil, nil
}

func instantExecutor() *ratelimit.Executor {
	return ratelimit.NewExecutor(
		ratelimit.WithCooldown(time.Millisecond),
		ratelimit.WithClock(nil, func(ctx context.Context, d time.Duration) error { return ctx.Err() }),
	)
}

func newTestUpserter(t *testing.T, embedder *mock.MockEmbedder, store *recordingStore, pauses *[]time.Duration) *Upserter {
	t.Helper()
	u, err := NewUpserter(embedder, store,
		WithExecutor(instantExecutor()),
		WithSleep(func(ctx context.Context, d time.Duration) error {
			if pauses != nil {
				*pauses = append(*pauses, d)
			}
			return nil
		}),
	)
	require.NoError(t, err)
	return u
}

func TestNewUpserter_Requires(t *testing.T) {
	_, err := NewUpserter(nil, &recordingStore{})
	assert.Error(t, err)
	_, err = NewUpserter(mock.NewMockEmbedder(), nil)
	assert.Error(t, err)
}

func TestUpsertItems_SkipsNonASCII(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	store := &recordingStore{}
	u := newTestUpserter(t, embedder, store, nil)

	res, err := u.UpsertItems(context.Background(), core.NamespaceTechnologies, "c1", "technology", []string{"Rust", "café"})
	require.NoError(t, err)
	assert.Equal(t, ItemResult{Upserted: 1, Skipped: 1}, res)
	assert.Equal(t, []string{"Rust"}, embedder.Texts(), "the non-ASCII item is never embedded")

	calls := store.calls[core.NamespaceTechnologies]
	require.Len(t, calls, 1)
	v := calls[0][0]
	assert.Equal(t, "c1", v.ID)
	assert.Equal(t, map[string]any{"candidateId": "c1", "technology": "Rust"}, v.Metadata)
}

func TestUpsertItems_LogsSkippedItem(t *testing.T) {
	var buf bytes.Buffer
	u, err := NewUpserter(mock.NewMockEmbedder(), &recordingStore{},
		WithExecutor(instantExecutor()),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)
	require.NoError(t, err)

	res, err := u.UpsertItems(context.Background(), core.NamespaceTechnologies, "c1", "technology", []string{"café"})
	require.NoError(t, err)
	assert.Equal(t, ItemResult{Skipped: 1}, res)

	out := buf.String()
	assert.Contains(t, out, "skipping non-ASCII item")
	assert.Contains(t, out, "item=café")
	assert.Contains(t, out, "owner=c1")
	assert.Contains(t, out, "component=upserter")
}

func TestUpsertItems_EmbedFailure(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("model unavailable")
	}
	u := newTestUpserter(t, embedder, &recordingStore{}, nil)

	_, err := u.UpsertItems(context.Background(), core.NamespaceJobTitles, "c1", "jobTitle", []string{"CTO"})
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
}

func TestUpsertItems_RetriesRateLimit(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	calls := 0
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("Rate limit reached for requests")
		}
		return []float32{1, 0}, nil
	}
	store := &recordingStore{}
	u := newTestUpserter(t, embedder, store, nil)

	res, err := u.UpsertItems(context.Background(), core.NamespaceTechnologies, "c1", "technology", []string{"Go"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Upserted)
	assert.Equal(t, 2, calls)
}

func TestUpsertAverage(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1, 2, 3}, {3, 4, 5}}, nil
	}
	store := &recordingStore{}
	u := newTestUpserter(t, embedder, store, nil)

	ok, err := u.UpsertAverage(context.Background(), core.NamespaceSkillAverage, "u1", "skills", []string{"Go", "SQL"})
	require.NoError(t, err)
	assert.True(t, ok)

	calls := store.calls[core.NamespaceSkillAverage]
	require.Len(t, calls, 1)
	v := calls[0][0]
	assert.Equal(t, "u1", v.ID)
	assert.Equal(t, []float32{2, 3, 4}, v.Values)
	assert.Equal(t, "u1", v.Metadata["userId"])
	assert.Equal(t, []string{"Go", "SQL"}, v.Metadata["skills"])
}

func TestUpsertAverage_EmptyIsDeliberateSkip(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	store := &recordingStore{}
	u := newTestUpserter(t, embedder, store, nil)

	ok, err := u.UpsertAverage(context.Background(), core.NamespaceSkillAverage, "u1", "skills", nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, embedder.CallCount())
	assert.Empty(t, store.calls)
}

func TestUpsertAverage_StoreFailure(t *testing.T) {
	u := newTestUpserter(t, mock.NewMockEmbedder(), &recordingStore{failing: true}, nil)
	ok, err := u.UpsertAverage(context.Background(), core.NamespaceSkillAverage, "u1", "skills", []string{"Go"})
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestUpsertAverage_CountMismatch(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1}}, nil
	}
	u := newTestUpserter(t, embedder, &recordingStore{}, nil)
	_, err := u.UpsertAverage(context.Background(), core.NamespaceSkillAverage, "u1", "skills", []string{"Go", "SQL"})
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
}

func TestUpsertAverage_Idempotent(t *testing.T) {
	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	defer stores.Close()

	u, err := NewUpserter(mock.NewMockEmbedder(), stores.Vectors, WithExecutor(instantExecutor()))
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		ok, err := u.UpsertAverage(ctx, core.NamespaceJobTitleAverage, "u1", "jobTitles", []string{"CTO", "Engineer"})
		require.NoError(t, err)
		require.True(t, ok)
	}

	query := mock.DeterministicVector("CTO", mock.DefaultDimensions)
	matches, err := stores.Vectors.Query(ctx, core.NamespaceJobTitleAverage, query, 10, true)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestUpsertBios(t *testing.T) {
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		if text == "broken" {
			return nil, errors.New("bad input")
		}
		return []float32{1, 1}, nil
	}
	store := &recordingStore{}
	var pauses []time.Duration
	u := newTestUpserter(t, embedder, store, &pauses)

	written, err := u.UpsertBios(context.Background(), []Bio{
		{UserID: "u1", Username: "ada", Text: "compilers"},
		{UserID: "u2", Username: "bob", Text: "broken"},
		{UserID: "u3", Username: "cy", Text: ""},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, written)
	assert.Len(t, pauses, 3, "one pause per bio")
	assert.Equal(t, DefaultBioPace, pauses[0])

	calls := store.calls[core.NamespaceXBio]
	require.Len(t, calls, 1, "one batched upsert")
	require.Len(t, calls[0], 1)
	v := calls[0][0]
	assert.Equal(t, "ada-bio", v.ID)
	assert.Equal(t, map[string]any{"id": "ada-bio", "text": "compilers", "username": "ada", "userId": "u1"}, v.Metadata)
}

func TestUpsertBios_StoreFailureWritesNothing(t *testing.T) {
	u := newTestUpserter(t, mock.NewMockEmbedder(), &recordingStore{failing: true}, nil)
	written, err := u.UpsertBios(context.Background(), []Bio{{UserID: "u1", Username: "ada", Text: "hi"}})
	assert.Error(t, err)
	assert.Empty(t, written)
}

package jobs

import (
	"bytes"
	"context"
	"testing"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXScore(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	h.insert(t, &core.Person{
		TwitterUsername:    "gopher",
		TwitterBio:         "I write Go",
		NormalizedLocation: "NEW YORK",
		Twitter:            &core.TwitterStats{FollowerCount: 500, FollowingCount: 100, FollowerToFollowing: 5},
	})
	j := newJobs(h.deps())
	_, err := j.UpsertXBios(ctx)
	require.NoError(t, err)

	searcher, err := search.NewSearcher(h.stores.Persons, h.stores.Vectors, h.embedder, search.WithExecutor(instantExecutor()))
	require.NoError(t, err)
	deps := h.deps()
	deps.Searcher = searcher

	var out bytes.Buffer
	results, err := newJobs(deps).XScore(ctx, "I write Go", &out)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "gopher", results[0].Username)
	assert.Contains(t, out.String(), "https://x.com/gopher, Total Score:")
	assert.Contains(t, out.String(), "Location: NEW YORK")
}

func TestSimilarTechnologies(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	_, err := h.upserter.UpsertItems(ctx, core.NamespaceTechnologies, "p1", "technology", []string{"Go"})
	require.NoError(t, err)

	searcher, err := search.NewSearcher(h.stores.Persons, h.stores.Vectors, h.embedder, search.WithExecutor(instantExecutor()))
	require.NoError(t, err)
	deps := h.deps()
	deps.Searcher = searcher

	var out bytes.Buffer
	matches, err := newJobs(deps).SimilarTechnologies(ctx, "Go", &out)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "p1", matches[0].CandidateID)
	assert.Contains(t, out.String(), "Go")
	assert.Contains(t, out.String(), "p1")
}

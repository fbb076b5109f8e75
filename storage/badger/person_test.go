package badger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStores(t *testing.T) *Stores {
	t.Helper()
	stores, err := NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })
	return stores
}

func TestPersonInsertAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	p := &core.Person{
		LinkedInURL:     "https://www.linkedin.com/in/ada",
		Name:            "Ada",
		TopTechnologies: []string{"Go"},
		LinkedInData:    json.RawMessage(`{"firstName":"Ada"}`),
	}
	require.NoError(t, repo.Insert(ctx, p))
	assert.NotEmpty(t, p.ID)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, []string{"Go"}, got.TopTechnologies)
	assert.JSONEq(t, `{"firstName":"Ada"}`, string(got.LinkedInData))

	byURL, err := repo.FindByLinkedInURL(ctx, "https://www.linkedin.com/in/ada")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byURL.ID)

	_, err = repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = repo.FindByGitHubLogin(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPersonInsert_Duplicates(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	require.NoError(t, repo.Insert(ctx, &core.Person{GitHubLogin: "Octo"}))

	err := repo.Insert(ctx, &core.Person{GitHubLogin: "octo"})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	found, err := repo.FindByGitHubLogin(ctx, "OCTO")
	require.NoError(t, err)
	assert.Equal(t, "Octo", found.GitHubLogin)

	require.NoError(t, repo.Insert(ctx, &core.Person{ID: "fixed", TwitterUsername: "x"}))
	assert.ErrorIs(t, repo.Insert(ctx, &core.Person{ID: "fixed", TwitterUsername: "y"}), storage.ErrDuplicateKey)
}

func TestPersonInsert_Invalid(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	assert.ErrorIs(t, repo.Insert(ctx, &core.Person{}), core.ErrInvalidPerson)
	assert.ErrorIs(t, repo.Insert(ctx, &core.Person{LinkedInURL: "https://linkedin.com/in/a/"}), core.ErrInvalidLinkedInURL)
}

func TestPersonInsert_ConcurrentSameURL(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Insert(ctx, &core.Person{LinkedInURL: "https://www.linkedin.com/in/same"})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)

	all, err := repo.Select(ctx, storage.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPersonUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	p := &core.Person{GitHubLogin: "octo", Location: "Brooklyn"}
	require.NoError(t, repo.Insert(ctx, p))
	other := &core.Person{LinkedInURL: "https://www.linkedin.com/in/taken"}
	require.NoError(t, repo.Insert(ctx, other))

	require.NoError(t, repo.Update(ctx, p.ID, core.PersonPatch{
		NormalizedLocation: core.Ptr("NEW YORK"),
		LinkedInURL:        core.Ptr("https://www.linkedin.com/in/octo"),
		IsWhopUser:         core.Ptr(false),
	}))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "NEW YORK", got.NormalizedLocation)
	assert.Equal(t, "Brooklyn", got.Location, "untouched fields survive")
	require.NotNil(t, got.IsWhopUser)
	assert.False(t, *got.IsWhopUser)

	byURL, err := repo.FindByLinkedInURL(ctx, "https://www.linkedin.com/in/octo")
	require.NoError(t, err)
	assert.Equal(t, p.ID, byURL.ID)

	// Moving to a URL owned by someone else fails and changes nothing.
	err = repo.Update(ctx, p.ID, core.PersonPatch{LinkedInURL: core.Ptr("https://www.linkedin.com/in/taken")})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// Changing the URL releases the old index entry.
	require.NoError(t, repo.Update(ctx, p.ID, core.PersonPatch{LinkedInURL: core.Ptr("https://www.linkedin.com/in/octo2")}))
	_, err = repo.FindByLinkedInURL(ctx, "https://www.linkedin.com/in/octo")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, repo.Update(ctx, "missing", core.PersonPatch{TwitterBio: core.Ptr("x")}), storage.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, p.ID, core.PersonPatch{LinkedInURL: core.Ptr("linkedin.com/in/x/")}), core.ErrInvalidLinkedInURL)
	assert.NoError(t, repo.Update(ctx, "missing", core.PersonPatch{}), "empty patch is a no-op")
}

func TestPersonMarkDone_Monotonic(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	p := &core.Person{GitHubLogin: "octo"}
	require.NoError(t, repo.Insert(ctx, p))

	pending, err := repo.Select(ctx, storage.Filter{Pending: core.ArtifactBio})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	require.NoError(t, repo.MarkDone(ctx, p.ID, core.ArtifactBio))
	require.NoError(t, repo.MarkDone(ctx, p.ID, core.ArtifactBio), "marking twice is harmless")

	pending, err = repo.Select(ctx, storage.Filter{Pending: core.ArtifactBio})
	require.NoError(t, err)
	assert.Empty(t, pending, "completed rows are never reselected")

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, got.Done(core.ArtifactBio))
	assert.False(t, got.Done(core.ArtifactWhop))

	assert.ErrorIs(t, repo.MarkDone(ctx, p.ID, "bogus"), core.ErrUnknownArtifact)
	assert.ErrorIs(t, repo.MarkDone(ctx, "missing", core.ArtifactBio), storage.ErrNotFound)
}

func TestPersonSelect_FiltersAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := newTestStores(t).Persons

	for i := 0; i < 5; i++ {
		p := &core.Person{
			ID:          fmt.Sprintf("p%d", i),
			GitHubLogin: fmt.Sprintf("user%d", i),
			IsEngineer:  i%2 == 0,
		}
		if i < 3 {
			p.Email = fmt.Sprintf("u%d@example.com", i)
		}
		require.NoError(t, repo.Insert(ctx, p))
	}

	withEmail, err := repo.Select(ctx, storage.Filter{Has: []core.Field{core.FieldEmail}})
	require.NoError(t, err)
	require.Len(t, withEmail, 3)
	assert.Equal(t, "p0", withEmail[0].ID, "ordered by id")

	page, err := repo.Select(ctx, storage.Filter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, []string{"p2", "p3"}, []string{page[0].ID, page[1].ID})

	engineers, err := repo.Select(ctx, storage.Filter{Engineer: core.Ptr(true)})
	require.NoError(t, err)
	assert.Len(t, engineers, 3)

	byID, err := repo.Select(ctx, storage.Filter{IDs: []string{"p4", "p1", "p4", "nope"}})
	require.NoError(t, err)
	require.Len(t, byID, 2)
	assert.Equal(t, "p1", byID[0].ID)

	_, err = repo.Select(ctx, storage.Filter{Pending: "bogus"})
	assert.ErrorIs(t, err, storage.ErrInvalidQuery)
}

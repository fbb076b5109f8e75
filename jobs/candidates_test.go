package jobs

import (
	"context"
	"testing"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/enrich"
	"github.com/poiesic/prospector/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCandidates(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	profile, err := providers.ParseLinkedInProfile(rawJSON(adaProfileJSON))
	require.NoError(t, err)
	candidates, err := enrich.NewCandidateIngester(
		&fakeProfiles{profiles: map[string]*providers.LinkedInProfile{adaURL: profile}},
		h.deriver, h.stores.Persons, h.upserter,
	)
	require.NoError(t, err)

	ada := h.insert(t, &core.Person{GitHubLogin: "ada", LinkedInURL: adaURL})
	ghost := h.insert(t, &core.Person{LinkedInURL: "https://www.linkedin.com/in/ghost"})
	done := h.insert(t, &core.Person{LinkedInURL: "https://www.linkedin.com/in/done", LinkedInData: rawJSON(`{"firstName": "Done"}`)})

	deps := h.deps()
	deps.Candidates = candidates
	report, err := newJobs(deps).AddCandidates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Selected, "people with a snapshot are already candidates")
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed, "a profile that cannot be scraped fails")

	stored := h.get(t, ada.ID)
	assert.Equal(t, "ada", stored.GitHubLogin)
	assert.Equal(t, "Ada Lovelace", stored.Name)
	assert.True(t, stored.Has(core.FieldLinkedInData))
	assert.Equal(t, []string{"Go", "Kubernetes"}, stored.TopTechnologies)
	assert.True(t, stored.Done(core.ArtifactSkillAverage))

	assert.False(t, h.get(t, ghost.ID).Has(core.FieldLinkedInData))
	kept, err := providers.ParseLinkedInProfile(h.get(t, done.ID).LinkedInData)
	require.NoError(t, err)
	assert.Equal(t, "Done", kept.FirstName)
}

func TestGitHubEnrich(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)

	user, err := providers.ParseGitHubUser(rawJSON(`{"login": "octo", "name": "Octo Cat"}`))
	require.NoError(t, err)
	people, err := enrich.NewGitHubIngester(
		enrich.GitHubSources{GitHub: &fakeGitHub{users: map[string]*providers.GitHubUser{"octo": user}}},
		h.deriver, h.stores.Persons,
	)
	require.NoError(t, err)

	deps := h.deps()
	deps.GitHubPeople = people
	report, err := newJobs(deps).GitHubEnrich(ctx, []string{"octo", " octo ", "", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Selected, "blank and repeated logins are dropped")
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 1, report.Failed)

	p, err := h.stores.Persons.FindByGitHubLogin(ctx, "octo")
	require.NoError(t, err)
	assert.Equal(t, "Octo Cat", p.Name)
}

package enrich

import (
	"testing"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/providers"
	"github.com/stretchr/testify/assert"
)

func TestMerge_NilSources(t *testing.T) {
	p := &core.Person{Name: "kept"}
	MergeGitHub(p, nil)
	MergeTwitter(p, nil, nil)
	MergeLinkedIn(p, nil, CandidateFeatures{MiniSummary: "ignored"})
	assert.Equal(t, &core.Person{Name: "kept"}, p)
}

func TestMergeGitHub_LinkedInURL(t *testing.T) {
	u := mustGitHubUser(t, octoUserJSON)
	p := &core.Person{}
	MergeGitHub(p, u)
	assert.Equal(t, adaURL, p.LinkedInURL, "social account URL is normalized")
	assert.Equal(t, "octo", p.TwitterUsername)
	assert.NotEmpty(t, p.GitHubData)

	u.SocialAccounts.Nodes = []providers.SocialAccount{{Provider: "LINKEDIN", URL: "https://linkedin.com/company/acme"}}
	p = &core.Person{}
	MergeGitHub(p, u)
	assert.Empty(t, p.LinkedInURL, "non-profile links are ignored")
}

func TestMergeLinkedIn_KeepsExistingFields(t *testing.T) {
	profile := mustProfile(t, adaProfileJSON)
	p := &core.Person{Name: "Octo", Location: "Paris"}
	MergeLinkedIn(p, profile, CandidateFeatures{WorkedInBigTech: core.Ptr(true)})

	assert.Equal(t, "Octo", p.Name)
	assert.Equal(t, "Paris", p.Location)
	assert.Equal(t, "https://img/ada", p.Image)
	assert.Equal(t, adaURL, p.LinkedInURL)
	assert.True(t, p.WorkedInBigTech)
	assert.False(t, p.LivesNearBrooklyn)
}

func TestCandidatePatch_ListsNeverNil(t *testing.T) {
	patch := candidatePatch(&core.Person{})
	assert.NotNil(t, patch.TopTechnologies)
	assert.NotNil(t, patch.TopFeatures)
	assert.NotNil(t, patch.JobTitles)
	assert.False(t, patch.IsEmpty())
}

package badger

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullPerson() core.Person {
	yes, no := true, false
	return core.Person{
		ID:                 "p1",
		GitHubLogin:        "ada",
		LinkedInURL:        "https://www.linkedin.com/in/ada",
		TwitterUsername:    "ada_x",
		TwitterID:          "42",
		GitHubData:         json.RawMessage(`{"login":"ada"}`),
		LinkedInData:       json.RawMessage(`{"firstName":"Ada"}`),
		TwitterData:        json.RawMessage(`{"description":"compilers"}`),
		Name:               "Ada Lovelace",
		Email:              "ada@example.com",
		Location:           "Brooklyn, NY",
		NormalizedLocation: "NEW YORK",
		NormalizedCountry:  "UNITED STATES",
		TwitterBio:         "compilers",
		Summary:            "engineer",
		TopTechnologies:    []string{"Go", "SQL"},
		TopFeatures:        []string{"search"},
		JobTitles:          []string{"Staff Engineer"},
		CompanyIDs:         []string{"c1"},
		IsEngineer:         true,
		LivesNearBrooklyn:  true,
		IsWhopUser:         &yes,
		IsWhopCreator:      &no,
		GitHub: &core.GitHubStats{
			Followers:           10,
			Following:           0,
			FollowerToFollowing: 10,
			ContributionYears:   []int{2024, 2025},
			TotalStars:          7,
			Languages:           map[string]core.LanguageStats{"Go": {RepoCount: 2, Stars: 7}},
			UniqueTopics:        []string{"cli"},
			SponsoredProjects:   []string{"badger"},
			Organizations:       []core.Organization{{Name: "Go", Login: "golang", MembersCount: 3}},
		},
		Twitter:   &core.TwitterStats{FollowerCount: 5, FollowingCount: 2, FollowerToFollowing: 2.5, AverageLikes: 1.5},
		Artifacts: map[core.ArtifactKind]core.Status{core.ArtifactBio: core.StatusDone},
		CreatedAt: time.Date(2025, 3, 1, 12, 30, 0, 123000, time.UTC),
	}
}

func TestCodec_PersonRoundTrip(t *testing.T) {
	p := fullPerson()

	got, err := unmarshal(core.PersonMUS, marshal(core.PersonMUS, p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCodec_PersonOptionalFields(t *testing.T) {
	got, err := unmarshal(core.PersonMUS, marshal(core.PersonMUS, core.Person{ID: "p2"}))
	require.NoError(t, err)
	assert.Equal(t, "p2", got.ID)
	assert.Nil(t, got.IsWhopUser)
	assert.Nil(t, got.GitHub)
	assert.Nil(t, got.Twitter)
	assert.Empty(t, got.TopTechnologies)
	assert.False(t, got.Has(core.FieldLinkedInData))
	assert.True(t, got.CreatedAt.IsZero())
}

func TestCodec_Truncated(t *testing.T) {
	data := marshal(core.PersonMUS, fullPerson())

	_, err := unmarshal(core.PersonMUS, data[:len(data)/2])
	assert.ErrorIs(t, err, storage.ErrSerializationFailed)
}

func TestCodec_VectorRecord(t *testing.T) {
	rec, err := toRecord(core.Vector{ID: "v", Values: []float32{0.25, -1}, Metadata: map[string]any{"userId": "p1"}})
	require.NoError(t, err)

	back, err := unmarshal(core.VectorRecordMUS, marshal(core.VectorRecordMUS, rec))
	require.NoError(t, err)
	v, err := fromRecord(back)
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, -1}, v.Values)
	assert.Equal(t, map[string]any{"userId": "p1"}, v.Metadata)

	bare, err := toRecord(core.Vector{ID: "w", Values: []float32{1}})
	require.NoError(t, err)
	v, err = fromRecord(bare)
	require.NoError(t, err)
	assert.Nil(t, v.Metadata)
}

func TestCodec_Company(t *testing.T) {
	c := core.Company{ID: "c1", Name: "Acme", LinkedInURL: "https://www.linkedin.com/company/acme", TopTechnologies: []string{"Go"}}

	got, err := unmarshal(core.CompanyMUS, marshal(core.CompanyMUS, c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

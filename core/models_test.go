package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonArtifacts(t *testing.T) {
	p := &Person{ID: NewID(), GitHubLogin: "octocat"}

	assert.Equal(t, StatusPending, p.Status(ArtifactBio))
	assert.Len(t, p.Remaining(), len(ArtifactKinds))

	p.MarkDone(ArtifactBio, ArtifactWhop)
	assert.True(t, p.Done(ArtifactBio))
	assert.True(t, p.Done(ArtifactWhop))
	assert.False(t, p.Done(ArtifactSkillAverage))
	assert.NotContains(t, p.Remaining(), ArtifactBio)

	// Marking again is a no-op and never clears.
	p.MarkDone(ArtifactBio)
	assert.Equal(t, StatusDone, p.Status(ArtifactBio))
}

func TestPersonHas(t *testing.T) {
	p := &Person{
		TwitterBio:  "builder",
		TwitterData: json.RawMessage(`{"description":"builder"}`),
		GitHubData:  json.RawMessage(`null`),
		JobTitles:   []string{"Engineer"},
	}

	assert.True(t, p.Has(FieldTwitterBio))
	assert.True(t, p.Has(FieldTwitterData))
	assert.True(t, p.Has(FieldJobTitles))
	assert.False(t, p.Has(FieldGitHubData), "a JSON null payload counts as absent")
	assert.False(t, p.Has(FieldEmail))
	assert.False(t, p.Has(Field("nope")))
}

func TestPersonPatchApply(t *testing.T) {
	p := &Person{NormalizedLocation: "UNKNOWN", GitHubCompany: "acme"}

	patch := PersonPatch{
		NormalizedLocation: Ptr("NEW YORK"),
		IsWhopUser:         Ptr(true),
		CompanyIDs:         []string{"c1"},
	}
	require.False(t, patch.IsEmpty())
	patch.Apply(p)

	assert.Equal(t, "NEW YORK", p.NormalizedLocation)
	assert.Equal(t, "acme", p.GitHubCompany, "unset fields are untouched")
	require.NotNil(t, p.IsWhopUser)
	assert.True(t, *p.IsWhopUser)
	assert.Nil(t, p.IsWhopCreator)
	assert.Equal(t, []string{"c1"}, p.CompanyIDs)

	assert.True(t, PersonPatch{}.IsEmpty())
}

func TestValidatePerson(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p := &Person{ID: NewID(), LinkedInURL: "https://www.linkedin.com/in/jdoe"}
		assert.NoError(t, ValidatePerson(p))
	})

	t.Run("nil", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePerson(nil), ErrInvalidPerson)
	})

	t.Run("missing id", func(t *testing.T) {
		assert.ErrorIs(t, ValidatePerson(&Person{GitHubLogin: "x"}), ErrInvalidPerson)
	})

	t.Run("no identifier", func(t *testing.T) {
		err := ValidatePerson(&Person{ID: "1"})
		assert.ErrorIs(t, err, ErrMissingIdentifier)
	})

	t.Run("unnormalized url", func(t *testing.T) {
		err := ValidatePerson(&Person{ID: "1", LinkedInURL: "http://linkedin.com/in/jdoe/"})
		assert.ErrorIs(t, err, ErrInvalidLinkedInURL)
	})

	t.Run("unknown artifact", func(t *testing.T) {
		p := &Person{ID: "1", GitHubLogin: "x", Artifacts: map[ArtifactKind]Status{"mystery": StatusDone}}
		assert.ErrorIs(t, ValidatePerson(p), ErrUnknownArtifact)
	})
}

func TestValidateCompany(t *testing.T) {
	assert.NoError(t, ValidateCompany(&Company{ID: "c1", Name: "Acme"}))
	assert.ErrorIs(t, ValidateCompany(&Company{Name: "Acme"}), ErrInvalidCompany)
	assert.ErrorIs(t, ValidateCompany(&Company{ID: "c1"}), ErrInvalidCompany)
}

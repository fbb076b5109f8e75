package core

import "fmt"

// ArtifactKind names one derived artifact whose completion is tracked per person.
type ArtifactKind string

const (
	ArtifactSkillAverage    ArtifactKind = "skill-average"
	ArtifactFeatureAverage  ArtifactKind = "feature-average"
	ArtifactJobTitleAverage ArtifactKind = "job-title-average"
	ArtifactBio             ArtifactKind = "bio"
	ArtifactGitHubCompany   ArtifactKind = "github-company"
	ArtifactLocation        ArtifactKind = "location"
	ArtifactWhop            ArtifactKind = "whop"
	ArtifactCompanyIDs      ArtifactKind = "company-ids"
)

// ArtifactKinds lists every tracked artifact in a stable order.
var ArtifactKinds = []ArtifactKind{
	ArtifactSkillAverage,
	ArtifactFeatureAverage,
	ArtifactJobTitleAverage,
	ArtifactBio,
	ArtifactGitHubCompany,
	ArtifactLocation,
	ArtifactWhop,
	ArtifactCompanyIDs,
}

// Valid reports whether k is a known artifact kind.
func (k ArtifactKind) Valid() bool {
	for _, known := range ArtifactKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Status is the completion state of one artifact.
type Status int

const (
	StatusPending Status = iota
	StatusDone
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusDone:
		return "done"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Field names a Person column that selection filters can test for presence.
// The value doubles as the relational column name.
type Field string

const (
	FieldGitHubLogin        Field = "github_login"
	FieldLinkedInURL        Field = "linkedin_url"
	FieldTwitterUsername    Field = "twitter_username"
	FieldEmail              Field = "email"
	FieldLocation           Field = "location"
	FieldNormalizedLocation Field = "normalized_location"
	FieldGitHubCompany      Field = "github_company"
	FieldTwitterBio         Field = "twitter_bio"
	FieldGitHubData         Field = "github_data"
	FieldLinkedInData       Field = "linkedin_data"
	FieldTwitterData        Field = "twitter_data"
	FieldTopTechnologies    Field = "top_technologies"
	FieldTopFeatures        Field = "top_features"
	FieldJobTitles          Field = "job_titles"
)

// Has reports whether the field holds a non-empty value on p.
func (p *Person) Has(f Field) bool {
	switch f {
	case FieldGitHubLogin:
		return p.GitHubLogin != ""
	case FieldLinkedInURL:
		return p.LinkedInURL != ""
	case FieldTwitterUsername:
		return p.TwitterUsername != ""
	case FieldEmail:
		return p.Email != ""
	case FieldLocation:
		return p.Location != ""
	case FieldNormalizedLocation:
		return p.NormalizedLocation != ""
	case FieldGitHubCompany:
		return p.GitHubCompany != ""
	case FieldTwitterBio:
		return p.TwitterBio != ""
	case FieldGitHubData:
		return isPresent(p.GitHubData)
	case FieldLinkedInData:
		return isPresent(p.LinkedInData)
	case FieldTwitterData:
		return isPresent(p.TwitterData)
	case FieldTopTechnologies:
		return len(p.TopTechnologies) > 0
	case FieldTopFeatures:
		return len(p.TopFeatures) > 0
	case FieldJobTitles:
		return len(p.JobTitles) > 0
	default:
		return false
	}
}

func isPresent(raw []byte) bool {
	return len(raw) > 0 && string(raw) != "null"
}

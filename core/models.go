package core

//go:generate go run ../cmd/musgen

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque identifier for a Person or Company.
func NewID() string {
	return uuid.NewString()
}

// Person is the canonical candidate record assembled from every provider.
//
// Provider payloads are kept verbatim as raw JSON snapshots; every typed field
// is derived from them once at ingestion time. All payload and derived fields
// are independently optional.
type Person struct {
	ID string `json:"id"`

	// External identifiers. LinkedInURL is always stored normalized.
	GitHubLogin     string `json:"githubLogin,omitempty"`
	LinkedInURL     string `json:"linkedinUrl,omitempty"`
	TwitterUsername string `json:"twitterUsername,omitempty"`
	TwitterID       string `json:"twitterId,omitempty"`

	// Raw provider snapshots.
	GitHubData   json.RawMessage `json:"githubData,omitempty"`
	LinkedInData json.RawMessage `json:"linkedinData,omitempty"`
	TwitterData  json.RawMessage `json:"twitterData,omitempty"`

	Name               string `json:"name,omitempty"`
	Email              string `json:"email,omitempty"`
	Image              string `json:"image,omitempty"`
	Location           string `json:"location,omitempty"`
	NormalizedLocation string `json:"normalizedLocation,omitempty"`
	NormalizedCountry  string `json:"normalizedCountry,omitempty"`
	WebsiteURL         string `json:"websiteUrl,omitempty"`
	GitHubBio          string `json:"githubBio,omitempty"`
	GitHubCompany      string `json:"githubCompany,omitempty"`
	TwitterBio         string `json:"twitterBio,omitempty"`
	MiniSummary        string `json:"miniSummary,omitempty"`
	Summary            string `json:"summary,omitempty"`

	TopTechnologies []string `json:"topTechnologies,omitempty"`
	TopFeatures     []string `json:"topFeatures,omitempty"`
	JobTitles       []string `json:"jobTitles,omitempty"`
	CompanyIDs      []string `json:"companyIds,omitempty"`

	IsEngineer        bool  `json:"isEngineer"`
	WorkedInBigTech   bool  `json:"workedInBigTech"`
	LivesNearBrooklyn bool  `json:"livesNearBrooklyn"`
	IsWhopUser        *bool `json:"isWhopUser,omitempty"`
	IsWhopCreator     *bool `json:"isWhopCreator,omitempty"`

	GitHub  *GitHubStats  `json:"github,omitempty"`
	Twitter *TwitterStats `json:"twitter,omitempty"`

	Artifacts map[ArtifactKind]Status `json:"artifacts,omitempty"`
	CreatedAt time.Time               `json:"createdAt"`
}

// Status reports the completion state of the given artifact.
// Artifacts that were never recorded are pending.
func (p *Person) Status(kind ArtifactKind) Status {
	if p.Artifacts == nil {
		return StatusPending
	}
	return p.Artifacts[kind]
}

// Done reports whether the artifact has been completed.
func (p *Person) Done(kind ArtifactKind) bool {
	return p.Status(kind) == StatusDone
}

// MarkDone records the artifacts as completed. It never clears a status.
func (p *Person) MarkDone(kinds ...ArtifactKind) {
	if len(kinds) == 0 {
		return
	}
	if p.Artifacts == nil {
		p.Artifacts = make(map[ArtifactKind]Status, len(kinds))
	}
	for _, k := range kinds {
		p.Artifacts[k] = StatusDone
	}
}

// Remaining lists the known artifacts that are still pending for this person.
func (p *Person) Remaining() []ArtifactKind {
	var out []ArtifactKind
	for _, k := range ArtifactKinds {
		if !p.Done(k) {
			out = append(out, k)
		}
	}
	return out
}

// GitHubStats holds aggregates derived from the GitHub payload.
type GitHubStats struct {
	Followers               int                      `json:"followers"`
	Following               int                      `json:"following"`
	FollowerToFollowing     float64                  `json:"followerToFollowingRatio"`
	ContributionYears       []int                    `json:"contributionYears,omitempty"`
	TotalCommits            int                      `json:"totalCommits"`
	RestrictedContributions int                      `json:"restrictedContributions"`
	TotalRepositories       int                      `json:"totalRepositories"`
	TotalStars              int                      `json:"totalStars"`
	TotalForks              int                      `json:"totalForks"`
	Languages               map[string]LanguageStats `json:"languages,omitempty"`
	UniqueTopics            []string                 `json:"uniqueTopics,omitempty"`
	SponsorsCount           int                      `json:"sponsorsCount"`
	SponsoredProjects       []string                 `json:"sponsoredProjects,omitempty"`
	Organizations           []Organization           `json:"organizations,omitempty"`
}

// LanguageStats counts repositories and stars for one primary language.
type LanguageStats struct {
	RepoCount int `json:"repoCount"`
	Stars     int `json:"stars"`
}

// Organization is a GitHub organization membership.
type Organization struct {
	Name         string `json:"name"`
	Login        string `json:"login"`
	Description  string `json:"description,omitempty"`
	MembersCount int    `json:"membersCount"`
}

// TwitterStats holds aggregates derived from the X/Twitter payload.
type TwitterStats struct {
	FollowerCount       int     `json:"followerCount"`
	FollowingCount      int     `json:"followingCount"`
	FollowerToFollowing float64 `json:"followerToFollowingRatio"`
	AverageLikes        float64 `json:"averageLikes"`
}

// Company is an employer resolved from LinkedIn position history.
type Company struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	LinkedInURL     string   `json:"linkedinUrl,omitempty"`
	TopTechnologies []string `json:"topTechnologies,omitempty"`
}

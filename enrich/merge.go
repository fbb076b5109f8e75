package enrich

import (
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/providers"
)

// CandidateFeatures are the model-derived fields of a LinkedIn profile.
type CandidateFeatures struct {
	MiniSummary string
	Summary     string
	Skills      derive.Skills
	JobTitles   []string
	// Condition answers are nil when they were not asked.
	WorkedInBigTech   *bool
	LivesNearBrooklyn *bool
}

// MergeGitHub copies the GitHub profile and its aggregates onto p.
func MergeGitHub(p *core.Person, u *providers.GitHubUser) {
	if u == nil {
		return
	}
	p.GitHubLogin = u.Login
	p.GitHubData = u.Raw
	p.Name = u.Name
	p.Email = u.Email
	p.Image = u.AvatarURL
	p.Location = u.Location
	p.GitHubBio = u.Bio
	p.GitHubCompany = u.Company
	p.WebsiteURL = u.WebsiteURL
	if u.TwitterUsername != "" {
		p.TwitterUsername = u.TwitterUsername
	}
	if raw, ok := u.LinkedInURL(); ok {
		if url, ok := core.NormalizeLinkedInURL(raw); ok {
			p.LinkedInURL = url
		}
	}
	p.GitHub = derive.GitHubAggregates(u)
}

// MergeTwitter copies the X profile and its aggregates onto p.
func MergeTwitter(p *core.Person, u *providers.TwitterUser, tweets []providers.Tweet) {
	if u == nil {
		return
	}
	p.TwitterData = u.Raw
	p.TwitterID = u.IDStr
	p.TwitterBio = u.Description
	if p.TwitterUsername == "" {
		p.TwitterUsername = u.ScreenName
	}
	p.Twitter = derive.TwitterAggregates(u, tweets)
}

// MergeLinkedIn copies the profile snapshot and its derived features onto p.
// Fields already set from another provider are kept when the profile has no
// value for them.
func MergeLinkedIn(p *core.Person, profile *providers.LinkedInProfile, f CandidateFeatures) {
	if profile == nil {
		return
	}
	p.LinkedInData = profile.Raw
	if url, ok := core.NormalizeLinkedInURL(profile.LinkedInURL); ok && p.LinkedInURL == "" {
		p.LinkedInURL = url
	}
	if p.Name == "" {
		p.Name = profile.Name()
	}
	if p.Location == "" {
		p.Location = profile.Location
	}
	if p.Image == "" {
		p.Image = profile.PhotoURL
	}

	p.MiniSummary = f.MiniSummary
	p.Summary = f.Summary
	p.TopTechnologies = f.Skills.Tech
	p.TopFeatures = f.Skills.Features
	p.IsEngineer = f.Skills.IsEngineer
	p.JobTitles = f.JobTitles
	if f.WorkedInBigTech != nil {
		p.WorkedInBigTech = *f.WorkedInBigTech
	}
	if f.LivesNearBrooklyn != nil {
		p.LivesNearBrooklyn = *f.LivesNearBrooklyn
	}
}

// MergeWhop records the identity check result and marks it done.
func MergeWhop(p *core.Person, s providers.WhopStatus) {
	p.IsWhopUser = core.Ptr(s.IsUser)
	p.IsWhopCreator = core.Ptr(s.IsCreator)
	p.MarkDone(core.ArtifactWhop)
}

// candidatePatch carries the candidate fields onto an existing row.
func candidatePatch(p *core.Person) core.PersonPatch {
	return core.PersonPatch{
		LinkedInData:      p.LinkedInData,
		Name:              core.Ptr(p.Name),
		MiniSummary:       core.Ptr(p.MiniSummary),
		Summary:           core.Ptr(p.Summary),
		TopTechnologies:   nonNil(p.TopTechnologies),
		TopFeatures:       nonNil(p.TopFeatures),
		JobTitles:         nonNil(p.JobTitles),
		IsEngineer:        core.Ptr(p.IsEngineer),
		WorkedInBigTech:   core.Ptr(p.WorkedInBigTech),
		LivesNearBrooklyn: core.Ptr(p.LivesNearBrooklyn),
	}
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

package core

import "encoding/json"

// PersonPatch is a partial update of a Person. Nil fields are left untouched,
// so concurrent patches touching different fields never overwrite each other.
type PersonPatch struct {
	LinkedInURL        *string
	NormalizedLocation *string
	NormalizedCountry  *string
	GitHubCompany      *string
	TwitterBio         *string
	IsWhopUser         *bool
	IsWhopCreator      *bool

	// Candidate fields derived from a LinkedIn profile.
	Name              *string
	MiniSummary       *string
	Summary           *string
	IsEngineer        *bool
	WorkedInBigTech   *bool
	LivesNearBrooklyn *bool
	// LinkedInData replaces the LinkedIn snapshot when non-nil.
	LinkedInData json.RawMessage
	// List fields replace the stored list when non-nil.
	TopTechnologies []string
	TopFeatures     []string
	JobTitles       []string

	// CompanyIDs replaces the company list when non-nil. An empty non-nil
	// slice clears it.
	CompanyIDs []string
}

// IsEmpty reports whether the patch changes nothing.
func (pp PersonPatch) IsEmpty() bool {
	return pp.LinkedInURL == nil &&
		pp.NormalizedLocation == nil &&
		pp.NormalizedCountry == nil &&
		pp.GitHubCompany == nil &&
		pp.TwitterBio == nil &&
		pp.IsWhopUser == nil &&
		pp.IsWhopCreator == nil &&
		pp.Name == nil &&
		pp.MiniSummary == nil &&
		pp.Summary == nil &&
		pp.IsEngineer == nil &&
		pp.WorkedInBigTech == nil &&
		pp.LivesNearBrooklyn == nil &&
		pp.LinkedInData == nil &&
		pp.TopTechnologies == nil &&
		pp.TopFeatures == nil &&
		pp.JobTitles == nil &&
		pp.CompanyIDs == nil
}

// Apply copies every set field onto p.
func (pp PersonPatch) Apply(p *Person) {
	if pp.LinkedInURL != nil {
		p.LinkedInURL = *pp.LinkedInURL
	}
	if pp.NormalizedLocation != nil {
		p.NormalizedLocation = *pp.NormalizedLocation
	}
	if pp.NormalizedCountry != nil {
		p.NormalizedCountry = *pp.NormalizedCountry
	}
	if pp.GitHubCompany != nil {
		p.GitHubCompany = *pp.GitHubCompany
	}
	if pp.TwitterBio != nil {
		p.TwitterBio = *pp.TwitterBio
	}
	if pp.IsWhopUser != nil {
		v := *pp.IsWhopUser
		p.IsWhopUser = &v
	}
	if pp.IsWhopCreator != nil {
		v := *pp.IsWhopCreator
		p.IsWhopCreator = &v
	}
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.MiniSummary != nil {
		p.MiniSummary = *pp.MiniSummary
	}
	if pp.Summary != nil {
		p.Summary = *pp.Summary
	}
	if pp.IsEngineer != nil {
		p.IsEngineer = *pp.IsEngineer
	}
	if pp.WorkedInBigTech != nil {
		p.WorkedInBigTech = *pp.WorkedInBigTech
	}
	if pp.LivesNearBrooklyn != nil {
		p.LivesNearBrooklyn = *pp.LivesNearBrooklyn
	}
	if pp.LinkedInData != nil {
		p.LinkedInData = append(json.RawMessage(nil), pp.LinkedInData...)
	}
	if pp.TopTechnologies != nil {
		p.TopTechnologies = append([]string{}, pp.TopTechnologies...)
	}
	if pp.TopFeatures != nil {
		p.TopFeatures = append([]string{}, pp.TopFeatures...)
	}
	if pp.JobTitles != nil {
		p.JobTitles = append([]string{}, pp.JobTitles...)
	}
	if pp.CompanyIDs != nil {
		p.CompanyIDs = append([]string{}, pp.CompanyIDs...)
	}
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}

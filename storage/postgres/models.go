package postgres

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
	"github.com/poiesic/prospector/core"
	"gorm.io/datatypes"
)

// GitHub logins are matched case-insensitively, so their unique index is on
// lower(github_login).
type personRow struct {
	ID              string  `gorm:"column:id;type:text;primaryKey"`
	GitHubLogin     *string `gorm:"column:github_login;type:text;index:idx_persons_github_login_lower,unique,expression:lower(github_login)"`
	LinkedInURL     *string `gorm:"column:linkedin_url;type:text;uniqueIndex"`
	TwitterUsername string  `gorm:"column:twitter_username;type:text"`
	TwitterID       string  `gorm:"column:twitter_id;type:text"`

	GitHubData   datatypes.JSON `gorm:"column:github_data;type:jsonb"`
	LinkedInData datatypes.JSON `gorm:"column:linkedin_data;type:jsonb"`
	TwitterData  datatypes.JSON `gorm:"column:twitter_data;type:jsonb"`

	Name               string `gorm:"column:name;type:text"`
	Email              string `gorm:"column:email;type:text"`
	Image              string `gorm:"column:image;type:text"`
	Location           string `gorm:"column:location;type:text"`
	NormalizedLocation string `gorm:"column:normalized_location;type:text"`
	NormalizedCountry  string `gorm:"column:normalized_country;type:text"`
	WebsiteURL         string `gorm:"column:website_url;type:text"`
	GitHubBio          string `gorm:"column:github_bio;type:text"`
	GitHubCompany      string `gorm:"column:github_company;type:text"`
	TwitterBio         string `gorm:"column:twitter_bio;type:text"`
	MiniSummary        string `gorm:"column:mini_summary;type:text"`
	Summary            string `gorm:"column:summary;type:text"`

	TopTechnologies pq.StringArray `gorm:"column:top_technologies;type:text[]"`
	TopFeatures     pq.StringArray `gorm:"column:top_features;type:text[]"`
	JobTitles       pq.StringArray `gorm:"column:job_titles;type:text[]"`
	CompanyIDs      pq.StringArray `gorm:"column:company_ids;type:text[]"`

	IsEngineer        bool  `gorm:"column:is_engineer"`
	WorkedInBigTech   bool  `gorm:"column:worked_in_big_tech"`
	LivesNearBrooklyn bool  `gorm:"column:lives_near_brooklyn"`
	IsWhopUser        *bool `gorm:"column:is_whop_user"`
	IsWhopCreator     *bool `gorm:"column:is_whop_creator"`

	GitHubStats  datatypes.JSON `gorm:"column:github_stats;type:jsonb"`
	TwitterStats datatypes.JSON `gorm:"column:twitter_stats;type:jsonb"`
	Artifacts    datatypes.JSON `gorm:"column:artifacts;type:jsonb"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz"`
}

func (personRow) TableName() string { return "persons" }

type companyRow struct {
	ID              string         `gorm:"column:id;type:text;primaryKey"`
	Name            string         `gorm:"column:name;type:text"`
	LinkedInURL     *string        `gorm:"column:linkedin_url;type:text;uniqueIndex"`
	TopTechnologies pq.StringArray `gorm:"column:top_technologies;type:text[]"`
}

func (companyRow) TableName() string { return "companies" }

type vectorRow struct {
	Namespace string          `gorm:"column:namespace;type:text;primaryKey"`
	ID        string          `gorm:"column:id;type:text;primaryKey"`
	Embedding pgvector.Vector `gorm:"column:embedding;type:vector"`
	Metadata  datatypes.JSON  `gorm:"column:metadata;type:jsonb"`
}

func (vectorRow) TableName() string { return "vectors" }

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// rawJSON normalizes a scanned jsonb column. SQL NULL scans as "null".
func rawJSON(j datatypes.JSON) json.RawMessage {
	if len(j) == 0 || string(j) == "null" {
		return nil
	}
	return json.RawMessage(j)
}

func toJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func jsonColumn(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}

func stringArray(list []string) pq.StringArray {
	if list == nil {
		return nil
	}
	return pq.StringArray(list)
}

func newPersonRow(p *core.Person) (*personRow, error) {
	row := &personRow{
		ID:                 p.ID,
		GitHubLogin:        nullable(p.GitHubLogin),
		LinkedInURL:        nullable(p.LinkedInURL),
		TwitterUsername:    p.TwitterUsername,
		TwitterID:          p.TwitterID,
		GitHubData:         jsonColumn(p.GitHubData),
		LinkedInData:       jsonColumn(p.LinkedInData),
		TwitterData:        jsonColumn(p.TwitterData),
		Name:               p.Name,
		Email:              p.Email,
		Image:              p.Image,
		Location:           p.Location,
		NormalizedLocation: p.NormalizedLocation,
		NormalizedCountry:  p.NormalizedCountry,
		WebsiteURL:         p.WebsiteURL,
		GitHubBio:          p.GitHubBio,
		GitHubCompany:      p.GitHubCompany,
		TwitterBio:         p.TwitterBio,
		MiniSummary:        p.MiniSummary,
		Summary:            p.Summary,
		TopTechnologies:    stringArray(p.TopTechnologies),
		TopFeatures:        stringArray(p.TopFeatures),
		JobTitles:          stringArray(p.JobTitles),
		CompanyIDs:         stringArray(p.CompanyIDs),
		IsEngineer:         p.IsEngineer,
		WorkedInBigTech:    p.WorkedInBigTech,
		LivesNearBrooklyn:  p.LivesNearBrooklyn,
		IsWhopUser:         p.IsWhopUser,
		IsWhopCreator:      p.IsWhopCreator,
		CreatedAt:          p.CreatedAt,
	}

	var err error
	if p.GitHub != nil {
		if row.GitHubStats, err = toJSON(p.GitHub); err != nil {
			return nil, err
		}
	}
	if p.Twitter != nil {
		if row.TwitterStats, err = toJSON(p.Twitter); err != nil {
			return nil, err
		}
	}
	artifacts := p.Artifacts
	if artifacts == nil {
		artifacts = map[core.ArtifactKind]core.Status{}
	}
	if row.Artifacts, err = toJSON(artifacts); err != nil {
		return nil, err
	}
	return row, nil
}

func (row *personRow) person() (*core.Person, error) {
	p := &core.Person{
		ID:                 row.ID,
		GitHubLogin:        deref(row.GitHubLogin),
		LinkedInURL:        deref(row.LinkedInURL),
		TwitterUsername:    row.TwitterUsername,
		TwitterID:          row.TwitterID,
		GitHubData:         rawJSON(row.GitHubData),
		LinkedInData:       rawJSON(row.LinkedInData),
		TwitterData:        rawJSON(row.TwitterData),
		Name:               row.Name,
		Email:              row.Email,
		Image:              row.Image,
		Location:           row.Location,
		NormalizedLocation: row.NormalizedLocation,
		NormalizedCountry:  row.NormalizedCountry,
		WebsiteURL:         row.WebsiteURL,
		GitHubBio:          row.GitHubBio,
		GitHubCompany:      row.GitHubCompany,
		TwitterBio:         row.TwitterBio,
		MiniSummary:        row.MiniSummary,
		Summary:            row.Summary,
		TopTechnologies:    []string(row.TopTechnologies),
		TopFeatures:        []string(row.TopFeatures),
		JobTitles:          []string(row.JobTitles),
		CompanyIDs:         []string(row.CompanyIDs),
		IsEngineer:         row.IsEngineer,
		WorkedInBigTech:    row.WorkedInBigTech,
		LivesNearBrooklyn:  row.LivesNearBrooklyn,
		IsWhopUser:         row.IsWhopUser,
		IsWhopCreator:      row.IsWhopCreator,
		CreatedAt:          row.CreatedAt,
	}

	if raw := rawJSON(row.GitHubStats); raw != nil {
		p.GitHub = &core.GitHubStats{}
		if err := json.Unmarshal(raw, p.GitHub); err != nil {
			return nil, err
		}
	}
	if raw := rawJSON(row.TwitterStats); raw != nil {
		p.Twitter = &core.TwitterStats{}
		if err := json.Unmarshal(raw, p.Twitter); err != nil {
			return nil, err
		}
	}
	if raw := rawJSON(row.Artifacts); raw != nil {
		if err := json.Unmarshal(raw, &p.Artifacts); err != nil {
			return nil, err
		}
		if len(p.Artifacts) == 0 {
			p.Artifacts = nil
		}
	}
	return p, nil
}

func newCompanyRow(c *core.Company) *companyRow {
	return &companyRow{
		ID:              c.ID,
		Name:            c.Name,
		LinkedInURL:     nullable(c.LinkedInURL),
		TopTechnologies: stringArray(c.TopTechnologies),
	}
}

func (row *companyRow) company() *core.Company {
	return &core.Company{
		ID:              row.ID,
		Name:            row.Name,
		LinkedInURL:     deref(row.LinkedInURL),
		TopTechnologies: []string(row.TopTechnologies),
	}
}

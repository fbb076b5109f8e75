package jobs

import (
	"fmt"
	"time"

	"github.com/poiesic/prospector/batch"
)

// Job names, also used as CLI command names.
const (
	AddCandidates         = "add-candidates"
	GitHubEnrich          = "github-enrich"
	NormalizeLocation     = "normalize-location"
	UpsertSkillAverage    = "upsert-skill-average"
	UpsertFeatureAverage  = "upsert-feature-average"
	UpsertJobTitleAverage = "upsert-job-title-average"
	UpsertXBios           = "upsert-x-bios"
	GitHubCompany         = "github-company"
	TwitterDescriptions   = "twitter-descriptions"
	WhopStatus            = "whop-status"
	AddLinkedIn           = "add-linkedin"
	CompanyIDs            = "company-ids"
	CompanySkills         = "company-skills"
)

// Definition describes one job and its default pacing.
type Definition struct {
	Name      string
	Usage     string
	BatchSize int
	Delay     time.Duration
}

// Catalog lists every batch job in the order they are usually run.
var Catalog = []Definition{
	{AddCandidates, "scrape LinkedIn profiles of people that are not candidates yet", 10, 2500 * time.Millisecond},
	{GitHubEnrich, "build people from GitHub logins and every linked provider", 10, 2500 * time.Millisecond},
	{NormalizeLocation, "normalize free-text locations to state and country", 100, time.Second},
	{UpsertSkillAverage, "write the averaged skill vector of each candidate", 100, 20 * time.Second},
	{UpsertFeatureAverage, "write the averaged feature vector of each candidate", 100, 20 * time.Second},
	{UpsertJobTitleAverage, "write the averaged job title vector of each candidate", 100, 20 * time.Second},
	{UpsertXBios, "embed X bios into the x-bio namespace", 25, time.Second},
	{GitHubCompany, "fetch the company field of GitHub profiles", 1000, 0},
	{TwitterDescriptions, "copy X descriptions out of stored payloads", 10000, 0},
	{WhopStatus, "check emails against Whop", 1, 100 * time.Millisecond},
	{AddLinkedIn, "take LinkedIn URLs from GitHub social accounts", 500, 0},
	{CompanyIDs, "link candidates to the companies in their work history", 500, 0},
	{CompanySkills, "compute the top technologies of every company", 1, 0},
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (Definition, error) {
	for _, s := range Catalog {
		if s.Name == name {
			return s, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownJob, name)
}

// batchConfig turns the catalog defaults into a runner config.
func (s Definition) batchConfig() batch.Config {
	return batch.Config{
		Name:           s.Name,
		BatchSize:      s.BatchSize,
		Delay:          s.Delay,
		ReportInterval: s.BatchSize,
	}
}

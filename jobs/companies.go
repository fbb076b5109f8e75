package jobs

import (
	"context"
	"fmt"

	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/storage"
)

// CompanyIDs links every candidate to the companies in its LinkedIn work
// history. Companies not seen before are registered under the position's
// company name. Candidates without company pages are skipped.
func (j *Jobs) CompanyIDs(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(CompanyIDs, "persons")
	}
	if j.deps.Companies == nil {
		return batch.Report{}, missing(CompanyIDs, "companies")
	}
	logger := j.jobLogger(CompanyIDs)

	source := j.selectPersons(storage.Filter{
		Pending: core.ArtifactCompanyIDs,
		Has:     []core.Field{core.FieldLinkedInData},
	})
	return newRunner[*core.Person](j, CompanyIDs).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		profile, err := providers.ParseLinkedInProfile(p.LinkedInData)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		positions := historyCompanies(profile.History())
		if len(positions) == 0 {
			logger.Debug("no company pages", "id", p.ID)
			return nil
		}

		ids, err := j.resolveCompanies(ctx, positions)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		if err := j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{CompanyIDs: ids}); err != nil {
			return err
		}
		return j.deps.Persons.MarkDone(ctx, p.ID, core.ArtifactCompanyIDs)
	})
}

// historyCompanies returns one company per distinct page URL, first
// mention first.
func historyCompanies(history []providers.Position) []*core.Company {
	seen := make(map[string]bool)
	var out []*core.Company
	for _, pos := range history {
		url := core.TrimTrailingSlash(pos.LinkedInURL)
		if url == "" || seen[url] {
			continue
		}
		seen[url] = true
		out = append(out, &core.Company{Name: pos.CompanyName, LinkedInURL: url})
	}
	return out
}

func (j *Jobs) resolveCompanies(ctx context.Context, positions []*core.Company) ([]string, error) {
	urls := make([]string, len(positions))
	for i, c := range positions {
		urls[i] = c.LinkedInURL
	}
	known, err := j.deps.Companies.FindByLinkedInURLs(ctx, urls)
	if err != nil {
		return nil, err
	}
	byURL := make(map[string]string, len(known))
	for _, c := range known {
		byURL[c.LinkedInURL] = c.ID
	}

	var unknown []*core.Company
	for _, c := range positions {
		if _, ok := byURL[c.LinkedInURL]; !ok {
			unknown = append(unknown, c)
		}
	}
	if len(unknown) > 0 {
		stored, err := j.deps.Companies.Upsert(ctx, unknown...)
		if err != nil {
			return nil, fmt.Errorf("registering companies: %w", err)
		}
		for _, c := range stored {
			byURL[c.LinkedInURL] = c.ID
		}
	}

	ids := make([]string, 0, len(positions))
	for _, c := range positions {
		ids = append(ids, byURL[c.LinkedInURL])
	}
	return ids, nil
}

// CompanySkills stores the most common technologies among each company's
// engineers.
func (j *Jobs) CompanySkills(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(CompanySkills, "persons")
	}
	if j.deps.Companies == nil {
		return batch.Report{}, missing(CompanySkills, "companies")
	}
	logger := j.jobLogger(CompanySkills)
	engineer := true

	source := func(ctx context.Context) ([]*core.Company, error) {
		return j.deps.Companies.List(ctx)
	}
	return newRunner[*core.Company](j, CompanySkills).Run(ctx, source, func(ctx context.Context, c *core.Company) error {
		members, err := j.selectPersons(storage.Filter{CompanyID: c.ID, Engineer: &engineer})(ctx)
		if err != nil {
			return fmt.Errorf("company %s: %w", c.ID, err)
		}
		lists := make([][]string, 0, len(members))
		for _, m := range members {
			lists = append(lists, m.TopTechnologies)
		}
		techs := derive.TopTechnologies(lists, derive.MaxCompanyTechnologies)
		if err := j.deps.Companies.SetTopTechnologies(ctx, c.ID, techs); err != nil {
			return err
		}
		logger.Debug("company technologies", "id", c.ID, "engineers", len(members), "technologies", len(techs))
		return nil
	})
}

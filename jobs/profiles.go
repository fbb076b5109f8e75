package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/enrich"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/storage"
)

// ErrCompanyLookup is returned when the GitHub company lookup did not answer.
var ErrCompanyLookup = errors.New("github company lookup failed")

// GitHubCompany fetches the company field for GitHub users that were never
// checked. A user without a company is still marked checked.
func (j *Jobs) GitHubCompany(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(GitHubCompany, "persons")
	}
	if j.deps.GitHub == nil {
		return batch.Report{}, missing(GitHubCompany, "github")
	}

	source := j.selectPersons(storage.Filter{
		Pending: core.ArtifactGitHubCompany,
		Has:     []core.Field{core.FieldGitHubLogin},
		Missing: []core.Field{core.FieldGitHubCompany},
	})
	return newRunner[*core.Person](j, GitHubCompany).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		company, ok := j.deps.GitHub.FetchCompany(ctx, p.GitHubLogin)
		if !ok {
			return fmt.Errorf("%w: %s", ErrCompanyLookup, p.GitHubLogin)
		}
		if company = strings.TrimSpace(company); company != "" {
			if err := j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{GitHubCompany: &company}); err != nil {
				return err
			}
		}
		return j.deps.Persons.MarkDone(ctx, p.ID, core.ArtifactGitHubCompany)
	})
}

// TwitterDescriptions copies the description out of stored X payloads.
func (j *Jobs) TwitterDescriptions(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(TwitterDescriptions, "persons")
	}
	logger := j.jobLogger(TwitterDescriptions)

	source := j.selectPersons(storage.Filter{
		Has:     []core.Field{core.FieldTwitterData},
		Missing: []core.Field{core.FieldTwitterBio},
	})
	return newRunner[*core.Person](j, TwitterDescriptions).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		u, err := providers.ParseTwitterUser(p.TwitterData)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		bio := strings.TrimSpace(u.Description)
		if bio == "" {
			logger.Debug("no description", "id", p.ID)
			return nil
		}
		return j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{TwitterBio: &bio})
	})
}

// WhopStatus checks every unchecked email against Whop.
func (j *Jobs) WhopStatus(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(WhopStatus, "persons")
	}
	if j.deps.Whop == nil {
		return batch.Report{}, missing(WhopStatus, "whop")
	}

	source := j.selectPersons(storage.Filter{
		Pending: core.ArtifactWhop,
		Has:     []core.Field{core.FieldEmail},
	})
	return newRunner[*core.Person](j, WhopStatus).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		var merged core.Person
		enrich.MergeWhop(&merged, j.deps.Whop.Check(ctx, p.Email))
		if err := j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{
			IsWhopUser:    merged.IsWhopUser,
			IsWhopCreator: merged.IsWhopCreator,
		}); err != nil {
			return err
		}
		return j.deps.Persons.MarkDone(ctx, p.ID, core.ArtifactWhop)
	})
}

// AddLinkedIn takes the LinkedIn URL out of stored GitHub social accounts.
// People without one are left alone. A URL owned by another person fails
// the item.
func (j *Jobs) AddLinkedIn(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(AddLinkedIn, "persons")
	}
	logger := j.jobLogger(AddLinkedIn)

	source := j.selectPersons(storage.Filter{
		Has:     []core.Field{core.FieldGitHubData},
		Missing: []core.Field{core.FieldLinkedInURL},
	})
	return newRunner[*core.Person](j, AddLinkedIn).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		u, err := providers.ParseGitHubUser(p.GitHubData)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		raw, ok := u.LinkedInURL()
		if !ok {
			return nil
		}
		url, ok := core.NormalizeLinkedInURL(raw)
		if !ok {
			logger.Warn("ignoring invalid linkedin url", "id", p.ID, "url", raw)
			return nil
		}
		if err := j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{LinkedInURL: &url}); err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		logger.Info("added linkedin url", "id", p.ID, "url", url)
		return nil
	})
}

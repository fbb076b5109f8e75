package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

// AddCandidates turns every person that has a LinkedIn URL but no LinkedIn
// snapshot into a candidate. Stored URLs are normalized in place first so
// the ingester finds the existing row.
func (j *Jobs) AddCandidates(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(AddCandidates, "persons")
	}
	if j.deps.Candidates == nil {
		return batch.Report{}, missing(AddCandidates, "candidate ingester")
	}
	logger := j.jobLogger(AddCandidates)

	source := j.selectPersons(storage.Filter{
		Has:     []core.Field{core.FieldLinkedInURL},
		Missing: []core.Field{core.FieldLinkedInData},
	})
	return newRunner[*core.Person](j, AddCandidates).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		url, ok := core.NormalizeLinkedInURL(p.LinkedInURL)
		if !ok {
			return fmt.Errorf("person %s: %w: %q", p.ID, core.ErrInvalidLinkedInURL, p.LinkedInURL)
		}
		if url != p.LinkedInURL {
			if err := j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{LinkedInURL: &url}); err != nil {
				return fmt.Errorf("person %s: normalizing linkedin url: %w", p.ID, err)
			}
			logger.Debug("normalized linkedin url", "id", p.ID, "url", url)
		}

		candidate, err := j.deps.Candidates.Ingest(ctx, url)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		logger.Info("added candidate", "id", candidate.ID, "name", candidate.Name)
		return nil
	})
}

// GitHubEnrich builds a person for each login. Blank and repeated logins are
// dropped before the run.
func (j *Jobs) GitHubEnrich(ctx context.Context, logins []string) (batch.Report, error) {
	if j.deps.GitHubPeople == nil {
		return batch.Report{}, missing(GitHubEnrich, "github ingester")
	}
	logger := j.jobLogger(GitHubEnrich)

	seen := make(map[string]bool, len(logins))
	unique := make([]string, 0, len(logins))
	for _, login := range logins {
		login = strings.TrimSpace(login)
		if login == "" || seen[login] {
			continue
		}
		seen[login] = true
		unique = append(unique, login)
	}

	return newRunner[string](j, GitHubEnrich).Run(ctx, batch.Items(unique...), func(ctx context.Context, login string) error {
		p, err := j.deps.GitHubPeople.Ingest(ctx, login)
		if err != nil {
			return fmt.Errorf("github %s: %w", login, err)
		}
		logger.Info("enriched github user", "login", login, "id", p.ID)
		return nil
	})
}

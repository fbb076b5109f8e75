package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/embedding"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/storage"
)

// CandidateIngester turns a LinkedIn profile URL into a stored candidate with
// its vectors.
type CandidateIngester struct {
	profiles ProfileSource
	deriver  *derive.Deriver
	persons  storage.PersonRepository
	upserter *embedding.Upserter
	logger   *slog.Logger
}

// NewCandidateIngester wires a candidate ingester. Every dependency is required.
func NewCandidateIngester(
	profiles ProfileSource,
	deriver *derive.Deriver,
	persons storage.PersonRepository,
	upserter *embedding.Upserter,
	opts ...Option,
) (*CandidateIngester, error) {
	if profiles == nil || deriver == nil || persons == nil || upserter == nil {
		return nil, errors.New("enrich: profile source, deriver, person repository and upserter are required")
	}
	o := newOptions("candidate-ingester", opts)
	return &CandidateIngester{
		profiles: profiles,
		deriver:  deriver,
		persons:  persons,
		upserter: upserter,
		logger:   o.logger,
	}, nil
}

// Ingest scrapes the profile, derives the candidate features and stores the
// candidate. When the URL already belongs to a stored person that row is
// updated instead and only its pending averages are written.
func (c *CandidateIngester) Ingest(ctx context.Context, linkedInURL string) (*core.Person, error) {
	url, ok := core.NormalizeLinkedInURL(linkedInURL)
	if !ok {
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidLinkedInURL, linkedInURL)
	}
	logger := c.logger.With("linkedin_url", url)

	profile := c.profiles.Fetch(ctx, url)
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, url)
	}

	features, err := deriveFeatures(ctx, c.deriver, profile, true)
	if err != nil {
		return nil, fmt.Errorf("deriving features for %s: %w", url, err)
	}

	p := &core.Person{ID: core.NewID(), LinkedInURL: url}
	MergeLinkedIn(p, profile, features)

	p, err = c.store(ctx, p)
	if err != nil {
		return nil, err
	}
	logger = logger.With("person_id", p.ID)
	logger.Info("candidate stored", "name", p.Name, "engineer", p.IsEngineer)

	return p, writeVectors(ctx, c.upserter, c.persons, p, logger)
}

// store inserts p, or merges its candidate fields into the row that already
// holds its LinkedIn URL.
func (c *CandidateIngester) store(ctx context.Context, p *core.Person) (*core.Person, error) {
	err := c.persons.Insert(ctx, p)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, storage.ErrDuplicateKey) {
		return nil, fmt.Errorf("inserting candidate %s: %w", p.LinkedInURL, err)
	}

	existing, err := c.persons.FindByLinkedInURL(ctx, p.LinkedInURL)
	if err != nil {
		return nil, fmt.Errorf("loading existing candidate %s: %w", p.LinkedInURL, err)
	}
	patch := candidatePatch(p)
	if err := c.persons.Update(ctx, existing.ID, patch); err != nil {
		return nil, fmt.Errorf("updating candidate %s: %w", existing.ID, err)
	}
	patch.Apply(existing)
	return existing, nil
}

// writeVectors upserts the per-item vectors and every pending average, then
// marks the averages that were written or had nothing to write.
func writeVectors(ctx context.Context, u *embedding.Upserter, persons storage.PersonRepository, p *core.Person, logger *slog.Logger) error {
	var errs []error

	if _, err := u.UpsertItems(ctx, core.NamespaceTechnologies, p.ID, "technology", p.TopTechnologies); err != nil {
		errs = append(errs, err)
	}
	if _, err := u.UpsertItems(ctx, core.NamespaceJobTitles, p.ID, "jobTitle", p.JobTitles); err != nil {
		errs = append(errs, err)
	}

	var done []core.ArtifactKind
	for _, avg := range embedding.Averages {
		if p.Done(avg.Kind) {
			continue
		}
		written, err := u.UpsertAverage(ctx, avg.Namespace, p.ID, avg.Field, avg.Items(p))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !written {
			logger.Debug("nothing to average", "artifact", avg.Kind)
		}
		done = append(done, avg.Kind)
	}

	if len(done) > 0 {
		if err := persons.MarkDone(ctx, p.ID, done...); err != nil {
			errs = append(errs, fmt.Errorf("marking %v done for %s: %w", done, p.ID, err))
		} else {
			p.MarkDone(done...)
		}
	}
	return errors.Join(errs...)
}

// deriveFeatures runs the profile derivations in order. The condition
// questions are only asked when askConditions is set. A skills failure is
// returned together with every other derived field; Skills is left zero.
func deriveFeatures(ctx context.Context, d *derive.Deriver, profile *providers.LinkedInProfile, askConditions bool) (CandidateFeatures, error) {
	f := CandidateFeatures{MiniSummary: d.MiniSummary(ctx, profile)}

	skills, err := d.GatherTopSkills(ctx, profile)
	if err == nil {
		f.Skills = skills
	}
	f.JobTitles = profile.JobTitles()

	if askConditions {
		f.WorkedInBigTech = core.Ptr(d.AskCondition(ctx, derive.WorkedInBigTechQuestion(profile)))
		f.LivesNearBrooklyn = core.Ptr(d.AskCondition(ctx, derive.LivesNearBrooklynQuestion(profile)))
	}

	f.Summary = d.Summary(ctx, profile)
	return f, err
}

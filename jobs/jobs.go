package jobs

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/embedding"
	"github.com/poiesic/prospector/enrich"
	"github.com/poiesic/prospector/search"
	"github.com/poiesic/prospector/storage"
)

// CompanySource looks up the company field of a GitHub profile.
type CompanySource interface {
	FetchCompany(ctx context.Context, login string) (string, bool)
}

// Deps are the services jobs draw on. A job fails with ErrMissingDependency
// when one it needs is nil.
type Deps struct {
	Persons      storage.PersonRepository
	Companies    storage.CompanyRepository
	Deriver      *derive.Deriver
	Upserter     *embedding.Upserter
	Candidates   *enrich.CandidateIngester
	GitHubPeople *enrich.GitHubIngester
	GitHub       CompanySource
	Whop         enrich.WhopSource
	Searcher     *search.Searcher
}

type settings struct {
	logger    *slog.Logger
	progress  io.Writer
	sleep     func(ctx context.Context, d time.Duration) error
	batchSize int
	delay     *time.Duration
	pageSize  int
}

// Option configures Jobs.
type Option func(*settings)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithProgress writes progress lines to w.
func WithProgress(w io.Writer) Option {
	return func(s *settings) { s.progress = w }
}

// WithSleep replaces the between-chunk delay. Intended for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(s *settings) { s.sleep = sleep }
}

// WithBatchSize overrides the catalog batch size of every job when n > 0.
func WithBatchSize(n int) Option {
	return func(s *settings) { s.batchSize = n }
}

// WithDelay overrides the catalog delay of every job.
func WithDelay(d time.Duration) Option {
	return func(s *settings) { s.delay = &d }
}

// WithPageSize sets the selection page size. Default is batch.DefaultPageSize.
func WithPageSize(n int) Option {
	return func(s *settings) { s.pageSize = n }
}

// Jobs runs catalog jobs against a fixed set of services.
type Jobs struct {
	deps     Deps
	settings settings
	logger   *slog.Logger
}

// New creates a job runner.
func New(deps Deps, opts ...Option) *Jobs {
	s := settings{logger: slog.Default()}
	for _, opt := range opts {
		opt(&s)
	}
	return &Jobs{
		deps:     deps,
		settings: s,
		logger:   s.logger.With("component", "jobs"),
	}
}

// Config returns the effective batch config of the named job.
func (j *Jobs) Config(name string) (batch.Config, error) {
	def, err := Lookup(name)
	if err != nil {
		return batch.Config{}, err
	}
	cfg := def.batchConfig()
	if j.settings.batchSize > 0 {
		cfg.BatchSize = j.settings.batchSize
		cfg.ReportInterval = j.settings.batchSize
	}
	if j.settings.delay != nil {
		cfg.Delay = *j.settings.delay
	}
	return cfg, nil
}

// Run dispatches a job by name. args are only used by github-enrich.
func (j *Jobs) Run(ctx context.Context, name string, args []string) (batch.Report, error) {
	switch name {
	case AddCandidates:
		return j.AddCandidates(ctx)
	case GitHubEnrich:
		return j.GitHubEnrich(ctx, args)
	case NormalizeLocation:
		return j.NormalizeLocation(ctx)
	case UpsertSkillAverage:
		return j.UpsertAverage(ctx, core.ArtifactSkillAverage)
	case UpsertFeatureAverage:
		return j.UpsertAverage(ctx, core.ArtifactFeatureAverage)
	case UpsertJobTitleAverage:
		return j.UpsertAverage(ctx, core.ArtifactJobTitleAverage)
	case UpsertXBios:
		return j.UpsertXBios(ctx)
	case GitHubCompany:
		return j.GitHubCompany(ctx)
	case TwitterDescriptions:
		return j.TwitterDescriptions(ctx)
	case WhopStatus:
		return j.WhopStatus(ctx)
	case AddLinkedIn:
		return j.AddLinkedIn(ctx)
	case CompanyIDs:
		return j.CompanyIDs(ctx)
	case CompanySkills:
		return j.CompanySkills(ctx)
	}
	_, err := Lookup(name)
	return batch.Report{}, err
}

func newRunner[T any](j *Jobs, name string) *batch.Runner[T] {
	cfg, err := j.Config(name)
	if err != nil {
		// Job names are compile-time constants from the catalog.
		panic(err)
	}
	opts := []batch.Option{batch.WithLogger(j.settings.logger), batch.WithProgress(j.settings.progress)}
	if j.settings.sleep != nil {
		opts = append(opts, batch.WithSleep(j.settings.sleep))
	}
	return batch.NewRunner[T](cfg, opts...)
}

func (j *Jobs) selectPersons(f storage.Filter) batch.Source[*core.Person] {
	return batch.SelectPersons(j.deps.Persons, f, j.settings.pageSize)
}

func (j *Jobs) jobLogger(name string) *slog.Logger {
	return j.logger.With("job", name)
}

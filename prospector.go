// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package prospector opens the process-wide services of the enrichment
// pipeline once and hands them to the jobs.
package prospector

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/ai/openai"
	"github.com/poiesic/prospector/cache"
	"github.com/poiesic/prospector/config"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/embedding"
	"github.com/poiesic/prospector/enrich"
	"github.com/poiesic/prospector/jobs"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/poiesic/prospector/search"
	"github.com/poiesic/prospector/storage"
	"github.com/poiesic/prospector/storage/badger"
	"github.com/poiesic/prospector/storage/pinecone"
	"github.com/poiesic/prospector/storage/postgres"
)

// Services owns the stores, the shared rate-limit executor, the response
// cache and the AI provider.
type Services struct {
	config    *config.Config
	persons   storage.PersonRepository
	companies storage.CompanyRepository
	vectors   storage.VectorStore
	executor  *ratelimit.Executor
	cache     cache.Cache
	provider  ai.AIProvider
	closers   []func() error
	logger    *slog.Logger
}

// ServicesOption configures Open.
type ServicesOption func(*servicesOptions)

type servicesOptions struct {
	logger   *slog.Logger
	provider ai.AIProvider
	cache    cache.Cache
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ServicesOption {
	return func(o *servicesOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAIProvider uses p instead of building an OpenAI provider from the config.
func WithAIProvider(p ai.AIProvider) ServicesOption {
	return func(o *servicesOptions) { o.provider = p }
}

// WithCache uses c instead of dialing REDIS_URL.
func WithCache(c cache.Cache) ServicesOption {
	return func(o *servicesOptions) { o.cache = c }
}

// Open validates cfg and opens every configured store. The AI provider is
// optional: without credentials the model-backed jobs report a missing
// dependency.
func Open(ctx context.Context, cfg *config.Config, opts ...ServicesOption) (*Services, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := servicesOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Services{
		config: cfg,
		logger: o.logger.With("component", "services"),
		executor: ratelimit.NewExecutor(
			ratelimit.WithCooldown(cfg.RateLimit.Cooldown),
			ratelimit.WithLogger(o.logger),
		),
	}

	if err := s.openStores(ctx); err != nil {
		s.Close()
		return nil, err
	}

	s.cache = o.cache
	if s.cache == nil && cfg.Redis.URL != "" {
		rc, err := cache.Dial(ctx, cfg.Redis.URL)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.cache = rc
		s.closers = append(s.closers, rc.Close)
	}

	s.provider = o.provider
	if s.provider == nil {
		provider, err := openai.NewProvider(&cfg.AI)
		if err != nil {
			s.logger.Warn("AI provider unavailable", "err", err)
		} else {
			s.provider = provider
			s.closers = append(s.closers, provider.Close)
		}
	}
	return s, nil
}

func (s *Services) openStores(ctx context.Context) error {
	cfg := s.config
	var pg *postgres.DB

	switch cfg.Store.Backend {
	case config.BackendBadger:
		stores, err := badger.Open(cfg.Store.BadgerPath)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, stores.Close)
		s.persons, s.companies = stores.Persons, stores.Companies
		if cfg.Vector.Backend == config.BackendBadger {
			s.vectors = stores.Vectors
		}
	case config.BackendPostgres:
		stores, err := postgres.OpenStores(cfg.Store.DatabaseURL,
			postgres.WithAutoMigrate(cfg.Store.AutoMigrate),
			postgres.WithLogger(s.logger),
		)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, stores.Close)
		s.persons, s.companies = stores.Persons, stores.Companies
		pg = stores.DB
	}

	switch cfg.Vector.Backend {
	case config.BackendPgvector:
		if pg == nil {
			db, err := postgres.Open(cfg.Store.DatabaseURL,
				postgres.WithAutoMigrate(cfg.Store.AutoMigrate),
				postgres.WithLogger(s.logger),
			)
			if err != nil {
				return err
			}
			s.closers = append(s.closers, db.Close)
			pg = db
		}
		s.vectors = postgres.NewVectorStore(pg)
	case config.BackendPinecone:
		client, err := pinecone.NewClient(pinecone.Config{
			APIKey:    cfg.Vector.PineconeAPIKey,
			Host:      cfg.Vector.PineconeIndexHost,
			IndexName: cfg.Vector.PineconeIndexName,
		})
		if err != nil {
			return err
		}
		store, err := pinecone.NewVectorStore(ctx, client)
		if err != nil {
			return err
		}
		s.vectors = store
	}
	return nil
}

// Close releases everything Open acquired, in reverse order.
func (s *Services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Error("error closing service", "err", err)
			errs = append(errs, err)
		}
	}
	s.closers = nil
	return errors.Join(errs...)
}

func (s *Services) Config() *config.Config {
	return s.config
}

func (s *Services) PersonRepository() storage.PersonRepository {
	return s.persons
}

func (s *Services) CompanyRepository() storage.CompanyRepository {
	return s.companies
}

func (s *Services) VectorStore() storage.VectorStore {
	return s.vectors
}

func (s *Services) Executor() *ratelimit.Executor {
	return s.executor
}

func (s *Services) providerOptions() []providers.Option {
	opts := []providers.Option{
		providers.WithExecutor(s.executor),
		providers.WithLogger(s.logger),
	}
	if s.cache != nil {
		opts = append(opts, providers.WithCache(s.cache, s.config.Redis.TTL))
	}
	return opts
}

// NewDeriver returns a deriver on the configured completion model.
func (s *Services) NewDeriver() (*derive.Deriver, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("deriver: %w", providers.ErrMissingCredentials)
	}
	return derive.New(s.provider.Completer(),
		derive.WithExecutor(s.executor),
		derive.WithModel(s.config.AI.CompletionModel),
		derive.WithLogger(s.logger),
	), nil
}

// NewUpserter returns an upserter writing into the configured vector store.
func (s *Services) NewUpserter() (*embedding.Upserter, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("upserter: %w", providers.ErrMissingCredentials)
	}
	return embedding.NewUpserter(s.provider.Embedder(), s.vectors,
		embedding.WithExecutor(s.executor),
		embedding.WithLogger(s.logger),
	)
}

// NewSearcher returns a searcher over the configured stores.
func (s *Services) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("searcher: %w", providers.ErrMissingCredentials)
	}
	opts = append([]search.Option{search.WithExecutor(s.executor), search.WithLogger(s.logger)}, opts...)
	return search.NewSearcher(s.persons, s.vectors, s.provider.Embedder(), opts...)
}

// NewJobs wires every service whose credentials are configured. Jobs that
// need an absent service fail with jobs.ErrMissingDependency.
func (s *Services) NewJobs(opts ...jobs.Option) *jobs.Jobs {
	deps := jobs.Deps{Persons: s.persons, Companies: s.companies}
	po := s.providerOptions()

	var (
		scrapin    *providers.Scrapin
		github     *providers.GitHub
		socialData *providers.SocialData
	)
	if c, err := providers.NewScrapin(s.config.Scrapin.APIKey, po...); err == nil {
		scrapin = c
	}
	if c, err := providers.NewGitHub(s.config.GitHub.Token, po...); err == nil {
		github = c
		deps.GitHub = c
	}
	if c, err := providers.NewSocialData(s.config.SocialData.APIKey, po...); err == nil {
		socialData = c
	}
	if c, err := providers.NewWhop(s.config.Whop.APIKey, s.config.Whop.Cookie, po...); err == nil {
		deps.Whop = c
	}

	if s.provider == nil {
		return jobs.New(deps, append([]jobs.Option{jobs.WithLogger(s.logger)}, opts...)...)
	}

	deps.Deriver, _ = s.NewDeriver()
	if u, err := s.NewUpserter(); err == nil {
		deps.Upserter = u
	}
	if se, err := s.NewSearcher(); err == nil {
		deps.Searcher = se
	}

	if scrapin != nil && deps.Upserter != nil {
		c, err := enrich.NewCandidateIngester(scrapin, deps.Deriver, s.persons, deps.Upserter, enrich.WithLogger(s.logger))
		if err == nil {
			deps.Candidates = c
		}
	}
	if github != nil {
		sources := enrich.GitHubSources{GitHub: github}
		if scrapin != nil {
			sources.Profiles = scrapin
		}
		if socialData != nil {
			sources.Twitter = socialData
		}
		if deps.Whop != nil {
			sources.Whop = deps.Whop
		}
		g, err := enrich.NewGitHubIngester(sources, deps.Deriver, s.persons, enrich.WithLogger(s.logger))
		if err == nil {
			deps.GitHubPeople = g
		}
	}

	return jobs.New(deps, append([]jobs.Option{jobs.WithLogger(s.logger)}, opts...)...)
}

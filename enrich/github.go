package enrich

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/storage"
	"golang.org/x/sync/errgroup"
)

// GitHubIngester builds a Person from a GitHub login and every provider the
// GitHub profile links to.
type GitHubIngester struct {
	github   GitHubSource
	profiles ProfileSource
	twitter  TwitterSource
	whop     WhopSource
	deriver  *derive.Deriver
	persons  storage.PersonRepository
	logger   *slog.Logger
}

// GitHubSources are the provider adapters used by GitHubIngester. GitHub is
// required; a nil source skips that provider.
type GitHubSources struct {
	GitHub   GitHubSource
	Profiles ProfileSource
	Twitter  TwitterSource
	Whop     WhopSource
}

// NewGitHubIngester wires a GitHub-origin ingester.
func NewGitHubIngester(sources GitHubSources, deriver *derive.Deriver, persons storage.PersonRepository, opts ...Option) (*GitHubIngester, error) {
	if sources.GitHub == nil || deriver == nil || persons == nil {
		return nil, errors.New("enrich: github source, deriver and person repository are required")
	}
	o := newOptions("github-ingester", opts)
	return &GitHubIngester{
		github:   sources.GitHub,
		profiles: sources.Profiles,
		twitter:  sources.Twitter,
		whop:     sources.Whop,
		deriver:  deriver,
		persons:  persons,
		logger:   o.logger,
	}, nil
}

// gitHubFanout collects the concurrent provider answers. Each goroutine
// writes only its own fields.
type gitHubFanout struct {
	location string
	country  string
	profile  *providers.LinkedInProfile
	features CandidateFeatures
	twitter  *providers.TwitterUser
	tweets   []providers.Tweet
	whop     *providers.WhopStatus
}

// Ingest fetches login, queries the linked providers concurrently, merges the
// answers and inserts the person. If the login or LinkedIn URL is already
// stored, the stored row is returned unchanged.
func (g *GitHubIngester) Ingest(ctx context.Context, login string) (*core.Person, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, fmt.Errorf("%w: empty login", core.ErrInvalidPerson)
	}
	logger := g.logger.With("login", login)

	user := g.github.Fetch(ctx, login)
	if user == nil {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, login)
	}

	p := &core.Person{ID: core.NewID()}
	MergeGitHub(p, user)

	out, err := g.fanout(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("enriching %s: %w", login, err)
	}

	p.NormalizedLocation = out.location
	p.NormalizedCountry = out.country
	p.MarkDone(core.ArtifactLocation)
	MergeTwitter(p, out.twitter, out.tweets)
	MergeLinkedIn(p, out.profile, out.features)
	p.LivesNearBrooklyn = out.location == derive.LocationNewYork
	if out.whop != nil {
		MergeWhop(p, *out.whop)
	}

	if err := g.persons.Insert(ctx, p); err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("inserting %s: %w", login, err)
		}
		logger.Info("person already stored", "err", err)
		return g.existing(ctx, p)
	}
	logger.Info("person stored", "person_id", p.ID, "linkedin", p.LinkedInURL != "", "twitter", p.TwitterData != nil)
	return p, nil
}

func (g *GitHubIngester) fanout(ctx context.Context, p *core.Person) (gitHubFanout, error) {
	var out gitHubFanout
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if strings.TrimSpace(p.Location) == "" {
			out.location, out.country = derive.LocationUndefined, derive.LocationUndefined
			return nil
		}
		out.location = g.deriver.NormalizeLocation(ctx, p.Location)
		out.country = g.deriver.NormalizeCountry(ctx, p.Location)
		return nil
	})

	if g.profiles != nil && p.LinkedInURL != "" {
		eg.Go(func() error {
			profile := g.profiles.Fetch(ctx, p.LinkedInURL)
			if profile == nil {
				return nil
			}
			features, err := deriveFeatures(ctx, g.deriver, profile, false)
			if err != nil {
				g.logger.Warn("linkedin skills not derived", "login", p.GitHubLogin, "err", err)
			}
			out.profile, out.features = profile, features
			return nil
		})
	}

	if g.twitter != nil && p.TwitterUsername != "" {
		eg.Go(func() error {
			u := g.twitter.Fetch(ctx, p.TwitterUsername)
			if u == nil {
				return nil
			}
			out.twitter = u
			if u.IDStr != "" {
				out.tweets = g.twitter.FetchTweets(ctx, u.IDStr)
			}
			return nil
		})
	}

	if g.whop != nil && p.Email != "" {
		eg.Go(func() error {
			s := g.whop.Check(ctx, p.Email)
			out.whop = &s
			return nil
		})
	}

	return out, eg.Wait()
}

func (g *GitHubIngester) existing(ctx context.Context, p *core.Person) (*core.Person, error) {
	found, err := g.persons.FindByGitHubLogin(ctx, p.GitHubLogin)
	if errors.Is(err, storage.ErrNotFound) && p.LinkedInURL != "" {
		found, err = g.persons.FindByLinkedInURL(ctx, p.LinkedInURL)
	}
	if err != nil {
		return nil, fmt.Errorf("loading existing person %s: %w", p.GitHubLogin, err)
	}
	return found, nil
}

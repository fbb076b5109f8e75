package search

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/poiesic/prospector/storage"
)

const (
	// DefaultCandidatePool is how many bio vectors are scored per query.
	DefaultCandidatePool = 100
	// DefaultMaxResults is how many ranked people are returned.
	DefaultMaxResults = 50
	// DefaultTechnologyMatches is the number of technology vectors returned.
	DefaultTechnologyMatches = 20
)

// Searcher ranks people by vector similarity.
type Searcher struct {
	persons  storage.PersonRepository
	vectors  storage.VectorStore
	embedder ai.Embedder
	executor *ratelimit.Executor
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithExecutor shares a rate-limit executor for query embeddings.
func WithExecutor(e *ratelimit.Executor) Option {
	return func(s *Searcher) error {
		if e != nil {
			s.executor = e
		}
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	persons storage.PersonRepository,
	vectors storage.VectorStore,
	embedder ai.Embedder,
	opts ...Option,
) (*Searcher, error) {
	if persons == nil {
		return nil, ErrPersonRepositoryRequired
	}
	if vectors == nil {
		return nil, ErrVectorStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		persons:  persons,
		vectors:  vectors,
		embedder: embedder,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.executor == nil {
		s.executor = ratelimit.NewExecutor(ratelimit.WithLogger(s.logger))
	}
	s.logger = s.logger.With("component", "searcher")

	return s, nil
}

// XResult is one ranked person of an X bio search.
type XResult struct {
	PersonID           string
	Username           string
	Bio                string
	NormalizedLocation string
	Followers          int
	Following          int
	FollowerRatio      float64
	Score              derive.XScore
}

// String renders the result as a single report line.
func (r *XResult) String() string {
	location := r.NormalizedLocation
	if location == "" {
		location = "Unknown"
	}
	return fmt.Sprintf("https://x.com/%s, Total Score: %.2f (Location: %.2f, Similarity: %.2f, "+
		"Follower Count: %.2f, Follower Ratio: %.2f, Avg Likes: %.2f), Location: %s, Followers: %d",
		r.Username, r.Score.Total, r.Score.Location, r.Score.Similarity,
		r.Score.Followers, r.Score.Ratio, r.Score.Likes, location, r.Followers)
}

// RankX embeds query, scores the closest X bios and returns up to maxResults
// people, best first. A non-positive maxResults means DefaultMaxResults.
func (s *Searcher) RankX(ctx context.Context, query string, maxResults int) ([]*XResult, error) {
	return s.RankXWithMonitor(ctx, query, maxResults, nil)
}

// RankXWithMonitor is RankX with a monitor receiving each stage.
func (s *Searcher) RankXWithMonitor(ctx context.Context, query string, maxResults int, monitor SearchMonitor) ([]*XResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}

	monitor.Start(query)

	matches, err := s.query(ctx, core.NamespaceXBio, query, DefaultCandidatePool)
	if err != nil {
		return nil, err
	}
	monitor.AfterVectorQuery(matches)

	// A person may own several bio vectors; the best score counts.
	similarity := make(map[string]float64, len(matches))
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		userID, _ := m.Metadata["userId"].(string)
		if userID == "" {
			continue
		}
		if prev, seen := similarity[userID]; !seen {
			ids = append(ids, userID)
			similarity[userID] = float64(m.Score)
		} else if float64(m.Score) > prev {
			similarity[userID] = float64(m.Score)
		}
	}
	if len(ids) == 0 {
		monitor.Finish(nil)
		return nil, nil
	}

	persons, err := s.persons.Select(ctx, storage.Filter{IDs: ids})
	if err != nil {
		s.logger.Error("error loading matched persons", "count", len(ids), "err", err)
		return nil, err
	}
	monitor.AfterPersonRetrieval(persons)

	results := make([]*XResult, 0, len(persons))
	for _, p := range persons {
		r := scorePerson(p, similarity[p.ID])
		monitor.Scored(r)
		results = append(results, r)
	}

	slices.SortStableFunc(results, func(a, b *XResult) int {
		switch {
		case a.Score.Total > b.Score.Total:
			return -1
		case a.Score.Total < b.Score.Total:
			return 1
		default:
			return strings.Compare(a.PersonID, b.PersonID)
		}
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	monitor.Finish(results)
	return results, nil
}

func scorePerson(p *core.Person, similarity float64) *XResult {
	r := &XResult{
		PersonID:           p.ID,
		Username:           p.TwitterUsername,
		Bio:                p.TwitterBio,
		NormalizedLocation: p.NormalizedLocation,
	}
	if r.Username == "" {
		r.Username = "unknown"
	}

	in := derive.XScoreInput{
		NormalizedLocation: p.NormalizedLocation,
		Similarity:         similarity,
	}
	if t := p.Twitter; t != nil {
		r.Followers = t.FollowerCount
		r.Following = t.FollowingCount
		r.FollowerRatio = t.FollowerToFollowing
		in.Followers = t.FollowerCount
		in.FollowerRatio = t.FollowerToFollowing
		in.AverageLikes = t.AverageLikes
	}
	r.Score = derive.ScoreX(in)
	return r
}

// TechnologyMatch is one technology vector close to a queried skill.
type TechnologyMatch struct {
	Technology  string
	CandidateID string
	Score       float32
}

// SimilarTechnologies returns up to topK technology vectors closest to skill.
// A non-positive topK means DefaultTechnologyMatches.
func (s *Searcher) SimilarTechnologies(ctx context.Context, skill string, topK int) ([]TechnologyMatch, error) {
	if topK <= 0 {
		topK = DefaultTechnologyMatches
	}
	matches, err := s.query(ctx, core.NamespaceTechnologies, skill, topK)
	if err != nil {
		return nil, err
	}

	out := make([]TechnologyMatch, 0, len(matches))
	for _, m := range matches {
		tech, _ := m.Metadata["technology"].(string)
		candidate, _ := m.Metadata["candidateId"].(string)
		out = append(out, TechnologyMatch{Technology: tech, CandidateID: candidate, Score: m.Score})
	}
	return out, nil
}

func (s *Searcher) query(ctx context.Context, namespace, text string, topK int) ([]core.Match, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyQuery
	}

	vector, ok := ratelimit.Execute(ctx, s.executor, "search.embed_query", func(ctx context.Context) ([]float32, error) {
		return s.embedder.EmbedText(ctx, text)
	})
	if !ok || len(vector) == 0 {
		return nil, ErrQueryEmbedding
	}

	matches, err := s.vectors.Query(ctx, namespace, vector, topK, true)
	if err != nil {
		s.logger.Error("error querying vectors", "namespace", namespace, "err", err)
		return nil, fmt.Errorf("querying %s: %w", namespace, err)
	}
	return matches, nil
}

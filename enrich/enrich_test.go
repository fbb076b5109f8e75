package enrich

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/ai/mock"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/embedding"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/poiesic/prospector/storage/badger"
	"github.com/stretchr/testify/require"
)

const adaProfileJSON = `{
  "firstName": "Ada", "lastName": "Lovelace", "headline": "Engineer",
  "location": "Brooklyn, New York", "summary": "math & machines",
  "linkedInUrl": "https://www.linkedin.com/in/ada/",
  "photoUrl": "https://img/ada", "skills": ["Go", "SQL"],
  "positions": {"positionHistory": [
    {"title": "Staff Engineer", "description": "built search", "companyName": "Google"},
    {"title": "Engineer", "description": "built ads", "companyName": "Initech"}
  ]}
}`

const octoUserJSON = `{
  "login": "octo", "name": "Octo Cat", "bio": "builds things", "location": "Brooklyn, NY",
  "company": "@github", "websiteUrl": "https://octo.dev", "twitterUsername": "octo",
  "email": "octo@example.com", "avatarUrl": "https://avatars/octo",
  "followers": {"totalCount": 120}, "following": {"totalCount": 10},
  "repositories": {"totalCount": 1, "nodes": [
    {"name": "a", "stargazerCount": 10, "forkCount": 2, "primaryLanguage": {"name": "Go"},
     "repositoryTopics": {"nodes": []}}
  ]},
  "contributionsCollection": {"contributionYears": [2024], "totalCommitContributions": 300, "restrictedContributionsCount": 0},
  "organizations": {"nodes": []},
  "sponsors": {"totalCount": 0, "nodes": []},
  "socialAccounts": {"nodes": [{"provider": "LINKEDIN", "url": "https://linkedin.com/in/ada/"}]}
}`

func instantExecutor() *ratelimit.Executor {
	return ratelimit.NewExecutor(
		ratelimit.WithCooldown(time.Millisecond),
		ratelimit.WithClock(nil, func(ctx context.Context, d time.Duration) error { return ctx.Err() }),
	)
}

func mockVector(text string) []float32 {
	return mock.DeterministicVector(text, mock.DefaultDimensions)
}

func mustProfile(t *testing.T, raw string) *providers.LinkedInProfile {
	t.Helper()
	p, err := providers.ParseLinkedInProfile(json.RawMessage(raw))
	require.NoError(t, err)
	return p
}

func mustGitHubUser(t *testing.T, raw string) *providers.GitHubUser {
	t.Helper()
	u, err := providers.ParseGitHubUser(json.RawMessage(raw))
	require.NoError(t, err)
	return u
}

// scriptedCompleter answers each derivation by recognizing its system prompt.
func scriptedCompleter(skills string) *mock.MockCompleter {
	return mock.NewMockCompleter("").WithCompleteFunc(func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error) {
		switch {
		case strings.Contains(system, "location normalizer"):
			return "new york", nil
		case strings.Contains(system, "country normalizer"):
			return "united states", nil
		case strings.Contains(system, "three fields"):
			return skills, nil
		case strings.Contains(system, `"condition"`):
			return `{"condition": true}`, nil
		case strings.Contains(system, "1-2 sentence"):
			return "Ada builds search.", nil
		default:
			return "Go: 10 years", nil
		}
	})
}

func countCalls(c *mock.MockCompleter, fragment string) int {
	n := 0
	for _, call := range c.Calls() {
		if strings.Contains(call.System, fragment) {
			n++
		}
	}
	return n
}

type fakeProfiles struct {
	profiles map[string]*providers.LinkedInProfile
	calls    atomic.Int32
}

func (f *fakeProfiles) Fetch(ctx context.Context, url string) *providers.LinkedInProfile {
	f.calls.Add(1)
	return f.profiles[url]
}

type fakeGitHub struct {
	users map[string]*providers.GitHubUser
}

func (f *fakeGitHub) Fetch(ctx context.Context, login string) *providers.GitHubUser {
	return f.users[login]
}

type fakeTwitter struct {
	user   *providers.TwitterUser
	tweets []providers.Tweet
}

func (f *fakeTwitter) Fetch(ctx context.Context, handle string) *providers.TwitterUser {
	if f.user == nil || !strings.EqualFold(handle, f.user.ScreenName) {
		return nil
	}
	return f.user
}

func (f *fakeTwitter) FetchTweets(ctx context.Context, userID string) []providers.Tweet {
	return f.tweets
}

type fakeWhop struct {
	status providers.WhopStatus
	calls  atomic.Int32
}

func (f *fakeWhop) Check(ctx context.Context, email string) providers.WhopStatus {
	f.calls.Add(1)
	return f.status
}

type harness struct {
	stores    *badger.Stores
	completer *mock.MockCompleter
	embedder  *mock.MockEmbedder
	deriver   *derive.Deriver
	upserter  *embedding.Upserter
}

func newHarness(t *testing.T, skills string) *harness {
	t.Helper()
	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	exec := instantExecutor()
	completer := scriptedCompleter(skills)
	embedder := mock.NewMockEmbedder()
	upserter, err := embedding.NewUpserter(embedder, stores.Vectors, embedding.WithExecutor(exec))
	require.NoError(t, err)

	return &harness{
		stores:    stores,
		completer: completer,
		embedder:  embedder,
		deriver:   derive.New(completer, derive.WithExecutor(exec)),
		upserter:  upserter,
	}
}

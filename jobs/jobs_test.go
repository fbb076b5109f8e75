package jobs

import (
	"context"
	"encoding/json"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/ai/mock"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/embedding"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/poiesic/prospector/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSkills = `{"tech": ["Go", "Kubernetes"], "features": ["search ranking"], "isEngineer": true}`

const adaURL = "https://www.linkedin.com/in/ada"

const adaProfileJSON = `{
  "firstName": "Ada", "lastName": "Lovelace", "headline": "Engineer",
  "location": "Brooklyn, New York", "linkedInUrl": "https://www.linkedin.com/in/ada/",
  "skills": ["Go"],
  "positions": {"positionHistory": [
    {"title": "Staff Engineer", "companyName": "Google", "linkedInUrl": "https://www.linkedin.com/company/google/"},
    {"title": "Engineer", "companyName": "Initech", "linkedInUrl": "https://www.linkedin.com/company/initech"},
    {"title": "Intern", "companyName": "Google", "linkedInUrl": "https://www.linkedin.com/company/google"},
    {"title": "Volunteer", "companyName": "Soup Kitchen"}
  ]}
}`

func instantExecutor() *ratelimit.Executor {
	return ratelimit.NewExecutor(
		ratelimit.WithCooldown(time.Millisecond),
		ratelimit.WithClock(nil, func(ctx context.Context, d time.Duration) error { return ctx.Err() }),
	)
}

func noSleep(ctx context.Context, d time.Duration) error { return ctx.Err() }

func scriptedCompleter() *mock.MockCompleter {
	return mock.NewMockCompleter("").WithCompleteFunc(func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error) {
		switch {
		case strings.Contains(system, "location normalizer"):
			return "new york", nil
		case strings.Contains(system, "country normalizer"):
			return "united states", nil
		case strings.Contains(system, "three fields"):
			return testSkills, nil
		case strings.Contains(system, `"condition"`):
			return `{"condition": false}`, nil
		case strings.Contains(system, "1-2 sentence"):
			return "Ada builds search.", nil
		default:
			return "Go: 10 years", nil
		}
	})
}

type fakeProfiles struct {
	profiles map[string]*providers.LinkedInProfile
}

func (f *fakeProfiles) Fetch(ctx context.Context, url string) *providers.LinkedInProfile {
	return f.profiles[url]
}

type fakeGitHub struct {
	users map[string]*providers.GitHubUser
}

func (f *fakeGitHub) Fetch(ctx context.Context, login string) *providers.GitHubUser {
	return f.users[login]
}

type companyAnswer struct {
	company string
	ok      bool
}

type fakeCompanies map[string]companyAnswer

func (f fakeCompanies) FetchCompany(ctx context.Context, login string) (string, bool) {
	a := f[login]
	return a.company, a.ok
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

func newHarness(t *testing.T) *harness {
	t.Helper()
	stores, err := badger.NewMemoryStores()
	require.NoError(t, err)
	t.Cleanup(func() { stores.Close() })

	exec := instantExecutor()
	completer := scriptedCompleter()
	embedder := mock.NewMockEmbedder()
	upserter, err := embedding.NewUpserter(embedder, stores.Vectors,
		embedding.WithExecutor(exec),
		embedding.WithBioPace(0),
	)
	require.NoError(t, err)

	return &harness{
		stores:    stores,
		completer: completer,
		embedder:  embedder,
		deriver:   derive.New(completer, derive.WithExecutor(exec)),
		upserter:  upserter,
	}
}

func (h *harness) deps() Deps {
	return Deps{
		Persons:   h.stores.Persons,
		Companies: h.stores.Companies,
		Deriver:   h.deriver,
		Upserter:  h.upserter,
	}
}

func newJobs(deps Deps, opts ...Option) *Jobs {
	return New(deps, append([]Option{WithSleep(noSleep)}, opts...)...)
}

func (h *harness) insert(t *testing.T, p *core.Person) *core.Person {
	t.Helper()
	require.NoError(t, h.stores.Persons.Insert(context.Background(), p))
	return p
}

func (h *harness) get(t *testing.T, id string) *core.Person {
	t.Helper()
	p, err := h.stores.Persons.Get(context.Background(), id)
	require.NoError(t, err)
	return p
}

func rawJSON(s string) json.RawMessage {
	return json.RawMessage(s)
}

func TestCatalog(t *testing.T) {
	seen := make(map[string]bool)
	for _, s := range Catalog {
		assert.False(t, seen[s.Name], "duplicate job %s", s.Name)
		seen[s.Name] = true
		assert.NotEmpty(t, s.Usage)
		assert.Positive(t, s.BatchSize)
	}

	s, err := Lookup(UpsertXBios)
	require.NoError(t, err)
	assert.Equal(t, 25, s.BatchSize)
	assert.Equal(t, time.Second, s.Delay)

	_, err = Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestJobsConfig(t *testing.T) {
	t.Run("catalog defaults", func(t *testing.T) {
		cfg, err := New(Deps{}).Config(AddCandidates)
		require.NoError(t, err)
		assert.Equal(t, AddCandidates, cfg.Name)
		assert.Equal(t, 10, cfg.BatchSize)
		assert.Equal(t, 2500*time.Millisecond, cfg.Delay)
	})

	t.Run("overrides", func(t *testing.T) {
		cfg, err := New(Deps{}, WithBatchSize(3), WithDelay(0)).Config(AddCandidates)
		require.NoError(t, err)
		assert.Equal(t, 3, cfg.BatchSize)
		assert.Equal(t, 3, cfg.ReportInterval)
		assert.Zero(t, cfg.Delay)
	})
}

func TestJobsRun(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown job", func(t *testing.T) {
		_, err := New(Deps{}).Run(ctx, "nope", nil)
		assert.ErrorIs(t, err, ErrUnknownJob)
	})

	t.Run("missing dependency", func(t *testing.T) {
		for _, s := range Catalog {
			_, err := New(Deps{}).Run(ctx, s.Name, nil)
			assert.ErrorIs(t, err, ErrMissingDependency, s.Name)
		}
	})

	t.Run("dispatch", func(t *testing.T) {
		h := newHarness(t)
		report, err := newJobs(h.deps()).Run(ctx, NormalizeLocation, nil)
		require.NoError(t, err)
		assert.Zero(t, report.Selected)
	})
}

package derive

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/ai/mock"
	"github.com/poiesic/prospector/providers"
	"github.com/poiesic/prospector/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeriver(c ai.Completer) *Deriver {
	exec := ratelimit.NewExecutor(
		ratelimit.WithCooldown(time.Millisecond),
		ratelimit.WithClock(nil, func(ctx context.Context, d time.Duration) error { return ctx.Err() }),
	)
	return New(c, WithExecutor(exec))
}

func testProfile() *providers.LinkedInProfile {
	p := &providers.LinkedInProfile{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Headline:  "Engineer",
		Location:  "Brooklyn, New York",
		Summary:   "math & machines",
		Skills:    []string{"Go", "SQL"},
	}
	p.Positions.PositionHistory = []providers.Position{
		{Title: "Staff Engineer", Description: "built search", CompanyName: "Google"},
		{Title: "Engineer", Description: "built ads", CompanyName: "Initech"},
	}
	return p
}

func TestNormalizeLocation(t *testing.T) {
	completer := mock.NewMockCompleter("  new york \n")
	d := newTestDeriver(completer)

	assert.Equal(t, "NEW YORK", d.NormalizeLocation(context.Background(), "NYC"))

	calls := completer.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "NYC", calls[0].User)
	assert.Contains(t, calls[0].System, "Earth -> UNKNOWN")
	assert.Equal(t, DefaultModel, calls[0].Options.Model)
	assert.True(t, calls[0].Options.HasTemperature)
	assert.Equal(t, 0.0, calls[0].Options.Temperature)
	assert.Equal(t, 256, calls[0].Options.MaxTokens)
}

func TestNormalizeCountry_Fallbacks(t *testing.T) {
	t.Run("empty answer", func(t *testing.T) {
		d := newTestDeriver(mock.NewMockCompleter("   "))
		assert.Equal(t, LocationUnknown, d.NormalizeCountry(context.Background(), "Earth"))
	})
	t.Run("failed call", func(t *testing.T) {
		c := mock.NewMockCompleter("").WithCompleteFunc(func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error) {
			return "", errors.New("boom")
		})
		d := newTestDeriver(c)
		assert.Equal(t, LocationUnknown, d.NormalizeCountry(context.Background(), "Paris"))
	})
	t.Run("country prompt", func(t *testing.T) {
		c := mock.NewMockCompleter("united states")
		d := newTestDeriver(c)
		assert.Equal(t, "UNITED STATES", d.NormalizeCountry(context.Background(), "Boston"))
		assert.Contains(t, c.Calls()[0].System, "country normalizer")
	})
}

func TestGatherTopSkills(t *testing.T) {
	c := mock.NewMockCompleter("```json\n{\"tech\":[\"Go\",\"Kubernetes\"],\"features\":[\"search\"],\"isEngineer\":true}\n```")
	d := newTestDeriver(c)

	skills, err := d.GatherTopSkills(context.Background(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Kubernetes"}, skills.Tech)
	assert.Equal(t, []string{"search"}, skills.Features)
	assert.True(t, skills.IsEngineer)

	call := c.Calls()[0]
	assert.Equal(t, `{"positions":"built search built ads","skills":["Go","SQL"]}`, call.User)
	assert.True(t, call.Options.JSON)
	assert.False(t, call.Options.HasTemperature)
	assert.Equal(t, 2048, call.Options.MaxTokens)
}

func TestGatherTopSkills_Errors(t *testing.T) {
	_, err := newTestDeriver(mock.NewMockCompleter("not json")).GatherTopSkills(context.Background(), testProfile())
	assert.ErrorIs(t, err, ErrMalformedResponse)

	_, err = newTestDeriver(mock.NewMockCompleter("")).GatherTopSkills(context.Background(), testProfile())
	assert.ErrorIs(t, err, ErrNoCompletion)
}

func TestAskCondition(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"true", `{"condition": true}`, true},
		{"false", `{"condition": false}`, false},
		{"repaired", `{condition": true}`, true},
		{"garbage", "yes", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mock.NewMockCompleter(tt.answer)
			assert.Equal(t, tt.want, newTestDeriver(c).AskCondition(context.Background(), "Is the sky blue?"))
			opts := c.Calls()[0].Options
			assert.True(t, opts.JSON)
			assert.Equal(t, 256, opts.MaxTokens)
		})
	}
}

func TestAskCondition_RateLimitRetried(t *testing.T) {
	calls := 0
	c := mock.NewMockCompleter("").WithCompleteFunc(func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("429: Rate limit reached for gpt-4o-mini")
		}
		return `{"condition": true}`, nil
	})
	assert.True(t, newTestDeriver(c).AskCondition(context.Background(), "q"))
	assert.Equal(t, 3, calls)
}

func TestQuestions(t *testing.T) {
	p := testProfile()

	bigTech := WorkedInBigTechQuestion(p)
	assert.True(t, strings.HasPrefix(bigTech, "Has this person worked in big tech? [\n  \"Google\",\n  \"Initech\"\n]"))
	assert.True(t, strings.HasSuffix(bigTech, " math & machines Engineer"))

	brooklyn := LivesNearBrooklynQuestion(p)
	assert.Contains(t, brooklyn, "Their location: Brooklyn, New York or {\n  \"title\": \"Staff Engineer\"")

	p.Location = ""
	p.Positions.PositionHistory = nil
	assert.Equal(t,
		"Does this person live within 50 miles of Brooklyn, New York, USA? Their location: unknown location ",
		LivesNearBrooklynQuestion(p))
}

func TestSummaries(t *testing.T) {
	c := mock.NewMockCompleter(" Builds search systems. ")
	d := newTestDeriver(c)

	assert.Equal(t, "Builds search systems.", d.MiniSummary(context.Background(), testProfile()))
	assert.Equal(t, "Builds search systems.", d.Summary(context.Background(), testProfile()))

	calls := c.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, calls[0].System, "1-2 sentence summary")
	assert.Contains(t, calls[1].System, "hard skills")
	assert.Contains(t, calls[0].User, `"firstName":"Ada"`)
	assert.Contains(t, calls[0].User, "math & machines", "HTML is not escaped")

	failing := mock.NewMockCompleter("").WithCompleteFunc(func(ctx context.Context, system, user string, opts ai.CallOptions) (string, error) {
		return "", errors.New("down")
	})
	assert.Equal(t, "", newTestDeriver(failing).Summary(context.Background(), testProfile()))
}

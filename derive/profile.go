package derive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/providers"
)

// Skills is the structured skill summary of a LinkedIn profile.
type Skills struct {
	Tech       []string `json:"tech"`
	Features   []string `json:"features"`
	IsEngineer bool     `json:"isEngineer"`
}

// GatherTopSkills asks the model for the hard skills, the features worked on
// and whether the person is an engineer. The request carries only the
// profile's skills and the joined position descriptions.
func (d *Deriver) GatherTopSkills(ctx context.Context, profile *providers.LinkedInProfile) (Skills, error) {
	descriptions := make([]string, 0, len(profile.History()))
	for _, p := range profile.History() {
		descriptions = append(descriptions, p.Description)
	}
	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}
	input, err := compactJSON(map[string]any{
		"skills":    skills,
		"positions": strings.Join(descriptions, " "),
	})
	if err != nil {
		return Skills{}, err
	}

	text, ok := d.complete(ctx, "derive.skills", skillsPrompt, input,
		ai.WithJSONMode(),
		ai.WithMaxTokens(2048),
	)
	if !ok || strings.TrimSpace(text) == "" {
		return Skills{}, ErrNoCompletion
	}

	var out Skills
	if err := json.Unmarshal([]byte(ai.StripCodeFences(text)), &out); err != nil {
		return Skills{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return out, nil
}

// MiniSummary returns a one or two sentence summary of the profile, or ""
// when the model call fails.
func (d *Deriver) MiniSummary(ctx context.Context, profile *providers.LinkedInProfile) string {
	return d.summarize(ctx, "derive.mini_summary", miniSummaryPrompt, profile)
}

// Summary returns a list of hard skills with experience, or "" when the
// model call fails.
func (d *Deriver) Summary(ctx context.Context, profile *providers.LinkedInProfile) string {
	return d.summarize(ctx, "derive.summary", summaryPrompt, profile)
}

func (d *Deriver) summarize(ctx context.Context, name, system string, profile *providers.LinkedInProfile) string {
	input, err := compactJSON(profile)
	if err != nil {
		d.logger.Error("encode profile", "err", err)
		return ""
	}
	text, ok := d.complete(ctx, name, system, input,
		ai.WithTemperature(0),
		ai.WithMaxTokens(2048),
	)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}

// compactJSON encodes v without HTML escaping.
func compactJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// indentJSON encodes v with two-space indentation, without HTML escaping.
func indentJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "null"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

package derive

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/prospector/ai"
	"github.com/poiesic/prospector/providers"
)

// AskCondition poses a yes/no question and returns the model's answer.
// Any failure, including an unparseable answer, is false.
func (d *Deriver) AskCondition(ctx context.Context, question string) bool {
	text, ok := d.complete(ctx, "derive.condition", conditionPrompt, question,
		ai.WithJSONMode(),
		ai.WithTemperature(0),
		ai.WithMaxTokens(256),
	)
	if !ok || strings.TrimSpace(text) == "" {
		return false
	}

	var answer struct {
		Condition bool `json:"condition"`
	}
	if err := ai.DecodeJSON(text, &answer); err != nil {
		d.logger.Warn("unparseable condition answer", "answer", text, "err", err)
		return false
	}
	return answer.Condition
}

// WorkedInBigTechQuestion builds the big-tech question from the companies in
// the work history, the profile summary and the headline.
func WorkedInBigTechQuestion(profile *providers.LinkedInProfile) string {
	companies := make([]string, 0, len(profile.History()))
	for _, p := range profile.History() {
		companies = append(companies, p.CompanyName)
	}
	return fmt.Sprintf("Has this person worked in big tech? %s %s %s",
		indentJSON(companies), profile.Summary, profile.Headline)
}

// LivesNearBrooklynQuestion builds the proximity question from the profile
// location, falling back to the most recent position.
func LivesNearBrooklynQuestion(profile *providers.LinkedInProfile) string {
	location := profile.Location
	if location == "" {
		location = "unknown location"
	}
	recent := ""
	if history := profile.History(); len(history) > 0 {
		recent = "or " + indentJSON(history[0])
	}
	return fmt.Sprintf("Does this person live within 50 miles of Brooklyn, New York, USA? Their location: %s %s",
		location, recent)
}

package derive

import (
	"context"
	"strings"

	"github.com/poiesic/prospector/ai"
)

const (
	// LocationUnknown is returned when the model cannot place a location.
	LocationUnknown = "UNKNOWN"
	// LocationUndefined marks a person with no location to normalize.
	LocationUndefined = "UNDEFINED"
	// LocationNewYork is the normalized state used for proximity scoring.
	LocationNewYork = "NEW YORK"
)

// NormalizeLocation maps free-text location to an uppercase US state or, outside
// the US, an uppercase country. Failures and empty answers yield LocationUnknown.
func (d *Deriver) NormalizeLocation(ctx context.Context, location string) string {
	return d.normalize(ctx, "derive.location", locationPrompt, location)
}

// NormalizeCountry maps free-text location to an uppercase country name.
func (d *Deriver) NormalizeCountry(ctx context.Context, location string) string {
	return d.normalize(ctx, "derive.country", countryPrompt, location)
}

func (d *Deriver) normalize(ctx context.Context, name, system, location string) string {
	text, ok := d.complete(ctx, name, system, location,
		ai.WithTemperature(0),
		ai.WithMaxTokens(256),
	)
	if !ok {
		return LocationUnknown
	}
	text = strings.ToUpper(strings.TrimSpace(text))
	if text == "" {
		return LocationUnknown
	}
	return text
}

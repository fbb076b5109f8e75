package jobs

import (
	"context"
	"strings"

	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/derive"
	"github.com/poiesic/prospector/storage"
)

// NormalizeLocation fills the normalized state and country of everyone
// without one. A person with no location gets LocationUndefined for both
// without a model call.
func (j *Jobs) NormalizeLocation(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(NormalizeLocation, "persons")
	}
	if j.deps.Deriver == nil {
		return batch.Report{}, missing(NormalizeLocation, "deriver")
	}
	logger := j.jobLogger(NormalizeLocation)

	source := j.selectPersons(storage.Filter{Missing: []core.Field{core.FieldNormalizedLocation}})
	return newRunner[*core.Person](j, NormalizeLocation).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		location, country := derive.LocationUndefined, derive.LocationUndefined
		if raw := strings.TrimSpace(p.Location); raw != "" {
			location = j.deps.Deriver.NormalizeLocation(ctx, raw)
			country = j.deps.Deriver.NormalizeCountry(ctx, raw)
		}

		if err := j.deps.Persons.Update(ctx, p.ID, core.PersonPatch{
			NormalizedLocation: &location,
			NormalizedCountry:  &country,
		}); err != nil {
			return err
		}
		if err := j.deps.Persons.MarkDone(ctx, p.ID, core.ArtifactLocation); err != nil {
			return err
		}
		logger.Debug("normalized location", "id", p.ID, "location", location, "country", country)
		return nil
	})
}

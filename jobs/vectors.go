package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/prospector/batch"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/embedding"
	"github.com/poiesic/prospector/storage"
)

// UpsertAverage writes the average vector named by kind for every candidate
// still pending it. An empty list writes nothing and still completes the
// artifact.
func (j *Jobs) UpsertAverage(ctx context.Context, kind core.ArtifactKind) (batch.Report, error) {
	avg, ok := embedding.AverageFor(kind)
	if !ok {
		return batch.Report{}, fmt.Errorf("%w: %w: %q", ErrUnknownJob, core.ErrUnknownArtifact, kind)
	}
	name := averageJob(kind)
	if j.deps.Persons == nil {
		return batch.Report{}, missing(name, "persons")
	}
	if j.deps.Upserter == nil {
		return batch.Report{}, missing(name, "upserter")
	}
	logger := j.jobLogger(name)

	source := j.selectPersons(storage.Filter{
		Pending: kind,
		Has:     []core.Field{core.FieldLinkedInData},
	})
	return newRunner[*core.Person](j, name).Run(ctx, source, func(ctx context.Context, p *core.Person) error {
		written, err := j.deps.Upserter.UpsertAverage(ctx, avg.Namespace, p.ID, avg.Field, avg.Items(p))
		if err != nil {
			return err
		}
		if err := j.deps.Persons.MarkDone(ctx, p.ID, kind); err != nil {
			return err
		}
		logger.Debug("average done", "id", p.ID, "written", written)
		return nil
	})
}

func averageJob(kind core.ArtifactKind) string {
	switch kind {
	case core.ArtifactSkillAverage:
		return UpsertSkillAverage
	case core.ArtifactFeatureAverage:
		return UpsertFeatureAverage
	default:
		return UpsertJobTitleAverage
	}
}

// UpsertXBios embeds the X bios of everyone pending the bio artifact, one
// vector write per chunk. Only users whose vector was written are marked.
func (j *Jobs) UpsertXBios(ctx context.Context) (batch.Report, error) {
	if j.deps.Persons == nil {
		return batch.Report{}, missing(UpsertXBios, "persons")
	}
	if j.deps.Upserter == nil {
		return batch.Report{}, missing(UpsertXBios, "upserter")
	}
	logger := j.jobLogger(UpsertXBios)

	source := j.selectPersons(storage.Filter{
		Pending: core.ArtifactBio,
		Has:     []core.Field{core.FieldTwitterBio},
	})
	return newRunner[*core.Person](j, UpsertXBios).RunChunks(ctx, source, func(ctx context.Context, chunk []*core.Person) (int, error) {
		bios := make([]embedding.Bio, 0, len(chunk))
		for _, p := range chunk {
			username := p.TwitterUsername
			if username == "" {
				username = p.ID
			}
			bios = append(bios, embedding.Bio{
				UserID:   p.ID,
				Username: username,
				Text:     strings.TrimSpace(p.TwitterBio),
			})
		}

		written, err := j.deps.Upserter.UpsertBios(ctx, bios)
		if err != nil {
			return 0, err
		}

		failed := len(chunk) - len(written)
		for _, id := range written {
			if err := j.deps.Persons.MarkDone(ctx, id, core.ArtifactBio); err != nil {
				logger.Error("failed to mark bio done", "id", id, "err", err)
				failed++
			}
		}
		return failed, nil
	})
}

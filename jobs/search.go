package jobs

import (
	"context"
	"fmt"
	"io"

	"github.com/poiesic/prospector/search"
)

// XScore ranks X bios against query and writes one line per result.
func (j *Jobs) XScore(ctx context.Context, query string, w io.Writer) ([]*search.XResult, error) {
	if j.deps.Searcher == nil {
		return nil, missing("x-score", "searcher")
	}
	results, err := j.deps.Searcher.RankX(ctx, query, search.DefaultMaxResults)
	if err != nil {
		return nil, err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.String()); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// SimilarTechnologies lists the stored technologies closest to skill.
func (j *Jobs) SimilarTechnologies(ctx context.Context, skill string, w io.Writer) ([]search.TechnologyMatch, error) {
	if j.deps.Searcher == nil {
		return nil, missing("similar-technologies", "searcher")
	}
	matches, err := j.deps.Searcher.SimilarTechnologies(ctx, skill, search.DefaultTechnologyMatches)
	if err != nil {
		return nil, err
	}
	for _, m := range matches {
		if _, err := fmt.Fprintf(w, "%-40s %.4f %s\n", m.Technology, m.Score, m.CandidateID); err != nil {
			return nil, err
		}
	}
	return matches, nil
}

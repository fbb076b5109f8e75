package storage

import (
	"fmt"
	"slices"

	"github.com/poiesic/prospector/core"
)

// Filter selects persons. All set conditions must hold.
type Filter struct {
	// Pending keeps persons whose artifact is not done yet.
	Pending core.ArtifactKind
	// Has keeps persons where every field is present.
	Has []core.Field
	// Missing keeps persons where every field is absent.
	Missing []core.Field
	// IDs restricts the selection to these persons.
	IDs []string
	// CompanyID keeps persons linked to the company.
	CompanyID string
	// Engineer keeps persons whose engineer flag equals the value.
	Engineer *bool

	// Limit caps the number of results when positive.
	Limit int
	// Offset skips that many matching persons.
	Offset int
}

// Validate rejects unknown artifacts and negative paging.
func (f Filter) Validate() error {
	if f.Pending != "" && !f.Pending.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidQuery, core.ErrUnknownArtifact, f.Pending)
	}
	if f.Limit < 0 || f.Offset < 0 {
		return fmt.Errorf("%w: negative limit or offset", ErrInvalidQuery)
	}
	return nil
}

// Match reports whether p satisfies every condition, ignoring paging.
func (f Filter) Match(p *core.Person) bool {
	if f.Pending != "" && p.Done(f.Pending) {
		return false
	}
	for _, field := range f.Has {
		if !p.Has(field) {
			return false
		}
	}
	for _, field := range f.Missing {
		if p.Has(field) {
			return false
		}
	}
	if len(f.IDs) > 0 && !slices.Contains(f.IDs, p.ID) {
		return false
	}
	if f.CompanyID != "" && !slices.Contains(p.CompanyIDs, f.CompanyID) {
		return false
	}
	if f.Engineer != nil && p.IsEngineer != *f.Engineer {
		return false
	}
	return true
}

// Page applies Offset and Limit to an ordered result list.
func (f Filter) Page(people []*core.Person) []*core.Person {
	if f.Offset >= len(people) {
		return nil
	}
	people = people[f.Offset:]
	if f.Limit > 0 && len(people) > f.Limit {
		people = people[:f.Limit]
	}
	return people
}

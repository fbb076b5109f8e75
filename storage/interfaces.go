package storage

import (
	"context"

	"github.com/poiesic/prospector/core"
)

// PersonRepository stores person records.
type PersonRepository interface {
	// Insert stores a new person. A missing ID is generated and CreatedAt is
	// set when zero. Returns ErrDuplicateKey when the ID, LinkedIn URL or
	// GitHub login is already taken.
	Insert(ctx context.Context, p *core.Person) error

	// Get retrieves a person by ID.
	// Returns ErrNotFound if the person doesn't exist.
	Get(ctx context.Context, id string) (*core.Person, error)

	// FindByLinkedInURL looks a person up by normalized LinkedIn URL.
	// Returns ErrNotFound if no person matches.
	FindByLinkedInURL(ctx context.Context, url string) (*core.Person, error)

	// FindByGitHubLogin looks a person up by GitHub login.
	// Returns ErrNotFound if no person matches.
	FindByGitHubLogin(ctx context.Context, login string) (*core.Person, error)

	// Select returns persons matching f ordered by ID.
	Select(ctx context.Context, f Filter) ([]*core.Person, error)

	// Update applies a partial update.
	// Returns ErrNotFound if the person doesn't exist and ErrDuplicateKey
	// if a new LinkedIn URL is already taken.
	Update(ctx context.Context, id string, patch core.PersonPatch) error

	// MarkDone records completed artifacts. Statuses never move back to pending.
	// Returns ErrNotFound if the person doesn't exist.
	MarkDone(ctx context.Context, id string, kinds ...core.ArtifactKind) error

	// Close releases resources held by the repository.
	Close() error
}

// CompanyRepository stores companies resolved from work histories.
type CompanyRepository interface {
	// Upsert stores companies keyed by LinkedIn URL. Existing companies keep
	// their ID; new ones get a fresh ID. Returns the stored companies in
	// input order.
	Upsert(ctx context.Context, companies ...*core.Company) ([]*core.Company, error)

	// List returns every company ordered by ID.
	List(ctx context.Context) ([]*core.Company, error)

	// FindByLinkedInURLs returns the companies whose LinkedIn URL is in urls.
	// Unknown URLs are skipped.
	FindByLinkedInURLs(ctx context.Context, urls []string) ([]*core.Company, error)

	// SetTopTechnologies replaces a company's technology list.
	// Returns ErrNotFound if the company doesn't exist.
	SetTopTechnologies(ctx context.Context, id string, techs []string) error

	// Close releases resources held by the repository.
	Close() error
}

// VectorStore holds embeddings partitioned by namespace.
type VectorStore interface {
	// Upsert writes vectors into namespace. An existing ID is fully replaced.
	Upsert(ctx context.Context, namespace string, vectors []core.Vector) error

	// Query returns up to topK vectors most similar to vector, best first.
	// Metadata is only populated when includeMetadata is set.
	Query(ctx context.Context, namespace string, vector []float32, topK int, includeMetadata bool) ([]core.Match, error)
}

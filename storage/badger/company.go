package badger

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

// CompanyRepository implements storage.CompanyRepository using BadgerDB.
type CompanyRepository struct {
	backend *Backend
}

var _ storage.CompanyRepository = (*CompanyRepository)(nil)

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(backend *Backend) (*CompanyRepository, error) {
	return &CompanyRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CompanyRepository has no resources to release.
func (r *CompanyRepository) Close() error {
	return nil
}

func (r *CompanyRepository) Upsert(ctx context.Context, companies ...*core.Company) ([]*core.Company, error) {
	stored := make([]*core.Company, 0, len(companies))
	err := r.backend.Update(func(tx *badger.Txn) error {
		stored = stored[:0]
		for _, in := range companies {
			c := *in
			c.LinkedInURL = core.TrimTrailingSlash(c.LinkedInURL)

			if c.LinkedInURL != "" {
				id, ok, err := readString(tx, makeCompanyLinkedInKey(c.LinkedInURL))
				if err != nil {
					return err
				}
				if ok {
					existing, found, err := readCompany(tx, id)
					if err != nil {
						return err
					}
					if found {
						if c.Name != "" {
							existing.Name = c.Name
						}
						if c.TopTechnologies != nil {
							existing.TopTechnologies = c.TopTechnologies
						}
						c = *existing
					}
				}
			}
			if c.ID == "" {
				c.ID = core.NewID()
			}
			if err := core.ValidateCompany(&c); err != nil {
				return err
			}

			if err := writeCompany(tx, &c); err != nil {
				return err
			}
			if c.LinkedInURL != "" {
				if err := tx.Set(makeCompanyLinkedInKey(c.LinkedInURL), []byte(c.ID)); err != nil {
					return err
				}
			}
			stored = append(stored, &c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored, nil
}

func (r *CompanyRepository) List(ctx context.Context) ([]*core.Company, error) {
	var out []*core.Company
	err := r.backend.View(func(tx *badger.Txn) error {
		return scanPrefix(tx, []byte(companyPrefix), func(_, val []byte) error {
			c, err := unmarshal(core.CompanyMUS, val)
			if err != nil {
				return err
			}
			out = append(out, &c)
			return ctx.Err()
		})
	})
	return out, err
}

func (r *CompanyRepository) FindByLinkedInURLs(ctx context.Context, urls []string) ([]*core.Company, error) {
	var out []*core.Company
	err := r.backend.View(func(tx *badger.Txn) error {
		seen := make(map[string]bool, len(urls))
		for _, url := range urls {
			id, ok, err := readString(tx, makeCompanyLinkedInKey(core.TrimTrailingSlash(url)))
			if err != nil {
				return err
			}
			if !ok || seen[id] {
				continue
			}
			seen[id] = true

			c, found, err := readCompany(tx, id)
			if err != nil {
				return err
			}
			if found {
				out = append(out, c)
			}
		}
		return nil
	})
	return out, err
}

func (r *CompanyRepository) SetTopTechnologies(ctx context.Context, id string, techs []string) error {
	return r.backend.Update(func(tx *badger.Txn) error {
		c, found, err := readCompany(tx, id)
		if err != nil {
			return err
		}
		if !found {
			return storage.ErrNotFound
		}
		c.TopTechnologies = append([]string{}, techs...)
		return writeCompany(tx, c)
	})
}

package postgres

import (
	"context"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CompanyRepository stores companies in the companies table.
type CompanyRepository struct {
	db *DB
}

var _ storage.CompanyRepository = (*CompanyRepository)(nil)

func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Close() error {
	return nil
}

// Upsert matches companies on their trimmed LinkedIn URL inside one
// transaction. A matched company keeps its id; an empty name or nil
// technology list in the input keeps the stored value. Rows with a URL are
// written with INSERT ... ON CONFLICT, so concurrent upserts of a new URL
// converge on one row.
func (r *CompanyRepository) Upsert(ctx context.Context, companies ...*core.Company) ([]*core.Company, error) {
	var stored []*core.Company
	err := r.db.with(ctx).Transaction(func(tx *gorm.DB) error {
		stored = stored[:0]
		for _, in := range companies {
			c := *in
			c.LinkedInURL = core.TrimTrailingSlash(c.LinkedInURL)
			if c.ID == "" {
				c.ID = core.NewID()
			}
			if err := core.ValidateCompany(&c); err != nil {
				return err
			}

			row := newCompanyRow(&c)
			if c.LinkedInURL == "" {
				if err := tx.Save(row).Error; err != nil {
					return err
				}
				stored = append(stored, &c)
				continue
			}
			if err := upsertByURL(tx, row).Error; err != nil {
				return err
			}
			stored = append(stored, row.company())
		}
		return nil
	})
	if err != nil {
		return nil, mapError(err)
	}
	return stored, nil
}

// upsertByURL inserts row or merges it into the row holding the same
// linkedin_url. The stored row is scanned back into row.
func upsertByURL(tx *gorm.DB, row *companyRow) *gorm.DB {
	return tx.Clauses(
		clause.OnConflict{
			Columns: []clause.Column{{Name: "linkedin_url"}},
			DoUpdates: clause.Set{
				{Column: clause.Column{Name: "name"}, Value: gorm.Expr("COALESCE(NULLIF(excluded.name, ''), companies.name)")},
				{Column: clause.Column{Name: "top_technologies"}, Value: gorm.Expr("COALESCE(excluded.top_technologies, companies.top_technologies)")},
			},
		},
		clause.Returning{},
	).Create(row)
}

func (r *CompanyRepository) List(ctx context.Context) ([]*core.Company, error) {
	var rows []companyRow
	if err := r.db.with(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	return companies(rows), nil
}

func (r *CompanyRepository) FindByLinkedInURLs(ctx context.Context, urls []string) ([]*core.Company, error) {
	if len(urls) == 0 {
		return nil, nil
	}
	trimmed := make([]string, 0, len(urls))
	for _, u := range urls {
		trimmed = append(trimmed, core.TrimTrailingSlash(u))
	}

	var rows []companyRow
	if err := r.db.with(ctx).Where("linkedin_url IN ?", trimmed).Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}
	return companies(rows), nil
}

func (r *CompanyRepository) SetTopTechnologies(ctx context.Context, id string, techs []string) error {
	res := r.db.with(ctx).Model(&companyRow{}).Where("id = ?", id).
		Update("top_technologies", stringArray(append([]string{}, techs...)))
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func companies(rows []companyRow) []*core.Company {
	out := make([]*core.Company, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].company())
	}
	return out
}

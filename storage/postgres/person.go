package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PersonRepository stores persons in the persons table.
type PersonRepository struct {
	db *DB
}

var _ storage.PersonRepository = (*PersonRepository)(nil)

func NewPersonRepository(db *DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Close() error {
	return nil
}

func (r *PersonRepository) Insert(ctx context.Context, p *core.Person) error {
	if p != nil && p.ID == "" {
		p.ID = core.NewID()
	}
	if err := core.ValidatePerson(p); err != nil {
		return err
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}

	row, err := newPersonRow(p)
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}
	return mapError(r.db.with(ctx).Create(row).Error)
}

func (r *PersonRepository) Get(ctx context.Context, id string) (*core.Person, error) {
	return r.take(r.db.with(ctx).Where("id = ?", id))
}

func (r *PersonRepository) FindByLinkedInURL(ctx context.Context, url string) (*core.Person, error) {
	return r.take(r.db.with(ctx).Where("linkedin_url = ?", url))
}

func (r *PersonRepository) FindByGitHubLogin(ctx context.Context, login string) (*core.Person, error) {
	return r.take(r.db.with(ctx).Where("lower(github_login) = lower(?)", login))
}

func (r *PersonRepository) take(tx *gorm.DB) (*core.Person, error) {
	var row personRow
	if err := tx.Take(&row).Error; err != nil {
		return nil, mapError(err)
	}
	p, err := row.person()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
	}
	return p, nil
}

func (r *PersonRepository) Select(ctx context.Context, f storage.Filter) ([]*core.Person, error) {
	tx, err := applyFilter(r.db.with(ctx).Model(&personRow{}), f)
	if err != nil {
		return nil, err
	}

	var rows []personRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, mapError(err)
	}

	out := make([]*core.Person, 0, len(rows))
	for i := range rows {
		p, err := rows[i].person()
		if err != nil {
			return nil, fmt.Errorf("%w: person %s: %v", storage.ErrSerializationFailed, rows[i].ID, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *PersonRepository) Update(ctx context.Context, id string, patch core.PersonPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if err := core.ValidatePatch(patch); err != nil {
		return err
	}

	res := r.db.with(ctx).Model(&personRow{}).Where("id = ?", id).Updates(patchColumns(patch))
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// MarkDone merges the done statuses into the artifacts document, so
// concurrent marks on different kinds never overwrite each other.
func (r *PersonRepository) MarkDone(ctx context.Context, id string, kinds ...core.ArtifactKind) error {
	done := make(map[core.ArtifactKind]core.Status, len(kinds))
	for _, k := range kinds {
		if !k.Valid() {
			return fmt.Errorf("%w: %q", core.ErrUnknownArtifact, k)
		}
		done[k] = core.StatusDone
	}
	doc, err := toJSON(done)
	if err != nil {
		return err
	}

	res := r.db.with(ctx).Model(&personRow{}).Where("id = ?", id).
		Update("artifacts", gorm.Expr("COALESCE(artifacts, '{}'::jsonb) || ?::jsonb", string(doc)))
	if res.Error != nil {
		return mapError(res.Error)
	}
	if res.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// patchColumns maps every set patch field to its column.
func patchColumns(pp core.PersonPatch) map[string]any {
	cols := map[string]any{}
	setString := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	setBool := func(col string, v *bool) {
		if v != nil {
			cols[col] = *v
		}
	}
	setList := func(col string, v []string) {
		if v != nil {
			cols[col] = stringArray(v)
		}
	}

	if pp.LinkedInURL != nil {
		cols["linkedin_url"] = nullable(*pp.LinkedInURL)
	}
	setString("normalized_location", pp.NormalizedLocation)
	setString("normalized_country", pp.NormalizedCountry)
	setString("github_company", pp.GitHubCompany)
	setString("twitter_bio", pp.TwitterBio)
	setString("name", pp.Name)
	setString("mini_summary", pp.MiniSummary)
	setString("summary", pp.Summary)
	setBool("is_whop_user", pp.IsWhopUser)
	setBool("is_whop_creator", pp.IsWhopCreator)
	setBool("is_engineer", pp.IsEngineer)
	setBool("worked_in_big_tech", pp.WorkedInBigTech)
	setBool("lives_near_brooklyn", pp.LivesNearBrooklyn)
	if pp.LinkedInData != nil {
		cols["linkedin_data"] = datatypes.JSON(pp.LinkedInData)
	}
	setList("top_technologies", pp.TopTechnologies)
	setList("top_features", pp.TopFeatures)
	setList("job_titles", pp.JobTitles)
	setList("company_ids", pp.CompanyIDs)
	return cols
}

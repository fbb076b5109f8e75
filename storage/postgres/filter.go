package postgres

import (
	"fmt"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
	"gorm.io/gorm"
)

type columnKind int

const (
	textColumn columnKind = iota
	arrayColumn
	jsonColumnKind
)

var fieldKinds = map[core.Field]columnKind{
	core.FieldGitHubLogin:        textColumn,
	core.FieldLinkedInURL:        textColumn,
	core.FieldTwitterUsername:    textColumn,
	core.FieldEmail:              textColumn,
	core.FieldLocation:           textColumn,
	core.FieldNormalizedLocation: textColumn,
	core.FieldGitHubCompany:      textColumn,
	core.FieldTwitterBio:         textColumn,
	core.FieldGitHubData:         jsonColumnKind,
	core.FieldLinkedInData:       jsonColumnKind,
	core.FieldTwitterData:        jsonColumnKind,
	core.FieldTopTechnologies:    arrayColumn,
	core.FieldTopFeatures:        arrayColumn,
	core.FieldJobTitles:          arrayColumn,
}

// presence renders the SQL predicate that is true when the field holds a value.
func presence(f core.Field) (string, error) {
	kind, ok := fieldKinds[f]
	if !ok {
		return "", fmt.Errorf("%w: unknown field %q", storage.ErrInvalidQuery, f)
	}
	col := string(f)
	switch kind {
	case arrayColumn:
		return "COALESCE(cardinality(" + col + "), 0) > 0", nil
	case jsonColumnKind:
		return "(" + col + " IS NOT NULL AND " + col + " <> 'null'::jsonb)", nil
	default:
		return "COALESCE(" + col + ", '') <> ''", nil
	}
}

// applyFilter narrows tx to the persons matching f, ordered by id.
func applyFilter(tx *gorm.DB, f storage.Filter) (*gorm.DB, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	if f.Pending != "" {
		tx = tx.Where("COALESCE(artifacts ->> ?, '0') <> ?", string(f.Pending), fmt.Sprint(int(core.StatusDone)))
	}
	for _, field := range f.Has {
		pred, err := presence(field)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(pred)
	}
	for _, field := range f.Missing {
		pred, err := presence(field)
		if err != nil {
			return nil, err
		}
		tx = tx.Where("NOT " + pred)
	}
	if len(f.IDs) > 0 {
		tx = tx.Where("id IN ?", f.IDs)
	}
	if f.CompanyID != "" {
		tx = tx.Where("? = ANY(company_ids)", f.CompanyID)
	}
	if f.Engineer != nil {
		tx = tx.Where("is_engineer = ?", *f.Engineer)
	}

	tx = tx.Order("id")
	if f.Limit > 0 {
		tx = tx.Limit(f.Limit)
	}
	if f.Offset > 0 {
		tx = tx.Offset(f.Offset)
	}
	return tx, nil
}

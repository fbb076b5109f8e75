package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pgvector/pgvector-go"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VectorStore keeps embeddings in the pgvector vectors table and ranks them
// by cosine distance.
type VectorStore struct {
	db *DB
}

var _ storage.VectorStore = (*VectorStore)(nil)

func NewVectorStore(db *DB) *VectorStore {
	return &VectorStore{db: db}
}

func (s *VectorStore) Upsert(ctx context.Context, namespace string, vectors []core.Vector) error {
	if namespace == "" {
		return fmt.Errorf("%w: namespace required", storage.ErrInvalidQuery)
	}
	if len(vectors) == 0 {
		return nil
	}

	rows := make([]vectorRow, 0, len(vectors))
	for _, v := range vectors {
		if v.ID == "" {
			return fmt.Errorf("%w: vector id required", storage.ErrInvalidQuery)
		}
		row := vectorRow{Namespace: namespace, ID: v.ID, Embedding: pgvector.NewVector(v.Values)}
		if v.Metadata != nil {
			meta, err := toJSON(v.Metadata)
			if err != nil {
				return fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
			}
			row.Metadata = meta
		}
		rows = append(rows, row)
	}

	err := s.db.with(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"embedding", "metadata"}),
	}).Create(&rows).Error
	return mapError(err)
}

type matchRow struct {
	ID       string
	Score    float32
	Metadata datatypes.JSON
}

func (s *VectorStore) Query(ctx context.Context, namespace string, vector []float32, topK int, includeMetadata bool) ([]core.Match, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("%w: query vector required", storage.ErrInvalidQuery)
	}
	if topK <= 0 {
		topK = 10
	}

	var rows []matchRow
	err := rankQuery(s.db.with(ctx), namespace, vector, topK, includeMetadata).Scan(&rows).Error
	if err != nil {
		return nil, mapError(err)
	}

	matches := make([]core.Match, 0, len(rows))
	for _, row := range rows {
		m := core.Match{ID: row.ID, Score: row.Score}
		if raw := rawJSON(row.Metadata); includeMetadata && raw != nil {
			if err := json.Unmarshal(raw, &m.Metadata); err != nil {
				return nil, fmt.Errorf("%w: %v", storage.ErrSerializationFailed, err)
			}
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// rankQuery orders a namespace by cosine distance to vector. The score is
// the cosine similarity.
func rankQuery(tx *gorm.DB, namespace string, vector []float32, topK int, includeMetadata bool) *gorm.DB {
	q := pgvector.NewVector(vector)
	columns := "id, 1 - (embedding <=> ?) AS score"
	if includeMetadata {
		columns += ", metadata"
	}
	return tx.Model(&vectorRow{}).
		Select(columns, q).
		Where("namespace = ?", namespace).
		Order(clause.OrderBy{Expression: clause.Expr{SQL: "embedding <=> ?", Vars: []any{q}}}).
		Limit(topK)
}

package badger

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

// VectorStore implements storage.VectorStore using BadgerDB.
// Queries are exact: every vector in the namespace is scored.
type VectorStore struct {
	backend *Backend
}

var _ storage.VectorStore = (*VectorStore)(nil)

// NewVectorStore creates a new VectorStore.
func NewVectorStore(backend *Backend) *VectorStore {
	return &VectorStore{backend: backend}
}

func (s *VectorStore) Upsert(ctx context.Context, namespace string, vectors []core.Vector) error {
	if namespace == "" {
		return fmt.Errorf("%w: namespace required", storage.ErrInvalidQuery)
	}
	if len(vectors) == 0 {
		return nil
	}
	return s.backend.Update(func(tx *badger.Txn) error {
		for _, v := range vectors {
			if v.ID == "" {
				return fmt.Errorf("%w: vector id required", storage.ErrInvalidQuery)
			}
			rec, err := toRecord(v)
			if err != nil {
				return err
			}
			if err := write(tx, makeVectorKey(namespace, v.ID), core.VectorRecordMUS, rec); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *VectorStore) Query(ctx context.Context, namespace string, vector []float32, topK int, includeMetadata bool) ([]core.Match, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("%w: query vector required", storage.ErrInvalidQuery)
	}
	if topK <= 0 {
		topK = 10
	}

	var matches []core.Match
	err := s.backend.View(func(tx *badger.Txn) error {
		return scanPrefix(tx, makeVectorPrefix(namespace), func(_, val []byte) error {
			rec, err := unmarshal(core.VectorRecordMUS, val)
			if err != nil {
				return err
			}
			m := core.Match{ID: rec.ID, Score: cosine(vector, rec.Values)}
			if includeMetadata {
				v, err := fromRecord(rec)
				if err != nil {
					return err
				}
				m.Metadata = v.Metadata
			}
			matches = append(matches, m)
			return ctx.Err()
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(matches, func(a, b core.Match) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

// cosine returns the cosine similarity of a and b over their common length.
func cosine(a, b []float32) float32 {
	n := min(len(a), len(b))
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}

package pinecone

import (
	"context"
	"fmt"
	"strings"

	"github.com/poiesic/prospector/core"
	"github.com/poiesic/prospector/storage"
)

// maxUpsertBatch bounds the vectors sent in one upsert request.
const maxUpsertBatch = 100

// VectorStore maps prospector namespaces onto Pinecone namespaces of a
// single index.
type VectorStore struct {
	client *Client
	host   string
}

var _ storage.VectorStore = (*VectorStore)(nil)

// NewVectorStore binds the client to its index. When cfg.Host is empty the
// host is resolved once through describe_index.
func NewVectorStore(ctx context.Context, client *Client) (*VectorStore, error) {
	host := strings.TrimSpace(client.cfg.Host)
	if host == "" {
		desc, err := client.DescribeIndex(ctx, client.cfg.IndexName)
		if err != nil {
			return nil, fmt.Errorf("pinecone describe_index failed: %w", err)
		}
		host = desc.Host
		client.logger.Warn("index host resolved via describe_index; set PINECONE_INDEX_HOST to skip this",
			"index_name", client.cfg.IndexName,
			"index_host", host,
		)
	}
	return &VectorStore{client: client, host: host}, nil
}

func (s *VectorStore) Upsert(ctx context.Context, namespace string, vectors []core.Vector) error {
	if strings.TrimSpace(namespace) == "" {
		return fmt.Errorf("%w: namespace required", storage.ErrInvalidQuery)
	}
	for start := 0; start < len(vectors); start += maxUpsertBatch {
		end := min(start+maxUpsertBatch, len(vectors))
		batch := make([]Vector, 0, end-start)
		for _, v := range vectors[start:end] {
			if v.ID == "" {
				return fmt.Errorf("%w: vector id required", storage.ErrInvalidQuery)
			}
			batch = append(batch, Vector{ID: v.ID, Values: v.Values, Metadata: v.Metadata})
		}
		if _, err := s.client.UpsertVectors(ctx, s.host, UpsertRequest{Namespace: namespace, Vectors: batch}); err != nil {
			return err
		}
	}
	return nil
}

func (s *VectorStore) Query(ctx context.Context, namespace string, vector []float32, topK int, includeMetadata bool) ([]core.Match, error) {
	if len(vector) == 0 {
		return nil, fmt.Errorf("%w: query vector required", storage.ErrInvalidQuery)
	}
	resp, err := s.client.Query(ctx, s.host, QueryRequest{
		Namespace:       namespace,
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: includeMetadata,
	})
	if err != nil {
		return nil, err
	}

	out := make([]core.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		if strings.TrimSpace(m.ID) == "" {
			continue
		}
		match := core.Match{ID: m.ID, Score: m.Score}
		if includeMetadata {
			match.Metadata = m.Metadata
		}
		out = append(out, match)
	}
	return out, nil
}

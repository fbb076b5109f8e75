package embedding

import "errors"

var (
	// ErrEmbeddingFailed indicates the embedding service returned no vector.
	ErrEmbeddingFailed = errors.New("embedding failed")

	// ErrDimensionMismatch indicates vectors of different lengths were averaged.
	ErrDimensionMismatch = errors.New("vector dimensions differ")
)

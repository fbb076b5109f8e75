package embedding

import "fmt"

// Mean returns the element-wise mean of vectors. Components are summed in
// float64 and divided once, so long lists do not accumulate rounding drift.
func Mean(vectors [][]float32) ([]float32, error) {
	if len(vectors) == 0 {
		return nil, nil
	}
	dim := len(vectors[0])
	sum := make([]float64, dim)
	for i, v := range vectors {
		if len(v) != dim {
			return nil, fmt.Errorf("%w: vector %d has %d, want %d", ErrDimensionMismatch, i, len(v), dim)
		}
		for j, x := range v {
			sum[j] += float64(x)
		}
	}

	n := float64(len(vectors))
	mean := make([]float32, dim)
	for j, s := range sum {
		mean[j] = float32(s / n)
	}
	return mean, nil
}

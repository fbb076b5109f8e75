package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	mean, err := Mean([][]float32{{1, 2, 3}, {3, 4, 5}})
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 3, 4}, mean)
}

func TestMean_SingleVectorIsIdentity(t *testing.T) {
	v := []float32{0.25, -0.5, 0.125}
	mean, err := Mean([][]float32{v})
	require.NoError(t, err)
	assert.Equal(t, v, mean)
}

func TestMean_KeepsDimension(t *testing.T) {
	vectors := make([][]float32, 1000)
	for i := range vectors {
		vectors[i] = []float32{0.1, 0.2, 0.3, 0.4}
	}
	mean, err := Mean(vectors)
	require.NoError(t, err)
	require.Len(t, mean, 4)
	assert.InDelta(t, 0.1, mean[0], 1e-6)
	assert.InDelta(t, 0.4, mean[3], 1e-6)
}

func TestMean_Edges(t *testing.T) {
	mean, err := Mean(nil)
	require.NoError(t, err)
	assert.Nil(t, mean)

	_, err = Mean([][]float32{{1, 2}, {1}})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

package tri_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tridist/broadcast"
	"github.com/katalvlaran/tridist/tri"
)

// TestVector_RecycleMismatch verifies the recycling failure mode: x of length 3
// against min of length 2 is neither 1 nor L, so the whole call fails with
// a recycling error naming the vector.
func TestVector_RecycleMismatch(t *testing.T) {
	_, err := tri.Density([]float64{1, 2, 3}, []float64{0, 0}, []float64{4}, []float64{2}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, broadcast.ErrRecycle)
	assert.Contains(t, err.Error(), `"min"`)
}

// TestVector_EmptyInput verifies a zero-length primary vector is rejected.
func TestVector_EmptyInput(t *testing.T) {
	_, err := tri.CDF(nil, []float64{0}, []float64{1}, []float64{0.5}, nil)
	assert.ErrorIs(t, err, tri.ErrEmptyInput)

	_, err = tri.MGF([]float64{}, []float64{0}, []float64{1}, []float64{0.5})
	assert.ErrorIs(t, err, tri.ErrEmptyInput)
}

// TestVector_InvalidParams verifies each entry point rejects a bad parameter
// triple eagerly, before producing any partial result.
func TestVector_InvalidParams(t *testing.T) {
	x := []float64{0.5}
	bad := []struct {
		name           string
		min, max, mode []float64
	}{
		{"reversed bounds", []float64{2}, []float64{1}, []float64{1.5}},
		{"zero width", []float64{1}, []float64{1}, []float64{1}},
		{"mode outside", []float64{0}, []float64{1}, []float64{2}},
		{"non-finite", []float64{math.Inf(-1)}, []float64{1}, []float64{0}},
	}

	for _, tc := range bad {
		out, err := tri.Density(x, tc.min, tc.max, tc.mode, nil)
		assert.ErrorIs(t, err, tri.ErrParams, "Density/%s", tc.name)
		assert.Nil(t, out, "Density/%s", tc.name)

		out, err = tri.CDF(x, tc.min, tc.max, tc.mode, nil)
		assert.ErrorIs(t, err, tri.ErrParams, "CDF/%s", tc.name)
		assert.Nil(t, out)

		out, err = tri.Quantile(x, tc.min, tc.max, tc.mode, nil)
		assert.ErrorIs(t, err, tri.ErrParams, "Quantile/%s", tc.name)
		assert.Nil(t, out)

		out, err = tri.MGF(x, tc.min, tc.max, tc.mode)
		assert.ErrorIs(t, err, tri.ErrParams, "MGF/%s", tc.name)
		assert.Nil(t, out)

		out, err = tri.ExpectedShortfall(x, tc.min, tc.max, tc.mode, nil)
		assert.ErrorIs(t, err, tri.ErrParams, "ExpectedShortfall/%s", tc.name)
		assert.Nil(t, out)

		out, err = tri.Sample(4, tc.min, tc.max, tc.mode, nil)
		assert.ErrorIs(t, err, tri.ErrParams, "Sample/%s", tc.name)
		assert.Nil(t, out)
	}
}

// TestVector_OneBadTripleAbortsAll verifies vector-parameter mode checks
// every recycled triple: a single violation anywhere aborts the whole call
// and the error carries the offending index.
func TestVector_OneBadTripleAbortsAll(t *testing.T) {
	x := []float64{0.5, 0.5, 0.5}
	min := []float64{0, 0, 0}
	max := []float64{1, 1, 1}
	mode := []float64{0.5, 7, 0.5} // index 1 violates Mode <= Max

	out, err := tri.Density(x, min, max, mode, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, tri.ErrParams)
	assert.Contains(t, err.Error(), "index 1")
	assert.Nil(t, out, "no partial result on failure")
}

package tri_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/katalvlaran/tridist/tri"
)

// integratePDF integrates d.Prob over the support, split at the mode so each
// panel is a smooth polynomial and Gauss-Legendre is essentially exact.
func integratePDF(d tri.Dist) float64 {
	total := 0.0
	if d.Mode > d.Min {
		total += quad.Fixed(d.Prob, d.Min, d.Mode, 60, nil, 0)
	}
	if d.Mode < d.Max {
		total += quad.Fixed(d.Prob, d.Mode, d.Max, 60, nil, 0)
	}

	return total
}

// TestDensity_NonNegativeIntegratesToOne checks f ≥ 0 everywhere and
// ∫f = 1 over [Min, Max] for every shape, degenerate wedges included.
func TestDensity_NonNegativeIntegratesToOne(t *testing.T) {
	for _, d := range testShapes {
		for _, x := range supportSweep(d) {
			assert.GreaterOrEqual(t, d.Prob(x), 0.0, "Prob(%v) on %+v", x, d)
		}
		assert.InDelta(t, 1.0, integratePDF(d), 1e-10, "PDF of %+v must integrate to 1", d)
	}
}

// TestDensity_VectorMatchesScalar verifies the vector entry point agrees
// elementwise with the scalar kernel on recycled parameters.
func TestDensity_VectorMatchesScalar(t *testing.T) {
	d := tri.Dist{Min: -2, Max: 3, Mode: 2}
	xs := supportSweep(d)

	got, err := tri.Density(xs, []float64{d.Min}, []float64{d.Max}, []float64{d.Mode}, nil)
	require.NoError(t, err)
	require.Len(t, got, len(xs))
	for i, x := range xs {
		assert.Equal(t, d.Prob(x), got[i], "element %d (x=%v)", i, x)
	}
}

// TestDensity_RecyclingEquivalence reproduces the recycling contract:
// length-1 parameter vectors and fully expanded ones give identical results.
func TestDensity_RecyclingEquivalence(t *testing.T) {
	x := []float64{0.2, 0.5, 0.8}

	short, err := tri.Density(x, []float64{0}, []float64{1}, []float64{0.5, 0.5, 0.5}, nil)
	require.NoError(t, err)
	long, err := tri.Density(x, []float64{0, 0, 0}, []float64{1, 1, 1}, []float64{0.5, 0.5, 0.5}, nil)
	require.NoError(t, err)

	assert.Equal(t, long, short)
}

// TestDensity_PerElementParameters verifies vector-parameter mode pairs each
// input with its own parameter triple.
func TestDensity_PerElementParameters(t *testing.T) {
	x := []float64{0.5, 0.5, 0.5}
	min := []float64{0, 0, -1}
	max := []float64{1, 2, 1}
	mode := []float64{0.5, 1, 0}

	got, err := tri.Density(x, min, max, mode, nil)
	require.NoError(t, err)
	for i := range x {
		d := tri.Dist{Min: min[i], Max: max[i], Mode: mode[i]}
		assert.Equal(t, d.Prob(x[i]), got[i], "element %d", i)
	}
}

// TestDensity_LogSpace verifies Options.Log: log-branch evaluation matches
// log(f) on the interior and returns -Inf where f == 0.
func TestDensity_LogSpace(t *testing.T) {
	opts := tri.DefaultOptions()
	opts.Log = true

	for _, d := range testShapes {
		for _, x := range supportSweep(d) {
			lf := d.LogProb(x)
			f := d.Prob(x)
			if f == 0 {
				assert.True(t, math.IsInf(lf, -1), "LogProb(%v) on %+v must be -Inf", x, d)
				continue
			}
			assert.InDelta(t, math.Log(f), lf, 1e-12, "LogProb(%v) on %+v", x, d)
		}
	}

	got, err := tri.Density([]float64{-1, 0.25, 2}, []float64{0}, []float64{1}, []float64{0.5}, &opts)
	require.NoError(t, err)
	assert.True(t, math.IsInf(got[0], -1))
	assert.InDelta(t, math.Log(1.0), got[1], 1e-15)
	assert.True(t, math.IsInf(got[2], -1))
}

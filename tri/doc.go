// Package tri evaluates the triangular distribution: density, cumulative
// distribution, quantile, random variates, moment generating function and
// expected shortfall.
//
// 🚀 Two API layers
//
//	Scalar — Dist is a value type in the gonum/distuv mold: set Min, Max,
//	Mode (and optionally Src for sampling) and call Prob, CDF, Quantile,
//	Rand, MGF, ExpectedShortfall or the moment accessors directly.
//
//	Vector — Density, CDF, Quantile, Sample, MGF and ExpectedShortfall
//	evaluate whole slices at once. Parameter vectors recycle against the
//	input under the one-or-L rule (see package broadcast): pass length-1
//	slices for shared parameters or length-L slices for per-element ones.
//
// ✨ Numerical contract
//
//   - Degenerate shapes (Mode == Min or Mode == Max) collapse to the
//     surviving branch over the whole support; no division by zero leaks out.
//   - Log-space output (Options.Log, Options.LogP) is computed from
//     log-transformed branch formulas, never by logging an underflowed
//     probability.
//   - Upper-tail evaluation (Options.LowerTail = false) uses the
//     complementary closed form directly, not 1-F after the fact.
//   - The MGF switches to a Taylor expansion where the closed form is a
//     difference of near-equal exponentials over t².
//   - Quantile results are clamped to [Min, Max]; rounding never escapes the
//     support.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tridist/tri"
//
//	// scalar
//	d := tri.Dist{Min: 0, Max: 1, Mode: 0.5}
//	f := d.Prob(0.25)            // 1.0
//	q := d.Quantile(0.125)       // 0.25
//
//	// vector, recycled parameters
//	opts := tri.DefaultOptions()
//	dens, err := tri.Density([]float64{0.25, 0.5, 0.75},
//	    []float64{0}, []float64{1}, []float64{0.5}, &opts)
//
// Validation is eager: every call checks parameter finiteness and ordering
// (Min < Max, Min ≤ Mode ≤ Max) and the recycling contract before any kernel
// runs; a single violation aborts the whole call with a sentinel error.
// Per-element numeric oddities (x off-support, p outside [0,1]) are not call
// errors — they yield 0, 1, -Inf or NaN in that element only.
//
// Sampling is inverse-transform: one uniform draw per output element, in
// output order, from an explicit seedable x/exp/rand source, so a fixed seed
// reproduces a fixed sequence.
package tri

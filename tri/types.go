package tri

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// Dist is a triangular distribution on [Min, Max] with peak density at Mode.
//
// The zero value is not usable; populate the three parameters so that
// Min < Max and Min ≤ Mode ≤ Max. Mode == Min and Mode == Max are legal and
// describe the right- and left-wedge degenerate shapes.
//
// Dist is a plain value: methods never mutate it, so copies are cheap and
// safe to share across goroutines (Rand excepted — it advances Src).
type Dist struct {
	// Min is the lower support bound.
	Min float64
	// Max is the upper support bound; Min < Max.
	Max float64
	// Mode is the density peak location; Min ≤ Mode ≤ Max.
	Mode float64

	// Src supplies uniform variates for Rand. A nil Src falls back to the
	// global x/exp/rand stream.
	Src rand.Source
}

// Validate checks the parameter invariant: all three parameters finite,
// Min < Max and Min ≤ Mode ≤ Max. It returns nil or an error wrapping
// ErrParams that carries the offending values.
func (d Dist) Validate() error {
	if !finite(d.Min) || !finite(d.Max) || !finite(d.Mode) ||
		d.Min >= d.Max || d.Mode < d.Min || d.Mode > d.Max {
		return fmt.Errorf("%w: Min=%v Max=%v Mode=%v (want finite, Min < Max, Min <= Mode <= Max)",
			ErrParams, d.Min, d.Max, d.Mode)
	}

	return nil
}

// finite reports whether v is neither NaN nor ±Inf.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Options configures the vectorized evaluators. Each field is a scalar flag
// applied uniformly to every element of the call.
//
// Fields:
//   - Log       — Density returns log-density instead of density.
//   - LowerTail — when false, CDF returns the upper-tail probability
//     P(X > q), and Quantile/ExpectedShortfall interpret their probability
//     argument as an upper-tail mass.
//   - LogP      — probabilities cross the boundary in log space: CDF returns
//     log-probabilities, Quantile/ExpectedShortfall receive them.
//
// MGF and Sample recognize no options.
type Options struct {
	Log       bool
	LowerTail bool
	LogP      bool
}

// DefaultOptions returns the canonical option set: linear probabilities,
// lower tail, linear density.
func DefaultOptions() Options {
	return Options{Log: false, LowerTail: true, LogP: false}
}

// normalize maps a possibly-nil options pointer to a concrete value.
func normalize(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

package tri

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tridist/broadcast"
)

// params bundles the (possibly recycled) parameter vectors of one call.
// scalar marks the single-parameter-set fast path: all three vectors have
// length 1, kernels capture one Dist value and skip per-element reads.
type params struct {
	min, max, mode []float64
	scalar         bool
}

// at materializes the parameter triple recycled to index i.
func (p params) at(i int) Dist {
	return Dist{
		Min:  broadcast.At(p.min, i),
		Max:  broadcast.At(p.max, i),
		Mode: broadcast.At(p.mode, i),
	}
}

// resolve reconciles the primary input vector (reported as argName in
// errors) with the three parameter vectors and validates every distinct
// parameter triple before any kernel runs.
//
// Steps:
//  1. Reject an empty input vector (ErrEmptyInput).
//  2. Reconcile all four lengths under one-or-L (broadcast.Length).
//  3. Classify the call: scalar parameters validate the single triple,
//     vector parameters validate each recycled triple, so a single bad
//     element anywhere aborts the call with no partial result.
func resolve(argName string, x, min, max, mode []float64) (int, params, error) {
	if len(x) == 0 {
		return 0, params{}, fmt.Errorf("%w: %q", ErrEmptyInput, argName)
	}
	l, err := broadcast.Length(
		broadcast.Arg{Name: argName, Vec: x},
		broadcast.Arg{Name: "min", Vec: min},
		broadcast.Arg{Name: "max", Vec: max},
		broadcast.Arg{Name: "mode", Vec: mode},
	)
	if err != nil {
		return 0, params{}, err
	}
	pr := params{min: min, max: max, mode: mode, scalar: broadcast.Scalar(min, max, mode)}
	if err = validateTriples(pr); err != nil {
		return 0, params{}, err
	}

	return l, pr, nil
}

// validateTriples checks the parameter invariant for each distinct recycled
// triple (one in scalar mode, up to the longest parameter length otherwise).
func validateTriples(pr params) error {
	n := 1
	if !pr.scalar {
		n = max(len(pr.min), max(len(pr.max), len(pr.mode)))
	}
	for i := 0; i < n; i++ {
		if err := pr.at(i).Validate(); err != nil {
			if n > 1 {
				return fmt.Errorf("%w (parameter index %d)", err, i)
			}

			return err
		}
	}

	return nil
}

// probNormalizer maps a raw probability argument to the linear lower-tail
// probability consumed by Quantile and ExpectedShortfall, honoring the
// LowerTail/LogP options. The -expm1 path keeps 1-exp(lp) accurate for
// log-probabilities near zero.
func probNormalizer(o Options) func(float64) float64 {
	switch {
	case o.LogP && o.LowerTail:
		return math.Exp
	case o.LogP && !o.LowerTail:
		return func(lp float64) float64 { return -math.Expm1(lp) }
	case !o.LogP && !o.LowerTail:
		return func(p float64) float64 { return 1 - p }
	default:
		return func(p float64) float64 { return p }
	}
}

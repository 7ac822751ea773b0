package tri

import "github.com/katalvlaran/tridist/broadcast"

// CDF evaluates the cumulative distribution at every element of q against
// the recycled (min, max, mode) parameter vectors.
//
// Options select one of four kernels, chosen once per call:
//
//	LowerTail=true,  LogP=false → P(X ≤ q)            (Dist.CDF)
//	LowerTail=false, LogP=false → P(X > q)            (Dist.Survival)
//	LowerTail=true,  LogP=true  → log P(X ≤ q)        (Dist.LogCDF)
//	LowerTail=false, LogP=true  → log P(X > q)        (Dist.LogSurvival)
//
// The upper-tail and log forms are dedicated closed forms, never derived
// from the lower-tail probability after the fact. A nil opts means
// DefaultOptions.
//
// Errors: ErrEmptyInput, broadcast.ErrRecycle, ErrParams.
func CDF(q, min, max, mode []float64, opts *Options) ([]float64, error) {
	o := normalize(opts)
	l, pr, err := resolve("q", q, min, max, mode)
	if err != nil {
		return nil, err
	}

	var kernel func(Dist, float64) float64
	switch {
	case o.LowerTail && !o.LogP:
		kernel = Dist.CDF
	case !o.LowerTail && !o.LogP:
		kernel = Dist.Survival
	case o.LowerTail && o.LogP:
		kernel = Dist.LogCDF
	default:
		kernel = Dist.LogSurvival
	}

	out := make([]float64, l)
	if pr.scalar {
		d := pr.at(0)
		for i := 0; i < l; i++ {
			out[i] = kernel(d, broadcast.At(q, i))
		}

		return out, nil
	}
	for i := 0; i < l; i++ {
		out[i] = kernel(pr.at(i), broadcast.At(q, i))
	}

	return out, nil
}

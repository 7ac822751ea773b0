package tri

import "github.com/katalvlaran/tridist/broadcast"

// Density evaluates the triangular probability density at every element of x
// against the recycled (min, max, mode) parameter vectors.
//
// All four slices reconcile under the one-or-L rule; the result has the
// common length. opts.Log switches the output to log-density (see
// Dist.LogProb); a nil opts means DefaultOptions. Off-support elements yield
// 0 (or -Inf in log space) without failing the call.
//
// Errors: ErrEmptyInput, broadcast.ErrRecycle, ErrParams.
func Density(x, min, max, mode []float64, opts *Options) ([]float64, error) {
	o := normalize(opts)
	l, pr, err := resolve("x", x, min, max, mode)
	if err != nil {
		return nil, err
	}

	kernel := Dist.Prob
	if o.Log {
		kernel = Dist.LogProb
	}

	out := make([]float64, l)
	if pr.scalar {
		d := pr.at(0)
		for i := 0; i < l; i++ {
			out[i] = kernel(d, broadcast.At(x, i))
		}

		return out, nil
	}
	for i := 0; i < l; i++ {
		out[i] = kernel(pr.at(i), broadcast.At(x, i))
	}

	return out, nil
}

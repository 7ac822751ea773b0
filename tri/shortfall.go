package tri

import "github.com/katalvlaran/tridist/broadcast"

// ExpectedShortfall evaluates the lower-tail conditional mean at every
// element of p against the recycled (min, max, mode) parameter vectors:
// element i is E[X | X ≤ Q(pᵢ)] for the recycled parameter triple i.
//
// The probability argument is normalized exactly as in Quantile (LowerTail
// and LogP options, -expm1 for the log upper-tail flip). Elements outside
// [0,1] yield NaN; p == 0 is the removable singularity and yields min. A nil
// opts means DefaultOptions.
//
// Errors: ErrEmptyInput, broadcast.ErrRecycle, ErrParams.
func ExpectedShortfall(p, min, max, mode []float64, opts *Options) ([]float64, error) {
	o := normalize(opts)
	l, pr, err := resolve("p", p, min, max, mode)
	if err != nil {
		return nil, err
	}
	prob := probNormalizer(o)

	out := make([]float64, l)
	if pr.scalar {
		d := pr.at(0)
		for i := 0; i < l; i++ {
			out[i] = d.ExpectedShortfall(prob(broadcast.At(p, i)))
		}

		return out, nil
	}
	for i := 0; i < l; i++ {
		out[i] = pr.at(i).ExpectedShortfall(prob(broadcast.At(p, i)))
	}

	return out, nil
}

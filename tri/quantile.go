package tri

import "github.com/katalvlaran/tridist/broadcast"

// Quantile evaluates the inverse CDF at every element of p against the
// recycled (min, max, mode) parameter vectors.
//
// The probability argument is normalized once per call before branch
// selection: LogP exponentiates it (a log-probability that underflows to
// -Inf maps to min), LowerTail=false flips it to 1-p; the log upper-tail
// combination goes through -expm1 to keep the flip accurate near zero.
// Elements outside [0,1] after normalization yield NaN without failing the
// call; p == 0 maps exactly to min and p == 1 exactly to max. A nil opts
// means DefaultOptions.
//
// Errors: ErrEmptyInput, broadcast.ErrRecycle, ErrParams.
func Quantile(p, min, max, mode []float64, opts *Options) ([]float64, error) {
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
			out[i] = d.Quantile(prob(broadcast.At(p, i)))
		}

		return out, nil
	}
	for i := 0; i < l; i++ {
		out[i] = pr.at(i).Quantile(prob(broadcast.At(p, i)))
	}

	return out, nil
}

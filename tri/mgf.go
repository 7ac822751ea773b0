package tri

import "github.com/katalvlaran/tridist/broadcast"

// MGF evaluates the moment generating function E[exp(tX)] at every element
// of t against the recycled (min, max, mode) parameter vectors. There are no
// options: the MGF has no tail or log variant.
//
// Elements with t near zero relative to the support magnitude are routed to
// the series expansion (see Dist.MGF); t == 0 yields exactly 1.
//
// Errors: ErrEmptyInput, broadcast.ErrRecycle, ErrParams.
func MGF(t, min, max, mode []float64) ([]float64, error) {
	l, pr, err := resolve("t", t, min, max, mode)
	if err != nil {
		return nil, err
	}

	out := make([]float64, l)
	if pr.scalar {
		d := pr.at(0)
		for i := 0; i < l; i++ {
			out[i] = d.MGF(broadcast.At(t, i))
		}

		return out, nil
	}
	for i := 0; i < l; i++ {
		out[i] = pr.at(i).MGF(broadcast.At(t, i))
	}

	return out, nil
}

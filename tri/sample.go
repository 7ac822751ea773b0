package tri

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/tridist/broadcast"
)

// Sample draws n variates by inverse-transform sampling: one uniform draw
// per output element, consumed strictly in output order, pushed through the
// quantile formula. A fixed seed therefore reproduces a fixed sequence.
//
// The three parameter vectors reconcile among themselves under one-or-L;
// draw i then pairs with parameter index i mod L. With scalar parameters a
// single Dist value is captured and the loop performs no per-draw parameter
// reads. src may be nil, in which case the global x/exp/rand stream is used;
// tests and anything needing reproducibility should pass an explicit seeded
// source.
//
// Errors: ErrCount (n < 1), broadcast.ErrEmpty, broadcast.ErrRecycle,
// ErrParams.
func Sample(n int, min, max, mode []float64, src rand.Source) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrCount, n)
	}
	l, err := broadcast.Length(
		broadcast.Arg{Name: "min", Vec: min},
		broadcast.Arg{Name: "max", Vec: max},
		broadcast.Arg{Name: "mode", Vec: mode},
	)
	if err != nil {
		return nil, err
	}
	pr := params{min: min, max: max, mode: mode, scalar: l == 1}
	if err = validateTriples(pr); err != nil {
		return nil, err
	}

	uniform := rand.Float64
	if src != nil {
		uniform = rand.New(src).Float64
	}

	out := make([]float64, n)
	if pr.scalar {
		d := pr.at(0)
		for i := range out {
			out[i] = d.Quantile(uniform())
		}

		return out, nil
	}
	for i := range out {
		out[i] = pr.at(i % l).Quantile(uniform())
	}

	return out, nil
}

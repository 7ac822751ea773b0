package broadcast

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates a vector with no elements.
	ErrEmpty = errors.New("broadcast: vector must have at least one element")

	// ErrRecycle indicates a vector whose length is neither 1 nor the common
	// broadcast length.
	ErrRecycle = errors.New("broadcast: incompatible vector length")
)

// Arg names a vector for error reporting during length reconciliation.
type Arg struct {
	Name string
	Vec  []float64
}

// Length reconciles the lengths of args to a single common length L under the
// one-or-L rule: L is the maximum length present, and every vector must have
// length 1 or length L.
//
// Steps:
//  1. Reject empty vectors (ErrEmpty, naming the vector).
//  2. L = max over all lengths.
//  3. Reject any vector with length ∉ {1, L} (ErrRecycle, naming the vector
//     and both lengths).
//
// Complexity: O(len(args)) — lengths only, element values are never touched.
func Length(args ...Arg) (int, error) {
	l := 1
	for _, a := range args {
		if len(a.Vec) == 0 {
			return 0, fmt.Errorf("%w: %q", ErrEmpty, a.Name)
		}
		if len(a.Vec) > l {
			l = len(a.Vec)
		}
	}
	for _, a := range args {
		if n := len(a.Vec); n != 1 && n != l {
			return 0, fmt.Errorf("%w: %q has length %d, want 1 or %d", ErrRecycle, a.Name, n, l)
		}
	}

	return l, nil
}

// At reads element i of v under recycling: a length-1 vector yields its single
// value at every index. The caller guarantees i < L for vectors of length L.
func At(v []float64, i int) float64 {
	if len(v) == 1 {
		return v[0]
	}

	return v[i]
}

// Scalar reports whether every vector in vs has length exactly 1, i.e. the
// call carries one shared parameter set and kernels may take the
// single-parameter fast path.
func Scalar(vs ...[]float64) bool {
	for _, v := range vs {
		if len(v) != 1 {
			return false
		}
	}

	return true
}

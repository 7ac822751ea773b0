package tri

import "errors"

var (
	// ErrParams indicates a non-finite or order-violating parameter triple;
	// parameters must satisfy Min < Max and Min <= Mode <= Max.
	ErrParams = errors.New("tri: invalid parameters")

	// ErrCount indicates a sample count below one.
	ErrCount = errors.New("tri: sample count must be at least 1")

	// ErrEmptyInput indicates an input vector with no elements.
	ErrEmptyInput = errors.New("tri: input vector must be non-empty")
)

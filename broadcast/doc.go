// Package broadcast implements the one-or-L vector recycling rule shared by
// every tridist entry point.
//
// Recycling reconciles an input vector and its parameter vectors to a single
// common length L: every vector involved must have length 1 or length L, and
// L is the largest length present. A length-1 vector is read as the same
// scalar at every index; any other length mismatch is an error, never a
// silent partial recycle.
//
// The package is pure arithmetic on lengths — it performs no allocation and
// keeps no state. Callers resolve L once per call with Length, then address
// elements with At.
//
// Errors:
//   - ErrEmpty   — a vector has no elements (every argument needs at least one).
//   - ErrRecycle — a vector length is neither 1 nor L; the error names the
//     offending vector and both lengths.
package broadcast

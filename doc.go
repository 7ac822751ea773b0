// Package tridist is a toolkit for the triangular probability distribution —
// density, CDF, quantile, random variates, moment generating function and
// expected shortfall, evaluated over whole vectors with R-style parameter
// recycling.
//
// 🚀 What is tridist?
//
//	A small, fast library for quantitative workloads that need triangular
//	laws evaluated across large arrays of observations with per-element
//	distribution parameters:
//		• Scalar API: tri.Dist — a value type in the gonum/distuv mold
//		• Vector API: tri.Density / CDF / Quantile / Sample / MGF / ExpectedShortfall
//		• Recycling: length-1 parameter vectors broadcast to the input length
//		• Stability: log-space branches, tail-flip closed forms, a Taylor
//		  fallback where the MGF closed form cancels catastrophically
//
// ✨ Why choose tridist?
//
//   - Correct at the corners – Mode == Min, Mode == Max and evaluation exactly
//     at the mode are first-class cases, not afterthoughts
//   - Deterministic sampling – seedable x/exp/rand sources, one draw per
//     output element, in order
//   - Typed failures – sentinel errors (ErrParams, ErrRecycle, ErrCount…)
//     matched with errors.Is; a single bad element aborts the whole call
//
// Everything is organized under two subpackages:
//
//	broadcast/ — the one-or-L vector recycling rule
//	tri/       — the six evaluators and the Dist value type
//
// Quick ASCII example:
//
//	    f(x)
//	     ▲      ╱╲
//	     │    ╱    ╲
//	     │  ╱        ╲
//	     └─┴──────────┴──▶ x
//	      Min  Mode  Max
//
// Dive into tri/doc.go for formulas, options, and worked examples.
//
//	go get github.com/katalvlaran/tridist/tri
package tridist

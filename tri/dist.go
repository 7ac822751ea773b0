package tri

import (
	"math"

	"golang.org/x/exp/rand"
)

// Prob returns the probability density at x.
//
// Piecewise form (w = Max-Min):
//
//	f(x) = 0                              x < Min or x > Max
//	f(x) = 2(x-Min) / (w·(Mode-Min))      Min ≤ x < Mode
//	f(x) = 2/w                            x == Mode
//	f(x) = 2(Max-x) / (w·(Max-Mode))      Mode < x ≤ Max
//
// Degenerate shapes collapse to the surviving branch: with Mode == Min the
// upper branch covers all of (Min, Max] and f(Min) = 0; symmetrically for
// Mode == Max. NaN inputs propagate as NaN.
func (d Dist) Prob(x float64) float64 {
	if x < d.Min || x > d.Max {
		return 0
	}
	w := d.Max - d.Min
	switch {
	case d.Mode == d.Min:
		if x == d.Min {
			return 0
		}

		return 2 * (d.Max - x) / (w * w)
	case d.Mode == d.Max:
		if x == d.Max {
			return 0
		}

		return 2 * (x - d.Min) / (w * w)
	case x == d.Mode:
		return 2 / w
	case x < d.Mode:
		return 2 * (x - d.Min) / (w * (d.Mode - d.Min))
	default:
		return 2 * (d.Max - x) / (w * (d.Max - d.Mode))
	}
}

// LogProb returns the natural logarithm of the density at x, computed from
// the log-transformed branch formulas rather than log(Prob(x)), so precision
// survives where the density underflows toward zero. Off-support points (and
// the zero-density corner of a degenerate shape) return -Inf.
func (d Dist) LogProb(x float64) float64 {
	if x < d.Min || x > d.Max {
		return math.Inf(-1)
	}
	w := d.Max - d.Min
	switch {
	case d.Mode == d.Min:
		if x == d.Min {
			return math.Inf(-1)
		}

		return math.Ln2 + math.Log(d.Max-x) - 2*math.Log(w)
	case d.Mode == d.Max:
		if x == d.Max {
			return math.Inf(-1)
		}

		return math.Ln2 + math.Log(x-d.Min) - 2*math.Log(w)
	case x == d.Mode:
		return math.Ln2 - math.Log(w)
	case x < d.Mode:
		return math.Ln2 + math.Log(x-d.Min) - math.Log(w) - math.Log(d.Mode-d.Min)
	default:
		return math.Ln2 + math.Log(d.Max-x) - math.Log(w) - math.Log(d.Max-d.Mode)
	}
}

// CDF returns the cumulative probability P(X ≤ q).
//
//	F(q) = 0                               q < Min
//	F(q) = (q-Min)² / (w·(Mode-Min))       Min ≤ q ≤ Mode
//	F(q) = 1 - (Max-q)² / (w·(Max-Mode))   Mode < q < Max
//	F(q) = 1                               q ≥ Max
//
// Degenerate shapes take the surviving branch over the whole support.
func (d Dist) CDF(q float64) float64 {
	if q < d.Min {
		return 0
	}
	if q >= d.Max {
		return 1
	}
	w := d.Max - d.Min
	switch {
	case d.Mode == d.Min:
		r := d.Max - q

		return 1 - r*r/(w*w)
	case d.Mode == d.Max:
		r := q - d.Min

		return r * r / (w * w)
	case q <= d.Mode:
		r := q - d.Min

		return r * r / (w * (d.Mode - d.Min))
	default:
		r := d.Max - q

		return 1 - r*r/(w*(d.Max-d.Mode))
	}
}

// Survival returns the upper-tail probability P(X > q), evaluated from its
// own closed form — not as 1-CDF(q) — so tiny tail masses keep full
// precision.
func (d Dist) Survival(q float64) float64 {
	if q < d.Min {
		return 1
	}
	if q >= d.Max {
		return 0
	}
	w := d.Max - d.Min
	switch {
	case d.Mode == d.Min:
		r := d.Max - q

		return r * r / (w * w)
	case d.Mode == d.Max:
		r := q - d.Min

		return 1 - r*r/(w*w)
	case q <= d.Mode:
		r := q - d.Min

		return 1 - r*r/(w*(d.Mode-d.Min))
	default:
		r := d.Max - q

		return r * r / (w * (d.Max - d.Mode))
	}
}

// LogCDF returns log(P(X ≤ q)) from log-stable branch expressions: the
// quadratic branch stays in log space, the complementary branch goes through
// log1p. q below the support returns -Inf.
func (d Dist) LogCDF(q float64) float64 {
	if q < d.Min {
		return math.Inf(-1)
	}
	if q >= d.Max {
		return 0
	}
	w := d.Max - d.Min
	switch {
	case d.Mode == d.Min:
		r := d.Max - q

		return math.Log1p(-r * r / (w * w))
	case d.Mode == d.Max:
		return 2 * (math.Log(q-d.Min) - math.Log(w))
	case q <= d.Mode:
		return 2*math.Log(q-d.Min) - math.Log(w) - math.Log(d.Mode-d.Min)
	default:
		r := d.Max - q

		return math.Log1p(-r * r / (w * (d.Max - d.Mode)))
	}
}

// LogSurvival returns log(P(X > q)); the mirror of LogCDF.
func (d Dist) LogSurvival(q float64) float64 {
	if q < d.Min {
		return 0
	}
	if q >= d.Max {
		return math.Inf(-1)
	}
	w := d.Max - d.Min
	switch {
	case d.Mode == d.Min:
		r := d.Max - q

		return 2 * (math.Log(r) - math.Log(w))
	case d.Mode == d.Max:
		r := q - d.Min

		return math.Log1p(-r * r / (w * w))
	case q <= d.Mode:
		r := q - d.Min

		return math.Log1p(-r * r / (w * (d.Mode - d.Min)))
	default:
		return 2*math.Log(d.Max-q) - math.Log(w) - math.Log(d.Max-d.Mode)
	}
}

// Quantile returns the inverse CDF at p. Outside [0,1] (NaN included) the
// result is NaN. p == 0 yields exactly Min and p == 1 exactly Max; the result
// is clamped so floating rounding can never leave [Min, Max].
//
// With pm = CDF(Mode) = (Mode-Min)/(Max-Min):
//
//	Q(p) = Min + sqrt(p·w·(Mode-Min))       p ≤ pm
//	Q(p) = Max - sqrt((1-p)·w·(Max-Mode))   p > pm
func (d Dist) Quantile(p float64) float64 {
	if !(p >= 0 && p <= 1) { // NaN fails both bounds
		return math.NaN()
	}
	w := d.Max - d.Min
	var q float64
	if p <= (d.Mode-d.Min)/w {
		q = d.Min + math.Sqrt(p*w*(d.Mode-d.Min))
	} else {
		q = d.Max - math.Sqrt((1-p)*w*(d.Max-d.Mode))
	}

	return math.Min(math.Max(q, d.Min), d.Max)
}

// Rand draws one variate by inverse-transform sampling: a single uniform
// draw from Src (or the global stream when Src is nil) pushed through
// Quantile.
func (d Dist) Rand() float64 {
	var u float64
	if d.Src == nil {
		u = rand.Float64()
	} else {
		u = rand.New(d.Src).Float64()
	}

	return d.Quantile(u)
}

// mgfSeriesCut is the |t|·scale magnitude below which MGF switches from the
// closed form — a difference of near-equal exponentials over t², which dies
// by cancellation as t → 0 — to the Taylor expansion around t = 0. At the
// cut the truncated degree-6 series is accurate to ~1e-21 while the closed
// form has already lost ~6 digits.
const mgfSeriesCut = 1e-3

// MGF returns the moment generating function E[exp(tX)] at t.
//
// Closed form for |t| away from zero (w = Max-Min):
//
//	M(t) = 2·[(Max-Mode)e^{Min·t} - w·e^{Mode·t} + (Mode-Min)e^{Max·t}]
//	       / (w·(Mode-Min)·(Max-Mode)·t²)
//
// Degenerate shapes use the single-wedge closed forms, and t near zero
// (relative to the support magnitude) uses the series fallback; M(0) = 1
// exactly.
func (d Dist) MGF(t float64) float64 {
	if t == 0 {
		return 1
	}
	scale := math.Max(1, math.Max(math.Abs(d.Min), math.Abs(d.Max)))
	if math.Abs(t)*scale <= mgfSeriesCut {
		return d.mgfSeries(t)
	}
	w := d.Max - d.Min
	t2 := t * t
	switch {
	case d.Mode == d.Min:
		return 2 * (math.Exp(d.Max*t) - math.Exp(d.Min*t)*(1+w*t)) / (w * w * t2)
	case d.Mode == d.Max:
		return 2 * (math.Exp(d.Min*t) - math.Exp(d.Max*t)*(1-w*t)) / (w * w * t2)
	default:
		return 2 * ((d.Max-d.Mode)*math.Exp(d.Min*t) -
			w*math.Exp(d.Mode*t) +
			(d.Mode-d.Min)*math.Exp(d.Max*t)) /
			(w * (d.Mode - d.Min) * (d.Max - d.Mode) * t2)
	}
}

// mgfSeries evaluates the Taylor expansion of the MGF around t = 0 through
// the sixth raw moment. Raw moments of the triangular law reduce to complete
// homogeneous symmetric polynomials,
//
//	E[Xⁿ] = 2·hₙ(Min, Mode, Max) / ((n+1)(n+2)),
//
// a form with no divided differences, so it stays exact when Mode coincides
// with Min or Max.
func (d Dist) mgfSeries(t float64) float64 {
	sum := 1.0
	tn := 1.0
	fact := 1.0
	for n := 1; n <= 6; n++ {
		tn *= t
		fact *= float64(n)
		sum += 2 * homSym(n, d.Min, d.Mode, d.Max) * tn / (float64((n+1)*(n+2)) * fact)
	}

	return sum
}

// homSym computes the complete homogeneous symmetric polynomial
// hₙ(a,b,c) = Σ aⁱ·bʲ·cᵏ over i+j+k = n.
func homSym(n int, a, b, c float64) float64 {
	var s float64
	for i := 0; i <= n; i++ {
		ai := math.Pow(a, float64(i))
		for j := 0; j <= n-i; j++ {
			s += ai * math.Pow(b, float64(j)) * math.Pow(c, float64(n-i-j))
		}
	}

	return s
}

// ExpectedShortfall returns the conditional mean of X given X ≤ Quantile(p),
// i.e. (1/p)·∫ x·f(x) dx over [Min, Q(p)]. Outside [0,1] the result is NaN;
// p == 0 is the removable singularity and returns Min (the limit).
//
// Both branches come from integrating x·f(x) analytically. With
// pm = (Mode-Min)/w, h = Max-Mode and wq = sqrt((1-p)·w·h):
//
//	ES(p) = Min + (2/3)·sqrt(p·w·(Mode-Min))                          p ≤ pm
//	ES(p) = [pm·(Min + 2(Mode-Min)/3)                                 p > pm
//	         + Max·(p-pm) - (2/3)·(h·(1-pm) - wq·(1-p))] / p
func (d Dist) ExpectedShortfall(p float64) float64 {
	if !(p >= 0 && p <= 1) {
		return math.NaN()
	}
	if p == 0 {
		return d.Min
	}
	w := d.Max - d.Min
	pm := (d.Mode - d.Min) / w
	if p <= pm {
		return d.Min + 2.0/3.0*math.Sqrt(p*w*(d.Mode-d.Min))
	}
	h := d.Max - d.Mode
	wq := math.Sqrt((1 - p) * w * h)
	lower := pm * (d.Min + 2*(d.Mode-d.Min)/3)
	upper := d.Max*(p-pm) - 2.0/3.0*(h*(1-pm)-wq*(1-p))

	return (lower + upper) / p
}

package tri

import "math"

// Mean returns the expected value, (Min + Max + Mode)/3.
func (d Dist) Mean() float64 {
	return (d.Min + d.Max + d.Mode) / 3
}

// Median returns the 50% quantile.
func (d Dist) Median() float64 {
	return d.Quantile(0.5)
}

// Variance returns the second central moment,
// (Min² + Max² + Mode² - Min·Max - Min·Mode - Max·Mode)/18.
func (d Dist) Variance() float64 {
	return (d.Min*d.Min + d.Max*d.Max + d.Mode*d.Mode -
		d.Min*d.Max - d.Min*d.Mode - d.Max*d.Mode) / 18
}

// StdDev returns the standard deviation.
func (d Dist) StdDev() float64 {
	return math.Sqrt(d.Variance())
}

// Skewness returns the third standardized moment.
func (d Dist) Skewness() float64 {
	n := math.Sqrt2 * (d.Min + d.Max - 2*d.Mode) * (2*d.Min - d.Max - d.Mode) * (d.Min - 2*d.Max + d.Mode)
	den := 5 * math.Pow(d.Min*d.Min+d.Max*d.Max+d.Mode*d.Mode-
		d.Min*d.Max-d.Min*d.Mode-d.Max*d.Mode, 1.5)

	return n / den
}

// ExKurtosis returns the excess kurtosis, -3/5 for every triangular shape.
func (d Dist) ExKurtosis() float64 {
	return -3.0 / 5.0
}

// Entropy returns the differential entropy, 1/2 + log((Max-Min)/2).
func (d Dist) Entropy() float64 {
	return 0.5 + math.Log((d.Max-d.Min)/2)
}

// NumParameters returns the number of parameters of the distribution.
func (d Dist) NumParameters() int {
	return 3
}

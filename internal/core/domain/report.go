package domain

import "math"

// Report holds everything the formatter needs for the winning triple.
type Report struct {
	// Triple is the winning combination in its encountered order.
	Triple Triple

	// Sum is the sum of the three readings.
	Sum float64

	// Mean is the exact arithmetic mean (Sum / 3).
	Mean float64

	// MeanCeiled is the mean rounded up to the nearest thousandth.
	MeanCeiled float64
}

// NewReport computes the report for a selected triple.
func NewReport(t Triple) Report {
	mean := t.Mean()
	return Report{
		Triple:     t,
		Sum:        t.Sum(),
		Mean:       mean,
		MeanCeiled: CeilToThousandth(mean),
	}
}

// CeilToThousandth rounds x up to the nearest multiple of 0.001.
// It never rounds down; a value already on a thousandth is unchanged.
func CeilToThousandth(x float64) float64 {
	return math.Ceil(x*1000.0) / 1000.0
}

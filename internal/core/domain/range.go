package domain

// Plausible bounds for a reading. Values outside this inclusive range are
// physically suspect and draw an advisory warning, but never stop a run.
const (
	// PlausibleMin is the smallest plausible reading.
	PlausibleMin = 0.001

	// PlausibleMax is the largest plausible reading.
	PlausibleMax = 14.0
)

// OutOfRange returns the values falling outside [PlausibleMin, PlausibleMax],
// in input order. It returns nil when every value is in range.
func OutOfRange(values []float64) []float64 {
	var bad []float64
	for _, v := range values {
		if v < PlausibleMin || v > PlausibleMax {
			bad = append(bad, v)
		}
	}
	return bad
}

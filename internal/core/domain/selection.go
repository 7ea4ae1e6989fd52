package domain

import "math"

// Calibration targets for the selection.
const (
	// TargetMean is the mean the selected triple should approximate.
	TargetMean = 7.0

	// TargetSum is the corresponding sum target for a full triple.
	TargetSum = TargetMean * TripleSize
)

// SelectionKey is the composite ordering key that ranks a combination.
// Keys compare lexicographically, smaller is better: mean distance first,
// sum distance second, ascending readings last.
//
// The sum distance is mathematically redundant with the mean distance
// (mean = sum/3) but is kept as an independent comparison so that ordering
// under floating-point rounding stays exactly as documented.
type SelectionKey struct {
	// MeanDiff is the absolute distance between the combination's mean
	// and TargetMean.
	MeanDiff float64

	// SumDiff is the absolute distance between the combination's sum
	// and TargetSum.
	SumDiff float64

	// Sorted holds the combination's readings in ascending order and
	// breaks any remaining tie, making the winner unique.
	Sorted Triple
}

// KeyFor computes the selection key for a triple.
func KeyFor(t Triple) SelectionKey {
	return SelectionKey{
		MeanDiff: math.Abs(t.Mean() - TargetMean),
		SumDiff:  math.Abs(t.Sum() - TargetSum),
		Sorted:   t.Sorted(),
	}
}

// Less reports whether k orders strictly before other.
func (k SelectionKey) Less(other SelectionKey) bool {
	if k.MeanDiff != other.MeanDiff {
		return k.MeanDiff < other.MeanDiff
	}
	if k.SumDiff != other.SumDiff {
		return k.SumDiff < other.SumDiff
	}
	for i := range k.Sorted {
		if k.Sorted[i] != other.Sorted[i] {
			return k.Sorted[i] < other.Sorted[i]
		}
	}
	return false
}

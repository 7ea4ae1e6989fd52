package services

import (
	"fmt"

	"github.com/aetheric-labs/triad-cli/internal/core/domain"
	"github.com/aetheric-labs/triad-cli/internal/core/ports/driving"
	"github.com/aetheric-labs/triad-cli/internal/logger"
)

// Ensure SelectorService implements the interface.
var _ driving.TripleSelector = (*SelectorService)(nil)

// SelectorService selects the triple whose mean is closest to the
// calibration target.
type SelectorService struct{}

// NewSelectorService creates a new selector service.
func NewSelectorService() *SelectorService {
	return &SelectorService{}
}

// Select enumerates every three-value combination of values and returns
// the one closest to the calibration target.
//
// Combinations are position-based: repeated readings occupy distinct
// slots, so duplicates are enumerated independently. The winner is the
// combination with the lexicographically smallest selection key; a
// candidate replaces the incumbent only when strictly smaller, so ties
// resolve to the earliest combination in i<j<k enumeration order.
func (s *SelectorService) Select(values []float64) (domain.Triple, error) {
	logger.Section("Combination Search")
	logger.Debug("Input: %d values", len(values))

	if len(values) < domain.TripleSize {
		return domain.Triple{}, fmt.Errorf("%w: need at least %d values, got %d",
			domain.ErrTooFewValues, domain.TripleSize, len(values))
	}

	var (
		best    domain.Triple
		bestKey domain.SelectionKey
		found   bool
		checked int
	)

	for i := 0; i < len(values)-2; i++ {
		for j := i + 1; j < len(values)-1; j++ {
			for k := j + 1; k < len(values); k++ {
				candidate := domain.Triple{values[i], values[j], values[k]}
				key := domain.KeyFor(candidate)
				checked++

				if !found || key.Less(bestKey) {
					best = candidate
					bestKey = key
					found = true
					logger.Debug("New best %s: mean diff %.6f, sum diff %.6f",
						candidate, key.MeanDiff, key.SumDiff)
				}
			}
		}
	}

	logger.Info("Checked %d combinations", checked)
	logger.Debug("Winner: %s (sum=%.6f, mean=%.6f)", best, best.Sum(), best.Mean())

	return best, nil
}

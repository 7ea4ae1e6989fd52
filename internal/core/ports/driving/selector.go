package driving

import (
	"github.com/aetheric-labs/triad-cli/internal/core/domain"
)

// TripleSelector picks the best triple out of a set of measurements.
type TripleSelector interface {
	// Select enumerates every three-value combination of values and returns
	// the one closest to the calibration target.
	Select(values []float64) (domain.Triple, error)
}

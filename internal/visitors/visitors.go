package visitors

import (
	"fmt"
	"math"
)

// Series is an ordered sequence of daily visitor counts, one per simulated
// day. A series is produced once and shared read-only across every scenario
// of a comparison, so output differences are attributable to policy alone.
type Series []float64

// Validate rejects negative or non-finite counts. The engine requires a
// validated series; a bad count is a precondition violation, not a per-day
// condition.
func (s Series) Validate() error {
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("visitor count for day %d must be finite and >= 0, got %v", i+1, v)
		}
	}
	return nil
}

package analysis

import (
	"math"
	"sort"

	"trailsim/internal/sim"
)

// Summary is one scenario's row in the comparison table. Percentiles are
// over the run's daily trail-quality values.
type Summary struct {
	Name        string
	HorizonDays int

	AvgTotalLitter  float64
	AvgTrailQuality float64
	MinTrailQuality float64
	MaxTrailQuality float64

	P10TrailQuality float64
	P50TrailQuality float64
	P90TrailQuality float64

	FinalTotalLitter  float64
	FinalTrailQuality float64
}

// Summarize reduces one completed result to its table row.
func Summarize(res *sim.Result) Summary {
	if res == nil {
		return Summary{}
	}
	s := Summary{
		Name:        res.Name,
		HorizonDays: len(res.Records),

		AvgTotalLitter:  res.AvgTotalLitter,
		AvgTrailQuality: res.AvgTrailQuality,
		MinTrailQuality: res.MinTrailQuality,
		MaxTrailQuality: res.MaxTrailQuality,

		FinalTotalLitter:  res.FinalTotalLitter,
		FinalTrailQuality: res.FinalTrailQuality,
	}

	quals := make([]float64, 0, len(res.Records))
	for _, r := range res.Records {
		quals = append(quals, r.TrailQuality)
	}
	sort.Float64s(quals)
	s.P10TrailQuality = percentileSorted(quals, 0.10)
	s.P50TrailQuality = percentileSorted(quals, 0.50)
	s.P90TrailQuality = percentileSorted(quals, 0.90)
	return s
}

// SummarizeAll builds rows for the successful outcomes, preserving input
// order. Failed outcomes carry their error and have no row.
func SummarizeAll(outcomes []Outcome) []Summary {
	out := make([]Summary, 0, len(outcomes))
	for _, oc := range outcomes {
		if oc.Err != nil {
			continue
		}
		out = append(out, Summarize(oc.Result))
	}
	return out
}

// RankByQuality sorts summaries descending by average trail quality.
func RankByQuality(rows []Summary) []Summary {
	out := make([]Summary, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool {
		return out[i].AvgTrailQuality > out[j].AvgTrailQuality
	})
	return out
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

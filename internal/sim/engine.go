package sim

import (
	"fmt"

	"trailsim/internal/model"
	"trailsim/internal/visitors"
)

// Observer receives each DayRecord as the engine produces it, in day order.
// Observers are side channels (log sinks, progress displays); the engine
// never depends on them for correctness.
type Observer func(DayRecord)

// SeriesLengthError reports a visitor series whose length does not match the
// scenario horizon. Detected before the first transition.
type SeriesLengthError struct {
	Want int
	Got  int
}

func (e *SeriesLengthError) Error() string {
	return fmt.Sprintf("visitor series has %d days, scenario horizon is %d", e.Got, e.Want)
}

type Engine struct {
	// Observer, when non-nil, is called once per simulated day.
	Observer Observer
}

func New() *Engine { return &Engine{} }

// Run simulates one named scenario over a visitor series.
//
// The scenario is validated and the series checked for length and content
// before the first day, so a failed run produces no partial records.
// Deterministic: identical inputs yield an identical Result; there is no
// randomness and no I/O inside the loop.
func (e *Engine) Run(name string, sc model.Scenario, series visitors.Series) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if len(series) != sc.HorizonDays {
		return nil, &SeriesLengthError{Want: sc.HorizonDays, Got: len(series)}
	}
	if err := series.Validate(); err != nil {
		return nil, err
	}

	records := make([]DayRecord, 0, sc.HorizonDays)
	state := InitialState(sc)

	var (
		litterSum, qualitySum    float64
		totalAdded, totalRemoved float64
		minQ, maxQ               float64
		cleanupDays, maintenance int
	)

	for day := 1; day <= sc.HorizonDays; day++ {
		next, rec := Step(state, series[day-1], day, sc)
		state = next

		litterSum += rec.TotalLitter
		qualitySum += rec.TrailQuality
		totalAdded += rec.LitterAdded
		totalRemoved += rec.LitterRemoved
		if cadenceDue(day, sc.CleanupFrequencyDays) {
			cleanupDays++
		}
		if cadenceDue(day, sc.MaintenanceFrequencyDays) {
			maintenance++
		}
		if day == 1 || rec.TrailQuality < minQ {
			minQ = rec.TrailQuality
		}
		if day == 1 || rec.TrailQuality > maxQ {
			maxQ = rec.TrailQuality
		}

		records = append(records, rec)
		if e.Observer != nil {
			e.Observer(rec)
		}
	}

	n := float64(sc.HorizonDays)
	return &Result{
		Name:    name,
		Records: records,

		AvgTotalLitter:  litterSum / n,
		AvgTrailQuality: qualitySum / n,
		MinTrailQuality: minQ,
		MaxTrailQuality: maxQ,

		FinalTotalLitter:  state.TotalLitter,
		FinalTrailQuality: state.TrailQuality,

		TotalLitterAdded:   totalAdded,
		TotalLitterRemoved: totalRemoved,
		CleanupDays:        cleanupDays,
		MaintenanceDays:    maintenance,
	}, nil
}

package sim

import "trailsim/internal/model"

// State is the trail condition carried from one day into the next.
type State struct {
	TotalLitter  float64
	TrailQuality float64
}

// InitialState is the condition entering day 1: no accumulated litter,
// quality at the scenario's starting point.
func InitialState(sc model.Scenario) State {
	return State{TotalLitter: 0, TrailQuality: sc.InitialQuality}
}

// cadenceDue reports whether a frequency triggers on a 1-based day index.
// Convention: (day-1) mod frequency == 0, so day 1 always triggers and a
// weekly policy fires on days 1, 8, 15, ...
func cadenceDue(day, frequencyDays int) bool {
	return (day-1)%frequencyDays == 0
}

// Step advances the trail by one day. Pure: the outputs are a strict
// function of the arguments.
//
// Litter and quality move through independent pipelines. Litter accrues,
// then clean-up days remove the efficiency fraction of the accumulated load.
// Erosion degrades quality, which is floored at MinQuality before any
// maintenance boost and capped at MaxQuality after it, so a boost never
// compensates an excursion the floor already absorbed and never overshoots
// the ceiling.
//
// sc must be validated and visitors finite and >= 0; both are enforced by
// the engine before the first step.
func Step(prev State, visitors float64, day int, sc model.Scenario) (State, DayRecord) {
	litterAdded := visitors * sc.LitterPerVisitor
	totalLitter := prev.TotalLitter + litterAdded

	litterRemoved := 0.0
	if cadenceDue(day, sc.CleanupFrequencyDays) {
		litterRemoved = totalLitter * sc.CleanupEfficiency
		totalLitter -= litterRemoved
	}

	degradation := visitors * sc.ErosionRate
	quality := prev.TrailQuality - degradation
	if quality < sc.MinQuality {
		quality = sc.MinQuality
	}

	maintenanceApplied := 0.0
	if cadenceDue(day, sc.MaintenanceFrequencyDays) {
		maintenanceApplied = sc.MaintenanceBoost
		quality += sc.MaintenanceBoost
		if quality > sc.MaxQuality {
			quality = sc.MaxQuality
		}
	}

	next := State{TotalLitter: totalLitter, TrailQuality: quality}
	rec := DayRecord{
		Day:      day,
		Visitors: visitors,

		LitterAdded:   litterAdded,
		LitterRemoved: litterRemoved,
		TotalLitter:   totalLitter,

		QualityDegradation: degradation,
		MaintenanceApplied: maintenanceApplied,
		TrailQuality:       quality,
	}
	return next, rec
}

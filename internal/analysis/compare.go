package analysis

import (
	"trailsim/internal/model"
	"trailsim/internal/sim"
	"trailsim/internal/visitors"
)

// NamedScenario pairs an operating policy with the name it is reported under.
type NamedScenario struct {
	Name     string
	Scenario model.Scenario
}

// Outcome is one scenario's slot in a comparison: either a completed Result
// or the error that stopped the run before any records were produced.
type Outcome struct {
	Name   string
	Result *sim.Result
	Err    error
}

// Compare runs every named scenario against the same visitor series, in
// input order. The series is shared read-only and never resampled, so
// differences between outcomes are attributable to policy alone. A scenario
// that fails (invalid config, series length mismatch) is reported in its
// Outcome and does not abort the remaining scenarios.
func Compare(scenarios []NamedScenario, series visitors.Series) []Outcome {
	return CompareObserved(scenarios, series, nil)
}

// CompareObserved is Compare with a hook invoked after each scenario
// finishes, successful or not.
func CompareObserved(scenarios []NamedScenario, series visitors.Series, done func(Outcome)) []Outcome {
	engine := sim.New()
	out := make([]Outcome, 0, len(scenarios))
	for _, ns := range scenarios {
		res, err := engine.Run(ns.Name, ns.Scenario, series)
		o := Outcome{Name: ns.Name, Result: res, Err: err}
		if done != nil {
			done(o)
		}
		out = append(out, o)
	}
	return out
}

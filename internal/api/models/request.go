package models

// SimulateRequest is the request body for POST /api/v1/simulate.
//
// The scenario can come from a builtin preset (by id), from inline
// parameters, or both: inline non-zero fields override the preset.
// Visitors default to the reference sampler when left empty.
type SimulateRequest struct {
	HorizonDays int             `json:"horizon_days"`
	Visitors    VisitorsSpec    `json:"visitors"`
	Preset      string          `json:"preset"`
	Scenario    ScenarioSpec    `json:"scenario"`
	Options     SimulateOptions `json:"options"`
}

// VisitorsSpec describes the visitor series for a run. An explicit series
// wins over the sampler fields.
type VisitorsSpec struct {
	Series   []float64 `json:"series,omitempty"`
	Sampler  string    `json:"sampler,omitempty"`
	Mean     float64   `json:"mean,omitempty"`
	StdDev   float64   `json:"std_dev,omitempty"`
	Floor    float64   `json:"floor,omitempty"`
	Seed     int64     `json:"seed,omitempty"`
	Constant float64   `json:"constant,omitempty"`
}

// ScenarioSpec carries scenario parameters over the wire. Zero fields are
// treated as "not set" when merging over a preset or a comparison base.
type ScenarioSpec struct {
	Name                     string  `json:"name,omitempty"`
	LitterPerVisitor         float64 `json:"litter_per_visitor,omitempty"`
	CleanupFrequencyDays     int     `json:"cleanup_frequency_days,omitempty"`
	CleanupEfficiency        float64 `json:"cleanup_efficiency,omitempty"`
	ErosionRate              float64 `json:"erosion_rate,omitempty"`
	MaintenanceFrequencyDays int     `json:"maintenance_frequency_days,omitempty"`
	MaintenanceBoost         float64 `json:"maintenance_boost,omitempty"`
	MinQuality               float64 `json:"min_quality,omitempty"`
	MaxQuality               float64 `json:"max_quality,omitempty"`
	InitialQuality           float64 `json:"initial_quality,omitempty"`
}

// SimulateOptions controls what comes back and whether the run is kept.
type SimulateOptions struct {
	IncludeDays bool `json:"include_days,omitempty"`
	Save        bool `json:"save,omitempty"`
}

// CompareRequest is the request body for POST /api/v1/simulate/compare.
// Every variation merges its overrides onto the base scenario and all
// variations run against the same visitor series.
type CompareRequest struct {
	HorizonDays int          `json:"horizon_days" binding:"required"`
	Visitors    VisitorsSpec `json:"visitors"`
	Base        ScenarioSpec `json:"base"`
	Variations  []Variation  `json:"variations" binding:"required"`
}

// Variation names one scenario in a comparison.
type Variation struct {
	Name      string       `json:"name" binding:"required"`
	Overrides ScenarioSpec `json:"overrides"`
}

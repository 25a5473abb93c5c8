package model

import "math"

// Scenario defines one operating policy for a trail over a fixed horizon.
// Units:
// - LitterPerVisitor: kg contributed per visitor per day
// - CleanupEfficiency: fraction 0..1 of accumulated litter removed on a clean-up day
// - ErosionRate: quality points lost per visitor per day
// - MaintenanceBoost: quality points restored on a maintenance day
// - Quality bounds: points, MinQuality <= quality <= MaxQuality (typically 0..100)
type Scenario struct {
	HorizonDays              int
	LitterPerVisitor         float64
	CleanupFrequencyDays     int
	CleanupEfficiency        float64
	ErosionRate              float64
	MaintenanceFrequencyDays int
	MaintenanceBoost         float64
	MinQuality               float64
	MaxQuality               float64
	InitialQuality           float64
}

// ConfigError reports a Scenario field outside its documented range.
// Field names match the Scenario struct fields.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Field + " " + e.Reason
}

// Validate checks every field against its documented range and returns a
// *ConfigError for the first violation. Check order is fixed so callers see
// stable error messages. A Scenario must validate before it is simulated.
func (s Scenario) Validate() error {
	if s.HorizonDays <= 0 {
		return &ConfigError{Field: "HorizonDays", Reason: "must be > 0"}
	}
	if !finite(s.LitterPerVisitor) || s.LitterPerVisitor < 0 {
		return &ConfigError{Field: "LitterPerVisitor", Reason: "must be finite and >= 0"}
	}
	if !finite(s.CleanupEfficiency) || s.CleanupEfficiency < 0 || s.CleanupEfficiency > 1 {
		return &ConfigError{Field: "CleanupEfficiency", Reason: "must be in [0, 1]"}
	}
	if s.CleanupFrequencyDays < 1 {
		return &ConfigError{Field: "CleanupFrequencyDays", Reason: "must be >= 1"}
	}
	if !finite(s.ErosionRate) || s.ErosionRate < 0 {
		return &ConfigError{Field: "ErosionRate", Reason: "must be finite and >= 0"}
	}
	if s.MaintenanceFrequencyDays < 1 {
		return &ConfigError{Field: "MaintenanceFrequencyDays", Reason: "must be >= 1"}
	}
	if !finite(s.MaintenanceBoost) || s.MaintenanceBoost < 0 {
		return &ConfigError{Field: "MaintenanceBoost", Reason: "must be finite and >= 0"}
	}
	if !finite(s.MinQuality) || !finite(s.MaxQuality) || s.MinQuality > s.MaxQuality {
		return &ConfigError{Field: "MinQuality", Reason: "must satisfy MinQuality <= MaxQuality, both finite"}
	}
	if !finite(s.InitialQuality) || s.InitialQuality < s.MinQuality || s.InitialQuality > s.MaxQuality {
		return &ConfigError{Field: "InitialQuality", Reason: "must be within [MinQuality, MaxQuality]"}
	}
	return nil
}

// DefaultScenario returns the reference operating policy: daily clean-up at
// 90% efficiency, weekly maintenance, a 0..100 quality index starting full.
func DefaultScenario() Scenario {
	return Scenario{
		HorizonDays:              365,
		LitterPerVisitor:         0.2,
		CleanupFrequencyDays:     1,
		CleanupEfficiency:        0.9,
		ErosionRate:              0.0001,
		MaintenanceFrequencyDays: 7,
		MaintenanceBoost:         10,
		MinQuality:               0,
		MaxQuality:               100,
		InitialQuality:           100,
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

package config

import "trailsim/internal/model"

// Preset is a builtin, ready-to-run scenario with a stable id.
type Preset struct {
	ID          string
	Name        string
	Description string
	Scenario    model.Scenario
}

// Builtin returns the shipped operating policies. "baseline" is the
// reference policy; "alternative" trades clean-up and maintenance cadence
// for a larger boost, the cheaper-operations policy it is compared against.
func Builtin() []Preset {
	baseline := model.DefaultScenario()

	alternative := baseline
	alternative.CleanupFrequencyDays = 3
	alternative.MaintenanceFrequencyDays = 14
	alternative.MaintenanceBoost = 20

	return []Preset{
		{
			ID:          "baseline",
			Name:        "baseline",
			Description: "Daily clean-up at 90% efficiency, weekly maintenance boost of 10 points.",
			Scenario:    baseline,
		},
		{
			ID:          "alternative",
			Name:        "alternative",
			Description: "Clean-up every 3 days, maintenance every 14 days with a 20 point boost.",
			Scenario:    alternative,
		},
	}
}

// BuiltinByID looks up a preset by id.
func BuiltinByID(id string) (Preset, bool) {
	for _, p := range Builtin() {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

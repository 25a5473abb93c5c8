package config

import (
	"errors"
	"fmt"
	"os"

	"trailsim/internal/model"
	"trailsim/internal/visitors"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML): one horizon and one
// visitor spec shared by every scenario in the file, optional defaults
// merged under each scenario, and the scenarios themselves.
type Config struct {
	HorizonDays int              `yaml:"horizon_days"`
	Visitors    VisitorsConfig   `yaml:"visitors"`
	Defaults    ScenarioConfig   `yaml:"defaults"`
	Scenarios   []ScenarioConfig `yaml:"scenarios"`
}

type VisitorsConfig struct {
	Sampler  string  `yaml:"sampler"` // "normal" (default) or "constant"
	Mean     float64 `yaml:"mean"`
	StdDev   float64 `yaml:"std_dev"`
	Floor    float64 `yaml:"floor"`
	Seed     int64   `yaml:"seed"`
	Constant float64 `yaml:"constant"`
}

type ScenarioConfig struct {
	Name                     string  `yaml:"name"`
	LitterPerVisitor         float64 `yaml:"litter_per_visitor"`
	CleanupFrequencyDays     int     `yaml:"cleanup_frequency_days"`
	CleanupEfficiency        float64 `yaml:"cleanup_efficiency"`
	ErosionRate              float64 `yaml:"erosion_rate"`
	MaintenanceFrequencyDays int     `yaml:"maintenance_frequency_days"`
	MaintenanceBoost         float64 `yaml:"maintenance_boost"`
	MinQuality               float64 `yaml:"min_quality"`
	MaxQuality               float64 `yaml:"max_quality"`
	InitialQuality           float64 `yaml:"initial_quality"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads a config without validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.HorizonDays <= 0 {
		return errors.New("horizon_days must be > 0")
	}
	if _, err := c.Visitors.Build(); err != nil {
		return err
	}
	if len(c.Scenarios) == 0 {
		return errors.New("at least one scenario is required")
	}
	seen := map[string]bool{}
	for i, sc := range c.Scenarios {
		if sc.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[sc.Name] {
			return fmt.Errorf("scenario name %q is duplicated", sc.Name)
		}
		seen[sc.Name] = true
		merged := MergeScenario(c.Defaults, sc)
		if err := merged.ToModel(c.HorizonDays).Validate(); err != nil {
			return fmt.Errorf("scenario %q invalid: %w", sc.Name, err)
		}
	}
	return nil
}

// Merged returns the scenarios with file defaults applied, in file order.
func (c *Config) Merged() []ScenarioConfig {
	out := make([]ScenarioConfig, 0, len(c.Scenarios))
	for _, sc := range c.Scenarios {
		out = append(out, MergeScenario(c.Defaults, sc))
	}
	return out
}

// ToModel binds the file-level horizon into a model scenario. If
// initial_quality is not provided it defaults to max_quality, which keeps
// configs concise and matches the reference setup (trails start pristine).
func (s ScenarioConfig) ToModel(horizonDays int) model.Scenario {
	initial := s.InitialQuality
	if initial == 0 {
		initial = s.MaxQuality
	}
	return model.Scenario{
		HorizonDays:              horizonDays,
		LitterPerVisitor:         s.LitterPerVisitor,
		CleanupFrequencyDays:     s.CleanupFrequencyDays,
		CleanupEfficiency:        s.CleanupEfficiency,
		ErosionRate:              s.ErosionRate,
		MaintenanceFrequencyDays: s.MaintenanceFrequencyDays,
		MaintenanceBoost:         s.MaintenanceBoost,
		MinQuality:               s.MinQuality,
		MaxQuality:               s.MaxQuality,
		InitialQuality:           initial,
	}
}

// FromModel converts a model scenario back to the file shape, dropping the
// horizon (which lives at file level). Used when a preset serves as the base
// for overrides.
func FromModel(sc model.Scenario) ScenarioConfig {
	return ScenarioConfig{
		LitterPerVisitor:         sc.LitterPerVisitor,
		CleanupFrequencyDays:     sc.CleanupFrequencyDays,
		CleanupEfficiency:        sc.CleanupEfficiency,
		ErosionRate:              sc.ErosionRate,
		MaintenanceFrequencyDays: sc.MaintenanceFrequencyDays,
		MaintenanceBoost:         sc.MaintenanceBoost,
		MinQuality:               sc.MinQuality,
		MaxQuality:               sc.MaxQuality,
		InitialQuality:           sc.InitialQuality,
	}
}

// DefaultVisitors is the reference visitor spec: normal sampling around
// 11000 daily visitors with spread 1000, floored at zero, seed 42.
func DefaultVisitors() VisitorsConfig {
	return VisitorsConfig{Mean: 11000, StdDev: 1000, Floor: 0, Seed: 42}
}

// Build constructs the visitor sampler the file asks for. An empty name
// means "normal" so minimal configs stay minimal.
func (v VisitorsConfig) Build() (visitors.Sampler, error) {
	switch v.Sampler {
	case "", "normal":
		return visitors.NewNormal(v.Mean, v.StdDev, v.Floor, v.Seed), nil
	case "constant":
		return visitors.NewConstant(v.Constant), nil
	default:
		return nil, fmt.Errorf("unknown visitors sampler %q", v.Sampler)
	}
}

// MergeScenario overlays non-zero fields from override onto base.
// Used for file defaults under each scenario and for request variations
// over a base scenario.
// Note: min_quality and erosion_rate may legitimately be 0; a zero override
// means "inherit", so a truly zero-valued field belongs in the base.
func MergeScenario(base, override ScenarioConfig) ScenarioConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.LitterPerVisitor != 0 {
		out.LitterPerVisitor = override.LitterPerVisitor
	}
	if override.CleanupFrequencyDays != 0 {
		out.CleanupFrequencyDays = override.CleanupFrequencyDays
	}
	if override.CleanupEfficiency != 0 {
		out.CleanupEfficiency = override.CleanupEfficiency
	}
	if override.ErosionRate != 0 {
		out.ErosionRate = override.ErosionRate
	}
	if override.MaintenanceFrequencyDays != 0 {
		out.MaintenanceFrequencyDays = override.MaintenanceFrequencyDays
	}
	if override.MaintenanceBoost != 0 {
		out.MaintenanceBoost = override.MaintenanceBoost
	}
	if override.MinQuality != 0 {
		out.MinQuality = override.MinQuality
	}
	if override.MaxQuality != 0 {
		out.MaxQuality = override.MaxQuality
	}
	if override.InitialQuality != 0 {
		out.InitialQuality = override.InitialQuality
	}
	return out
}

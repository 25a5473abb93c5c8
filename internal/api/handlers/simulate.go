package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"trailsim/internal/analysis"
	"trailsim/internal/api/models"
	"trailsim/internal/config"
	"trailsim/internal/model"
	"trailsim/internal/sim"
	"trailsim/internal/store"
	"trailsim/internal/visitors"

	"github.com/gin-gonic/gin"
)

// SimulateHandler handles simulation requests. The store is optional: when
// nil, requests asking to save a run are rejected with STORE_DISABLED.
type SimulateHandler struct {
	store *store.Store
}

// NewSimulateHandler creates a new simulate handler
func NewSimulateHandler(st *store.Store) *SimulateHandler {
	return &SimulateHandler{store: st}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sc, name, err := resolveScenario(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SCENARIO",
				Message: err.Error(),
			},
		})
		return
	}

	series, err := buildSeries(req.Visitors, sc.HorizonDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SERIES",
				Message: err.Error(),
			},
		})
		return
	}

	res, err := sim.New().Run(name, sc, series)
	if err != nil {
		code := "INVALID_SERIES"
		var cfgErr *model.ConfigError
		if errors.As(err, &cfgErr) {
			code = "INVALID_SCENARIO"
		}
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    code,
				Message: err.Error(),
			},
		})
		return
	}

	resp := models.SimulateResponse{
		Status:  "completed",
		Summary: buildSummary(res),
	}

	if req.Options.Save {
		if h.store == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "STORE_DISABLED",
					Message: "run persistence is not enabled; start the server with a database path",
				},
			})
			return
		}
		id, err := h.store.SaveRun(c.Request.Context(), sc, res)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "STORE_ERROR",
					Message: err.Error(),
				},
			})
			return
		}
		resp.RunID = id
	}

	if req.Options.IncludeDays {
		resp.Days = convertDays(res.Records)
	}

	c.JSON(http.StatusOK, resp)
}

// CompareScenarios handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareScenarios(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}
	if req.HorizonDays <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "horizon_days must be > 0",
			},
		})
		return
	}

	series, err := buildSeries(req.Visitors, req.HorizonDays)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SERIES",
				Message: err.Error(),
			},
		})
		return
	}

	base := scenarioFromSpec(req.Base)
	named := make([]analysis.NamedScenario, 0, len(req.Variations))
	for _, v := range req.Variations {
		merged := config.MergeScenario(base, scenarioFromSpec(v.Overrides))
		named = append(named, analysis.NamedScenario{
			Name:     v.Name,
			Scenario: merged.ToModel(req.HorizonDays),
		})
	}

	outcomes := analysis.Compare(named, series)

	comparison := make([]models.ComparisonResult, 0, len(outcomes))
	for _, o := range outcomes {
		row := models.ComparisonResult{Name: o.Name}
		if o.Err != nil {
			row.Error = o.Err.Error()
		} else {
			s := buildSummary(o.Result)
			row.Summary = &s
		}
		comparison = append(comparison, row)
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// resolveScenario builds the scenario a simulate request describes: preset
// fields first when one is named, inline non-zero fields on top.
func resolveScenario(req models.SimulateRequest) (model.Scenario, string, error) {
	var base config.ScenarioConfig
	name := req.Scenario.Name
	horizon := req.HorizonDays

	if req.Preset != "" {
		p, ok := config.BuiltinByID(req.Preset)
		if !ok {
			return model.Scenario{}, "", fmt.Errorf("unknown preset %q", req.Preset)
		}
		base = config.FromModel(p.Scenario)
		if name == "" {
			name = p.Name
		}
		if horizon == 0 {
			horizon = p.Scenario.HorizonDays
		}
	}

	sc := config.MergeScenario(base, scenarioFromSpec(req.Scenario)).ToModel(horizon)
	if name == "" {
		name = "scenario"
	}
	return sc, name, sc.Validate()
}

// buildSeries resolves the visitor series for a run. An explicit series wins;
// otherwise the sampler spec runs for the horizon, falling back to the
// reference sampler when the spec is empty.
func buildSeries(spec models.VisitorsSpec, horizon int) (visitors.Series, error) {
	if len(spec.Series) > 0 {
		return visitors.Series(spec.Series), nil
	}
	if horizon <= 0 {
		return nil, fmt.Errorf("horizon_days must be > 0 to sample visitors")
	}
	vc := config.VisitorsConfig{
		Sampler:  spec.Sampler,
		Mean:     spec.Mean,
		StdDev:   spec.StdDev,
		Floor:    spec.Floor,
		Seed:     spec.Seed,
		Constant: spec.Constant,
	}
	if vc == (config.VisitorsConfig{}) {
		vc = config.DefaultVisitors()
	}
	sampler, err := vc.Build()
	if err != nil {
		return nil, err
	}
	return sampler.Series(horizon), nil
}

func scenarioFromSpec(s models.ScenarioSpec) config.ScenarioConfig {
	return config.ScenarioConfig{
		Name:                     s.Name,
		LitterPerVisitor:         s.LitterPerVisitor,
		CleanupFrequencyDays:     s.CleanupFrequencyDays,
		CleanupEfficiency:        s.CleanupEfficiency,
		ErosionRate:              s.ErosionRate,
		MaintenanceFrequencyDays: s.MaintenanceFrequencyDays,
		MaintenanceBoost:         s.MaintenanceBoost,
		MinQuality:               s.MinQuality,
		MaxQuality:               s.MaxQuality,
		InitialQuality:           s.InitialQuality,
	}
}

func buildSummary(res *sim.Result) models.Summary {
	s := analysis.Summarize(res)
	return models.Summary{
		Name:               s.Name,
		HorizonDays:        s.HorizonDays,
		AvgTotalLitter:     s.AvgTotalLitter,
		AvgTrailQuality:    s.AvgTrailQuality,
		MinTrailQuality:    s.MinTrailQuality,
		MaxTrailQuality:    s.MaxTrailQuality,
		P10TrailQuality:    s.P10TrailQuality,
		P50TrailQuality:    s.P50TrailQuality,
		P90TrailQuality:    s.P90TrailQuality,
		FinalTotalLitter:   s.FinalTotalLitter,
		FinalTrailQuality:  s.FinalTrailQuality,
		TotalLitterAdded:   res.TotalLitterAdded,
		TotalLitterRemoved: res.TotalLitterRemoved,
		CleanupDays:        res.CleanupDays,
		MaintenanceDays:    res.MaintenanceDays,
	}
}

func convertDays(records []sim.DayRecord) []models.DayRow {
	rows := make([]models.DayRow, len(records))
	for i, r := range records {
		rows[i] = models.DayRow{
			Day:                r.Day,
			Visitors:           r.Visitors,
			LitterAdded:        r.LitterAdded,
			LitterRemoved:      r.LitterRemoved,
			TotalLitter:        r.TotalLitter,
			QualityDegradation: r.QualityDegradation,
			MaintenanceApplied: r.MaintenanceApplied,
			TrailQuality:       r.TrailQuality,
		}
	}
	return rows
}

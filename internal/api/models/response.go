package models

import "time"

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	RunID   string   `json:"run_id,omitempty"`
	Status  string   `json:"status"`
	Summary Summary  `json:"summary"`
	Days    []DayRow `json:"days,omitempty"`
}

// Summary contains aggregated results for one scenario run
type Summary struct {
	Name               string  `json:"name"`
	HorizonDays        int     `json:"horizon_days"`
	AvgTotalLitter     float64 `json:"avg_total_litter"`
	AvgTrailQuality    float64 `json:"avg_trail_quality"`
	MinTrailQuality    float64 `json:"min_trail_quality"`
	MaxTrailQuality    float64 `json:"max_trail_quality"`
	P10TrailQuality    float64 `json:"p10_trail_quality"`
	P50TrailQuality    float64 `json:"p50_trail_quality"`
	P90TrailQuality    float64 `json:"p90_trail_quality"`
	FinalTotalLitter   float64 `json:"final_total_litter"`
	FinalTrailQuality  float64 `json:"final_trail_quality"`
	TotalLitterAdded   float64 `json:"total_litter_added"`
	TotalLitterRemoved float64 `json:"total_litter_removed"`
	CleanupDays        int     `json:"cleanup_days"`
	MaintenanceDays    int     `json:"maintenance_days"`
}

// DayRow represents one day in the simulation output
type DayRow struct {
	Day                int     `json:"day"`
	Visitors           float64 `json:"visitors"`
	LitterAdded        float64 `json:"litter_added"`
	LitterRemoved      float64 `json:"litter_removed"`
	TotalLitter        float64 `json:"total_litter"`
	QualityDegradation float64 `json:"quality_degradation"`
	MaintenanceApplied float64 `json:"maintenance_applied"`
	TrailQuality       float64 `json:"trail_quality"`
}

// CompareResponse represents the response from a scenario comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation. A variation that
// failed validation carries Error instead of Summary; the others still run.
type ComparisonResult struct {
	Name    string   `json:"name"`
	Summary *Summary `json:"summary,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// RankResponse represents the response from ranking scenarios
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking represents one ranked scenario
type Ranking struct {
	Rank              int     `json:"rank"`
	Name              string  `json:"name"`
	AvgTrailQuality   float64 `json:"avg_trail_quality"`
	AvgTotalLitter    float64 `json:"avg_total_litter"`
	MinTrailQuality   float64 `json:"min_trail_quality"`
	MaxTrailQuality   float64 `json:"max_trail_quality"`
	FinalTrailQuality float64 `json:"final_trail_quality"`
}

// ScenarioInfo represents information about a scenario preset
type ScenarioInfo struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	HorizonDays int          `json:"horizon_days"`
	Params      ScenarioSpec `json:"params"`
}

// RunInfo represents one saved run in a listing
type RunInfo struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	CreatedAt         time.Time `json:"created_at"`
	HorizonDays       int       `json:"horizon_days"`
	AvgTotalLitter    float64   `json:"avg_total_litter"`
	AvgTrailQuality   float64   `json:"avg_trail_quality"`
	MinTrailQuality   float64   `json:"min_trail_quality"`
	MaxTrailQuality   float64   `json:"max_trail_quality"`
	FinalTotalLitter  float64   `json:"final_total_litter"`
	FinalTrailQuality float64   `json:"final_trail_quality"`
}

// RunsResponse represents a listing of saved runs
type RunsResponse struct {
	Runs []RunInfo `json:"runs"`
}

// RunDetailResponse represents one saved run with its day records
type RunDetailResponse struct {
	Run    RunInfo      `json:"run"`
	Params ScenarioSpec `json:"params"`
	Days   []DayRow     `json:"days"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

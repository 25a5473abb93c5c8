package sim

// DayRecord is one row of per-day output, immutable once produced.
// This is the primary artifact for "what happened" on a simulated day.
//
// TotalLitter is the accumulated load after any clean-up; TrailQuality is the
// quality index after any maintenance, clamped to the scenario bounds.
// QualityDegradation is the raw erosion before the floor clamp, and
// MaintenanceApplied is the configured boost on maintenance days, 0 otherwise.
type DayRecord struct {
	Day int

	Visitors float64

	LitterAdded   float64
	LitterRemoved float64
	TotalLitter   float64

	QualityDegradation float64
	MaintenanceApplied float64
	TrailQuality       float64
}

// Result is one full scenario run: the ordered day records plus aggregates
// computed in the same pass. Never mutated after Run returns it.
type Result struct {
	Name    string
	Records []DayRecord

	AvgTotalLitter  float64
	AvgTrailQuality float64
	MinTrailQuality float64
	MaxTrailQuality float64

	FinalTotalLitter  float64
	FinalTrailQuality float64

	TotalLitterAdded   float64
	TotalLitterRemoved float64
	CleanupDays        int
	MaintenanceDays    int
}

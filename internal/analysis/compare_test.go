package analysis

import (
	"testing"

	"trailsim/internal/model"
	"trailsim/internal/sim"
	"trailsim/internal/visitors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comparisonScenarios(t *testing.T, horizon int) (model.Scenario, model.Scenario) {
	t.Helper()
	baseline := model.DefaultScenario()
	baseline.HorizonDays = horizon

	alternative := baseline
	alternative.CleanupFrequencyDays = 3
	alternative.MaintenanceFrequencyDays = 14
	alternative.MaintenanceBoost = 20

	require.NoError(t, baseline.Validate())
	require.NoError(t, alternative.Validate())
	return baseline, alternative
}

func TestCompare_FailedScenarioDoesNotAbortOthers(t *testing.T) {
	baseline, _ := comparisonScenarios(t, 30)
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(30)

	broken := baseline
	broken.CleanupEfficiency = 2

	outcomes := Compare([]NamedScenario{
		{Name: "broken", Scenario: broken},
		{Name: "baseline", Scenario: baseline},
	}, series)

	require.Len(t, outcomes, 2)

	assert.Equal(t, "broken", outcomes[0].Name)
	require.Error(t, outcomes[0].Err)
	assert.Nil(t, outcomes[0].Result)
	var cfgErr *model.ConfigError
	assert.ErrorAs(t, outcomes[0].Err, &cfgErr)

	assert.Equal(t, "baseline", outcomes[1].Name)
	require.NoError(t, outcomes[1].Err)
	require.NotNil(t, outcomes[1].Result)
	assert.Len(t, outcomes[1].Result.Records, 30)
}

func TestCompareObserved_HookSeesEveryOutcomeInOrder(t *testing.T) {
	baseline, alternative := comparisonScenarios(t, 14)
	series := visitors.NewConstant(500).Series(14)

	broken := baseline
	broken.CleanupEfficiency = 2

	var seen []string
	outcomes := CompareObserved([]NamedScenario{
		{Name: "baseline", Scenario: baseline},
		{Name: "broken", Scenario: broken},
		{Name: "alternative", Scenario: alternative},
	}, series, func(o Outcome) {
		seen = append(seen, o.Name)
	})

	require.Len(t, outcomes, 3)
	assert.Equal(t, []string{"baseline", "broken", "alternative"}, seen)
}

func TestCompare_SharedSeriesLeftIntact(t *testing.T) {
	baseline, alternative := comparisonScenarios(t, 30)
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(30)
	snapshot := append(visitors.Series(nil), series...)

	Compare([]NamedScenario{
		{Name: "baseline", Scenario: baseline},
		{Name: "alternative", Scenario: alternative},
	}, series)

	require.Equal(t, snapshot, series)
}

func TestCompare_OrderDoesNotChangeResults(t *testing.T) {
	baseline, alternative := comparisonScenarios(t, 30)
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(30)

	ab := Compare([]NamedScenario{
		{Name: "baseline", Scenario: baseline},
		{Name: "alternative", Scenario: alternative},
	}, series)
	ba := Compare([]NamedScenario{
		{Name: "alternative", Scenario: alternative},
		{Name: "baseline", Scenario: baseline},
	}, series)

	require.Equal(t, ab[0].Result.Records, ba[1].Result.Records)
	require.Equal(t, ab[1].Result.Records, ba[0].Result.Records)
}

func TestSummarizeAll_SkipsFailedOutcomes(t *testing.T) {
	baseline, _ := comparisonScenarios(t, 30)
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(30)

	broken := baseline
	broken.HorizonDays = 0

	rows := SummarizeAll(Compare([]NamedScenario{
		{Name: "baseline", Scenario: baseline},
		{Name: "broken", Scenario: broken},
	}, series))

	require.Len(t, rows, 1)
	assert.Equal(t, "baseline", rows[0].Name)
	assert.Equal(t, 30, rows[0].HorizonDays)
}

func TestRankByQuality_SortsDescendingWithoutMutating(t *testing.T) {
	rows := []Summary{
		{Name: "low", AvgTrailQuality: 40},
		{Name: "high", AvgTrailQuality: 90},
		{Name: "mid", AvgTrailQuality: 70},
	}

	ranked := RankByQuality(rows)

	require.Len(t, ranked, 3)
	assert.Equal(t, "high", ranked[0].Name)
	assert.Equal(t, "mid", ranked[1].Name)
	assert.Equal(t, "low", ranked[2].Name)

	// Input order untouched.
	assert.Equal(t, "low", rows[0].Name)
	assert.Equal(t, "high", rows[1].Name)
}

func TestSummarize_Percentiles(t *testing.T) {
	res := &sim.Result{Name: "spread"}
	for day := 1; day <= 100; day++ {
		res.Records = append(res.Records, sim.DayRecord{Day: day, TrailQuality: float64(day)})
	}

	s := Summarize(res)
	assert.Equal(t, "spread", s.Name)
	assert.Equal(t, 100, s.HorizonDays)
	assert.InDelta(t, 10.9, s.P10TrailQuality, 1e-9)
	assert.InDelta(t, 50.5, s.P50TrailQuality, 1e-9)
	assert.InDelta(t, 90.1, s.P90TrailQuality, 1e-9)
}

func TestSummarize_NilResult(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

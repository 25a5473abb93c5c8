package sim

import (
	"testing"

	"trailsim/internal/model"
	"trailsim/internal/visitors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WorkedHalvingSequence(t *testing.T) {
	// GIVEN: 100 visitors/day at 1 kg each, clean-up every 7 days at 50%
	sc := weeklyScenario(t)
	series := visitors.NewConstant(100).Series(7)

	// WHEN: Running the full 7-day horizon
	res, err := New().Run("halving", sc, series)
	require.NoError(t, err)
	require.Len(t, res.Records, 7)

	// THEN: Day 1 triggers and halves the first 100 kg to 50, then the
	// load accrues untouched through day 7
	want := []float64{50, 150, 250, 350, 450, 550, 650}
	for i, rec := range res.Records {
		assert.Equal(t, i+1, rec.Day)
		assert.Equal(t, want[i], rec.TotalLitter, "day %d", i+1)
	}

	assert.Equal(t, "halving", res.Name)
	assert.Equal(t, 650.0, res.FinalTotalLitter)
	assert.Equal(t, 700.0, res.TotalLitterAdded)
	assert.Equal(t, 50.0, res.TotalLitterRemoved)
	assert.Equal(t, 350.0, res.AvgTotalLitter)
	assert.Equal(t, 1, res.CleanupDays)
	assert.Equal(t, 1, res.MaintenanceDays)

	// No erosion and no boost: quality pinned at the initial value.
	assert.Equal(t, 100.0, res.AvgTrailQuality)
	assert.Equal(t, 100.0, res.MinTrailQuality)
	assert.Equal(t, 100.0, res.MaxTrailQuality)
	assert.Equal(t, 100.0, res.FinalTrailQuality)
}

func TestRun_Deterministic(t *testing.T) {
	sc := model.DefaultScenario()
	sc.HorizonDays = 60
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(60)

	a, err := New().Run("a", sc, series)
	require.NoError(t, err)
	b, err := New().Run("a", sc, series)
	require.NoError(t, err)

	require.Equal(t, a.Records, b.Records)
	require.Equal(t, a.AvgTrailQuality, b.AvgTrailQuality)
	require.Equal(t, a.FinalTotalLitter, b.FinalTotalLitter)
}

func TestRun_RecordsStayWithinBounds(t *testing.T) {
	sc := model.DefaultScenario()
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(sc.HorizonDays)

	res, err := New().Run("bounds", sc, series)
	require.NoError(t, err)
	require.Len(t, res.Records, sc.HorizonDays)

	for _, rec := range res.Records {
		assert.GreaterOrEqual(t, rec.TotalLitter, 0.0, "day %d", rec.Day)
		assert.GreaterOrEqual(t, rec.TrailQuality, sc.MinQuality, "day %d", rec.Day)
		assert.LessOrEqual(t, rec.TrailQuality, sc.MaxQuality, "day %d", rec.Day)
	}
}

func TestRun_LitterConservation(t *testing.T) {
	sc := model.DefaultScenario()
	sc.HorizonDays = 90
	sc.CleanupFrequencyDays = 5
	sc.CleanupEfficiency = 0.7
	series := visitors.NewNormal(8000, 2000, 0, 7).Series(90)

	res, err := New().Run("conservation", sc, series)
	require.NoError(t, err)

	prev := 0.0
	for _, rec := range res.Records {
		assert.InDelta(t, prev+rec.LitterAdded-rec.LitterRemoved, rec.TotalLitter, 1e-9, "day %d", rec.Day)
		prev = rec.TotalLitter
	}
}

func TestRun_SeriesLengthMismatch(t *testing.T) {
	sc := weeklyScenario(t)
	series := visitors.NewConstant(100).Series(5)

	res, err := New().Run("short", sc, series)
	require.Error(t, err)
	assert.Nil(t, res)

	var lenErr *SeriesLengthError
	require.ErrorAs(t, err, &lenErr)
	assert.Equal(t, 7, lenErr.Want)
	assert.Equal(t, 5, lenErr.Got)
	assert.Equal(t, "visitor series has 5 days, scenario horizon is 7", err.Error())
}

func TestRun_InvalidScenarioProducesNothing(t *testing.T) {
	sc := weeklyScenario(t)
	sc.CleanupEfficiency = 2
	series := visitors.NewConstant(100).Series(7)

	res, err := New().Run("invalid", sc, series)
	require.Error(t, err)
	assert.Nil(t, res)

	var cfgErr *model.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "CleanupEfficiency", cfgErr.Field)
}

func TestRun_NegativeVisitorCountRejectedUpFront(t *testing.T) {
	sc := weeklyScenario(t)
	series := visitors.Series{100, 100, -1, 100, 100, 100, 100}

	res, err := New().Run("negative", sc, series)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "day 3")
}

func TestRun_ObserverSeesEveryDayInOrder(t *testing.T) {
	sc := weeklyScenario(t)
	series := visitors.NewConstant(100).Series(7)

	var days []int
	engine := New()
	engine.Observer = func(rec DayRecord) { days = append(days, rec.Day) }

	_, err := engine.Run("observed", sc, series)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, days)
}

func TestRun_ScenarioOrderDoesNotLeakState(t *testing.T) {
	series := visitors.NewNormal(11000, 1000, 0, 42).Series(30)

	a := model.DefaultScenario()
	a.HorizonDays = 30

	b := a
	b.CleanupFrequencyDays = 3
	b.MaintenanceFrequencyDays = 14
	b.MaintenanceBoost = 20

	engine := New()
	a1, err := engine.Run("a", a, series)
	require.NoError(t, err)
	b1, err := engine.Run("b", b, series)
	require.NoError(t, err)

	b2, err := engine.Run("b", b, series)
	require.NoError(t, err)
	a2, err := engine.Run("a", a, series)
	require.NoError(t, err)

	require.Equal(t, a1.Records, a2.Records)
	require.Equal(t, b1.Records, b2.Records)
}

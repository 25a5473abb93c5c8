package sim

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"trailsim/internal/visitors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecordsCSV(t *testing.T) {
	sc := weeklyScenario(t)
	series := visitors.NewConstant(100).Series(7)
	res, err := New().Run("csv", sc, series)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run.csv")
	require.NoError(t, WriteRecordsCSV(path, res.Records))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 8)

	assert.Equal(t, []string{
		"day", "visitors", "litter_added", "litter_removed", "total_litter",
		"quality_degradation", "maintenance_applied", "trail_quality",
	}, rows[0])

	// Day 1: 100 kg added, half removed by the clean-up.
	assert.Equal(t, []string{
		"1", "100.000000", "100.000000", "50.000000", "50.000000",
		"0.000000", "0.000000", "100.000000",
	}, rows[1])

	assert.Equal(t, "7", rows[7][0])
	assert.Equal(t, "650.000000", rows[7][4])
}

func TestWriteRecordsCSV_EmptyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteRecordsCSV(path, nil))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

package sim

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteRecordsCSV writes one row per simulated day.
func WriteRecordsCSV(path string, records []DayRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"day",
		"visitors",
		"litter_added",
		"litter_removed",
		"total_litter",
		"quality_degradation",
		"maintenance_applied",
		"trail_quality",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Day),
			fmtFloat(r.Visitors),
			fmtFloat(r.LitterAdded),
			fmtFloat(r.LitterRemoved),
			fmtFloat(r.TotalLitter),
			fmtFloat(r.QualityDegradation),
			fmtFloat(r.MaintenanceApplied),
			fmtFloat(r.TrailQuality),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

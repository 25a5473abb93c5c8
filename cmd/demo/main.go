package main

import (
	"flag"
	"fmt"

	"trailsim/internal/config"
	"trailsim/internal/sim"
	"trailsim/internal/visitors"
)

// Demo:
// - Build a builtin scenario over a short horizon
// - Walk it with a constant visitor stream so the arithmetic stays visible
// - Print the per-day ledger to show how the pieces fit together
func main() {
	days := flag.Int("days", 14, "Number of days to simulate")
	count := flag.Float64("visitors", 10000, "Constant daily visitor count")
	presetID := flag.String("preset", "baseline", "Builtin preset id")
	outCSV := flag.String("out", "", "Optional path to write the ledger CSV (e.g. results/demo.csv)")
	flag.Parse()

	p, ok := config.BuiltinByID(*presetID)
	if !ok {
		panic(fmt.Errorf("unknown preset %q", *presetID))
	}

	sc := p.Scenario
	if *days > 0 {
		sc.HorizonDays = *days
	}

	series := visitors.NewConstant(*count).Series(sc.HorizonDays)

	res, err := sim.New().Run(p.Name, sc, series)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scenario=%s horizon=%d days visitors=%.0f/day\n", res.Name, sc.HorizonDays, *count)
	fmt.Printf("Clean-up every %d day(s) at %.0f%%, maintenance every %d day(s) +%.0f\n\n",
		sc.CleanupFrequencyDays, sc.CleanupEfficiency*100, sc.MaintenanceFrequencyDays, sc.MaintenanceBoost)

	fmt.Printf("%-4s %-10s %-10s %-10s %-8s %-8s\n", "day", "added", "removed", "litter", "maint", "quality")
	for i := 0; i < min(21, len(res.Records)); i++ {
		r := res.Records[i]
		fmt.Printf("%-4d %-10.1f %-10.1f %-10.1f %-8.1f %-8.2f\n",
			r.Day, r.LitterAdded, r.LitterRemoved, r.TotalLitter, r.MaintenanceApplied, r.TrailQuality)
	}

	if *outCSV != "" {
		if err := sim.WriteRecordsCSV(*outCSV, res.Records); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	fmt.Printf("\nDone. Avg quality=%.2f Final quality=%.2f Final litter=%.2f\n",
		res.AvgTrailQuality, res.FinalTrailQuality, res.FinalTotalLitter)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

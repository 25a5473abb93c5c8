package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"trailsim/internal/analysis"
	"trailsim/internal/config"
	"trailsim/internal/model"
	"trailsim/internal/sim"
	"trailsim/internal/store"
	"trailsim/internal/visitors"

	"github.com/schollz/progressbar/v3"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "series":
		cmdSeries(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  trailsim simulate --config examples/scenarios.yaml --out results/baseline.csv")
	fmt.Println("  trailsim simulate --preset baseline --db runs.db")
	fmt.Println("  trailsim compare --config examples/scenarios.yaml --rank")
	fmt.Println("  trailsim series --horizon 365 --seed 42 --out data/visitors.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate runs one scenario and writes a per-day CSV ledger")
	fmt.Println("  - compare runs every scenario in the config against the same visitor series")
	fmt.Println("  - series samples a visitor series to CSV for reuse across runs")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	scenarioName := fs.String("scenario", "", "Scenario name within the config (default: first)")
	presetID := fs.String("preset", "", "Builtin preset id (baseline, alternative)")
	seriesPath := fs.String("series", "", "Optional: visitor series CSV instead of sampling")
	outPath := fs.String("out", "results/run.csv", "Output CSV path")
	dbPath := fs.String("db", "", "Optional: sqlite database to save the run")
	logPath := fs.String("log", "", "Optional: per-day log file")
	_ = fs.Parse(args)

	sc, name, vc := pickScenario(*cfgPath, *scenarioName, *presetID)
	series := loadOrSample(*seriesPath, vc, sc.HorizonDays)

	var dayLog *log.Logger
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			panic(err)
		}
		defer f.Close()
		dayLog = log.New(f, "", log.LstdFlags)
	}

	bar := progressbar.Default(int64(sc.HorizonDays), "days")
	engine := sim.New()
	engine.Observer = func(r sim.DayRecord) {
		bar.Add(1)
		if dayLog != nil {
			dayLog.Printf("day=%d visitors=%.0f removed=%.2f litter=%.2f quality=%.2f",
				r.Day, r.Visitors, r.LitterRemoved, r.TotalLitter, r.TrailQuality)
		}
	}

	res, err := engine.Run(name, sc, series)
	if err != nil {
		panic(err)
	}

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := sim.WriteRecordsCSV(*outPath, res.Records); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(res.Records), *outPath)
	}

	if *dbPath != "" {
		st, err := store.New(*dbPath)
		if err != nil {
			panic(err)
		}
		defer st.Close()
		id, err := st.SaveRun(context.Background(), sc, res)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Saved run %s to %s\n", id, *dbPath)
	}

	fmt.Printf("Avg quality=%.2f Final quality=%.2f Final litter=%.2f\n",
		res.AvgTrailQuality, res.FinalTrailQuality, res.FinalTotalLitter)
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	seriesPath := fs.String("series", "", "Optional: visitor series CSV instead of sampling")
	outDir := fs.String("out-dir", "", "Optional: directory for per-scenario CSV ledgers")
	rank := fs.Bool("rank", false, "Sort the table by average trail quality")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	series := loadOrSample(*seriesPath, cfg.Visitors, cfg.HorizonDays)

	merged := cfg.Merged()
	named := make([]analysis.NamedScenario, 0, len(merged))
	for _, s := range merged {
		named = append(named, analysis.NamedScenario{Name: s.Name, Scenario: s.ToModel(cfg.HorizonDays)})
	}

	bar := progressbar.Default(int64(len(named)), "scenarios")
	outcomes := analysis.CompareObserved(named, series, func(analysis.Outcome) {
		bar.Add(1)
	})

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0o755); err != nil {
			panic(err)
		}
		for _, o := range outcomes {
			if o.Err != nil {
				continue
			}
			path := filepath.Join(*outDir, o.Name+".csv")
			if err := sim.WriteRecordsCSV(path, o.Result.Records); err != nil {
				panic(err)
			}
			fmt.Printf("Wrote %s\n", path)
		}
	}

	rows := analysis.SummarizeAll(outcomes)
	if *rank {
		rows = analysis.RankByQuality(rows)
	}

	fmt.Printf("%-4s %-20s %-12s %-12s %-10s %-10s %-10s\n",
		"rank", "scenario", "avg_litter", "avg_quality", "min_q", "max_q", "final_q")
	for i, r := range rows {
		fmt.Printf("%-4d %-20s %-12.2f %-12.2f %-10.2f %-10.2f %-10.2f\n",
			i+1, r.Name, r.AvgTotalLitter, r.AvgTrailQuality,
			r.MinTrailQuality, r.MaxTrailQuality, r.FinalTrailQuality)
	}
	for _, o := range outcomes {
		if o.Err != nil {
			fmt.Printf("FAILED %-20s %v\n", o.Name, o.Err)
		}
	}
}

func cmdSeries(args []string) {
	fs := flag.NewFlagSet("series", flag.ExitOnError)
	horizon := fs.Int("horizon", 365, "Number of days to sample")
	mean := fs.Float64("mean", 11000, "Mean daily visitors")
	std := fs.Float64("std", 1000, "Standard deviation of daily visitors")
	floor := fs.Float64("floor", 0, "Lower bound on sampled counts")
	seed := fs.Int64("seed", 42, "RNG seed")
	outPath := fs.String("out", "data/visitors.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *horizon <= 0 {
		fmt.Println("--horizon must be > 0")
		os.Exit(2)
	}

	s := visitors.NewNormal(*mean, *std, *floor, *seed).Series(*horizon)

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := visitors.WriteCSV(*outPath, s); err != nil {
		panic(err)
	}
	fmt.Printf("Saved %d days to %s\n", len(s), *outPath)
}

// pickScenario resolves what to run: a scenario from a config file, or a
// builtin preset. Config files carry their own visitor spec; presets fall
// back to the reference sampler.
func pickScenario(cfgPath, scenarioName, presetID string) (model.Scenario, string, config.VisitorsConfig) {
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			panic(err)
		}
		merged := cfg.Merged()
		pick := merged[0]
		if scenarioName != "" {
			found := false
			for _, s := range merged {
				if s.Name == scenarioName {
					pick = s
					found = true
					break
				}
			}
			if !found {
				fmt.Printf("no scenario named %q in %s\n", scenarioName, cfgPath)
				os.Exit(2)
			}
		}
		return pick.ToModel(cfg.HorizonDays), pick.Name, cfg.Visitors
	}

	if presetID != "" {
		p, ok := config.BuiltinByID(presetID)
		if !ok {
			fmt.Printf("unknown preset %q\n", presetID)
			os.Exit(2)
		}
		return p.Scenario, p.Name, config.DefaultVisitors()
	}

	fmt.Println("--config or --preset is required")
	os.Exit(2)
	return model.Scenario{}, "", config.VisitorsConfig{}
}

func loadOrSample(path string, vc config.VisitorsConfig, horizon int) visitors.Series {
	if path != "" {
		s, err := visitors.LoadCSV(path)
		if err != nil {
			panic(err)
		}
		return s
	}
	if vc == (config.VisitorsConfig{}) {
		vc = config.DefaultVisitors()
	}
	sampler, err := vc.Build()
	if err != nil {
		panic(err)
	}
	return sampler.Series(horizon)
}

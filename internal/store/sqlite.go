package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"trailsim/internal/model"
	"trailsim/internal/sim"
)

// Store persists completed simulation runs in SQLite. It is a downstream
// consumer of results; the engine never depends on it.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// RunRecord is the stored header of one run: the scenario it used plus the
// result aggregates. Per-day rows live in day_records.
type RunRecord struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Scenario  model.Scenario

	AvgTotalLitter    float64
	AvgTrailQuality   float64
	MinTrailQuality   float64
	MaxTrailQuality   float64
	FinalTotalLitter  float64
	FinalTrailQuality float64
}

// New opens (or creates) the database at path and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,

		horizon_days INTEGER NOT NULL,
		litter_per_visitor REAL NOT NULL,
		cleanup_frequency_days INTEGER NOT NULL,
		cleanup_efficiency REAL NOT NULL,
		erosion_rate REAL NOT NULL,
		maintenance_frequency_days INTEGER NOT NULL,
		maintenance_boost REAL NOT NULL,
		min_quality REAL NOT NULL,
		max_quality REAL NOT NULL,
		initial_quality REAL NOT NULL,

		avg_total_litter REAL NOT NULL,
		avg_trail_quality REAL NOT NULL,
		min_trail_quality REAL NOT NULL,
		max_trail_quality REAL NOT NULL,
		final_total_litter REAL NOT NULL,
		final_trail_quality REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);

	CREATE TABLE IF NOT EXISTS day_records (
		run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		day INTEGER NOT NULL,
		visitors REAL NOT NULL,
		litter_added REAL NOT NULL,
		litter_removed REAL NOT NULL,
		total_litter REAL NOT NULL,
		quality_degradation REAL NOT NULL,
		maintenance_applied REAL NOT NULL,
		trail_quality REAL NOT NULL,
		PRIMARY KEY (run_id, day)
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRun stores a completed result and its day records atomically and
// returns the new run id. All-or-nothing: a failed insert leaves no partial
// run behind.
func (s *Store) SaveRun(ctx context.Context, sc model.Scenario, res *sim.Result) (string, error) {
	if res == nil {
		return "", fmt.Errorf("result is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	id := newRunID(res.Name, now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs
		(id, name, created_at,
		 horizon_days, litter_per_visitor, cleanup_frequency_days, cleanup_efficiency,
		 erosion_rate, maintenance_frequency_days, maintenance_boost,
		 min_quality, max_quality, initial_quality,
		 avg_total_litter, avg_trail_quality, min_trail_quality, max_trail_quality,
		 final_total_litter, final_trail_quality)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		id, res.Name, now.Format(time.RFC3339),
		sc.HorizonDays, sc.LitterPerVisitor, sc.CleanupFrequencyDays, sc.CleanupEfficiency,
		sc.ErosionRate, sc.MaintenanceFrequencyDays, sc.MaintenanceBoost,
		sc.MinQuality, sc.MaxQuality, sc.InitialQuality,
		res.AvgTotalLitter, res.AvgTrailQuality, res.MinTrailQuality, res.MaxTrailQuality,
		res.FinalTotalLitter, res.FinalTrailQuality,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	for _, r := range res.Records {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO day_records
			(run_id, day, visitors, litter_added, litter_removed, total_litter,
			 quality_degradation, maintenance_applied, trail_quality)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
			id, r.Day, r.Visitors, r.LitterAdded, r.LitterRemoved, r.TotalLitter,
			r.QualityDegradation, r.MaintenanceApplied, r.TrailQuality,
		)
		if err != nil {
			return "", fmt.Errorf("insert day %d: %w", r.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ListRuns returns stored run headers, newest first.
func (s *Store) ListRuns(ctx context.Context) ([]RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, runSelect+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRun returns one run header, or nil when the id is unknown.
func (s *Store) GetRun(ctx context.Context, id string) (*RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, runSelect+` WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	r, err := scanRun(rows)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// DayRecords returns the stored day rows of a run in day order.
func (s *Store) DayRecords(ctx context.Context, id string) ([]sim.DayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT day, visitors, litter_added, litter_removed, total_litter,
		       quality_degradation, maintenance_applied, trail_quality
		FROM day_records
		WHERE run_id = ?
		ORDER BY day ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []sim.DayRecord
	for rows.Next() {
		var r sim.DayRecord
		if err := rows.Scan(
			&r.Day, &r.Visitors, &r.LitterAdded, &r.LitterRemoved, &r.TotalLitter,
			&r.QualityDegradation, &r.MaintenanceApplied, &r.TrailQuality,
		); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

const runSelect = `
	SELECT id, name, created_at,
	       horizon_days, litter_per_visitor, cleanup_frequency_days, cleanup_efficiency,
	       erosion_rate, maintenance_frequency_days, maintenance_boost,
	       min_quality, max_quality, initial_quality,
	       avg_total_litter, avg_trail_quality, min_trail_quality, max_trail_quality,
	       final_total_litter, final_trail_quality
	FROM runs`

func scanRun(rows *sql.Rows) (RunRecord, error) {
	var (
		r         RunRecord
		createdAt string
	)
	err := rows.Scan(
		&r.ID, &r.Name, &createdAt,
		&r.Scenario.HorizonDays, &r.Scenario.LitterPerVisitor,
		&r.Scenario.CleanupFrequencyDays, &r.Scenario.CleanupEfficiency,
		&r.Scenario.ErosionRate, &r.Scenario.MaintenanceFrequencyDays,
		&r.Scenario.MaintenanceBoost,
		&r.Scenario.MinQuality, &r.Scenario.MaxQuality, &r.Scenario.InitialQuality,
		&r.AvgTotalLitter, &r.AvgTrailQuality, &r.MinTrailQuality, &r.MaxTrailQuality,
		&r.FinalTotalLitter, &r.FinalTrailQuality,
	)
	if err != nil {
		return r, fmt.Errorf("scan run: %w", err)
	}
	r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return r, nil
}

func newRunID(name string, now time.Time) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s|%d", name, now.UnixNano())))
	return hex.EncodeToString(h[:])[:12]
}

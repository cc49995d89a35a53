// Package store persists experiment history in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/mrta/experiment"
	"github.com/katalvlaran/mrta/gossip"
	"github.com/katalvlaran/mrta/planner"
)

// ErrNotFound is returned when a batch id is unknown.
var ErrNotFound = errors.New("store: batch not found")

const schema = `
CREATE TABLE IF NOT EXISTS batches (
	id TEXT PRIMARY KEY,
	label TEXT NOT NULL DEFAULT '',
	variant TEXT NOT NULL,
	runs INTEGER NOT NULL,
	mean_initial_cost REAL NOT NULL,
	mean_cost REAL NOT NULL,
	min_cost REAL NOT NULL,
	max_cost REAL NOT NULL,
	mean_convergence REAL NOT NULL,
	mean_attempts REAL NOT NULL,
	mean_gap REAL NOT NULL,
	baseline REAL NOT NULL,
	best_routes TEXT NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_batches_created ON batches(created_at);

CREATE TABLE IF NOT EXISTS runs (
	batch_id TEXT NOT NULL,
	run INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	initial_cost REAL NOT NULL,
	final_cost REAL NOT NULL,
	convergence_attempt INTEGER NOT NULL,
	attempts INTEGER NOT NULL,
	moved INTEGER NOT NULL,
	gap REAL NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	PRIMARY KEY(batch_id, run),
	FOREIGN KEY(batch_id) REFERENCES batches(id) ON DELETE CASCADE
);
`

// Batch is a stored experiment summary.
type Batch struct {
	ID              uuid.UUID
	Label           string
	Variant         gossip.Variant
	Runs            int
	MeanInitialCost float64
	MeanCost        float64
	MinCost         float64
	MaxCost         float64
	MeanConvergence float64
	MeanAttempts    float64
	MeanGap         float64
	Baseline        float64
	Best            planner.Solution
	Elapsed         time.Duration
	CreatedAt       time.Time
}

// Store wraps a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set sqlite pragma %q: %w", stmt, err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates missing tables.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// SaveSummary stores sum and its per-run records in one transaction.
func (s *Store) SaveSummary(ctx context.Context, label string, sum experiment.Summary) error {
	if sum.ID == uuid.Nil {
		sum.ID = uuid.New()
	}
	best, err := encodeRoutes(sum.Best)
	if err != nil {
		return fmt.Errorf("encode best solution: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(
		ctx,
		`INSERT INTO batches(
			id, label, variant, runs, mean_initial_cost, mean_cost, min_cost, max_cost,
			mean_convergence, mean_attempts, mean_gap, baseline, best_routes, elapsed_ns, created_at
		) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.ID.String(), label, string(sum.Variant), len(sum.Records), sum.MeanInitialCost, sum.MeanCost,
		sum.MinCost, sum.MaxCost, sum.MeanConvergence, sum.MeanAttempts, sum.MeanGap, sum.Baseline,
		string(best), sum.Elapsed.Nanoseconds(), time.Now().UTC().UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}

	for _, rec := range sum.Records {
		_, err = tx.ExecContext(
			ctx,
			`INSERT INTO runs(
				batch_id, run, seed, initial_cost, final_cost, convergence_attempt,
				attempts, moved, gap, elapsed_ns
			) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sum.ID.String(), rec.Run, rec.Seed, rec.InitialCost, rec.FinalCost, rec.ConvergenceAttempt,
			rec.Attempts, rec.Moved, rec.Gap, rec.Elapsed.Nanoseconds(),
		)
		if err != nil {
			return fmt.Errorf("insert run %d: %w", rec.Run, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

const batchColumns = `id, label, variant, runs, mean_initial_cost, mean_cost, min_cost, max_cost,
	mean_convergence, mean_attempts, mean_gap, baseline, best_routes, elapsed_ns, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBatch(row scanner) (Batch, error) {
	var (
		b                 Batch
		id, variant, best string
		elapsed, created  int64
	)
	if err := row.Scan(
		&id, &b.Label, &variant, &b.Runs, &b.MeanInitialCost, &b.MeanCost, &b.MinCost, &b.MaxCost,
		&b.MeanConvergence, &b.MeanAttempts, &b.MeanGap, &b.Baseline, &best, &elapsed, &created,
	); err != nil {
		return Batch{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Batch{}, fmt.Errorf("parse batch id %q: %w", id, err)
	}
	b.ID = parsed
	b.Variant = gossip.Variant(variant)
	if b.Best, err = decodeRoutes(best); err != nil {
		return Batch{}, err
	}
	b.Elapsed = time.Duration(elapsed)
	b.CreatedAt = time.Unix(0, created).UTC()

	return b, nil
}

// ListBatches returns up to limit batches, newest first. limit ≤ 0 means all.
func (s *Store) ListBatches(ctx context.Context, limit int) ([]Batch, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+batchColumns+` FROM batches ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	result := make([]Batch, 0)
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate batches: %w", err)
	}
	return result, nil
}

// GetBatch returns one batch by id.
func (s *Store) GetBatch(ctx context.Context, id uuid.UUID) (Batch, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+batchColumns+` FROM batches WHERE id = ?`, id.String())
	b, err := scanBatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Batch{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("get batch: %w", err)
	}
	return b, nil
}

// ListRuns returns the per-run records of a batch ordered by run index.
func (s *Store) ListRuns(ctx context.Context, id uuid.UUID) ([]experiment.Record, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT run, seed, initial_cost, final_cost, convergence_attempt, attempts, moved, gap, elapsed_ns
		FROM runs WHERE batch_id = ? ORDER BY run`,
		id.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	result := make([]experiment.Record, 0)
	for rows.Next() {
		var (
			r       experiment.Record
			elapsed int64
		)
		if err := rows.Scan(
			&r.Run, &r.Seed, &r.InitialCost, &r.FinalCost, &r.ConvergenceAttempt,
			&r.Attempts, &r.Moved, &r.Gap, &elapsed,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Elapsed = time.Duration(elapsed)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return result, nil
}

// Routes are stored as JSON task lists per robot; depots are implicit.
func encodeRoutes(sol planner.Solution) ([]byte, error) {
	tasks := make([][]planner.Task, len(sol.Routes))
	for i, r := range sol.Routes {
		tasks[i] = r.Tasks()
		if tasks[i] == nil {
			tasks[i] = []planner.Task{}
		}
	}
	return json.Marshal(tasks)
}

func decodeRoutes(raw string) (planner.Solution, error) {
	var tasks [][]planner.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return planner.Solution{}, fmt.Errorf("decode best solution: %w", err)
	}
	sol := planner.Solution{Routes: make([]planner.Route, len(tasks))}
	for i, t := range tasks {
		sol.Routes[i] = planner.NewRoute(t...)
	}
	return sol, nil
}

package recorder

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rpgo/fedcalc/internal/calculation"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists calculation events to a SQLite database.
type SQLiteRecorder struct {
	db     *sql.DB
	mu     sync.Mutex
	logger calculation.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations. A nil logger discards output.
func NewSQLiteRecorder(dbPath string, logger calculation.Logger) (*SQLiteRecorder, error) {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, logger: logger}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logger.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS calculations (
			id            TEXT PRIMARY KEY,
			timestamp     INTEGER NOT NULL,
			calculator    TEXT NOT NULL,
			source        TEXT NOT NULL,
			warning_count INTEGER NOT NULL DEFAULT 0,
			duration_us   INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_calculations_ts ON calculations(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordCalculation(ctx context.Context, evt *CalculationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	at := evt.At
	if at.IsZero() {
		at = time.Now()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calculations (id, timestamp, calculator, source, warning_count, duration_us)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		evt.ID.String(), at.Unix(), string(evt.Calculator), string(evt.Source),
		evt.WarningCount, evt.Duration.Microseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert calculation: %w", err)
	}
	return nil
}

func (r *SQLiteRecorder) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM calculations WHERE timestamp < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("prune calculations: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	r.logger.Debugf("deleted %d calculation events before %s", n, cutoff.Format(time.RFC3339))
	return n, nil
}

// Counts returns the number of recorded events per calculator.
func (r *SQLiteRecorder) Counts(ctx context.Context) (map[string]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.QueryContext(ctx, `SELECT calculator, COUNT(*) FROM calculations GROUP BY calculator`)
	if err != nil {
		return nil, fmt.Errorf("count calculations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var name string
		var n int64
		if err := rows.Scan(&name, &n); err != nil {
			return nil, err
		}
		out[name] = n
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}

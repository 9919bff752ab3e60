package storage

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
)

// SQLDB is the database interface used by all stores.
// Both *sql.DB and *TimedDB satisfy this interface.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// DefaultSlowQueryMs is the default threshold for slow query warnings.
const DefaultSlowQueryMs = 50

// TimedDB wraps a *sql.DB to log slow queries and record latency to the
// Prometheus collectors. Satisfies SQLDB so it can be passed to any store
// constructor.
type TimedDB struct {
	db          *sql.DB
	m           *metrics.Metrics
	thresholdMs float64
}

// Compile-time check that *TimedDB satisfies SQLDB.
var _ SQLDB = (*TimedDB)(nil)

// NewTimedDB wraps a *sql.DB with timing instrumentation.
// PRE: db is a valid database connection; m may be nil to skip metrics
// POST: returns a TimedDB that logs slow queries above slowQueryMs
func NewTimedDB(db *sql.DB, m *metrics.Metrics, slowQueryMs int) *TimedDB {
	if slowQueryMs <= 0 {
		slowQueryMs = DefaultSlowQueryMs
	}
	return &TimedDB{db: db, m: m, thresholdMs: float64(slowQueryMs)}
}

// RawDB returns the underlying *sql.DB (needed for schema init and pool
// config).
func (t *TimedDB) RawDB() *sql.DB {
	return t.db
}

func (t *TimedDB) observe(op string, start time.Time) {
	elapsed := time.Since(start)
	durationMs := float64(elapsed.Microseconds()) / 1000.0

	if durationMs >= t.thresholdMs {
		slog.Warn("slow_query", "op", op, "duration_ms", durationMs)
	} else {
		slog.Debug("query", "op", op, "duration_ms", durationMs)
	}
	if t.m != nil {
		t.m.ObserveQuery(op, elapsed)
	}
}

// ExecContext wraps sql.DB.ExecContext with timing.
func (t *TimedDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	result, err := t.db.ExecContext(ctx, query, args...)
	t.observe("ExecContext", start)
	return result, err
}

// QueryContext wraps sql.DB.QueryContext with timing.
func (t *TimedDB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.db.QueryContext(ctx, query, args...)
	t.observe("QueryContext", start)
	return rows, err
}

// QueryRowContext wraps sql.DB.QueryRowContext with timing.
func (t *TimedDB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := t.db.QueryRowContext(ctx, query, args...)
	t.observe("QueryRowContext", start)
	return row
}

// BeginTx wraps sql.DB.BeginTx with timing.
func (t *TimedDB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	start := time.Now()
	tx, err := t.db.BeginTx(ctx, opts)
	t.observe("BeginTx", start)
	return tx, err
}

// Close closes the underlying database connection.
func (t *TimedDB) Close() error {
	return t.db.Close()
}

// Ping verifies the database connection.
func (t *TimedDB) Ping() error {
	return t.db.Ping()
}

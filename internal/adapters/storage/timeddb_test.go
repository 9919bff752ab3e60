package storage

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/jfdercksen/sa-shooting-comp-sub000/internal/adapters/metrics"
)

func openTimedTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.Exec("CREATE TABLE test (id TEXT PRIMARY KEY, val TEXT)")
	return db
}

// TestTimedDB_RoundTrip verifies the wrapper passes data through unchanged.
func TestTimedDB_RoundTrip(t *testing.T) {
	db := openTimedTestDB(t)
	tdb := NewTimedDB(db, metrics.New(), 0)

	_, err := tdb.ExecContext(context.Background(), "INSERT INTO test (id, val) VALUES (?, ?)", "1", "hello")
	if err != nil {
		t.Fatalf("ExecContext: %v", err)
	}

	var val string
	err = tdb.QueryRowContext(context.Background(), "SELECT val FROM test WHERE id = ?", "1").Scan(&val)
	if err != nil {
		t.Fatalf("QueryRowContext: %v", err)
	}
	if val != "hello" {
		t.Errorf("val = %q, want hello", val)
	}
}

// TestTimedDB_NilMetrics verifies TimedDB works without a metrics registry.
func TestTimedDB_NilMetrics(t *testing.T) {
	db := openTimedTestDB(t)
	tdb := NewTimedDB(db, nil, 0)

	_, err := tdb.ExecContext(context.Background(), "INSERT INTO test (id, val) VALUES (?, ?)", "1", "hello")
	if err != nil {
		t.Fatalf("ExecContext with nil metrics: %v", err)
	}
}

// TestTimedDB_ErrorPassthrough verifies SQL errors are returned unchanged.
// Swallowing errors here would corrupt data.
func TestTimedDB_ErrorPassthrough(t *testing.T) {
	db := openTimedTestDB(t)
	tdb := NewTimedDB(db, nil, 0)

	if _, err := tdb.ExecContext(context.Background(), "INSERT INTO nonexistent_table VALUES (?)"); err == nil {
		t.Fatal("expected error from invalid SQL, got nil")
	}

	var val string
	err := tdb.QueryRowContext(context.Background(), "SELECT val FROM test WHERE id = ?", "missing").Scan(&val)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
}

// TestTimedDB_CancelledContext verifies a cancelled context surfaces an error.
func TestTimedDB_CancelledContext(t *testing.T) {
	db := openTimedTestDB(t)
	tdb := NewTimedDB(db, nil, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := tdb.ExecContext(ctx, "INSERT INTO test (id, val) VALUES (?, ?)", "1", "hello"); err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}

// TestTimedDB_ResultPassthrough verifies sql.Result values survive the wrapper.
func TestTimedDB_ResultPassthrough(t *testing.T) {
	db := openTimedTestDB(t)
	tdb := NewTimedDB(db, nil, 0)

	result, err := tdb.ExecContext(context.Background(), "INSERT INTO test (id, val) VALUES (?, ?)", "r1", "result")
	if err != nil {
		t.Fatalf("ExecContext: %v", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		t.Fatalf("RowsAffected: %v", err)
	}
	if rows != 1 {
		t.Errorf("RowsAffected = %d, want 1", rows)
	}
}

// TestTimedDB_RawDB verifies RawDB returns the original *sql.DB.
func TestTimedDB_RawDB(t *testing.T) {
	db := openTimedTestDB(t)
	tdb := NewTimedDB(db, nil, 0)

	if tdb.RawDB() != db {
		t.Error("RawDB() should return the original *sql.DB")
	}
}

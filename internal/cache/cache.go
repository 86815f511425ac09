// Package cache mirrors the task document into a local SQLite database
// so external tooling can query tasks with SQL instead of parsing
// JSON.
//
// The JSON document stays the source of truth: the cache is rebuilt
// from it on every sync and is never read by the core commands.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/steveyegge/taskly/internal/store"
)

// DB wraps the cache database connection.
type DB struct {
	conn *sql.DB
	path string
}

// Open opens (or creates) the cache database at path. The caller must
// Close it.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open cache database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping cache database: %w", err)
	}

	db := &DB{conn: conn, path: path}

	if _, err := db.conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.conn.Exec("PRAGMA busy_timeout=5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}

	return db, nil
}

// Close checkpoints the WAL and closes the connection.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}
	if _, err := db.conn.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to checkpoint WAL: %v\n", err)
	}
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("close cache database: %w", err)
	}
	db.conn = nil
	return nil
}

// Path returns the cache file location.
func (db *DB) Path() string {
	return db.path
}

// InitSchema creates the tasks table and indexes. Idempotent.
func (db *DB) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY,
		description TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
	CREATE INDEX IF NOT EXISTS idx_tasks_updated ON tasks(updated_at);
	`
	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("initialize cache schema: %w", err)
	}
	return nil
}

// Rebuild replaces the cache contents with the given task entries in a
// single transaction.
func (db *DB) Rebuild(entries []store.Entry) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("begin cache rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM tasks"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, description, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare cache insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		_, err := stmt.Exec(
			e.ID,
			e.Task.Description,
			e.Task.Status.String(),
			e.Task.Created.Format(time.RFC3339),
			e.Task.Updated.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert task %d into cache: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit cache rebuild: %w", err)
	}
	return nil
}

// TaskCount returns the number of cached tasks.
func (db *DB) TaskCount() (int, error) {
	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		return 0, fmt.Errorf("count cached tasks: %w", err)
	}
	return n, nil
}

// CountByStatus returns cached task counts grouped by status string.
func (db *DB) CountByStatus() (map[string]int, error) {
	rows, err := db.conn.Query("SELECT status, COUNT(*) FROM tasks GROUP BY status")
	if err != nil {
		return nil, fmt.Errorf("count cached tasks by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[status] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate status counts: %w", err)
	}
	return counts, nil
}

package snapshots

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLiteMirror keeps a queryable copy of every appended row.
type SQLiteMirror struct {
	db     *sql.DB
	header []string
}

// OpenSQLiteMirror opens (or creates) the mirror database at path.
func OpenSQLiteMirror(ctx context.Context, path string) (*SQLiteMirror, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite mirror path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mirror database: %w", err)
	}
	// A single connection serialises writers on the one file.
	db.SetMaxOpenConns(1)

	m := &SQLiteMirror{db: db, header: Header()}
	if err := m.init(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

func (m *SQLiteMirror) init(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS player_snapshots (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id        TEXT NOT NULL,
			snapshot_date TEXT NOT NULL,
			squad         TEXT NOT NULL,
			name          TEXT,
			columns       TEXT NOT NULL,
			created_at    TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_player_snapshots_date_squad
			ON player_snapshots (snapshot_date, squad);
	`)
	if err != nil {
		return fmt.Errorf("failed to create mirror schema: %w", err)
	}
	return nil
}

// Record stores row as a JSON object keyed by column name.
func (m *SQLiteMirror) Record(ctx context.Context, runID string, row Row) error {
	if m == nil || m.db == nil {
		return fmt.Errorf("sqlite mirror not configured")
	}
	if len(row) != len(m.header) {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(row), len(m.header))
	}

	cols := make(map[string]string, len(row))
	for i, name := range m.header {
		cols[name] = row[i]
	}
	data, err := json.Marshal(cols)
	if err != nil {
		return err
	}

	_, err = m.db.ExecContext(ctx,
		`INSERT INTO player_snapshots (run_id, snapshot_date, squad, name, columns) VALUES (?, ?, ?, ?, ?)`,
		runID, row.Date(), row.Squad(), row.Name(), string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// CountRun returns how many rows were mirrored for runID.
func (m *SQLiteMirror) CountRun(ctx context.Context, runID string) (int, error) {
	var n int
	err := m.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM player_snapshots WHERE run_id = ?`, runID).Scan(&n)
	return n, err
}

// Close releases the database handle.
func (m *SQLiteMirror) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}

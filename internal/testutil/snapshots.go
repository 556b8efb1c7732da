package testutil

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"wb-squad-stats/internal/snapshots"
)

// NewTempWriter returns a dataset writer targeting a fresh file in a temp dir.
func NewTempWriter(t *testing.T) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(filepath.Join(t.TempDir(), "data", "wbuserdata.csv"), false)
}

// ReadDataset parses the CSV at path, failing the test on error.
func ReadDataset(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open dataset %s: %v", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("failed to parse dataset %s: %v", path, err)
	}
	return records
}

// MemoryWriter keeps rows in memory; AppendErr fails every append when set.
type MemoryWriter struct {
	State     snapshots.HeaderState
	HeaderErr error
	AppendErr error

	mu          sync.Mutex
	Rows        []snapshots.Row
	HeaderCalls int
}

func (w *MemoryWriter) EnsureHeader() (snapshots.HeaderState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.HeaderCalls++
	return w.State, w.HeaderErr
}

func (w *MemoryWriter) AppendRow(row snapshots.Row) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.AppendErr != nil {
		return w.AppendErr
	}
	w.Rows = append(w.Rows, row)
	return nil
}

// MemoryMirror records mirrored rows per run id.
type MemoryMirror struct {
	Err error

	mu   sync.Mutex
	Runs map[string][]snapshots.Row
}

func (m *MemoryMirror) Record(ctx context.Context, runID string, row snapshots.Row) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.Runs == nil {
		m.Runs = make(map[string][]snapshots.Row)
	}
	m.Runs[runID] = append(m.Runs[runID], row)
	return nil
}

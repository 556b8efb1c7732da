package snapshots

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var (
	// ErrHeaderMismatch is returned in strict mode when the stored header differs from Header().
	ErrHeaderMismatch = errors.New("dataset header does not match expected columns")
	// ErrColumnCount is returned when a row does not have one cell per header column.
	ErrColumnCount = errors.New("row column count does not match header")
)

// HeaderState describes the dataset header after EnsureHeader.
type HeaderState struct {
	Initialized bool     // header was written by this call
	Columns     []string // header as stored in the file
	Mismatch    bool     // stored header differs from Header()
}

// Writer appends snapshot rows to a header-first CSV dataset.
// The header is written once, when the file is missing or empty, and never rewritten.
type Writer struct {
	path   string
	strict bool
	header []string
}

// NewWriter constructs a writer for the dataset at path.
// With strict set, EnsureHeader refuses a file whose header differs from Header().
func NewWriter(path string, strict bool) *Writer {
	return &Writer{
		path:   path,
		strict: strict,
		header: Header(),
	}
}

// Path exposes the dataset location.
func (w *Writer) Path() string {
	if w == nil {
		return ""
	}
	return w.path
}

// EnsureHeader writes the header if the dataset does not exist yet or is empty,
// otherwise it reads back the stored header.
func (w *Writer) EnsureHeader() (HeaderState, error) {
	if w == nil || w.path == "" {
		return HeaderState{}, fmt.Errorf("dataset writer not configured")
	}

	info, err := os.Stat(w.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return w.initHeader()
	case err != nil:
		return HeaderState{}, err
	case info.IsDir():
		return HeaderState{}, fmt.Errorf("dataset path %s is a directory", w.path)
	case info.Size() == 0:
		return w.initHeader()
	}

	stored, err := w.readHeader()
	if errors.Is(err, io.EOF) {
		return w.initHeader()
	}
	if err != nil {
		return HeaderState{}, err
	}

	state := HeaderState{Columns: stored, Mismatch: !sameColumns(stored, w.header)}
	if state.Mismatch && w.strict {
		return state, fmt.Errorf("%s: %w (stored %d columns, expected %d)", w.path, ErrHeaderMismatch, len(stored), len(w.header))
	}
	return state, nil
}

// AppendRow opens the dataset, appends one record and closes it again.
func (w *Writer) AppendRow(row Row) error {
	if w == nil || w.path == "" {
		return fmt.Errorf("dataset writer not configured")
	}
	if len(row) != len(w.header) {
		return fmt.Errorf("%w: got %d, want %d", ErrColumnCount, len(row), len(w.header))
	}
	return w.appendRecord(row)
}

func (w *Writer) initHeader() (HeaderState, error) {
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return HeaderState{}, err
	}
	if err := w.appendRecord(w.header); err != nil {
		return HeaderState{}, err
	}
	return HeaderState{Initialized: true, Columns: append([]string(nil), w.header...)}, nil
}

func (w *Writer) readHeader() ([]string, error) {
	f, err := os.Open(w.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.Read()
}

func (w *Writer) appendRecord(record []string) (err error) {
	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cw := csv.NewWriter(f)
	// Existing datasets use CRLF record terminators.
	cw.UseCRLF = true
	if err := cw.Write(record); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

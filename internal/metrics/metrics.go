package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type collectionStats struct {
	runs           int
	runErrors      int
	rowsWritten    int
	playersSkipped int
	lastRun        time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and collection runs.
// When built by Setup it also forwards every observation to OpenTelemetry instruments.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*providerStats
	collection collectionStats
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider operation and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[operation]
	if !ok {
		stats = &providerStats{}
		r.stats[operation] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(operation, duration, err)
	}
}

// RecordRowWritten counts one snapshot row persisted to the dataset.
func (r *Recorder) RecordRowWritten() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.collection.rowsWritten++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRowWritten()
	}
}

// RecordPlayerSkipped counts one member skipped because upstream had no data.
func (r *Recorder) RecordPlayerSkipped() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.collection.playersSkipped++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPlayerSkipped()
	}
}

// RecordRun tracks one collection run, its duration and whether it failed.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.collection.runs++
	r.collection.lastRun = duration
	if err != nil {
		r.collection.runErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRun(duration, err)
	}
}

// ProviderCalls returns the total attempts recorded for an operation.
func (r *Recorder) ProviderCalls(operation string) int {
	return r.Snapshot(operation).Calls
}

// ProviderErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) ProviderErrors(operation string) int {
	return r.Snapshot(operation).Errors
}

// LastCallLatency returns the last recorded latency for an operation.
func (r *Recorder) LastCallLatency(operation string) time.Duration {
	return r.Snapshot(operation).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one provider operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// CollectionSnapshot is a copy of the run-level counters.
type CollectionSnapshot struct {
	Runs            int
	RunErrors       int
	RowsWritten     int
	PlayersSkipped  int
	LastRunDuration time.Duration
}

// Collection returns the run-level counters.
func (r *Recorder) Collection() CollectionSnapshot {
	if r == nil {
		return CollectionSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return CollectionSnapshot{
		Runs:            r.collection.runs,
		RunErrors:       r.collection.runErrors,
		RowsWritten:     r.collection.rowsWritten,
		PlayersSkipped:  r.collection.playersSkipped,
		LastRunDuration: r.collection.lastRun,
	}
}

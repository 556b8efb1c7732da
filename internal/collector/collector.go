package collector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"wb-squad-stats/internal/domain/players"
	"wb-squad-stats/internal/logging"
	"wb-squad-stats/internal/metrics"
	"wb-squad-stats/internal/providers"
	"wb-squad-stats/internal/snapshots"
	"wb-squad-stats/internal/timeutil"
)

// DatasetWriter persists snapshot rows.
type DatasetWriter interface {
	EnsureHeader() (snapshots.HeaderState, error)
	AppendRow(row snapshots.Row) error
}

// Mirror receives a copy of every row written to the dataset.
type Mirror interface {
	Record(ctx context.Context, runID string, row snapshots.Row) error
}

// Options tune a Collector. The zero value is valid.
type Options struct {
	Mirror   Mirror
	Location *time.Location // zone for the snapshot date, local time when nil
	Progress io.Writer      // progress bar output, no bar when nil
}

// Result summarises one collection run.
type Result struct {
	RunID    string
	Date     string
	Squads   int
	Members  int
	Rows     int // players written; the progress counter
	Skipped  int // members without player data
	Duration time.Duration
}

// Status describes the recent health of scheduled runs.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastResult          Result
}

// Collector walks every squad roster and appends one dated row per player.
type Collector struct {
	provider providers.DataProvider
	writer   DatasetWriter
	mirror   Mirror
	logger   *slog.Logger
	metrics  *metrics.Recorder
	loc      *time.Location
	progress io.Writer
	now      func() time.Time
	newRunID func() string

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Collector.
func New(provider providers.DataProvider, writer DatasetWriter, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Collector {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &Collector{
		provider: provider,
		writer:   writer,
		mirror:   opts.Mirror,
		logger:   logger,
		metrics:  recorder,
		loc:      loc,
		progress: opts.Progress,
		now:      time.Now,
		newRunID: func() string { return uuid.New().String() },
	}
}

// Run performs one full collection pass.
// Listing and write faults abort the run; rows already appended stay in the dataset.
func (c *Collector) Run(ctx context.Context) (Result, error) {
	start := c.now()
	res := Result{
		RunID: c.newRunID(),
		Date:  timeutil.FormatSnapshotDate(start.In(c.loc)),
	}
	c.recordAttempt(start)

	var logger *slog.Logger
	if c.logger != nil {
		logger = c.logger.With(slog.String(logging.FieldRunID, res.RunID))
	}
	ctx = logging.WithContext(ctx, logger)

	err := c.run(ctx, logger, &res)
	res.Duration = c.now().Sub(start)
	c.metrics.RecordRun(res.Duration, err)

	if err != nil {
		logging.Error(logger, "collection failed", err,
			slog.Int("rows", res.Rows),
			slog.Int64(logging.FieldDurationMS, res.Duration.Milliseconds()),
		)
		c.recordFailure(err, start, res)
		return res, err
	}

	c.recordSuccess(start, res)
	logging.Info(logger, "collection complete",
		slog.String(logging.FieldDate, res.Date),
		slog.Int("squads", res.Squads),
		slog.Int("members", res.Members),
		slog.Int("rows", res.Rows),
		slog.Int("skipped", res.Skipped),
		slog.Int64(logging.FieldDurationMS, res.Duration.Milliseconds()),
	)
	return res, nil
}

func (c *Collector) run(ctx context.Context, logger *slog.Logger, res *Result) error {
	if c.provider == nil {
		return providers.ErrProviderUnavailable
	}
	if c.writer == nil {
		return errors.New("dataset writer not configured")
	}

	state, err := c.writer.EnsureHeader()
	if err != nil {
		return fmt.Errorf("ensure header: %w", err)
	}
	switch {
	case state.Initialized:
		logging.Info(logger, "dataset header written", slog.Int("columns", len(state.Columns)))
	case state.Mismatch:
		logging.Warn(logger, "dataset header differs from expected columns, appending anyway",
			slog.Int("stored_columns", len(state.Columns)),
			slog.Int("expected_columns", len(snapshots.Header())),
		)
	}

	squads, err := c.provider.ListSquads(ctx)
	if err != nil {
		return fmt.Errorf("list squads: %w", err)
	}
	res.Squads = len(squads)
	logging.Info(logger, "squads listed", slog.Int(logging.FieldCount, len(squads)))

	bar := c.newProgress()
	defer bar.Finish()

	for _, squad := range squads {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.collectSquad(ctx, logger, squad, bar, res); err != nil {
			return err
		}
	}
	return nil
}

// collectSquad fetches the roster once; the progress total grows by its size before members are processed.
func (c *Collector) collectSquad(ctx context.Context, logger *slog.Logger, squad string, bar progress, res *Result) error {
	members, err := c.provider.ListMembers(ctx, squad)
	if err != nil {
		return fmt.Errorf("list members of %q: %w", squad, err)
	}
	res.Members += len(members)
	bar.Grow(len(members))

	written := 0
	for _, m := range members {
		if err := ctx.Err(); err != nil {
			return err
		}
		ok, err := c.collectMember(ctx, logger, squad, m, res.Date, res.RunID)
		if err != nil {
			return err
		}
		if !ok {
			res.Skipped++
			c.metrics.RecordPlayerSkipped()
			continue
		}
		res.Rows++
		written++
		bar.Advance()
	}

	if logger != nil {
		logger.Debug("squad processed",
			slog.String(logging.FieldSquad, squad),
			slog.Int("members", len(members)),
			slog.Int("rows", written),
		)
	}
	return nil
}

// collectMember writes one row and reports whether the member produced one.
func (c *Collector) collectMember(ctx context.Context, logger *slog.Logger, squad string, m players.Member, date, runID string) (bool, error) {
	if m.UID == "" {
		logging.Warn(logger, "member without uid skipped", slog.String(logging.FieldSquad, squad))
		return false, nil
	}

	rec, err := c.provider.GetPlayer(ctx, m.UID)
	if providers.IsNotFound(err) || (err == nil && rec.Empty()) {
		if logger != nil {
			logger.Debug("player has no data, skipped", slog.String(logging.FieldSquad, squad), slog.String(logging.FieldUID, m.UID))
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get player %s: %w", m.UID, err)
	}

	row := snapshots.BuildRow(date, squad, rec)
	if err := c.writer.AppendRow(row); err != nil {
		return false, fmt.Errorf("append row for %s: %w", m.UID, err)
	}
	c.metrics.RecordRowWritten()
	if logger != nil {
		logger.Debug("player row written",
			slog.String(logging.FieldSquad, squad),
			slog.String(logging.FieldUID, m.UID),
			slog.String("name", rec.Nick()),
		)
	}

	if c.mirror != nil {
		if err := c.mirror.Record(ctx, runID, row); err != nil {
			logging.Warn(logger, "snapshot mirror failed", slog.String(logging.FieldUID, m.UID), "error", err)
		}
	}
	return true, nil
}

func (c *Collector) newProgress() progress {
	if c.progress == nil {
		return nopProgress{}
	}
	return newBarProgress(c.progress)
}

func (c *Collector) recordAttempt(at time.Time) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.LastAttempt = at
}

func (c *Collector) recordSuccess(at time.Time, res Result) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.ConsecutiveFailures = 0
	c.status.LastError = ""
	c.status.LastSuccess = at
	c.status.LastResult = res
}

func (c *Collector) recordFailure(err error, at time.Time, res Result) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	c.status.ConsecutiveFailures++
	if err != nil {
		c.status.LastError = err.Error()
	}
	c.status.LastAttempt = at
	c.status.LastResult = res
}

// Status returns a snapshot of the collector's recent health.
func (c *Collector) Status() Status {
	c.statusMu.RLock()
	defer c.statusMu.RUnlock()
	return c.status
}

package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"wb-squad-stats/internal/logging"
)

var newCron = func(logger *slog.Logger) *cron.Cron {
	cronLogger := cron.DiscardLogger
	if logger != nil {
		cronLogger = cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	}
	return cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
}

// runScheduled registers one collection per cron tick and blocks until ctx ends.
// A tick that fires while the previous collection is still running is skipped.
func (r *Runner) runScheduled(ctx context.Context) error {
	c := newCron(r.logger)
	if _, err := c.AddFunc(r.cfg.Schedule, func() {
		if ctx.Err() != nil {
			return
		}
		_, _ = r.runOnce(ctx)
		r.logTickHealth()
	}); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", r.cfg.Schedule, err)
	}

	logging.Info(r.logger, "collector scheduled", slog.String("schedule", r.cfg.Schedule))
	c.Start()
	<-ctx.Done()
	logging.Info(r.logger, "shutdown signal received")

	stopped := c.Stop()
	timer := time.NewTimer(shutdownTimeout)
	defer timer.Stop()
	select {
	case <-stopped.Done():
	case <-timer.C:
		logging.Warn(r.logger, "collection still running at shutdown")
	}
	return nil
}

// repeatedFailureThreshold is the number of consecutive failed ticks that escalates to a warning.
const repeatedFailureThreshold = 2

// logTickHealth reports the collector's health after a scheduled run.
func (r *Runner) logTickHealth() {
	st := r.Status()
	attrs := []any{
		slog.Int("consecutive_failures", st.ConsecutiveFailures),
		slog.Time("last_success", st.LastSuccess),
	}
	if st.ConsecutiveFailures >= repeatedFailureThreshold {
		logging.Warn(r.logger, "scheduled collections failing repeatedly", append(attrs, slog.String("last_error", st.LastError))...)
		return
	}
	logging.Info(r.logger, "scheduled collection finished", attrs...)
}

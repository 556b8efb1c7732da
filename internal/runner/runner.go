package runner

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"wb-squad-stats/internal/collector"
	"wb-squad-stats/internal/config"
	"wb-squad-stats/internal/logging"
	"wb-squad-stats/internal/metrics"
	"wb-squad-stats/internal/providers"
	"wb-squad-stats/internal/timeutil"
)

var metricsSetup = metrics.Setup

// progressOutput receives the terminal progress bar.
var progressOutput io.Writer = os.Stderr

// Runner wires configuration, telemetry, the upstream provider and the dataset into a collector.
type Runner struct {
	cfg         config.Config
	logger      *slog.Logger
	metrics     *metrics.Recorder
	gatherer    prometheus.Gatherer
	metricsStop func(context.Context) error
	dataset     datasetComponents
	collector   *collector.Collector
}

// New constructs a runner with the provider selected by cfg.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Runner, error) {
	return newRunnerWithProvider(ctx, cfg, logger, nil)
}

func newRunnerWithProvider(ctx context.Context, cfg config.Config, logger *slog.Logger, provider providers.DataProvider) (*Runner, error) {
	recorder, gatherer, metricsStop := buildMetrics(ctx, cfg, logger)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	dataset, err := buildDataset(ctx, cfg, logger)
	if err != nil {
		_ = metricsStop(ctx)
		return nil, err
	}

	opts := collector.Options{Location: timeutil.ResolveLocation(cfg.Dataset.Timezone)}
	if dataset.mirror != nil {
		opts.Mirror = dataset.mirror
	}
	if cfg.ProgressBar {
		opts.Progress = progressOutput
	}

	return &Runner{
		cfg:         cfg,
		logger:      logger,
		metrics:     recorder,
		gatherer:    gatherer,
		metricsStop: metricsStop,
		dataset:     dataset,
		collector:   collector.New(provider, dataset.writer, logger, recorder, opts),
	}, nil
}

// Run collects once, or on every tick of the configured schedule until ctx ends.
// Telemetry is flushed and the mirror closed before it returns.
func (r *Runner) Run(ctx context.Context) error {
	defer r.shutdown()

	logging.Info(r.logger, "collector starting",
		slog.String(logging.FieldProvider, normalizeProviderName(r.cfg.Provider)),
		slog.String(logging.FieldPath, r.cfg.Dataset.Path),
	)
	if r.cfg.Scheduled() {
		return r.runScheduled(ctx)
	}
	_, err := r.runOnce(ctx)
	return err
}

func (r *Runner) runOnce(ctx context.Context) (collector.Result, error) {
	res, err := r.collector.Run(ctx)
	r.logMirrorCount(ctx, res.RunID)
	r.exportMetrics()
	return res, err
}

func (r *Runner) logMirrorCount(ctx context.Context, runID string) {
	if r.dataset.mirror == nil || runID == "" {
		return
	}
	n, err := r.dataset.mirror.CountRun(context.WithoutCancel(ctx), runID)
	if err != nil {
		logging.Warn(r.logger, "snapshot mirror count failed", slog.String(logging.FieldRunID, runID), "error", err)
		return
	}
	logging.Info(r.logger, "snapshot mirror updated",
		slog.String(logging.FieldRunID, runID),
		slog.Int("mirrored_rows", n),
	)
}

// Status exposes the collector's recent health.
func (r *Runner) Status() collector.Status {
	return r.collector.Status()
}

func (r *Runner) exportMetrics() {
	path := r.cfg.Metrics.TextfilePath
	if path == "" || r.gatherer == nil {
		return
	}
	if err := metrics.WriteTextfile(path, r.gatherer); err != nil {
		logging.Warn(r.logger, "metrics textfile export failed", slog.String(logging.FieldPath, path), "error", err)
	}
}

func (r *Runner) shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if r.metricsStop != nil {
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", "error", err)
		}
	}
	if err := r.dataset.close(); err != nil {
		logging.Warn(r.logger, "snapshot mirror close failed", "error", err)
	}
	logging.Info(r.logger, "shutdown complete")
}

func buildMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger) (*metrics.Recorder, prometheus.Gatherer, func(context.Context) error) {
	noop := func(context.Context) error { return nil }
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled || cfg.Metrics.TextfilePath != "",
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, gatherer, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, noop
	}
	if rec == nil {
		rec = metrics.NewRecorder()
	}
	if shutdown == nil {
		shutdown = noop
	}
	return rec, gatherer, shutdown
}

package runner

import (
	"log/slog"

	"wb-squad-stats/internal/config"
	"wb-squad-stats/internal/metrics"
	"wb-squad-stats/internal/providers"
)

// providerFactory assembles the upstream provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	return f.wrap(cfg, selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, providerLabel(cfg.Provider, base))
}

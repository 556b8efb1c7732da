package runner

import (
	"log/slog"

	"wb-squad-stats/internal/config"
	"wb-squad-stats/internal/providers"
	"wb-squad-stats/internal/providers/fixture"
	"wb-squad-stats/internal/providers/wbapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch normalizeProviderName(cfg.Provider) {
	case "wbapi", "":
		return wbapi.NewClient(wbapi.Config{
			BaseURL: cfg.Wbapi.BaseURL,
			Timeout: cfg.Wbapi.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to wbapi", slog.String("provider", cfg.Provider))
		}
		return wbapi.NewClient(wbapi.Config{
			BaseURL: cfg.Wbapi.BaseURL,
			Timeout: cfg.Wbapi.Timeout,
		})
	}
}

package config

// Config holds runtime configuration for the collector.
type Config struct {
	Provider    string
	Schedule    string
	ProgressBar bool
	Wbapi       WbapiConfig
	Dataset     DatasetConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Provider:    envOrDefault(envProvider, defaultProvider),
		Schedule:    envOrDefault(envSchedule, ""),
		ProgressBar: boolEnvOrDefault(envProgressBar, defaultProgressBar),
		Wbapi:       loadWbapi(),
		Dataset:     loadDataset(),
		Metrics:     loadMetrics(),
	}
}

// Scheduled reports whether the collector should run on a cron schedule instead of once.
func (c Config) Scheduled() bool {
	return c.Schedule != ""
}

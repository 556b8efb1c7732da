package config

// DatasetConfig controls where snapshot rows are persisted.
type DatasetConfig struct {
	Path         string
	StrictHeader bool   // fail the run when the stored header differs from the expected one
	SQLitePath   string // optional mirror database, disabled when empty
	Timezone     string // zone used to stamp the snapshot date, local time when empty
}

func loadDataset() DatasetConfig {
	return DatasetConfig{
		Path:         envOrDefault(envDatasetPath, defaultDatasetPath),
		StrictHeader: boolEnvOrDefault(envStrictHeader, false),
		SQLitePath:   envOrDefault(envSQLitePath, ""),
		Timezone:     envOrDefault(envSnapshotZone, ""),
	}
}

package runner

import (
	"context"
	"fmt"
	"log/slog"

	"wb-squad-stats/internal/config"
	"wb-squad-stats/internal/snapshots"
)

type datasetComponents struct {
	writer *snapshots.Writer
	mirror *snapshots.SQLiteMirror
}

func buildDataset(ctx context.Context, cfg config.Config, logger *slog.Logger) (datasetComponents, error) {
	comps := datasetComponents{
		writer: snapshots.NewWriter(cfg.Dataset.Path, cfg.Dataset.StrictHeader),
	}
	if cfg.Dataset.SQLitePath == "" {
		return comps, nil
	}

	mirror, err := snapshots.OpenSQLiteMirror(ctx, cfg.Dataset.SQLitePath)
	if err != nil {
		return datasetComponents{}, fmt.Errorf("open snapshot mirror: %w", err)
	}
	if logger != nil {
		logger.Info("snapshot mirror enabled", slog.String("path", cfg.Dataset.SQLitePath))
	}
	comps.mirror = mirror
	return comps, nil
}

func (d datasetComponents) close() error {
	if d.mirror == nil {
		return nil
	}
	return d.mirror.Close()
}

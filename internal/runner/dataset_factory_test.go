package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"wb-squad-stats/internal/config"
)

func TestBuildDatasetRespectsConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{Dataset: config.DatasetConfig{Path: filepath.Join(dir, "out.csv")}}

	comps, err := buildDataset(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comps.writer == nil || comps.mirror != nil {
		t.Fatalf("expected writer without mirror, got %+v", comps)
	}
	if err := comps.close(); err != nil {
		t.Fatalf("expected close without mirror to succeed, got %v", err)
	}

	cfg.Dataset.SQLitePath = filepath.Join(dir, "mirror", "snapshots.db")
	comps, err = buildDataset(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comps.mirror == nil {
		t.Fatalf("expected mirror to be opened")
	}
	if err := comps.close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
}

func TestBuildDatasetFailsOnUnusableMirrorPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	cfg := config.Config{Dataset: config.DatasetConfig{
		Path:       filepath.Join(dir, "out.csv"),
		SQLitePath: filepath.Join(blocker, "snapshots.db"),
	}}
	if _, err := buildDataset(context.Background(), cfg, nil); err == nil {
		t.Fatalf("expected error when mirror directory cannot be created")
	}
}

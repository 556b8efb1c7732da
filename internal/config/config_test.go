package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.Scheduled() {
		t.Fatalf("expected run-once mode by default, got schedule %q", cfg.Schedule)
	}
	if !cfg.ProgressBar {
		t.Fatalf("expected progress bar enabled by default")
	}
	if cfg.Wbapi.BaseURL != defaultWbapiBaseURL {
		t.Fatalf("expected default wbapi base url %s, got %s", defaultWbapiBaseURL, cfg.Wbapi.BaseURL)
	}
	if cfg.Wbapi.Timeout != defaultWbapiTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultWbapiTimeout, cfg.Wbapi.Timeout)
	}
	if cfg.Dataset.Path != defaultDatasetPath {
		t.Fatalf("expected default dataset path %s, got %s", defaultDatasetPath, cfg.Dataset.Path)
	}
	if cfg.Dataset.StrictHeader || cfg.Dataset.SQLitePath != "" || cfg.Dataset.Timezone != "" {
		t.Fatalf("expected permissive dataset defaults, got %+v", cfg.Dataset)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by default")
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envProvider, "fixture")
	t.Setenv(envSchedule, "0 3 * * *")
	t.Setenv(envProgressBar, "false")
	t.Setenv(envWbapiBaseURL, "http://example.com/api")
	t.Setenv(envWbapiTimeout, "5s")
	t.Setenv(envDatasetPath, "/tmp/out.csv")
	t.Setenv(envStrictHeader, "true")
	t.Setenv(envSQLitePath, "/tmp/snapshots.db")
	t.Setenv(envSnapshotZone, "UTC")
	t.Setenv(envMetricsOn, "1")
	t.Setenv(envMetricsFile, "/tmp/metrics.prom")

	cfg := Load()

	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider fixture, got %s", cfg.Provider)
	}
	if !cfg.Scheduled() || cfg.Schedule != "0 3 * * *" {
		t.Fatalf("expected schedule override, got %q", cfg.Schedule)
	}
	if cfg.ProgressBar {
		t.Fatalf("expected progress bar disabled")
	}
	if cfg.Wbapi.BaseURL != "http://example.com/api" {
		t.Fatalf("expected wbapi base url override, got %s", cfg.Wbapi.BaseURL)
	}
	if cfg.Wbapi.Timeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %s", cfg.Wbapi.Timeout)
	}
	if cfg.Dataset.Path != "/tmp/out.csv" || !cfg.Dataset.StrictHeader {
		t.Fatalf("expected dataset overrides, got %+v", cfg.Dataset)
	}
	if cfg.Dataset.SQLitePath != "/tmp/snapshots.db" || cfg.Dataset.Timezone != "UTC" {
		t.Fatalf("expected mirror and timezone overrides, got %+v", cfg.Dataset)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.TextfilePath != "/tmp/metrics.prom" {
		t.Fatalf("expected metrics overrides, got %+v", cfg.Metrics)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envWbapiTimeout, "not-a-duration")

	cfg := Load()
	if cfg.Wbapi.Timeout != defaultWbapiTimeout {
		t.Fatalf("expected default timeout on invalid value, got %s", cfg.Wbapi.Timeout)
	}
}

func TestLoadNonPositiveDurationFallsBack(t *testing.T) {
	t.Setenv(envWbapiTimeout, "0s")

	cfg := Load()
	if cfg.Wbapi.Timeout != defaultWbapiTimeout {
		t.Fatalf("expected default timeout on non-positive value, got %s", cfg.Wbapi.Timeout)
	}
}

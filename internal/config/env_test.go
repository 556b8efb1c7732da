package config

import (
	"testing"
	"time"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"on", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestEnvOrDefaultStripsQuotes(t *testing.T) {
	t.Setenv("QUOTED_TEST", `  "data/out.csv" `)
	if got := envOrDefault("QUOTED_TEST", "x"); got != "data/out.csv" {
		t.Fatalf("expected quotes stripped, got %q", got)
	}

	t.Setenv("QUOTED_TEST", `'single'`)
	if got := envOrDefault("QUOTED_TEST", "x"); got != "single" {
		t.Fatalf("expected single quotes stripped, got %q", got)
	}

	t.Setenv("QUOTED_TEST", `"`)
	if got := envOrDefault("QUOTED_TEST", "x"); got != `"` {
		t.Fatalf("expected lone quote kept, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	t.Setenv("DURATION_TEST", "2s")
	if got := durationEnvOrDefault("DURATION_TEST", time.Minute); got != 2*time.Second {
		t.Fatalf("expected 2s, got %s", got)
	}
	t.Setenv("DURATION_TEST", "-1s")
	if got := durationEnvOrDefault("DURATION_TEST", time.Minute); got != time.Minute {
		t.Fatalf("expected default on negative duration, got %s", got)
	}
}

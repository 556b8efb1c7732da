package metrics

import "testing"

func TestMetricFieldKeysAreStable(t *testing.T) {
	if AttrOperation == "" || AttrOutcome == "" {
		t.Fatalf("expected metric attribute keys to be non-empty")
	}
	if OutcomeSuccess == OutcomeFailure {
		t.Fatalf("expected distinct outcome values")
	}
}

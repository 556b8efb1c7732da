package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{
		Provider:   "wbapi",
		Operation:  OpListSquads,
		StatusCode: 502,
		Body:       "bad gateway",
	}
	if got := err.Error(); got != "wbapi: list_squads: unexpected status 502: bad gateway" {
		t.Fatalf("unexpected error string %q", got)
	}

	wrapped := fmt.Errorf("listing squads: %w", err)
	st, ok := AsStatusError(wrapped)
	if !ok || st.StatusCode != 502 {
		t.Fatalf("expected to unwrap status error, got %+v", st)
	}

	noBody := &StatusError{Provider: "p", Operation: "op", StatusCode: 500}
	if got := noBody.Error(); got != "p: op: unexpected status 500" {
		t.Fatalf("unexpected error string %q", got)
	}

	if _, ok := AsStatusError(errors.New("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(fmt.Errorf("uid u1: %w", ErrPlayerNotFound)) {
		t.Fatalf("expected wrapped not-found to match")
	}
	if IsNotFound(errors.New("boom")) || IsNotFound(nil) {
		t.Fatalf("expected other errors not to match")
	}
}

package runner

import (
	"context"
	"testing"

	"wb-squad-stats/internal/config"
	"wb-squad-stats/internal/metrics"
	"wb-squad-stats/internal/providers"
	"wb-squad-stats/internal/providers/fixture"
	"wb-squad-stats/internal/providers/wbapi"
)

func TestSelectProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{"", "wbapi"},
		{"wbapi", "wbapi"},
		{" Fixture ", "fixture"},
		{"mystery", "wbapi"},
	}
	for _, tt := range tests {
		prov := selectProvider(config.Config{Provider: tt.provider}, nil)
		switch tt.want {
		case "wbapi":
			if _, ok := prov.(*wbapi.Client); !ok {
				t.Fatalf("provider %q: expected wbapi client, got %T", tt.provider, prov)
			}
		case "fixture":
			if _, ok := prov.(*fixture.Provider); !ok {
				t.Fatalf("provider %q: expected fixture, got %T", tt.provider, prov)
			}
		}
	}
}

func TestProviderFactoryInstrumentsCalls(t *testing.T) {
	rec := metrics.NewRecorder()
	prov := newProviderFactory(nil, rec).build(config.Config{Provider: "fixture"})
	if prov == nil {
		t.Fatalf("expected provider")
	}
	if _, err := prov.ListSquads(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ProviderCalls(providers.OpListSquads) != 1 {
		t.Fatalf("expected instrumented call, got %d", rec.ProviderCalls(providers.OpListSquads))
	}
}

func TestProviderLabel(t *testing.T) {
	if got := providerLabel("", fixture.New()); got != "fixture" {
		t.Fatalf("expected provider name, got %q", got)
	}
	if got := providerLabel(" WBAPI ", nil); got != "wbapi" {
		t.Fatalf("expected normalized config name, got %q", got)
	}
	if got := providerLabel("", nil); got != "provider" {
		t.Fatalf("expected fallback label, got %q", got)
	}
}

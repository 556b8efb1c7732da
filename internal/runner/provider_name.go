package runner

import (
	"strings"

	"wb-squad-stats/internal/providers"
)

// normalizeProviderName returns a trimmed, lower-cased provider name.
func normalizeProviderName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// providerLabel names a provider for logs and metrics, preferring the provider's own name.
func providerLabel(raw string, provider providers.DataProvider) string {
	if named, ok := provider.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	if name := normalizeProviderName(raw); name != "" {
		return name
	}
	return "provider"
}

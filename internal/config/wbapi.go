package config

import "time"

// WbapiConfig controls how we talk to the War Brokers stats API.
type WbapiConfig struct {
	BaseURL string
	Timeout time.Duration
}

func loadWbapi() WbapiConfig {
	return WbapiConfig{
		BaseURL: envOrDefault(envWbapiBaseURL, defaultWbapiBaseURL),
		Timeout: durationEnvOrDefault(envWbapiTimeout, defaultWbapiTimeout),
	}
}

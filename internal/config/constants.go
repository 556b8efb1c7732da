package config

import "time"

const (
	envProvider     = "PROVIDER"
	envSchedule     = "SCHEDULE"
	envProgressBar  = "PROGRESS_BAR"
	envMetricsOn    = "METRICS_ENABLED"
	envMetricsFile  = "METRICS_TEXTFILE"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"
	envWbapiBaseURL = "WBAPI_BASE_URL"
	envWbapiTimeout = "WBAPI_TIMEOUT"
	envDatasetPath  = "DATASET_PATH"
	envStrictHeader = "DATASET_STRICT_HEADER"
	envSQLitePath   = "SNAPSHOT_SQLITE_PATH"
	envSnapshotZone = "SNAPSHOT_TIMEZONE"

	defaultProvider    = "wbapi"
	defaultProgressBar = true
	defaultServiceName = "wb-squad-stats"

	defaultWbapiBaseURL = "https://wbapi.wbpjs.com"
	// Upstream calls have no timeout of their own.
	defaultWbapiTimeout = 30 * Duration(time.Second)

	defaultDatasetPath = "data/wbuserdata.csv"
)

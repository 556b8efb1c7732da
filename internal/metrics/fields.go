package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
)

// Outcome values attached to run metrics.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

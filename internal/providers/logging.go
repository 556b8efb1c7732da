package providers

import (
	"context"
	"log/slog"

	"wb-squad-stats/internal/logging"
)

// logWithProvider emits a log entry through the context logger (or fallback) and always includes provider and operation.
func logWithProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, operation, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldOperation, operation),
	)
	logger.Log(ctx, level, msg, args...)
}

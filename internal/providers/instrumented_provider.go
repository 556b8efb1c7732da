package providers

import (
	"context"
	"log/slog"
	"time"

	"wb-squad-stats/internal/domain/players"
	"wb-squad-stats/internal/logging"
	"wb-squad-stats/internal/metrics"
)

// instrumentedProvider wraps a DataProvider and records latency/errors per operation.
type instrumentedProvider struct {
	inner   DataProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider decorates inner with metrics and failure logging.
// A missing player is counted as a successful call.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) DataProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) ListSquads(ctx context.Context) ([]string, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	squads, err := p.inner.ListSquads(ctx)
	p.observe(ctx, OpListSquads, start, err, slog.Int(logging.FieldCount, len(squads)))
	return squads, err
}

func (p *instrumentedProvider) ListMembers(ctx context.Context, squad string) ([]players.Member, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	members, err := p.inner.ListMembers(ctx, squad)
	p.observe(ctx, OpListMembers, start, err, slog.String(logging.FieldSquad, squad), slog.Int(logging.FieldCount, len(members)))
	return members, err
}

func (p *instrumentedProvider) GetPlayer(ctx context.Context, uid string) (players.Record, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	rec, err := p.inner.GetPlayer(ctx, uid)
	p.observe(ctx, OpGetPlayer, start, err, slog.String(logging.FieldUID, uid))
	return rec, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, err error, attrs ...any) {
	elapsed := p.now().Sub(start)
	recorded := err
	if IsNotFound(err) {
		recorded = nil
	}
	p.metrics.RecordProviderAttempt(op, elapsed, recorded)

	attrs = append(attrs, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()))
	switch {
	case recorded != nil:
		attrs = append(attrs, "error", err)
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, op, "provider call failed", attrs...)
	case err != nil:
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, op, "provider returned no data", attrs...)
	default:
		logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, op, "provider call", attrs...)
	}
}

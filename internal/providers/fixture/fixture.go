package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"wb-squad-stats/internal/domain/players"
	"wb-squad-stats/internal/providers"
)

// Provider serves a static set of squads and players for local dry runs.
// Member "ghost" has no player document so the skip path is exercised too.
type Provider struct {
	squads  []string
	members map[string][]string
	records map[string]players.Record
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		squads: []string{"Alpha", "Bravo"},
		members: map[string][]string{
			"Alpha": {"u1", "u2"},
			"Bravo": {"u3", "ghost"},
		},
		records: map[string]players.Record{
			"u1": {
				"nick":         "Bob",
				"level":        json.Number("5"),
				"xp":           json.Number("1200"),
				"coins":        json.Number("300"),
				"damage_dealt": map[string]any{"p61": json.Number("10"), "p63": json.Number("4")},
				"losses":       map[string]any{"m00": json.Number("2")},
			},
			"u2": {
				"nick":         "Alice",
				"level":        json.Number("12"),
				"banned":       false,
				"killsELO":     json.Number("1500.5"),
				"damage_dealt": map[string]any{"p67": json.Number("250")},
				"losses":       []any{},
			},
			"u3": {
				"nick":  "Carol",
				"level": json.Number("1"),
			},
		},
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// ListSquads returns the fixture squads.
func (p *Provider) ListSquads(ctx context.Context) ([]string, error) {
	_ = ctx
	return append([]string(nil), p.squads...), nil
}

// ListMembers returns the fixture roster for squad.
func (p *Provider) ListMembers(ctx context.Context, squad string) ([]players.Member, error) {
	_ = ctx
	if squad == "" {
		return nil, providers.ErrInvalidID
	}
	uids := p.members[squad]
	members := make([]players.Member, 0, len(uids))
	for _, uid := range uids {
		members = append(members, players.Member{UID: uid, Squad: squad})
	}
	return members, nil
}

// GetPlayer returns the fixture record for uid.
func (p *Provider) GetPlayer(ctx context.Context, uid string) (players.Record, error) {
	_ = ctx
	if uid == "" {
		return nil, providers.ErrInvalidID
	}
	rec, ok := p.records[uid]
	if !ok {
		return nil, fmt.Errorf("uid %s: %w", uid, providers.ErrPlayerNotFound)
	}
	return rec, nil
}

package providers

import (
	"context"

	"wb-squad-stats/internal/domain/players"
)

// Operation names shared by logs and metrics.
const (
	OpListSquads  = "list_squads"
	OpListMembers = "list_members"
	OpGetPlayer   = "get_player"
)

// SquadProvider lists squads and their members.
type SquadProvider interface {
	ListSquads(ctx context.Context) ([]string, error)
	ListMembers(ctx context.Context, squad string) ([]players.Member, error)
}

// PlayerProvider fetches raw player statistics.
// Implementations return ErrPlayerNotFound when upstream has no data for uid.
type PlayerProvider interface {
	GetPlayer(ctx context.Context, uid string) (players.Record, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	SquadProvider
	PlayerProvider
}

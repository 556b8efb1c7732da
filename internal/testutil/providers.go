package testutil

import (
	"context"
	"fmt"
	"sync"

	"wb-squad-stats/internal/domain/players"
	"wb-squad-stats/internal/providers"
)

// StubProvider serves canned squads, rosters and player records and counts calls.
// Members listed without a record are reported as missing players.
type StubProvider struct {
	Squads  []string
	Members map[string][]players.Member
	Records map[string]players.Record

	SquadErr   error
	MemberErrs map[string]error
	PlayerErrs map[string]error

	mu          sync.Mutex
	memberCalls map[string]int
	playerCalls map[string]int
}

// Roster builds a StubProvider from squad -> uid -> record. A nil record marks a member without data.
func Roster(squads []string, roster map[string]map[string]players.Record, order map[string][]string) *StubProvider {
	p := &StubProvider{
		Squads:  squads,
		Members: make(map[string][]players.Member),
		Records: make(map[string]players.Record),
	}
	for squad, uids := range order {
		for _, uid := range uids {
			p.Members[squad] = append(p.Members[squad], players.Member{UID: uid, Squad: squad})
			if rec := roster[squad][uid]; rec != nil {
				p.Records[uid] = rec
			}
		}
	}
	return p
}

func (p *StubProvider) ListSquads(ctx context.Context) ([]string, error) {
	_ = ctx
	if p.SquadErr != nil {
		return nil, p.SquadErr
	}
	return p.Squads, nil
}

func (p *StubProvider) ListMembers(ctx context.Context, squad string) ([]players.Member, error) {
	_ = ctx
	p.mu.Lock()
	if p.memberCalls == nil {
		p.memberCalls = make(map[string]int)
	}
	p.memberCalls[squad]++
	p.mu.Unlock()

	if err := p.MemberErrs[squad]; err != nil {
		return nil, err
	}
	return p.Members[squad], nil
}

func (p *StubProvider) GetPlayer(ctx context.Context, uid string) (players.Record, error) {
	_ = ctx
	p.mu.Lock()
	if p.playerCalls == nil {
		p.playerCalls = make(map[string]int)
	}
	p.playerCalls[uid]++
	p.mu.Unlock()

	if err := p.PlayerErrs[uid]; err != nil {
		return nil, err
	}
	rec, ok := p.Records[uid]
	if !ok {
		return nil, fmt.Errorf("uid %s: %w", uid, providers.ErrPlayerNotFound)
	}
	return rec, nil
}

// MemberCalls reports how many times the roster of squad was requested.
func (p *StubProvider) MemberCalls(squad string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.memberCalls[squad]
}

// PlayerCalls reports how many times uid was requested.
func (p *StubProvider) PlayerCalls(uid string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playerCalls[uid]
}

package wbapi

import "time"

const (
	providerName = "wbapi"

	defaultBaseURL     = "https://wbapi.wbpjs.com"
	defaultHTTPTimeout = 30 * time.Second
	// Player documents are a few KB; anything past this is not a stats payload.
	maxBodyBytes = 8 << 20

	squadListPath    = "/squad/getSquadList"
	squadMembersPath = "/squad/getSquadMembers"
	playerPath       = "/players/getPlayer"
)

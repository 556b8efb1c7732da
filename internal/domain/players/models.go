package players

import "strings"

// Upstream keys of the player document.
const (
	KeyNick                 = "nick"
	KeyLevel                = "level"
	KeyXP                   = "xp"
	KeyJoinTime             = "joinTime"
	KeyPingTime             = "ping_time"
	KeyBanned               = "banned"
	KeyCoins                = "coins"
	KeyKillsELO             = "killsELO"
	KeyGamesELO             = "gamesELO"
	KeyNumberOfJumps        = "number_of_jumps"
	KeyZombieDeaths         = "zombie_deaths"
	KeyZombieKills          = "zombie_kills"
	KeyZombieWins           = "zombie_wins"
	KeyTime                 = "time"
	KeyTimeAliveCount       = "time_alive_count"
	KeyTimeAliveLongest     = "time_alive_longest"
	KeyTimeAlive            = "time_alive"
	KeyZombieTimeAliveCount = "zombie_time_alive_count"
	KeyZombieTimeAlive      = "zombie_time_alive"
	KeyDamageDealt          = "damage_dealt"
	KeyLosses               = "losses"
)

// Member is one entry of a squad roster.
type Member struct {
	UID   string `json:"uid"`
	Squad string `json:"squad"`
}

// Record is a raw player statistics document as returned upstream.
// Values keep their decoded JSON form (json.Number for numbers).
type Record map[string]any

// Empty reports whether the record carries no data at all.
func (r Record) Empty() bool {
	return len(r) == 0
}

// Value returns the raw value stored under key, or nil when absent.
func (r Record) Value(key string) any {
	if r == nil {
		return nil
	}
	return r[key]
}

// Object returns the nested object stored under key.
// Anything that is not a JSON object, including a missing key, yields an empty map.
func (r Record) Object(key string) map[string]any {
	if obj, ok := r.Value(key).(map[string]any); ok && obj != nil {
		return obj
	}
	return map[string]any{}
}

// Nick returns the player's nickname, or an empty string when unknown.
func (r Record) Nick() string {
	nick, _ := r.Value(KeyNick).(string)
	return strings.TrimSpace(nick)
}

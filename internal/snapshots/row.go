package snapshots

import (
	"encoding/json"

	"github.com/spf13/cast"

	"wb-squad-stats/internal/domain/players"
)

// Row is one dataset record in Header order.
type Row []string

const (
	colDate  = 0
	colSquad = 1
	colName  = 2
)

// fixedColumns pairs the leading dataset columns with the player key they are read from.
// Date and Squad are filled by BuildRow and have no key.
var fixedColumns = []struct {
	name string
	key  string
}{
	{"Date", ""},
	{"Squad", ""},
	{"Name", players.KeyNick},
	{"Level", players.KeyLevel},
	{"XP", players.KeyXP},
	{"JoinTime", players.KeyJoinTime},
	{"PingTime", players.KeyPingTime},
	{"Banned", players.KeyBanned},
	{"Coins", players.KeyCoins},
	{"KillsELO", players.KeyKillsELO},
	{"GamesELO", players.KeyGamesELO},
	{"Number_of_Jumps", players.KeyNumberOfJumps},
	{"Zombie_Deaths", players.KeyZombieDeaths},
	{"Zombie_Kills", players.KeyZombieKills},
	{"Zombie_Wins", players.KeyZombieWins},
	{"Time", players.KeyTime},
	{"Time_Alive_Count", players.KeyTimeAliveCount},
	{"Time_Alive_Longest", players.KeyTimeAliveLongest},
	{"Time_Alive", players.KeyTimeAlive},
	{"Zombie_Time_Alive_Count", players.KeyZombieTimeAliveCount},
	{"Zombie_Time_Alive", players.KeyZombieTimeAlive},
}

const lossPrefix = "Losses_"

// Header returns the dataset column names.
func Header() []string {
	damage := players.DamageColumns()
	losses := players.LossCodes()
	cols := make([]string, 0, len(fixedColumns)+len(damage)+len(losses))
	for _, c := range fixedColumns {
		cols = append(cols, c.name)
	}
	cols = append(cols, damage...)
	for _, code := range losses {
		cols = append(cols, lossPrefix+code)
	}
	return cols
}

// BuildRow flattens a player record into one dataset row.
// Missing scalars become empty cells; missing damage and loss entries become 0.
func BuildRow(today, squad string, rec players.Record) Row {
	damageCols := players.DamageColumns()
	lossCodes := players.LossCodes()
	row := make(Row, 0, len(fixedColumns)+len(damageCols)+len(lossCodes))

	row = append(row, today, squad)
	for _, c := range fixedColumns[colName:] {
		row = append(row, render(rec.Value(c.key)))
	}

	damage := players.RenameDamage(rec.Object(players.KeyDamageDealt))
	for _, col := range damageCols {
		row = append(row, valueOrZero(damage, col))
	}

	losses := rec.Object(players.KeyLosses)
	for _, code := range lossCodes {
		row = append(row, valueOrZero(losses, code))
	}
	return row
}

// Date returns the snapshot date cell.
func (r Row) Date() string { return r.cell(colDate) }

// Squad returns the squad cell.
func (r Row) Squad() string { return r.cell(colSquad) }

// Name returns the player name cell.
func (r Row) Name() string { return r.cell(colName) }

func (r Row) cell(i int) string {
	if i < len(r) {
		return r[i]
	}
	return ""
}

func valueOrZero(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok {
		return "0"
	}
	return render(v)
}

// render writes a decoded JSON value as a CSV cell. Nested values fall back to their JSON text.
func render(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case map[string]any, []any:
		data, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(data)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

package players

// damageName pairs an upstream damage code with its dataset column name.
type damageName struct {
	code string
	name string
}

// damageNames is ordered; the order defines the dataset damage columns.
var damageNames = []damageName{
	{"p11", "BGM"},
	{"p52", "DamageDealt_p52"},
	{"p53", "DamageDealt_p53"},
	{"p54", "DamageDealt_p54"},
	{"p55", "DamageDealt_p55"},
	{"p56", "DamageDealt_p56"},
	{"p57", "DamageDealt_p57"},
	{"p58", "DamageDealt_p58"},
	{"p59", "DamageDealt_p59"},
	{"p60", "DamageDealt_p60"},
	{"p61", "AR"},
	{"p62", "AK"},
	{"p63", "Pistol"},
	{"p64", "HR"},
	{"p65", "RPG"},
	{"p66", "Shotgun"},
	{"p67", "SR"},
	{"p68", "SMG"},
	{"p69", "Homing"},
	{"p71", "Grenade"},
	{"p74", "HeliMinigun"},
	{"p75", "TankMinigun"},
	{"p76", "Knife"},
	{"p78", "Revolver"},
	{"p79", "Minigun"},
	{"p80", "GL"},
	{"p82", "DamageDealt_p82"},
	{"p83", "DamageDealt_p83"},
	{"p84", "DamageDealt_p84"},
	{"p85", "DamageDealt_p85"},
	{"p86", "DamageDealt_p86"},
	{"p87", "DamageDealt_p87"},
	{"p88", "Fists"},
	{"p89", "VSS"},
	{"p90", "Fifty"},
	{"p91", "MGTurret"},
	{"p92", "XBow"},
	{"p93", "SCAR"},
	{"p94", "TacShotty"},
	{"p95", "VEK"},
	{"p96", "DamageDealt_p96"},
	{"p97", "DamageDealt_p97"},
	{"p98", "LMG"},
	{"p101", "DamageDealt_p101"},
	{"p104", "DamageDealt_p104"},
	{"p105", "DamageDealt_p105"},
	{"p110", "DamageDealt_p110"},
	{"p111", "LaserMine"},
	{"p112", "DamageDealt_p112"},
}

var damageIndex = func() map[string]string {
	idx := make(map[string]string, len(damageNames))
	for _, d := range damageNames {
		idx[d.code] = d.name
	}
	return idx
}()

// lossCodes are the game-mode keys of the losses object, in column order.
var lossCodes = []string{"m00", "m10", "m09", "m08", "m07"}

// RenameDamageKey maps an upstream damage code to its column name.
// Unknown codes are returned unchanged.
func RenameDamageKey(code string) string {
	if name, ok := damageIndex[code]; ok {
		return name
	}
	return code
}

// RenameDamage returns a copy of damage keyed by column name.
// When an unknown key collides with a column name, the mapped code's value wins.
func RenameDamage(damage map[string]any) map[string]any {
	out := make(map[string]any, len(damage))
	for code, v := range damage {
		if _, mapped := damageIndex[code]; !mapped {
			out[code] = v
		}
	}
	for code, v := range damage {
		if name, mapped := damageIndex[code]; mapped {
			out[name] = v
		}
	}
	return out
}

// DamageColumns lists every damage column name in dataset order.
func DamageColumns() []string {
	cols := make([]string, len(damageNames))
	for i, d := range damageNames {
		cols[i] = d.name
	}
	return cols
}

// LossCodes lists the loss codes in dataset order.
func LossCodes() []string {
	return append([]string(nil), lossCodes...)
}

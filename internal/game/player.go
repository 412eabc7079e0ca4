package game

// Player is the persistent record for one username. All mutation happens
// through the world state store; everything here is plain data so a deep
// copy is a field copy plus slice clones.
type Player struct {
	Health     int      `json:"health"`
	MaxHealth  int      `json:"max_health"`
	Mana       int      `json:"mana"`
	MaxMana    int      `json:"max_mana"`
	Level      int      `json:"level"`
	Exp        int      `json:"exp"`
	ExpToLevel int      `json:"exp_to_level"`
	Gold       int      `json:"gold"`
	Location   string   `json:"location"`
	Weapon     string   `json:"weapon"`
	Spells     []string `json:"spells"`
	Inventory  []string `json:"inventory"`
}

// NewPlayer creates a fresh player record from the starting stats template.
func NewPlayer(stats *StartingStats) *Player {
	return &Player{
		Health:     stats.Health,
		MaxHealth:  stats.MaxHealth,
		Mana:       stats.Mana,
		MaxMana:    stats.MaxMana,
		Level:      stats.Level,
		Exp:        stats.Exp,
		ExpToLevel: stats.ExpToLevel,
		Gold:       stats.Gold,
		Location:   stats.Location,
		Weapon:     stats.Weapon,
		Spells:     append([]string(nil), stats.Spells...),
		Inventory:  append([]string(nil), stats.Inventory...),
	}
}

// Clone returns an independently-owned copy of the record.
func (p *Player) Clone() *Player {
	c := *p
	c.Spells = append([]string(nil), p.Spells...)
	c.Inventory = append([]string(nil), p.Inventory...)
	return &c
}

// KnowsSpell returns true if the spell id is in the player's known set.
func (p *Player) KnowsSpell(id string) bool {
	for _, s := range p.Spells {
		if s == id {
			return true
		}
	}
	return false
}

// LevelUp applies exactly one level gain: exp resets, the threshold grows by
// half, and both pools are raised and refilled.
func (p *Player) LevelUp() {
	p.Level++
	p.Exp = 0
	p.ExpToLevel = p.ExpToLevel * 3 / 2
	p.MaxHealth += 20
	p.Health = p.MaxHealth
	p.MaxMana += 10
	p.Mana = p.MaxMana
}

package game

import (
	"fmt"

	"github.com/KalpShah999/TMGame/internal/storage"
	"github.com/pixil98/go-errors"
)

// Catalog bundles the read-only world content stores. The game reads it but
// never writes; all cross-references are checked once by Resolve.
type Catalog struct {
	Locations storage.Storer[*Location]
	Enemies   storage.Storer[*Enemy]
	Weapons   storage.Storer[*Weapon]
	Spells    storage.Storer[*Spell]
	Stats     *StartingStats
}

// Resolve verifies every id reference in the catalog: location exits and
// enemy lists, plus the starting stats template.
func (c *Catalog) Resolve() error {
	el := errors.NewErrorList()

	for id, loc := range c.Locations.GetAll() {
		for dir, dest := range loc.Exits {
			if c.Locations.Get(dest) == nil {
				el.Add(fmt.Errorf("location %q: exit %s leads to unknown location %q", id, dir, dest))
			}
		}
		for _, enemyId := range loc.Enemies {
			if c.Enemies.Get(enemyId) == nil {
				el.Add(fmt.Errorf("location %q: unknown enemy %q", id, enemyId))
			}
		}
	}

	if c.Locations.Get(c.Stats.Location) == nil {
		el.Add(fmt.Errorf("starting stats: unknown location %q", c.Stats.Location))
	}
	if c.Weapons.Get(c.Stats.Weapon) == nil {
		el.Add(fmt.Errorf("starting stats: unknown weapon %q", c.Stats.Weapon))
	}
	for _, spellId := range c.Stats.Spells {
		if c.Spells.Get(spellId) == nil {
			el.Add(fmt.Errorf("starting stats: unknown spell %q", spellId))
		}
	}

	return el.Err()
}

// CheckPlayer verifies a player record's id references resolve. Used when
// restoring records from a snapshot.
func (c *Catalog) CheckPlayer(username string, p *Player) error {
	el := errors.NewErrorList()

	if c.Locations.Get(p.Location) == nil {
		el.Add(fmt.Errorf("player %q: unknown location %q", username, p.Location))
	}
	if c.Weapons.Get(p.Weapon) == nil {
		el.Add(fmt.Errorf("player %q: unknown weapon %q", username, p.Weapon))
	}
	for _, spellId := range p.Spells {
		if c.Spells.Get(spellId) == nil {
			el.Add(fmt.Errorf("player %q: unknown spell %q", username, spellId))
		}
	}
	if p.Health < 0 || p.Health > p.MaxHealth {
		el.Add(fmt.Errorf("player %q: health %d out of range", username, p.Health))
	}
	if p.Mana < 0 || p.Mana > p.MaxMana {
		el.Add(fmt.Errorf("player %q: mana %d out of range", username, p.Mana))
	}

	return el.Err()
}

// RespawnLocation is where defeated players wake up.
func (c *Catalog) RespawnLocation() string {
	return c.Stats.Location
}

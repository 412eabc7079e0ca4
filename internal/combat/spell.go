package combat

import (
	"fmt"

	"github.com/KalpShah999/TMGame/internal/game"
)

// CastOutcome reports how a spell cast resolved.
type CastOutcome struct {
	Healed   bool
	Refunded bool
	Damage   int
}

// Cast resolves one spell cast. Mana is deducted up front under the lock;
// an offensive cast with no enemies present refunds it exactly. Unlike
// melee, an offensive cast is a single hit against the first enemy listed
// at the location: no exchange loop, no rewards, no retaliation.
func (e *Engine) Cast(username, spellId string) (*CastOutcome, error) {
	spell := e.catalog.Spells.Get(spellId)

	// Check knowledge and mana, and deduct, in one guarded operation.
	var location string
	err := e.store.WithPlayer(username, func(p *game.Player) error {
		if spell == nil || !p.KnowsSpell(spellId) {
			return &SpellUnknownError{SpellId: spellId}
		}
		if p.Mana < spell.ManaCost {
			return &InsufficientManaError{Need: spell.ManaCost, Have: p.Mana}
		}
		p.Mana -= spell.ManaCost
		location = p.Location
		return nil
	})
	if err != nil {
		return nil, err
	}

	if spell.IsHealing() {
		return e.castHealing(username, spell)
	}
	return e.castOffensive(username, location, spell)
}

func (e *Engine) castHealing(username string, spell *game.Spell) (*CastOutcome, error) {
	heal := spell.HealAmount()
	err := e.store.WithPlayer(username, func(p *game.Player) error {
		p.Health = min(p.MaxHealth, p.Health+heal)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.pub.SendTo(username, fmt.Sprintf("[SPELL] You cast %s and restore %d health!", spell.Name, heal))
	return &CastOutcome{Healed: true}, nil
}

func (e *Engine) castOffensive(username, location string, spell *game.Spell) (*CastOutcome, error) {
	loc := e.catalog.Locations.Get(location)
	if loc == nil {
		return nil, fmt.Errorf("location %q not in catalog", location)
	}

	if len(loc.Enemies) == 0 {
		err := e.store.WithPlayer(username, func(p *game.Player) error {
			p.Mana += spell.ManaCost
			return nil
		})
		if err != nil {
			return nil, err
		}
		e.pub.SendTo(username, "There are no enemies here!")
		return &CastOutcome{Refunded: true}, nil
	}

	// The target is the first enemy listed at the location, not chosen by
	// the player.
	enemy := e.catalog.Enemies.Get(loc.Enemies[0])
	if enemy == nil {
		return nil, fmt.Errorf("enemy %q not in catalog", loc.Enemies[0])
	}

	damage := spell.Damage + e.roll(spellJitterMin, spellJitterMax)
	e.pub.SendTo(username, fmt.Sprintf("[SPELL] You cast %s for %d damage!", spell.Name, damage))
	e.pub.Broadcast(fmt.Sprintf("[MAGIC] %s casts %s!", username, spell.Name), username)

	return &CastOutcome{Damage: damage}, nil
}

package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Spell is an immutable catalog entry. A negative damage value marks a
// healing spell that restores abs(damage) health.
type Spell struct {
	Name        string `json:"name"`
	Damage      int    `json:"damage"`
	ManaCost    int    `json:"mana_cost"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

func (s *Spell) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if s.Damage == 0 {
		el.Add(fmt.Errorf("damage must be non-zero"))
	}
	if s.ManaCost <= 0 {
		el.Add(fmt.Errorf("mana_cost must be positive"))
	}
	if s.Cost < 0 {
		el.Add(fmt.Errorf("cost cannot be negative"))
	}

	return el.Err()
}

// IsHealing returns true if casting this spell restores health.
func (s *Spell) IsHealing() bool {
	return s.Damage < 0
}

// HealAmount returns the health restored by a healing spell.
func (s *Spell) HealAmount() int {
	if s.Damage < 0 {
		return -s.Damage
	}
	return 0
}

package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Weapon is an immutable catalog entry for an equippable weapon.
type Weapon struct {
	Name        string `json:"name"`
	Damage      int    `json:"damage"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

func (w *Weapon) Validate() error {
	el := errors.NewErrorList()

	if w.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if w.Damage <= 0 {
		el.Add(fmt.Errorf("damage must be positive"))
	}
	if w.Cost < 0 {
		el.Add(fmt.Errorf("cost cannot be negative"))
	}

	return el.Err()
}

package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// StartingStats is the template new players are created from.
type StartingStats struct {
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

func (s *StartingStats) Validate() error {
	el := errors.NewErrorList()

	if s.MaxHealth <= 0 {
		el.Add(fmt.Errorf("max_health must be positive"))
	}
	if s.Health <= 0 || s.Health > s.MaxHealth {
		el.Add(fmt.Errorf("health must be between 1 and max_health"))
	}
	if s.MaxMana <= 0 {
		el.Add(fmt.Errorf("max_mana must be positive"))
	}
	if s.Mana < 0 || s.Mana > s.MaxMana {
		el.Add(fmt.Errorf("mana must be between 0 and max_mana"))
	}
	if s.Level < 1 {
		el.Add(fmt.Errorf("level must be at least 1"))
	}
	if s.ExpToLevel <= 0 {
		el.Add(fmt.Errorf("exp_to_level must be positive"))
	}
	if s.Gold < 0 {
		el.Add(fmt.Errorf("gold cannot be negative"))
	}
	if s.Location == "" {
		el.Add(fmt.Errorf("location is required"))
	}
	if s.Weapon == "" {
		el.Add(fmt.Errorf("weapon is required"))
	}

	return el.Err()
}

package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// Enemy is an immutable combat template. Fights run against a private copy,
// so the template's health is the fresh value for every encounter.
type Enemy struct {
	Name       string `json:"name"`
	Health     int    `json:"health"`
	Damage     int    `json:"damage"`
	ExpReward  int    `json:"exp_reward"`
	GoldReward int    `json:"gold_reward"`
}

func (e *Enemy) Validate() error {
	el := errors.NewErrorList()

	if e.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if e.Health <= 0 {
		el.Add(fmt.Errorf("health must be positive"))
	}
	if e.Damage <= 0 {
		el.Add(fmt.Errorf("damage must be positive"))
	}
	if e.ExpReward < 0 {
		el.Add(fmt.Errorf("exp_reward cannot be negative"))
	}
	if e.GoldReward < 0 {
		el.Add(fmt.Errorf("gold_reward cannot be negative"))
	}

	return el.Err()
}

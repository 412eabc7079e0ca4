package game

import (
	"fmt"
	"sort"

	"github.com/pixil98/go-errors"
)

// Directions lists the valid movement directions in display order.
var Directions = []string{"north", "south", "east", "west"}

func validDirection(d string) bool {
	for _, dir := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}

// Location is an immutable catalog entry describing one place in the world.
type Location struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	// Exits maps a direction to the id of the destination location.
	Exits map[string]string `json:"exits"`

	// Enemies lists the enemy ids that can be fought here.
	Enemies []string `json:"enemies"`
}

func (l *Location) Validate() error {
	el := errors.NewErrorList()

	if l.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}

	for dir := range l.Exits {
		if !validDirection(dir) {
			el.Add(fmt.Errorf("unknown exit direction %q", dir))
		}
	}

	return el.Err()
}

// ExitList returns the location's exit directions in display order.
func (l *Location) ExitList() []string {
	exits := make([]string, 0, len(l.Exits))
	for _, dir := range Directions {
		if _, ok := l.Exits[dir]; ok {
			exits = append(exits, dir)
		}
	}
	return exits
}

// EnemyList returns a sorted copy of the enemy ids at this location.
func (l *Location) EnemyList() []string {
	enemies := append([]string(nil), l.Enemies...)
	sort.Strings(enemies)
	return enemies
}

// HasEnemy returns true if the given enemy id is present at this location.
func (l *Location) HasEnemy(id string) bool {
	for _, e := range l.Enemies {
		if e == id {
			return true
		}
	}
	return false
}

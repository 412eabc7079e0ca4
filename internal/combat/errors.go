package combat

import "fmt"

// NoEnemiesError means the player's location has nothing to fight.
type NoEnemiesError struct{}

func (e *NoEnemiesError) Error() string {
	return "no enemies present"
}

// EnemyNotHereError means the requested enemy is not at the player's location.
type EnemyNotHereError struct {
	EnemyId string
}

func (e *EnemyNotHereError) Error() string {
	return fmt.Sprintf("enemy %q not present", e.EnemyId)
}

// SpellUnknownError means the player has not learned the requested spell.
type SpellUnknownError struct {
	SpellId string
}

func (e *SpellUnknownError) Error() string {
	return fmt.Sprintf("spell %q not known", e.SpellId)
}

// InsufficientManaError carries the amounts for the user-facing reply.
type InsufficientManaError struct {
	Need int
	Have int
}

func (e *InsufficientManaError) Error() string {
	return fmt.Sprintf("insufficient mana: need %d, have %d", e.Need, e.Have)
}

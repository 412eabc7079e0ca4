package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/KalpShah999/TMGame/internal/combat"
)

func (h *Handler) attack(ctx context.Context, username string, args []string) error {
	p, err := h.world.ViewPlayer(username)
	if err != nil {
		return err
	}

	loc := h.catalog.Locations.Get(p.Location)
	if loc == nil {
		return fmt.Errorf("location %q not in catalog", p.Location)
	}
	if len(loc.Enemies) == 0 {
		return NewUserError("There are no enemies here to fight!")
	}
	if len(args) < 1 {
		return NewUserError(fmt.Sprintf("Usage: attack <enemy>\nAvailable: %s", strings.Join(loc.Enemies, ", ")))
	}

	outcome, err := h.engine.Melee(username, args[0])
	if err != nil {
		var noEnemies *combat.NoEnemiesError
		if errors.As(err, &noEnemies) {
			return NewUserError("There are no enemies here to fight!")
		}
		var notHere *combat.EnemyNotHereError
		if errors.As(err, &notHere) {
			return NewUserError("That enemy is not here!")
		}
		return err
	}

	// A defeated player wakes up at the respawn point; show it.
	if outcome.Defeated {
		return h.look(ctx, username, nil)
	}

	return nil
}

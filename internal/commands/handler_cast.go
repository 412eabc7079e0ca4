package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/KalpShah999/TMGame/internal/combat"
)

func (h *Handler) cast(ctx context.Context, username string, args []string) error {
	if len(args) < 1 {
		return NewUserError("Usage: cast <spell_name>")
	}

	_, err := h.engine.Cast(username, args[0])
	if err != nil {
		var unknown *combat.SpellUnknownError
		if errors.As(err, &unknown) {
			return NewUserError("You don't know that spell!")
		}
		var mana *combat.InsufficientManaError
		if errors.As(err, &mana) {
			return NewUserError(fmt.Sprintf("Not enough mana! Need %d, have %d", mana.Need, mana.Have))
		}
		return err
	}

	return nil
}

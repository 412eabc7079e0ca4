package commands

import (
	"context"
	"fmt"

	"github.com/KalpShah999/TMGame/internal/game"
)

// moveCommand returns the handler for one movement direction.
func (h *Handler) moveCommand(direction string) commandFunc {
	return func(ctx context.Context, username string, args []string) error {
		return h.move(ctx, username, direction)
	}
}

func (h *Handler) move(ctx context.Context, username, direction string) error {
	moved := false
	err := h.world.WithPlayer(username, func(p *game.Player) error {
		loc := h.catalog.Locations.Get(p.Location)
		if loc == nil {
			return fmt.Errorf("location %q not in catalog", p.Location)
		}

		dest, ok := loc.Exits[direction]
		if !ok {
			return nil
		}

		p.Location = dest
		moved = true
		return nil
	})
	if err != nil {
		return err
	}

	if !moved {
		return NewUserError("You can't go that way!")
	}

	h.pub.Broadcast(fmt.Sprintf("[INFO] %s traveled %s.", username, direction), username)
	h.pub.SendTo(username, fmt.Sprintf("You travel %s...", direction))

	return h.look(ctx, username, nil)
}

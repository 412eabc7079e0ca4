package commands

import (
	"context"
	"fmt"
	"strings"
)

func (h *Handler) say(ctx context.Context, username string, args []string) error {
	message := strings.TrimSpace(strings.Join(args, " "))
	if message == "" {
		return NewUserError("Usage: say <message>")
	}

	// Chat goes to everyone, sender included.
	return h.pub.Broadcast(fmt.Sprintf("[%s]: %s", username, message))
}

package commands

import "context"

func (h *Handler) status(ctx context.Context, username string, args []string) error {
	p, err := h.world.ViewPlayer(username)
	if err != nil {
		return err
	}

	text, err := h.renderStatus(username, p)
	if err != nil {
		return err
	}

	return h.pub.SendTo(username, text)
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KalpShah999/TMGame/internal/display"
)

func (h *Handler) players(ctx context.Context, username string, args []string) error {
	var b strings.Builder
	rule := display.Rule()

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("ONLINE PLAYERS\n")
	fmt.Fprintf(&b, "%s\n", rule)

	for _, name := range h.world.ListActive() {
		p, err := h.world.ViewPlayer(name)
		if err != nil {
			continue
		}
		locName := p.Location
		if loc := h.catalog.Locations.Get(p.Location); loc != nil {
			locName = loc.Name
		}
		fmt.Fprintf(&b, "  %s - Level %d - %s\n", name, p.Level, locName)
	}

	fmt.Fprintf(&b, "%s", rule)

	return h.pub.SendTo(username, b.String())
}

package commands

import (
	"context"
	"strings"

	"github.com/KalpShah999/TMGame/internal/combat"
	"github.com/KalpShah999/TMGame/internal/game"
	"github.com/KalpShah999/TMGame/internal/world"
)

// Publisher delivers text to sessions. Sends never happen while the world
// state lock is held.
type Publisher interface {
	SendTo(username, text string) error
	Broadcast(text string, exclude ...string) error
}

// commandFunc is the signature every verb handler implements.
type commandFunc func(ctx context.Context, username string, args []string) error

// directionAliases maps the single-letter movement shortcuts.
var directionAliases = map[string]string{
	"n": "north",
	"s": "south",
	"e": "east",
	"w": "west",
}

// Handler routes one parsed command line to the matching verb handler.
type Handler struct {
	world   *world.State
	catalog *game.Catalog
	engine  *combat.Engine
	pub     Publisher

	commands map[string]commandFunc
}

func NewHandler(w *world.State, engine *combat.Engine, pub Publisher) *Handler {
	h := &Handler{
		world:   w,
		catalog: w.Catalog(),
		engine:  engine,
		pub:     pub,
	}

	h.commands = map[string]commandFunc{
		"attack":    h.attack,
		"cast":      h.cast,
		"status":    h.status,
		"look":      h.look,
		"inventory": h.inventory,
		"inv":       h.inventory,
		"players":   h.players,
		"shop":      h.shop,
		"buy":       h.buy,
		"say":       h.say,
		"help":      h.help,
	}
	for _, dir := range game.Directions {
		h.commands[dir] = h.moveCommand(dir)
	}

	return h
}

// Exec tokenizes a trimmed, lowercased line and dispatches it. A blank line
// is ignored; an unknown verb is a user error with no state change.
func (h *Handler) Exec(ctx context.Context, username, line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	verb := parts[0]
	if full, ok := directionAliases[verb]; ok {
		verb = full
	}

	cmd, ok := h.commands[verb]
	if !ok {
		return NewUserError("Unknown command. Type 'help' for available commands.")
	}

	return cmd(ctx, username, parts[1:])
}

package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/KalpShah999/TMGame/internal/display"
)

func (h *Handler) shop(ctx context.Context, username string, args []string) error {
	p, err := h.world.ViewPlayer(username)
	if err != nil {
		return err
	}

	var b strings.Builder
	rule := display.Rule()

	fmt.Fprintf(&b, "\n%s\n", rule)
	fmt.Fprintf(&b, "SHOP - Your Gold: %d\n", p.Gold)
	fmt.Fprintf(&b, "%s\n\n", rule)

	b.WriteString("WEAPONS:\n")
	weapons := h.catalog.Weapons.GetAll()
	for _, id := range sortedKeys(weapons) {
		weapon := weapons[id]
		tags := ""
		if id == p.Weapon {
			tags = " [EQUIPPED]"
		}
		if p.Gold < weapon.Cost {
			tags += " [TOO EXPENSIVE]"
		}
		fmt.Fprintf(&b, "  %-20s - %-25s Dmg: %3d | Cost: %4d gold %s\n",
			id, weapon.Name, weapon.Damage, weapon.Cost, tags)
	}

	b.WriteString("\nSPELLS:\n")
	spells := h.catalog.Spells.GetAll()
	for _, id := range sortedKeys(spells) {
		spell := spells[id]
		tags := ""
		if p.KnowsSpell(id) {
			tags = " [OWNED]"
		}
		if p.Gold < spell.Cost {
			tags += " [TOO EXPENSIVE]"
		}
		fmt.Fprintf(&b, "  %-20s - %-25s %-10s | Cost: %4d gold %s\n",
			id, spell.Name, spellEffect(spell), spell.Cost, tags)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("Usage: buy <item_id>\n")
	b.WriteString("Example: buy iron_sword  OR  buy fireball\n")
	fmt.Fprintf(&b, "%s", rule)

	return h.pub.SendTo(username, b.String())
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

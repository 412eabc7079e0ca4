package commands

import (
	"context"
	"fmt"

	"github.com/KalpShah999/TMGame/internal/game"
)

func (h *Handler) buy(ctx context.Context, username string, args []string) error {
	if len(args) < 1 {
		return NewUserError("Usage: buy <item_id>")
	}
	itemId := args[0]

	if weapon := h.catalog.Weapons.Get(itemId); weapon != nil {
		return h.buyWeapon(username, itemId, weapon)
	}
	if spell := h.catalog.Spells.Get(itemId); spell != nil {
		return h.buySpell(username, itemId, spell)
	}
	return NewUserError("Item not found!")
}

// buyWeapon swaps the equipped weapon. There is no stock or buy-back; buying
// a weapon you already own just spends the gold again.
func (h *Handler) buyWeapon(username, weaponId string, weapon *game.Weapon) error {
	var userErr *UserError
	err := h.world.WithPlayer(username, func(p *game.Player) error {
		if p.Gold < weapon.Cost {
			userErr = NewUserError(fmt.Sprintf("Not enough gold! Need %d, have %d", weapon.Cost, p.Gold))
			return nil
		}
		p.Gold -= weapon.Cost
		p.Weapon = weaponId
		return nil
	})
	if err != nil {
		return err
	}
	if userErr != nil {
		return userErr
	}

	return h.pub.SendTo(username, fmt.Sprintf("[OK] Purchased %s!", weapon.Name))
}

func (h *Handler) buySpell(username, spellId string, spell *game.Spell) error {
	var userErr *UserError
	err := h.world.WithPlayer(username, func(p *game.Player) error {
		if p.KnowsSpell(spellId) {
			userErr = NewUserError("You already know this spell!")
			return nil
		}
		if p.Gold < spell.Cost {
			userErr = NewUserError(fmt.Sprintf("Not enough gold! Need %d, have %d", spell.Cost, p.Gold))
			return nil
		}
		p.Gold -= spell.Cost
		p.Spells = append(p.Spells, spellId)
		return nil
	})
	if err != nil {
		return err
	}
	if userErr != nil {
		return userErr
	}

	return h.pub.SendTo(username, fmt.Sprintf("[OK] Learned %s!", spell.Name))
}

package commands

import (
	"fmt"

	"github.com/KalpShah999/TMGame/internal/game"
)

const locationTemplate = `
{{ rule }}
LOCATION: {{ .Name }}
{{ rule }}
{{ wrap .Description }}

Exits: {{ .Exits | join ", " }}
{{- if .Players }}
Players here: {{ .Players | join ", " }}
{{- end }}
{{- if .Enemies }}
[!] Enemies: {{ .Enemies | join ", " }}
{{- end }}
{{ rule }}`

type locationView struct {
	Name        string
	Description string
	Exits       []string
	Players     []string
	Enemies     []string
}

// renderLocation builds the look block for the player's current location.
func (h *Handler) renderLocation(username string, p *game.Player) (string, error) {
	loc := h.catalog.Locations.Get(p.Location)
	if loc == nil {
		return "", fmt.Errorf("location %q not in catalog", p.Location)
	}

	view := &locationView{
		Name:        loc.Name,
		Description: loc.Description,
		Exits:       loc.ExitList(),
		Players:     h.world.ActiveAt(p.Location, username),
	}
	for _, id := range loc.Enemies {
		if enemy := h.catalog.Enemies.Get(id); enemy != nil {
			view.Enemies = append(view.Enemies, enemy.Name)
		}
	}

	return ExpandTemplate(locationTemplate, view)
}

const statusTemplate = `
{{ rule }}
CHARACTER: {{ .Username }} - Level {{ .Level }} Adventurer
{{ rule }}
Health: {{ .Health }}/{{ .MaxHealth }}
Mana: {{ .Mana }}/{{ .MaxMana }}
EXP: {{ .Exp }}/{{ .ExpToLevel }}
Gold: {{ .Gold }}
Weapon: {{ .WeaponName }} (Damage: {{ .WeaponDamage }})
Spells: {{ .SpellCount }}
{{ rule }}`

type statusView struct {
	Username     string
	Level        int
	Health       int
	MaxHealth    int
	Mana         int
	MaxMana      int
	Exp          int
	ExpToLevel   int
	Gold         int
	WeaponName   string
	WeaponDamage int
	SpellCount   int
}

// renderStatus builds the character sheet block.
func (h *Handler) renderStatus(username string, p *game.Player) (string, error) {
	weapon := h.catalog.Weapons.Get(p.Weapon)
	if weapon == nil {
		return "", fmt.Errorf("weapon %q not in catalog", p.Weapon)
	}

	return ExpandTemplate(statusTemplate, &statusView{
		Username:     username,
		Level:        p.Level,
		Health:       p.Health,
		MaxHealth:    p.MaxHealth,
		Mana:         p.Mana,
		MaxMana:      p.MaxMana,
		Exp:          p.Exp,
		ExpToLevel:   p.ExpToLevel,
		Gold:         p.Gold,
		WeaponName:   weapon.Name,
		WeaponDamage: weapon.Damage,
		SpellCount:   len(p.Spells),
	})
}

const inventoryTemplate = `
{{ rule }}
INVENTORY
{{ rule }}
Equipped Weapon: {{ .WeaponName }} (Damage: {{ .WeaponDamage }})
{{ if .Spells }}
Known Spells:
{{- range .Spells }}
  - {{ .Name }}: {{ .Effect }}, {{ .ManaCost }} mana
{{- end }}
{{ else }}
No spells learned yet.
{{ end }}
{{- rule }}`

type inventorySpellView struct {
	Name     string
	Effect   string
	ManaCost int
}

type inventoryView struct {
	WeaponName   string
	WeaponDamage int
	Spells       []inventorySpellView
}

// renderInventory builds the inventory block.
func (h *Handler) renderInventory(p *game.Player) (string, error) {
	weapon := h.catalog.Weapons.Get(p.Weapon)
	if weapon == nil {
		return "", fmt.Errorf("weapon %q not in catalog", p.Weapon)
	}

	view := &inventoryView{
		WeaponName:   weapon.Name,
		WeaponDamage: weapon.Damage,
	}
	for _, id := range p.Spells {
		spell := h.catalog.Spells.Get(id)
		if spell == nil {
			continue
		}
		view.Spells = append(view.Spells, inventorySpellView{
			Name:     spell.Name,
			Effect:   spellEffect(spell),
			ManaCost: spell.ManaCost,
		})
	}

	return ExpandTemplate(inventoryTemplate, view)
}

func spellEffect(s *game.Spell) string {
	if s.IsHealing() {
		return fmt.Sprintf("+%d heal", s.HealAmount())
	}
	return fmt.Sprintf("%d damage", s.Damage)
}

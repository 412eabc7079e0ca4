package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/KalpShah999/TMGame/internal/display"
)

// helpCategories maps numbers and names from the help menu to a category.
var helpCategories = map[string]string{
	"1": "movement", "movement": "movement",
	"2": "combat", "combat": "combat",
	"3": "information", "info": "information", "information": "information",
	"4": "shopping", "shop": "shopping", "shopping": "shopping",
	"5": "social", "social": "social",
	"6": "all", "all": "all",
}

var helpSections = []struct {
	category string
	title    string
	body     string
}{
	{"movement", "MOVEMENT COMMANDS", "" +
		"  north / n    - Move north\n" +
		"  south / s    - Move south\n" +
		"  east / e     - Move east\n" +
		"  west / w     - Move west\n"},
	{"combat", "COMBAT COMMANDS", "" +
		"  attack <enemy>  - Attack an enemy in your location\n" +
		"                    Example: attack goblin\n" +
		"  cast <spell>    - Cast a spell (requires mana)\n" +
		"                    Example: cast fireball\n"},
	{"information", "INFORMATION COMMANDS", "" +
		"  status       - View your character stats\n" +
		"  look         - Look around your current location\n" +
		"  inventory    - View your inventory and equipment\n" +
		"  inv          - Shortcut for inventory\n" +
		"  players      - See all online players and locations\n"},
	{"shopping", "SHOPPING COMMANDS", "" +
		"  shop            - View available weapons and spells\n" +
		"  buy <item_id>   - Purchase an item from the shop\n" +
		"                    Example: buy iron_sword\n" +
		"                    Example: buy fireball\n"},
	{"social", "SOCIAL COMMANDS", "" +
		"  say <message>   - Send a message to all players\n" +
		"                    Example: say Hello everyone!\n"},
}

func (h *Handler) help(ctx context.Context, username string, args []string) error {
	if len(args) == 0 {
		return h.pub.SendTo(username, helpMenu())
	}

	category, ok := helpCategories[strings.ToLower(args[0])]
	if !ok {
		return NewUserError("Invalid category. Type 'help' to see available categories.")
	}

	return h.pub.SendTo(username, helpCategory(category))
}

func helpMenu() string {
	rule := display.Rule()
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("HELP MENU - Select a Category\n")
	fmt.Fprintf(&b, "%s\n\n", rule)
	b.WriteString(">> [1] Movement     - How to navigate the world\n")
	b.WriteString("   [2] Combat       - Fighting enemies and using spells\n")
	b.WriteString("   [3] Information  - Checking stats and surroundings\n")
	b.WriteString("   [4] Shopping     - Buying weapons and spells\n")
	b.WriteString("   [5] Social       - Interacting with other players\n")
	b.WriteString("   [6] All          - Show all commands\n\n")
	fmt.Fprintf(&b, "%s\n", rule)
	b.WriteString("Type a number (1-6) or category name to see details\n")
	b.WriteString("Example: help 2  OR  help combat\n")
	fmt.Fprintf(&b, "%s", rule)

	return b.String()
}

func helpCategory(category string) string {
	rule := display.Rule()
	var b strings.Builder

	fmt.Fprintf(&b, "\n%s\n", rule)

	for _, section := range helpSections {
		if category != "all" && section.category != category {
			continue
		}
		if category == "all" || section.category == category {
			fmt.Fprintf(&b, "%s\n%s\n", section.title, rule)
			b.WriteString(section.body)
			if category == "all" {
				b.WriteString("\n")
			}
		}
	}

	if category == "all" {
		fmt.Fprintf(&b, "OTHER COMMANDS\n%s\n", rule)
		b.WriteString("  help            - Show help menu\n")
		b.WriteString("  help <category> - Show help for specific category\n")
		b.WriteString("  quit / exit     - Disconnect from server\n")
		fmt.Fprintf(&b, "%s", rule)
	} else {
		fmt.Fprintf(&b, "%s\nType 'help' to return to the help menu.", rule)
	}

	return b.String()
}

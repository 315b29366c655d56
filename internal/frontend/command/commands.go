// Package command provides the console command registry, parser, and built-in command definitions.
package command

// Categories for organizing commands in help output.
const (
	CategoryCharacter = "character"
	CategoryCampaign  = "campaign"
	CategoryOracle    = "oracle"
	CategorySystem    = "system"
)

// CategoryOrder is the order categories are listed in help output.
var CategoryOrder = []string{CategoryCharacter, CategoryCampaign, CategoryOracle, CategorySystem}

// Handler identifiers mapping commands to console handlers.
const (
	HandlerHelp         = "help"
	HandlerSheet        = "sheet"
	HandlerSet          = "set"
	HandlerSkill        = "skill"
	HandlerWater        = "water"
	HandlerFood         = "food"
	HandlerCheck        = "check"
	HandlerYesNo        = "yesno"
	HandlerWeather      = "weather"
	HandlerDiscovery    = "discovery"
	HandlerEncounter    = "encounter"
	HandlerComplication = "complication"
	HandlerRoll         = "roll"
	HandlerSave         = "save"
	HandlerLoad         = "load"
	HandlerNew          = "new"
	HandlerQuit         = "quit"
)

// Command defines a player-invocable command.
type Command struct {
	// Name is the canonical command name.
	Name string
	// Aliases are alternate names for this command.
	Aliases []string
	// Usage shows the argument syntax, e.g. "skill <name> <level>".
	Usage string
	// Help is the short help text displayed to players.
	Help string
	// Category groups the command in help output.
	Category string
	// Handler maps to the console handler.
	Handler string
}

// BuiltinCommands returns all built-in console commands.
func BuiltinCommands() []Command {
	return []Command{
		// Character sheet
		{Name: "sheet", Aliases: []string{"stats", "st"}, Usage: "sheet", Help: "Show the character sheet and campaign resources", Category: CategoryCharacter, Handler: HandlerSheet},
		{Name: "set", Usage: "set <field> <value>", Help: "Set a sheet field (name, background, equipment, hp, ap, xp, day, season, shelter, safety, challenges, exploration)", Category: CategoryCharacter, Handler: HandlerSet},
		{Name: "skill", Aliases: []string{"sk"}, Usage: "skill <name> <level>", Help: "Set a skill level; HP and AP maxima are recalculated", Category: CategoryCharacter, Handler: HandlerSkill},

		// Campaign resources
		{Name: "water", Usage: "water <+n|-n>", Help: "Adjust the water supply (never below zero)", Category: CategoryCampaign, Handler: HandlerWater},
		{Name: "food", Usage: "food <+n|-n>", Help: "Adjust the food supply (never below zero)", Category: CategoryCampaign, Handler: HandlerFood},

		// Oracles and rolls
		{Name: "check", Aliases: []string{"c"}, Usage: "check <skill|level> [dc] [modifier]", Help: "Roll a 2d6 skill check (DC defaults to 8)", Category: CategoryOracle, Handler: HandlerCheck},
		{Name: "yesno", Aliases: []string{"yn", "ask"}, Usage: "yesno [unlikely|possible|likely]", Help: "Ask the yes/no oracle", Category: CategoryOracle, Handler: HandlerYesNo},
		{Name: "weather", Aliases: []string{"w"}, Usage: "weather [season]", Help: "Roll the weather for the current (or given) season", Category: CategoryOracle, Handler: HandlerWeather},
		{Name: "discovery", Aliases: []string{"disc"}, Usage: "discovery", Help: "Roll on the discovery table", Category: CategoryOracle, Handler: HandlerDiscovery},
		{Name: "encounter", Aliases: []string{"enc"}, Usage: "encounter", Help: "Roll on the encounter table", Category: CategoryOracle, Handler: HandlerEncounter},
		{Name: "complication", Aliases: []string{"comp"}, Usage: "complication", Help: "Roll on the complication table", Category: CategoryOracle, Handler: HandlerComplication},
		{Name: "roll", Aliases: []string{"r"}, Usage: "roll <expr>", Help: "Roll a dice expression such as 2d6+1 or 4d6kh3", Category: CategoryOracle, Handler: HandlerRoll},

		// System
		{Name: "save", Usage: "save", Help: "Save the game", Category: CategorySystem, Handler: HandlerSave},
		{Name: "load", Usage: "load", Help: "Load the saved game", Category: CategorySystem, Handler: HandlerLoad},
		{Name: "new", Aliases: []string{"reset"}, Usage: "new", Help: "Start a new character (the saved game is kept)", Category: CategorySystem, Handler: HandlerNew},
		{Name: "help", Aliases: []string{"?", "h"}, Usage: "help [command]", Help: "Show available commands", Category: CategorySystem, Handler: HandlerHelp},
		{Name: "quit", Aliases: []string{"exit", "q"}, Usage: "quit", Help: "Leave the companion", Category: CategorySystem, Handler: HandlerQuit},
	}
}

package console

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wildshelper/internal/frontend/command"
	"github.com/cory-johannsen/wildshelper/internal/game/character"
	"github.com/cory-johannsen/wildshelper/internal/game/dice"
	"github.com/cory-johannsen/wildshelper/internal/game/resolve"
	"github.com/cory-johannsen/wildshelper/internal/session"
)

// Renderer formats engine results as console text.
type Renderer struct {
	p Palette
}

// NewRenderer creates a Renderer; color enables ANSI styling.
func NewRenderer(color bool) Renderer {
	return Renderer{p: Palette{Enabled: color}}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// Sheet renders the character sheet and campaign resources.
func (r Renderer) Sheet(st session.State, stats character.StatBlock) string {
	ch, res := st.Character, st.Resources
	var b strings.Builder

	b.WriteString(r.p.Colorize(BrightYellow, orDash(ch.Name)))
	b.WriteString(r.p.Colorf(Dim, "  (%s)", orDash(ch.Background)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  HP %s   AP %s   XP %d\n",
		r.p.Colorf(BrightGreen, "%d/%d", stats.CurrentHP, stats.MaxHP),
		r.p.Colorf(BrightCyan, "%d/%d", stats.CurrentAP, stats.MaxAP),
		ch.XP)

	b.WriteString(r.p.Colorize(Cyan, "Skills:"))
	b.WriteString("\n")
	for _, s := range character.AllSkills {
		fmt.Fprintf(&b, "  %-10s %d\n", s, ch.Skills.Get(s))
	}
	fmt.Fprintf(&b, "  Equipment: %s\n", orDash(ch.Equipment))

	b.WriteString(r.p.Colorize(Cyan, "Campaign:"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Day %d, %s\n", res.Day, res.Season)
	fmt.Fprintf(&b, "  Water %d   Food %d   Shelter %s   Safety %s\n",
		res.Water, res.Food, yesNo(res.Shelter), yesNo(res.Safety))
	fmt.Fprintf(&b, "  Challenges: %s\n", orDash(res.Challenges))
	fmt.Fprintf(&b, "  Exploration: %s\n", orDash(res.Exploration))
	return b.String()
}

// SkillCheck renders a skill check, e.g.
// "2d6: 7 + Skill: 2 + Mod: 0 = 9" followed by the DC verdict.
func (r Renderer) SkillCheck(res resolve.SkillCheckResult) string {
	line := fmt.Sprintf("2d6: %d + Skill: %d + Mod: %d = %d", res.Roll, res.Skill, res.Modifier, res.Total)
	if res.Success {
		return line + "\n" + r.p.Colorf(BrightGreen, "DC %d: SUCCESS!", res.DC) + "\nYou accomplish the task!\n"
	}
	return line + "\n" + r.p.Colorf(BrightRed, "DC %d: FAILURE", res.DC) + "\nThe task proves too difficult.\n"
}

// YesNo renders a yes/no oracle answer.
func (r Renderer) YesNo(res resolve.YesNoResult) string {
	color := Red
	if res.Answer == resolve.Yes {
		color = Green
	}
	if res.Emphasis == resolve.EmphasisStrong {
		color = Bold + color
	}
	return fmt.Sprintf("Rolled %d (%s, needs %d+)\n%s\n",
		res.Roll, res.Likelihood, res.Threshold, r.p.Colorize(color, res.String()))
}

// Oracle renders an oracle table result.
func (r Renderer) Oracle(res resolve.OracleResult) string {
	return fmt.Sprintf("%s %s\n%s\n",
		r.p.Colorize(Magenta, res.Table),
		r.p.Colorf(Dim, "(rolled %d)", res.Roll),
		r.p.Colorize(BrightWhite, res.Text))
}

// Roll renders a free-form dice roll.
func (r Renderer) Roll(res dice.RollResult) string {
	return r.p.Colorize(BrightWhite, res.String()) + "\n"
}

// Notice renders an informational message.
func (r Renderer) Notice(msg string) string {
	return r.p.Colorize(Yellow, msg) + "\n"
}

// Error renders an error message.
func (r Renderer) Error(msg string) string {
	return r.p.Colorize(BrightRed, msg) + "\n"
}

// Help renders the command list grouped by category, or usage for one command.
func (r Renderer) Help(reg *command.Registry, topic string) string {
	if topic != "" {
		cmd, ok := reg.Resolve(strings.ToLower(topic))
		if !ok {
			return r.Error(fmt.Sprintf("Unknown command %q.", topic))
		}
		s := fmt.Sprintf("%s\n  %s\n", r.p.Colorize(BrightCyan, cmd.Usage), cmd.Help)
		if len(cmd.Aliases) > 0 {
			s += fmt.Sprintf("  aliases: %s\n", strings.Join(cmd.Aliases, ", "))
		}
		return s
	}

	var b strings.Builder
	byCat := reg.CommandsByCategory()
	for _, cat := range command.CategoryOrder {
		cmds := byCat[cat]
		if len(cmds) == 0 {
			continue
		}
		b.WriteString(r.p.Colorize(Cyan, strings.ToUpper(cat[:1])+cat[1:]+":"))
		b.WriteString("\n")
		for _, cmd := range cmds {
			fmt.Fprintf(&b, "  %-38s %s\n", cmd.Usage, cmd.Help)
		}
	}
	return b.String()
}

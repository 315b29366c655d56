package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wildshelper/internal/frontend/command"
	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
	"github.com/cory-johannsen/wildshelper/internal/game/character"
	"github.com/cory-johannsen/wildshelper/internal/game/resolve"
	"github.com/cory-johannsen/wildshelper/internal/session"
)

// handlerContext carries all inputs a console handler needs.
type handlerContext struct {
	console *Console
	cmd     *command.Command
	parsed  command.ParseResult
}

// handlerResult is returned by every handler. text is written as is; quit
// ends the session.
type handlerResult struct {
	text string
	quit bool
}

// handlerFunc is the signature for all console dispatch functions. A returned
// error is shown to the player as a one-line message.
type handlerFunc func(ctx context.Context, hc *handlerContext) (handlerResult, error)

// Handlers returns the map from Handler constant to console function.
// Exported so tests can verify every command is wired.
func Handlers() map[string]handlerFunc {
	return handlerMap
}

// handlerMap is the single source of truth for console command dispatch.
// To add a new command: add a Handler constant to command/commands.go AND add an entry here.
var handlerMap = map[string]handlerFunc{
	command.HandlerHelp:         handleHelp,
	command.HandlerSheet:        handleSheet,
	command.HandlerSet:          handleSet,
	command.HandlerSkill:        handleSkill,
	command.HandlerWater:        handleWater,
	command.HandlerFood:         handleFood,
	command.HandlerCheck:        handleCheck,
	command.HandlerYesNo:        handleYesNo,
	command.HandlerWeather:      handleWeather,
	command.HandlerDiscovery:    handleDiscovery,
	command.HandlerEncounter:    handleEncounter,
	command.HandlerComplication: handleComplication,
	command.HandlerRoll:         handleRoll,
	command.HandlerSave:         handleSave,
	command.HandlerLoad:         handleLoad,
	command.HandlerNew:          handleNew,
	command.HandlerQuit:         handleQuit,
}

func usageError(cmd *command.Command) error {
	return fmt.Errorf("usage: %s", cmd.Usage)
}

func text(s string) (handlerResult, error) {
	return handlerResult{text: s}, nil
}

func handleHelp(_ context.Context, hc *handlerContext) (handlerResult, error) {
	topic := ""
	if len(hc.parsed.Args) > 0 {
		topic = hc.parsed.Args[0]
	}
	return text(hc.console.render.Help(hc.console.registry, topic))
}

func handleSheet(_ context.Context, hc *handlerContext) (handlerResult, error) {
	ctrl := hc.console.ctrl
	return text(hc.console.render.Sheet(ctrl.Sheet(), ctrl.Stats()))
}

func handleSet(_ context.Context, hc *handlerContext) (handlerResult, error) {
	args := hc.parsed.Args
	if len(args) < 1 {
		return handlerResult{}, usageError(hc.cmd)
	}
	ctrl := hc.console.ctrl
	r := hc.console.render
	field := strings.ToLower(args[0])
	value := hc.parsed.Tail(1)

	switch field {
	case "name":
		ctrl.SetName(value)
	case "background":
		ctrl.SetBackground(value)
	case "equipment":
		ctrl.SetEquipment(value)
	case "challenges":
		ctrl.SetChallenges(value)
	case "exploration":
		ctrl.SetExploration(value)
	case "hp", "ap", "xp", "day":
		n, err := strconv.Atoi(value)
		if err != nil {
			return handlerResult{}, fmt.Errorf("%s must be a whole number, got %q", field, value)
		}
		switch field {
		case "hp":
			ctrl.SetHP(n)
			stats := ctrl.Stats()
			return text(r.Notice(fmt.Sprintf("HP %d/%d", stats.CurrentHP, stats.MaxHP)))
		case "ap":
			ctrl.SetAP(n)
			stats := ctrl.Stats()
			return text(r.Notice(fmt.Sprintf("AP %d/%d", stats.CurrentAP, stats.MaxAP)))
		case "xp":
			ctrl.SetXP(n)
		case "day":
			if err := ctrl.SetDay(n); err != nil {
				return handlerResult{}, err
			}
		}
	case "season":
		s, err := campaign.ParseSeason(value)
		if err != nil {
			return handlerResult{}, err
		}
		if err := ctrl.SetSeason(s); err != nil {
			return handlerResult{}, err
		}
	case "shelter", "safety":
		v, err := parseFlag(value)
		if err != nil {
			return handlerResult{}, fmt.Errorf("%s must be yes or no, got %q", field, value)
		}
		if field == "shelter" {
			ctrl.SetShelter(v)
		} else {
			ctrl.SetSafety(v)
		}
	default:
		return handlerResult{}, fmt.Errorf("unknown field %q", args[0])
	}
	return text(r.Notice(field + " updated."))
}

func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on":
		return true, nil
	case "n", "no", "off":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func handleSkill(_ context.Context, hc *handlerContext) (handlerResult, error) {
	args := hc.parsed.Args
	if len(args) != 2 {
		return handlerResult{}, usageError(hc.cmd)
	}
	skill, err := character.ParseSkill(args[0])
	if err != nil {
		return handlerResult{}, err
	}
	level, err := strconv.Atoi(args[1])
	if err != nil {
		return handlerResult{}, fmt.Errorf("level must be a whole number, got %q", args[1])
	}
	ctrl := hc.console.ctrl
	ctrl.SetSkill(skill, level)
	stats := ctrl.Stats()
	return text(hc.console.render.Notice(fmt.Sprintf("%s %d. HP %d/%d  AP %d/%d",
		skill, level, stats.CurrentHP, stats.MaxHP, stats.CurrentAP, stats.MaxAP)))
}

func parseDelta(hc *handlerContext) (int, error) {
	if len(hc.parsed.Args) != 1 {
		return 0, usageError(hc.cmd)
	}
	n, err := strconv.Atoi(hc.parsed.Args[0])
	if err != nil {
		return 0, fmt.Errorf("amount must be a whole number such as +1 or -2, got %q", hc.parsed.Args[0])
	}
	return n, nil
}

func handleWater(_ context.Context, hc *handlerContext) (handlerResult, error) {
	delta, err := parseDelta(hc)
	if err != nil {
		return handlerResult{}, err
	}
	return text(hc.console.render.Notice(fmt.Sprintf("Water: %d", hc.console.ctrl.AdjustWater(delta))))
}

func handleFood(_ context.Context, hc *handlerContext) (handlerResult, error) {
	delta, err := parseDelta(hc)
	if err != nil {
		return handlerResult{}, err
	}
	return text(hc.console.render.Notice(fmt.Sprintf("Food: %d", hc.console.ctrl.AdjustFood(delta))))
}

// intOr parses s, falling back to def when s is not a whole number.
func intOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func handleCheck(_ context.Context, hc *handlerContext) (handlerResult, error) {
	args := hc.parsed.Args
	if len(args) > 3 {
		return handlerResult{}, usageError(hc.cmd)
	}
	in := resolve.NewSkillCheckInput()
	ctrl := hc.console.ctrl
	if len(args) > 0 {
		if skill, err := character.ParseSkill(args[0]); err == nil {
			in.Skill = ctrl.Sheet().Character.Skills.Get(skill)
		} else if n, nerr := strconv.Atoi(args[0]); nerr == nil {
			in.Skill = n
		} else {
			return handlerResult{}, err
		}
	}
	if len(args) > 1 {
		in.DC = intOr(args[1], resolve.DefaultDC)
	}
	if len(args) > 2 {
		in.Modifier = intOr(args[2], 0)
	}
	return text(hc.console.render.SkillCheck(ctrl.SkillCheck(in)))
}

func handleYesNo(_ context.Context, hc *handlerContext) (handlerResult, error) {
	l, err := resolve.ParseLikelihood(hc.parsed.RawArgs)
	if err != nil {
		return handlerResult{}, err
	}
	return text(hc.console.render.YesNo(hc.console.ctrl.YesNo(l)))
}

func handleWeather(_ context.Context, hc *handlerContext) (handlerResult, error) {
	ctrl := hc.console.ctrl
	var (
		res resolve.OracleResult
		err error
	)
	if hc.parsed.RawArgs == "" {
		res, err = ctrl.Weather()
	} else {
		var s campaign.Season
		if s, err = campaign.ParseSeason(hc.parsed.RawArgs); err != nil {
			return handlerResult{}, err
		}
		res, err = ctrl.WeatherFor(s)
	}
	if err != nil {
		return handlerResult{}, err
	}
	return text(hc.console.render.Oracle(res))
}

func oracleHandler(roll func(hc *handlerContext) (resolve.OracleResult, error)) handlerFunc {
	return func(_ context.Context, hc *handlerContext) (handlerResult, error) {
		res, err := roll(hc)
		if err != nil {
			return handlerResult{}, err
		}
		return text(hc.console.render.Oracle(res))
	}
}

var (
	handleDiscovery = oracleHandler(func(hc *handlerContext) (resolve.OracleResult, error) {
		return hc.console.ctrl.Discovery()
	})
	handleEncounter = oracleHandler(func(hc *handlerContext) (resolve.OracleResult, error) {
		return hc.console.ctrl.Encounter()
	})
	handleComplication = oracleHandler(func(hc *handlerContext) (resolve.OracleResult, error) {
		return hc.console.ctrl.Complication()
	})
)

func handleRoll(_ context.Context, hc *handlerContext) (handlerResult, error) {
	if hc.parsed.RawArgs == "" {
		return handlerResult{}, usageError(hc.cmd)
	}
	res, err := hc.console.ctrl.Roll(hc.parsed.RawArgs)
	if err != nil {
		return handlerResult{}, err
	}
	return text(hc.console.render.Roll(res))
}

func handleSave(ctx context.Context, hc *handlerContext) (handlerResult, error) {
	if err := hc.console.ctrl.Save(ctx); err != nil {
		hc.console.logger.Error("saving game", zap.Error(err))
		return handlerResult{}, fmt.Errorf("save failed: %w", err)
	}
	return text(hc.console.render.Notice("Game saved successfully!"))
}

func handleLoad(ctx context.Context, hc *handlerContext) (handlerResult, error) {
	return text(loadText(ctx, hc.console))
}

// loadText loads the saved game and renders the outcome. Missing and
// unreadable saves are notices; the sheet is left as it was.
func loadText(ctx context.Context, c *Console) string {
	err := c.ctrl.Load(ctx)
	var formatErr *session.FormatError
	switch {
	case err == nil:
		return c.render.Notice("Game loaded successfully!") + c.render.Sheet(c.ctrl.Sheet(), c.ctrl.Stats())
	case errors.Is(err, session.ErrNotFound):
		return c.render.Notice("No saved game found!")
	case errors.As(err, &formatErr):
		return c.render.Notice("The saved game could not be read; nothing was loaded.")
	default:
		c.logger.Error("loading game", zap.Error(err))
		return c.render.Error(fmt.Sprintf("load failed: %v", err))
	}
}

func handleNew(ctx context.Context, hc *handlerContext) (handlerResult, error) {
	ok, err := hc.console.confirm(ctx, "Are you sure you want to create a new character? This will clear all current data.")
	if err != nil {
		return handlerResult{}, err
	}
	if !ok {
		return text(hc.console.render.Notice("Kept the current character."))
	}
	hc.console.ctrl.Reset()
	return text(hc.console.render.Notice("New character created!"))
}

func handleQuit(_ context.Context, hc *handlerContext) (handlerResult, error) {
	return handlerResult{text: hc.console.render.Notice("Safe travels."), quit: true}, nil
}

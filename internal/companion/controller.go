// Package companion provides the application controller: the single handle a
// presentation adapter holds. It owns the working sheet the player edits and
// the session store that persists it.
package companion

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
	"github.com/cory-johannsen/wildshelper/internal/game/character"
	"github.com/cory-johannsen/wildshelper/internal/game/dice"
	"github.com/cory-johannsen/wildshelper/internal/game/oracle"
	"github.com/cory-johannsen/wildshelper/internal/game/resolve"
	"github.com/cory-johannsen/wildshelper/internal/session"
)

// Controller mediates between the presentation and the engine.
//
// The working sheet is edited freely; the store's record only changes on
// Save, Load and Reset.
type Controller struct {
	store    *session.Store
	resolver *resolve.Resolver
	logger   *zap.Logger
	sheet    session.State
}

// New creates a Controller whose working sheet starts from the store's
// current record.
//
// Precondition: store, resolver and logger must be non-nil.
func New(store *session.Store, resolver *resolve.Resolver, logger *zap.Logger) *Controller {
	st := store.State()
	st.Character = st.Character.Clamped()
	return &Controller{
		store:    store,
		resolver: resolver,
		logger:   logger.With(zap.String("session_id", uuid.NewString())),
		sheet:    st,
	}
}

// Sheet returns a copy of the working sheet.
func (c *Controller) Sheet() session.State {
	return c.sheet
}

// Stats returns the derived maxima and clamped current values.
func (c *Controller) Stats() character.StatBlock {
	return character.Sheet(c.sheet.Character)
}

// SetSkill changes one skill level and re-clamps current HP and AP.
func (c *Controller) SetSkill(s character.Skill, level int) {
	ch := c.sheet.Character
	ch.Skills = ch.Skills.Set(s, level)
	c.sheet.Character = ch.Clamped()
	c.logger.Debug("skill changed",
		zap.String("skill", string(s)),
		zap.Int("level", level),
		zap.Int("current_hp", c.sheet.Character.CurrentHP),
		zap.Int("current_ap", c.sheet.Character.CurrentAP),
	)
}

// SetHP sets current HP, capped at the derived maximum.
func (c *Controller) SetHP(hp int) {
	c.sheet.Character.CurrentHP = hp
	c.sheet.Character = c.sheet.Character.Clamped()
}

// SetAP sets current AP, capped at the derived maximum.
func (c *Controller) SetAP(ap int) {
	c.sheet.Character.CurrentAP = ap
	c.sheet.Character = c.sheet.Character.Clamped()
}

// SetXP sets experience points.
func (c *Controller) SetXP(xp int) {
	c.sheet.Character.XP = xp
}

// cleanText replaces invalid UTF-8 so text survives a save and load unchanged.
func cleanText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// SetName sets the character name.
func (c *Controller) SetName(name string) {
	c.sheet.Character.Name = cleanText(name)
}

// SetBackground sets the character background.
func (c *Controller) SetBackground(background string) {
	c.sheet.Character.Background = cleanText(background)
}

// SetEquipment replaces the equipment notes.
func (c *Controller) SetEquipment(equipment string) {
	c.sheet.Character.Equipment = cleanText(equipment)
}

// SetChallenges replaces the challenge notes.
func (c *Controller) SetChallenges(notes string) {
	c.sheet.Resources.Challenges = cleanText(notes)
}

// SetExploration replaces the exploration notes.
func (c *Controller) SetExploration(notes string) {
	c.sheet.Resources.Exploration = cleanText(notes)
}

// SetDay sets the campaign day.
//
// Postcondition: Returns an error and leaves the sheet unchanged when day < 1.
func (c *Controller) SetDay(day int) error {
	if day < 1 {
		return fmt.Errorf("day must be at least 1, got %d", day)
	}
	c.sheet.Resources.Day = day
	return nil
}

// SetSeason sets the current season.
func (c *Controller) SetSeason(s campaign.Season) error {
	if !s.Valid() {
		return fmt.Errorf("unknown season %q", s)
	}
	c.sheet.Resources.Season = s
	return nil
}

// SetShelter marks whether the party has shelter.
func (c *Controller) SetShelter(v bool) {
	c.sheet.Resources.Shelter = v
}

// SetSafety marks whether the party is safe.
func (c *Controller) SetSafety(v bool) {
	c.sheet.Resources.Safety = v
}

// AdjustWater changes the water supply by delta and returns the new value.
//
// Postcondition: the result is never negative.
func (c *Controller) AdjustWater(delta int) int {
	c.sheet.Resources.AdjustWater(delta)
	return c.sheet.Resources.Water
}

// AdjustFood changes the food supply by delta and returns the new value.
//
// Postcondition: the result is never negative.
func (c *Controller) AdjustFood(delta int) int {
	c.sheet.Resources.AdjustFood(delta)
	return c.sheet.Resources.Food
}

// SkillCheck rolls a check with the given input.
func (c *Controller) SkillCheck(in resolve.SkillCheckInput) resolve.SkillCheckResult {
	res := c.resolver.SkillCheck(in)
	c.logger.Info("skill check",
		zap.Int("skill", in.Skill),
		zap.Int("dc", in.DC),
		zap.Int("total", res.Total),
		zap.Bool("success", res.Success),
	)
	return res
}

// SkillCheckFor rolls a check using the sheet's level in skill.
func (c *Controller) SkillCheckFor(skill character.Skill, dc, modifier int) resolve.SkillCheckResult {
	return c.SkillCheck(resolve.SkillCheckInput{
		Skill:    c.sheet.Character.Skills.Get(skill),
		DC:       dc,
		Modifier: modifier,
	})
}

// YesNo asks the yes/no oracle.
func (c *Controller) YesNo(l resolve.Likelihood) resolve.YesNoResult {
	res := c.resolver.YesNo(l)
	c.logger.Info("yes/no oracle",
		zap.String("likelihood", string(res.Likelihood)),
		zap.Int("roll", res.Roll),
		zap.String("answer", string(res.Answer)),
	)
	return res
}

// Weather rolls on the weather table for the sheet's current season.
func (c *Controller) Weather() (resolve.OracleResult, error) {
	return c.WeatherFor(c.sheet.Resources.Season)
}

// WeatherFor rolls on the weather table for season without changing the sheet.
func (c *Controller) WeatherFor(season campaign.Season) (resolve.OracleResult, error) {
	return c.oracle(func() (resolve.OracleResult, error) { return c.resolver.Weather(season) })
}

// Discovery rolls on the discovery table.
func (c *Controller) Discovery() (resolve.OracleResult, error) {
	return c.oracle(func() (resolve.OracleResult, error) { return c.resolver.Oracle(oracle.Discovery) })
}

// Encounter rolls on the encounter table.
func (c *Controller) Encounter() (resolve.OracleResult, error) {
	return c.oracle(func() (resolve.OracleResult, error) { return c.resolver.Oracle(oracle.Encounter) })
}

// Complication rolls on the complication table.
func (c *Controller) Complication() (resolve.OracleResult, error) {
	return c.oracle(func() (resolve.OracleResult, error) { return c.resolver.Oracle(oracle.Complication) })
}

func (c *Controller) oracle(roll func() (resolve.OracleResult, error)) (resolve.OracleResult, error) {
	res, err := roll()
	if err != nil {
		c.logger.Error("oracle lookup failed", zap.Error(err))
		return resolve.OracleResult{}, err
	}
	c.logger.Info("oracle",
		zap.String("table", res.Table),
		zap.Int("roll", res.Roll),
	)
	return res, nil
}

// Roll evaluates a free-form dice expression such as "2d6+1".
func (c *Controller) Roll(expr string) (dice.RollResult, error) {
	return c.resolver.Roll(expr)
}

// Save writes the working sheet to the durable slot.
func (c *Controller) Save(ctx context.Context) error {
	return c.store.Save(ctx, c.sheet)
}

// Load replaces the working sheet with the saved game, clamping current HP
// and AP to the derived maxima.
//
// Postcondition: on any error, including session.ErrNotFound and
// *session.FormatError, the working sheet is unchanged.
func (c *Controller) Load(ctx context.Context) error {
	st, err := c.store.Load(ctx)
	if err != nil {
		return err
	}
	st.Character = st.Character.Clamped()
	c.sheet = st
	return nil
}

// Reset discards the working sheet and starts a new character. The saved
// game, if any, is kept.
func (c *Controller) Reset() {
	st := c.store.Reset()
	st.Character = st.Character.Clamped()
	c.sheet = st
}

// HasSave reports whether a saved game exists.
func (c *Controller) HasSave(ctx context.Context) (bool, error) {
	return c.store.HasSave(ctx)
}

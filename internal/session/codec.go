package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
	"github.com/cory-johannsen/wildshelper/internal/game/character"
)

// FormatError reports a save blob that is not structured data at all.
// Missing or ill-typed fields are not errors; they take their defaults.
type FormatError struct {
	Err error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("session: unreadable save data: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Serialize encodes s as JSON: {"character": {...}, "resources": {...}}.
//
// Text fields are encoded as UTF-8; invalid byte sequences come back as
// U+FFFD. The controller normalizes text on entry so saved text round-trips.
//
// Postcondition: the output is deterministic for a given s.
func Serialize(s State) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	return data, nil
}

// Deserialize decodes a blob produced by Serialize, or by an older version of
// the tool. Each field is read independently: a field that is absent, has the
// wrong JSON type, or lies outside its domain (day < 1, negative supplies,
// unknown season) takes its documented default.
//
// Postcondition: Returns a *FormatError only when blob is not a JSON object.
func Deserialize(blob []byte) (State, error) {
	if !gjson.ValidBytes(blob) {
		return State{}, &FormatError{Err: errors.New("invalid JSON")}
	}
	root := gjson.ParseBytes(blob)
	if !root.IsObject() {
		return State{}, &FormatError{Err: fmt.Errorf("expected a JSON object, got %s", root.Type)}
	}

	s := Default()
	s.Character = decodeCharacter(root.Get("character"), s.Character)
	s.Resources = decodeResources(root.Get("resources"), s.Resources)
	return s, nil
}

func decodeCharacter(r gjson.Result, c character.Character) character.Character {
	c.Name = stringField(r.Get("name"), c.Name)
	c.Background = stringField(r.Get("background"), c.Background)
	skills := r.Get("skills")
	for _, sk := range character.AllSkills {
		c.Skills = c.Skills.Set(sk, intField(skills.Get(string(sk)), c.Skills.Get(sk)))
	}
	c.CurrentHP = intField(r.Get("currentHP"), c.CurrentHP)
	c.CurrentAP = intField(r.Get("currentAP"), c.CurrentAP)
	c.XP = intField(r.Get("xp"), c.XP)
	c.Equipment = stringField(r.Get("equipment"), c.Equipment)
	return c
}

func decodeResources(r gjson.Result, res campaign.Resources) campaign.Resources {
	if day := intField(r.Get("day"), res.Day); day >= 1 {
		res.Day = day
	}
	if season := campaign.Season(stringField(r.Get("season"), "")); season.Valid() {
		res.Season = season
	}
	if water := intField(r.Get("water"), res.Water); water >= 0 {
		res.Water = water
	}
	if food := intField(r.Get("food"), res.Food); food >= 0 {
		res.Food = food
	}
	res.Shelter = boolField(r.Get("shelter"), res.Shelter)
	res.Safety = boolField(r.Get("safety"), res.Safety)
	res.Challenges = stringField(r.Get("challenges"), res.Challenges)
	res.Exploration = stringField(r.Get("exploration"), res.Exploration)
	return res
}

func stringField(r gjson.Result, def string) string {
	if r.Type != gjson.String {
		return def
	}
	return r.Str
}

func intField(r gjson.Result, def int) int {
	if r.Type != gjson.Number || r.Num != math.Trunc(r.Num) {
		return def
	}
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if r.Num < math.MinInt || r.Num >= math.MaxInt {
		return def
	}
	return int(r.Int())
}

func boolField(r gjson.Result, def bool) bool {
	if !r.IsBool() {
		return def
	}
	return r.Bool()
}

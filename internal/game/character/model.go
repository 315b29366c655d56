// Package character defines the character sheet model and the pure rules that
// derive capacities (HP and AP) from skill levels.
package character

import (
	"fmt"
	"strings"
)

// Skill names one of the six fixed skills.
type Skill string

const (
	Athletics Skill = "athletics"
	Awareness Skill = "awareness"
	Cunning   Skill = "cunning"
	Lore      Skill = "lore"
	Survival  Skill = "survival"
	Will      Skill = "will"
)

// AllSkills lists the skills in sheet order.
var AllSkills = []Skill{Athletics, Awareness, Cunning, Lore, Survival, Will}

// ParseSkill resolves a case-insensitive skill name.
func ParseSkill(name string) (Skill, error) {
	s := Skill(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range AllSkills {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown skill %q", name)
}

// Skills holds the level of each of the six skills. The zero value is the
// default sheet: every skill at 0.
type Skills struct {
	Athletics int `json:"athletics"`
	Awareness int `json:"awareness"`
	Cunning   int `json:"cunning"`
	Lore      int `json:"lore"`
	Survival  int `json:"survival"`
	Will      int `json:"will"`
}

// Get returns the level for s.
//
// Precondition: s is one of AllSkills; unknown skills report 0.
func (k Skills) Get(s Skill) int {
	if p := k.field(s); p != nil {
		return *p
	}
	return 0
}

// Set stores level for s and returns the updated Skills.
//
// Precondition: s is one of AllSkills; unknown skills are ignored.
func (k Skills) Set(s Skill, level int) Skills {
	if p := k.field(s); p != nil {
		*p = level
	}
	return k
}

// Levels returns the six levels in AllSkills order.
func (k Skills) Levels() []int {
	return []int{k.Athletics, k.Awareness, k.Cunning, k.Lore, k.Survival, k.Will}
}

func (k *Skills) field(s Skill) *int {
	switch s {
	case Athletics:
		return &k.Athletics
	case Awareness:
		return &k.Awareness
	case Cunning:
		return &k.Cunning
	case Lore:
		return &k.Lore
	case Survival:
		return &k.Survival
	case Will:
		return &k.Will
	}
	return nil
}

// Default current values for a fresh sheet.
const (
	DefaultCurrentHP = 10
	DefaultCurrentAP = 5
)

// Character is the player's sheet.
//
// Invariant (presentation-time): CurrentHP <= DeriveMaxHP and CurrentAP <=
// DeriveMaxAP. Maxima are never stored; see Sheet.
type Character struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Skills     Skills `json:"skills"`
	CurrentHP  int    `json:"currentHP"`
	CurrentAP  int    `json:"currentAP"`
	XP         int    `json:"xp"`
	Equipment  string `json:"equipment"`
}

// New returns a character with every field at its documented default.
func New() Character {
	return Character{
		CurrentHP: DefaultCurrentHP,
		CurrentAP: DefaultCurrentAP,
	}
}

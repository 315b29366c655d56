// Package campaign models the shared survival resources tracked across a
// campaign: the day counter, the season and supplies.
package campaign

import (
	"fmt"
	"strings"
)

// Season is one of the four seasons of the campaign calendar.
type Season string

const (
	Spring Season = "spring"
	Summer Season = "summer"
	Fall   Season = "fall"
	Winter Season = "winter"
)

// Seasons lists the seasons in calendar order.
var Seasons = []Season{Spring, Summer, Fall, Winter}

// Valid reports whether s is one of Seasons.
func (s Season) Valid() bool {
	switch s {
	case Spring, Summer, Fall, Winter:
		return true
	}
	return false
}

// ParseSeason resolves a case-insensitive season name. "autumn" is accepted as
// an alias for fall.
func ParseSeason(name string) (Season, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "autumn" {
		return Fall, nil
	}
	s := Season(n)
	if !s.Valid() {
		return "", fmt.Errorf("unknown season %q", name)
	}
	return s, nil
}

// Documented defaults for a fresh campaign.
const (
	DefaultDay    = 1
	DefaultSeason = Spring
)

// Resources is the campaign resource record.
//
// Invariant: Day >= 1; Water >= 0; Food >= 0 when changed through Adjust.
type Resources struct {
	Day         int    `json:"day"`
	Season      Season `json:"season"`
	Water       int    `json:"water"`
	Food        int    `json:"food"`
	Shelter     bool   `json:"shelter"`
	Safety      bool   `json:"safety"`
	Challenges  string `json:"challenges"`
	Exploration string `json:"exploration"`
}

// New returns resources at their documented defaults.
func New() Resources {
	return Resources{Day: DefaultDay, Season: DefaultSeason}
}

// Adjust returns current+delta floored at zero.
//
// Postcondition: result >= 0.
func Adjust(current, delta int) int {
	return max(0, current+delta)
}

// AdjustWater changes the water supply by delta, never below zero.
func (r *Resources) AdjustWater(delta int) {
	r.Water = Adjust(r.Water, delta)
}

// AdjustFood changes the food supply by delta, never below zero.
func (r *Resources) AdjustFood(delta int) {
	r.Food = Adjust(r.Food, delta)
}

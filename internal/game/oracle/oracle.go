// Package oracle holds the d6 lookup tables used to generate narrative
// content: weather by season, discoveries, encounters and complications.
package oracle

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
)

// Die is the number of sides rolled against every table.
const Die = 6

// LookupError reports a roll or season outside a table's domain. Rolls always
// come from a d6, so this signals a programming error rather than bad input.
type LookupError struct {
	Table  string
	Season campaign.Season // set for weather lookups only
	Roll   int
}

func (e *LookupError) Error() string {
	if e.Season != "" {
		return fmt.Sprintf("oracle: no %s entry for season %q roll %d", e.Table, e.Season, e.Roll)
	}
	return fmt.Sprintf("oracle: no %s entry for roll %d", e.Table, e.Roll)
}

// Table is an immutable mapping from a d6 roll to descriptive text.
type Table struct {
	name    string
	entries [Die]string
}

// NewTable builds a table from entries keyed 1..6.
//
// Postcondition: Returns an error unless entries has exactly the keys 1..6,
// each with non-empty text.
func NewTable(name string, entries map[int]string) (Table, error) {
	t := Table{name: name}
	if len(entries) != Die {
		return Table{}, fmt.Errorf("oracle table %q: want %d entries, got %d", name, Die, len(entries))
	}
	for roll := 1; roll <= Die; roll++ {
		text, ok := entries[roll]
		if !ok {
			return Table{}, fmt.Errorf("oracle table %q: missing entry for roll %d", name, roll)
		}
		if strings.TrimSpace(text) == "" {
			return Table{}, fmt.Errorf("oracle table %q: empty entry for roll %d", name, roll)
		}
		t.entries[roll-1] = text
	}
	return t, nil
}

func mustTable(name string, entries map[int]string) Table {
	t, err := NewTable(name, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the table's name.
func (t Table) Name() string { return t.name }

// Lookup returns the text for roll.
//
// Postcondition: Returns a *LookupError when roll is outside [1, 6].
func (t Table) Lookup(roll int) (string, error) {
	if roll < 1 || roll > Die {
		return "", &LookupError{Table: t.name, Roll: roll}
	}
	return t.entries[roll-1], nil
}

// Category names one of the flat (season-independent) tables.
type Category string

const (
	Discovery    Category = "discovery"
	Encounter    Category = "encounter"
	Complication Category = "complication"
)

// Categories lists the flat tables.
var Categories = []Category{Discovery, Encounter, Complication}

// Book is the full set of oracle tables.
type Book struct {
	weather map[campaign.Season]Table
	flat    map[Category]Table
}

// Table returns the flat table for c.
func (b *Book) Table(c Category) (Table, bool) {
	t, ok := b.flat[c]
	return t, ok
}

// Lookup rolls against the flat table for c.
//
// Postcondition: Returns a *LookupError for an unknown category or out-of-range roll.
func (b *Book) Lookup(c Category, roll int) (string, error) {
	t, ok := b.flat[c]
	if !ok {
		return "", &LookupError{Table: string(c), Roll: roll}
	}
	return t.Lookup(roll)
}

// Weather performs the two-level weather lookup: season first, then roll.
//
// Postcondition: Returns a *LookupError for an unknown season or out-of-range roll.
func (b *Book) Weather(season campaign.Season, roll int) (string, error) {
	t, ok := b.weather[season]
	if !ok {
		return "", &LookupError{Table: "weather", Season: season, Roll: roll}
	}
	text, err := t.Lookup(roll)
	if err != nil {
		return "", &LookupError{Table: "weather", Season: season, Roll: roll}
	}
	return text, nil
}

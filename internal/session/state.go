// Package session owns the character and resource record for a play session
// and its round-trip through a durable save slot.
package session

import (
	"github.com/cory-johannsen/wildshelper/internal/game/campaign"
	"github.com/cory-johannsen/wildshelper/internal/game/character"
)

// DefaultSlotName is the save slot used when none is configured.
const DefaultSlotName = "wildshelper-save"

// State is the full session record.
type State struct {
	Character character.Character `json:"character"`
	Resources campaign.Resources  `json:"resources"`
}

// Default returns a fresh session with every field at its documented default.
func Default() State {
	return State{
		Character: character.New(),
		Resources: campaign.New(),
	}
}

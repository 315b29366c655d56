package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/wildshelper/internal/storage"
)

// ErrNotFound is returned by Store.Load when the slot holds no saved game.
var ErrNotFound = errors.New("no saved game found")

// Store owns the session record and its durable slot. It is mutated only by
// Save, Load and Reset.
type Store struct {
	slot   storage.Slot
	name   string
	logger *zap.Logger
	state  State
}

// NewStore creates a Store holding the default state.
//
// Precondition: slot and logger must be non-nil; name must be a valid slot name.
func NewStore(slot storage.Slot, name string, logger *zap.Logger) *Store {
	return &Store{
		slot:   slot,
		name:   name,
		logger: logger.With(zap.String("slot", name)),
		state:  Default(),
	}
}

// State returns a copy of the current record.
func (s *Store) State() State {
	return s.state
}

// Save replaces the record with st and writes it to the slot.
//
// Postcondition: on error the in-memory record is unchanged.
func (s *Store) Save(ctx context.Context, st State) error {
	blob, err := Serialize(st)
	if err != nil {
		return err
	}
	if err := s.slot.Write(ctx, s.name, blob); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	s.state = st
	s.logger.Info("session saved",
		zap.String("character", st.Character.Name),
		zap.Int("day", st.Resources.Day),
		zap.Int("bytes", len(blob)),
	)
	return nil
}

// Load reads the slot and replaces the record with its contents.
//
// Postcondition: Returns ErrNotFound for an empty slot and a *FormatError for
// unreadable data; in both cases the in-memory record is unchanged.
func (s *Store) Load(ctx context.Context) (State, error) {
	blob, err := s.slot.Read(ctx, s.name)
	if err != nil {
		if errors.Is(err, storage.ErrSlotEmpty) {
			return s.state, ErrNotFound
		}
		return s.state, fmt.Errorf("loading session: %w", err)
	}
	st, err := Deserialize(blob)
	if err != nil {
		s.logger.Warn("discarding unreadable save", zap.Error(err))
		return s.state, err
	}
	s.state = st
	s.logger.Info("session loaded",
		zap.String("character", st.Character.Name),
		zap.Int("day", st.Resources.Day),
	)
	return st, nil
}

// Reset replaces the record with defaults. Nothing is written to the slot.
func (s *Store) Reset() State {
	s.state = Default()
	s.logger.Info("session reset")
	return s.state
}

// HasSave reports whether the slot currently holds a saved game.
func (s *Store) HasSave(ctx context.Context) (bool, error) {
	_, err := s.slot.Read(ctx, s.name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrSlotEmpty):
		return false, nil
	default:
		return false, fmt.Errorf("checking save slot: %w", err)
	}
}

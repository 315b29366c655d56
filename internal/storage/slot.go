// Package storage defines the durable save-slot abstraction shared by the
// file and SQLite backends.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrSlotEmpty is returned by Slot.Read when nothing has been written to the slot.
var ErrSlotEmpty = errors.New("save slot is empty")

// Slot is a named, local, durable key-value location holding one blob per name.
type Slot interface {
	// Read returns the blob stored under name, or ErrSlotEmpty.
	Read(ctx context.Context, name string) ([]byte, error)
	// Write replaces the blob stored under name.
	Write(ctx context.Context, name string, blob []byte) error
	// Close releases backend resources.
	Close() error
}

// ValidateName checks that name is usable as a slot name by every backend:
// non-empty, no path separators, no leading dot.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New("slot name is required")
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("slot name %q must not contain path separators", name)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("slot name %q must not start with a dot", name)
	}
	return nil
}

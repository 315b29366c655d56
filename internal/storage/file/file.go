// Package file provides a save-slot backend storing one JSON file per slot.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/cory-johannsen/wildshelper/internal/storage"
)

// Slot stores each named blob as <dir>/<name>.json.
type Slot struct {
	fs  afero.Fs
	dir string
}

// New creates a file-backed Slot rooted at dir, creating dir if needed.
//
// Precondition: fs must be non-nil; dir must be non-empty.
// Postcondition: Returns a usable Slot or a non-nil error.
func New(fs afero.Fs, dir string) (*Slot, error) {
	if dir == "" {
		return nil, errors.New("save directory is required")
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating save directory %s: %w", dir, err)
	}
	return &Slot{fs: fs, dir: dir}, nil
}

func (s *Slot) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Read returns the blob for name, or storage.ErrSlotEmpty when no file exists.
func (s *Slot) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrSlotEmpty
		}
		return nil, fmt.Errorf("reading slot %q: %w", name, err)
	}
	return data, nil
}

// Write replaces the blob for name. The new content is written to a temporary
// file and renamed over the old one, so a reader never sees a partial blob.
func (s *Slot) Write(ctx context.Context, name string, blob []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	final := s.path(name)
	tmp := final + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, blob, 0o644); err != nil {
		return fmt.Errorf("writing slot %q: %w", name, err)
	}
	if err := s.fs.Rename(tmp, final); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("committing slot %q: %w", name, err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (s *Slot) Close() error { return nil }

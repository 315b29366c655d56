// Package sqlite provides a save-slot backend on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"

	"github.com/cory-johannsen/wildshelper/internal/storage"
	"github.com/cory-johannsen/wildshelper/internal/storage/sqlite/migrations"
)

// Slot persists save blobs in the save_slots table.
type Slot struct {
	db  *sql.DB
	now func() time.Time
}

// OpenDB opens (creating if needed) the database at path without migrating it.
//
// Precondition: path must be non-empty.
func OpenDB(path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging sqlite db: %w", err)
	}
	return db, nil
}

// Open opens the database at path and applies the embedded migrations.
//
// Precondition: path must be non-empty.
// Postcondition: Returns a migrated Slot or a non-nil error.
func Open(path string) (*Slot, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}
	m, err := NewMigrator(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		_ = db.Close()
		return nil, fmt.Errorf("applying migrations: %w", err)
	}
	return &Slot{db: db, now: time.Now}, nil
}

// NewMigrator returns a migrator for db over the embedded schema files.
// Closing the migrator closes db.
func NewMigrator(db *sql.DB) (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("loading migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("creating migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("creating migrator: %w", err)
	}
	return m, nil
}

// Read returns the blob for name, or storage.ErrSlotEmpty.
func (s *Slot) Read(ctx context.Context, name string) ([]byte, error) {
	if err := storage.ValidateName(name); err != nil {
		return nil, err
	}
	var blob string
	err := s.db.QueryRowContext(ctx, `SELECT blob FROM save_slots WHERE name = ?`, name).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSlotEmpty
		}
		return nil, fmt.Errorf("reading slot %q: %w", name, err)
	}
	return []byte(blob), nil
}

// Write upserts the blob for name.
func (s *Slot) Write(ctx context.Context, name string, blob []byte) error {
	if err := storage.ValidateName(name); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO save_slots (name, blob, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		name, string(blob), s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("writing slot %q: %w", name, err)
	}
	return nil
}

// Close closes the database handle.
func (s *Slot) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/wildshelper/internal/storage"
	"github.com/cory-johannsen/wildshelper/internal/storage/sqlite"
)

func openSlot(t *testing.T, path string) *sqlite.Slot {
	t.Helper()
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSlot_ReadEmpty(t *testing.T) {
	s := openSlot(t, filepath.Join(t.TempDir(), "saves.db"))
	_, err := s.Read(context.Background(), "wildshelper-save")
	assert.ErrorIs(t, err, storage.ErrSlotEmpty)
}

func TestSlot_WriteOverwritesAndPersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves.db")

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "wildshelper-save", []byte(`{"v":1}`)))
	require.NoError(t, s.Write(ctx, "wildshelper-save", []byte(`{"v":2}`)))
	require.NoError(t, s.Write(ctx, "other", []byte(`{"v":3}`)))
	require.NoError(t, s.Close())

	reopened := openSlot(t, path)
	got, err := reopened.Read(ctx, "wildshelper-save")
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(got))

	got, err = reopened.Read(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, `{"v":3}`, string(got))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqlite.Open(" ")
	assert.Error(t, err)
}

func TestSlot_RejectsBadNames(t *testing.T) {
	s := openSlot(t, filepath.Join(t.TempDir(), "saves.db"))
	assert.Error(t, s.Write(context.Background(), "a/b", []byte("x")))
}

func TestMigrator_DownThenUp(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "saves.db")

	s, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(ctx, "wildshelper-save", []byte(`{"v":1}`)))
	require.NoError(t, s.Close())

	db, err := sqlite.OpenDB(path)
	require.NoError(t, err)
	m, err := sqlite.NewMigrator(db)
	require.NoError(t, err)

	version, dirty, err := m.Version()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	require.NoError(t, m.Down())
	srcErr, dbErr := m.Close()
	require.NoError(t, srcErr)
	require.NoError(t, dbErr)

	reopened := openSlot(t, path)
	_, err = reopened.Read(ctx, "wildshelper-save")
	assert.ErrorIs(t, err, storage.ErrSlotEmpty, "down migration drops saved slots")
}

package testutil

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cory-johannsen/wildshelper/internal/storage/file"
)

// TB is the subset of testing.TB the helpers need; *rapid.T satisfies it too.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// SaveDir is the directory NewMemSlot stores blobs in.
const SaveDir = "/saves"

// NewMemSlot returns a file save slot over an in-memory filesystem, and the
// filesystem so tests can plant or inspect blobs.
func NewMemSlot(t TB) (*file.Slot, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	slot, err := file.New(fs, SaveDir)
	if err != nil {
		t.Fatalf("creating in-memory slot: %v", err)
	}
	return slot, fs
}

// SavePath is where NewMemSlot keeps the blob for name.
func SavePath(name string) string {
	return SaveDir + "/" + name + ".json"
}

// NewObservedLogger returns a logger recording every entry at debug and above.
func NewObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return zap.New(core), logs
}

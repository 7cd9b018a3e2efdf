package atlas

import (
	"context"
	"testing"

	"github.com/louisbranch/anbennar-atlas/internal/storage"
)

type fakeModelStore struct {
	saved   []storage.Snapshot
	saveErr error
	closed  bool
}

func (f *fakeModelStore) SaveModel(_ context.Context, snap storage.Snapshot) (storage.Run, error) {
	if f.saveErr != nil {
		return storage.Run{}, f.saveErr
	}
	f.saved = append(f.saved, snap)
	return storage.Run{ID: "run-1", GameDir: snap.GameDir, Countries: len(snap.Countries)}, nil
}

func (f *fakeModelStore) LatestRun(context.Context) (storage.Run, bool, error) {
	return storage.Run{}, false, nil
}

func (f *fakeModelStore) Close() error {
	f.closed = true
	return nil
}

// useStore swaps the store opener for the duration of a test.
func useStore(t *testing.T, store storage.ModelStore) {
	previous := openStore
	openStore = func(context.Context, string) (storage.ModelStore, error) { return store, nil }
	t.Cleanup(func() { openStore = previous })
}

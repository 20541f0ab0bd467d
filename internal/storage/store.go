// Package storage persists the tracker state as whole snapshots: every
// save rewrites the full state, every load reconstructs it. Two
// backends implement the same contract, a JSON file and a SQLite
// database.
package storage

import "github.com/ashvell/attain/internal/state"

// Store loads and saves a full state snapshot.
//
//go:generate mockgen -source=store.go -destination=mock_store_test.go -package=storage
type Store interface {
	// Load returns the persisted state, or an empty state when no
	// snapshot exists yet. A present-but-unreadable snapshot is an
	// error, never silently discarded.
	Load() (*state.State, error)
	// Save atomically replaces the snapshot with st.
	Save(st *state.State) error
}

var (
	_ Store = (*SnapshotStore)(nil)
	_ Store = (*SQLiteStore)(nil)
)

// Migrate copies the full state from src to dst, e.g. when switching
// the configured backend.
func Migrate(src, dst Store) error {
	st, err := src.Load()
	if err != nil {
		return err
	}
	return dst.Save(st)
}

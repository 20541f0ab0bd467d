package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/ashvell/attain/internal/state"
)

// SnapshotStore persists the state as a single JSON document on disk.
type SnapshotStore struct {
	path string
}

// NewSnapshotStore stores the snapshot at path.
func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Path reports where the snapshot lives.
func (s *SnapshotStore) Path() string { return s.path }

func (s *SnapshotStore) Load() (*state.State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return state.New(nil, nil), nil
	}
	if err != nil {
		return nil, wrapErr("load", "snapshot", err)
	}
	var doc snapshot
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapErr("decode", "snapshot", err)
	}
	st, err := decodeState(doc)
	if err != nil {
		return nil, wrapErr("decode", "snapshot", err)
	}
	return st, nil
}

// Save writes the snapshot to a temp file and renames it into place, so
// a crash mid-write never corrupts the previous snapshot.
func (s *SnapshotStore) Save(st *state.State) error {
	doc, err := encodeState(st)
	if err != nil {
		return wrapErr("encode", "snapshot", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return wrapErr("encode", "snapshot", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return wrapErr("save", "snapshot", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return wrapErr("save", "snapshot", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return wrapErr("save", "snapshot", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return wrapErr("save", "snapshot", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return wrapErr("save", "snapshot", err)
	}
	return nil
}

package cart

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// snapshotVersion guards the persisted format. A snapshot written by a
// different version is discarded on load rather than misread.
const snapshotVersion = 1

type snapshot struct {
	Version int    `json:"version"`
	Items   []Item `json:"items"`
}

// SnapshotStore persists one opaque cart snapshot, the way browser
// local storage holds one serialized entry under a fixed key.
type SnapshotStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

func loadSnapshot(store SnapshotStore) ([]Item, error) {
	data, err := store.Load()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, want %d", snap.Version, snapshotVersion)
	}
	return snap.Items, nil
}

func saveSnapshot(store SnapshotStore, items []Item) error {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Items: items})
	if err != nil {
		return err
	}
	return store.Save(data)
}

// FileSnapshotStore keeps the snapshot in a file.
type FileSnapshotStore struct {
	path string
}

func NewFileSnapshotStore(path string) *FileSnapshotStore {
	return &FileSnapshotStore{path: path}
}

func (s *FileSnapshotStore) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

func (s *FileSnapshotStore) Save(data []byte) error {
	return os.WriteFile(s.path, data, 0o644)
}

// MemorySnapshotStore backs the tests.
type MemorySnapshotStore struct {
	mu   sync.Mutex
	data []byte
}

func NewMemorySnapshotStore() *MemorySnapshotStore { return &MemorySnapshotStore{} }

func (s *MemorySnapshotStore) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, nil
}

func (s *MemorySnapshotStore) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
	return nil
}

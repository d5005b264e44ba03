package persistence

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// StateStore manages persistence of resource values to a CBOR file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a new state store.
func NewStateStore(path string) *StateStore {
	return &StateStore{path: path}
}

// Path returns the state file path.
func (s *StateStore) Path() string {
	return s.path
}

// Save persists the snapshot to disk.
func (s *StateStore) Save(snap *wire.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	snap.Version = wire.SnapshotVersion
	if snap.SavedAt.IsZero() {
		snap.SavedAt = time.Now()
	}

	data, err := wire.EncodeSnapshot(snap)
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// Load reads the snapshot from disk.
// Returns nil, nil if the file doesn't exist.
func (s *StateStore) Load() (*wire.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return wire.DecodeSnapshot(data)
}

// Clear removes the state file.
func (s *StateStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

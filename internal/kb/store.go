package kb

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"thinknest/internal/domain"
)

// Store holds the active knowledge base and mirrors it to a JSON file.
// Snapshots are published whole: Set replaces the current pointer under the
// lock, so readers never observe a partially rebuilt chunk sequence.
type Store struct {
	mu   sync.RWMutex
	path string
	kb   *domain.KnowledgeBase
}

// NewStore creates a store persisting to path. An empty path disables
// persistence.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Get returns the current snapshot, or nil when no document is loaded.
// The returned value must be treated as immutable.
func (s *Store) Get() *domain.KnowledgeBase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kb
}

// Set publishes a fully built snapshot and persists it.
func (s *Store) Set(kb *domain.KnowledgeBase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kb = kb
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(kb, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Remove clears the snapshot and deletes the persisted file.
func (s *Store) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kb = nil
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Load reads the persisted snapshot, if any. A missing file is not an error.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var kb domain.KnowledgeBase
	if err := json.Unmarshal(data, &kb); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.kb = &kb
	return nil
}

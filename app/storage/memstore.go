package storage

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Store used by tests and as a reference
// implementation of the document contract. FailWrites forces every Save
// to fail, for exercising abort-on-write-error paths.
type MemStore struct {
	mu         sync.RWMutex
	docs       map[string][]byte
	FailWrites bool
}

// NewMemStore creates an empty MemStore
func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

// Load unmarshals the named document into v. Missing or corrupt
// documents leave v at its default.
func (s *MemStore) Load(name string, v any) error {
	s.mu.RLock()
	data, ok := s.docs[name]
	s.mu.RUnlock()
	if !ok || !json.Valid(data) {
		return nil
	}
	_ = json.Unmarshal(data, v)
	return nil
}

// Save overwrites the named document.
func (s *MemStore) Save(name string, v any) error {
	if s.FailWrites {
		return fmt.Errorf("%w: document %q: writes disabled", ErrWrite, name)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: marshal document %q: %v", ErrWrite, name, err)
	}
	s.mu.Lock()
	s.docs[name] = data
	s.mu.Unlock()
	return nil
}

// Raw returns the stored bytes for a document, for test assertions.
func (s *MemStore) Raw(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.docs[name]
	return data, ok
}

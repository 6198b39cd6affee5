package memory

import (
	"sync"

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/common"
)

// Store is an in-memory store.Store implementation - it maps fact hashes to
// their serialized content. It keeps no secondary state and serves as the
// reference backend for tests and short-lived computations.
type Store struct {
	mu   sync.RWMutex
	data map[common.Hash][]byte
}

// NewStore constructs a new empty in-memory fact store.
func NewStore() *Store {
	return &Store{
		data: make(map[common.Hash][]byte),
	}
}

// Get returns the fact stored under the given hash, or store.ErrNotFound.
func (m *Store) Get(hash common.Hash) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, exists := m.data[hash]
	if !exists {
		return nil, store.ErrNotFound
	}
	return data, nil
}

// Put stores a fact under its content hash. Re-writing an existing fact is a
// no-op; by the content-addressing invariant the new content equals the old.
func (m *Store) Put(hash common.Hash, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.data[hash]; exists {
		return nil
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	m.data[hash] = owned
	return nil
}

// Size returns the number of facts currently held by the store.
func (m *Store) Size() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

// Flush the store
func (m *Store) Flush() error {
	return nil // no-op for in-memory store
}

// Close the store
func (m *Store) Close() error {
	return nil // no-op for in-memory store
}

//
// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public Licence v3.
//

package cache

import (
	"sync"

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/common"
)

// Store wraps a cache and a store. It keeps the most recently used facts in
// memory, avoiding backend reads for nodes shared between computations.
type Store struct {
	store store.Store
	mu    sync.Mutex
	cache *common.LruCache[common.Hash, []byte]
}

// NewStore creates a new store wrapping the input one, and creates a new
// cache with the given capacity.
func NewStore(backing store.Store, cacheCapacity int) *Store {
	return &Store{
		store: backing,
		cache: common.NewLruCache[common.Hash, []byte](cacheCapacity),
	}
}

func (m *Store) Put(hash common.Hash, data []byte) error {
	// write through cache
	m.mu.Lock()
	m.cache.Set(hash, data)
	m.mu.Unlock()
	return m.store.Put(hash, data)
}

func (m *Store) Get(hash common.Hash) ([]byte, error) {
	m.mu.Lock()
	data, exists := m.cache.Get(hash)
	m.mu.Unlock()
	if exists {
		return data, nil
	}
	data, err := m.store.Get(hash)
	if err == nil {
		m.mu.Lock()
		m.cache.Set(hash, data)
		m.mu.Unlock()
	}
	return data, err
}

func (m *Store) Flush() error {
	return m.store.Flush()
}

func (m *Store) Close() error {
	if err := m.Flush(); err != nil {
		return err
	}
	return m.store.Close()
}

package memory

import (
	"errors"
	"sync"
	"testing"

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/common"
)

func TestImplements(t *testing.T) {
	var s Store
	var _ store.Store = &s
}

func TestStoringIntoMemoryStore(t *testing.T) {
	m := NewStore()
	defer m.Close()

	hash := common.HashFromBytes([]byte{1})
	if err := m.Put(hash, []byte("fact")); err != nil {
		t.Fatalf("failed to put fact; %v", err)
	}

	data, err := m.Get(hash)
	if err != nil {
		t.Fatalf("failed to get fact; %v", err)
	}
	if string(data) != "fact" {
		t.Errorf("reading written fact returned different content")
	}
}

func TestMemoryStore_GetMissingFactReportsNotFound(t *testing.T) {
	m := NewStore()
	defer m.Close()

	if _, err := m.Get(common.HashFromBytes([]byte{42})); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("got %v, want %v", err, store.ErrNotFound)
	}
}

func TestMemoryStore_DuplicatePutDoesNotGrow(t *testing.T) {
	m := NewStore()
	defer m.Close()

	hash := common.HashFromBytes([]byte{1})
	for i := 0; i < 3; i++ {
		if err := m.Put(hash, []byte("fact")); err != nil {
			t.Fatalf("failed to put fact; %v", err)
		}
	}
	if m.Size() != 1 {
		t.Errorf("store contains %d facts after duplicate writes, want 1", m.Size())
	}
}

func TestMemoryStore_PutCopiesTheInput(t *testing.T) {
	m := NewStore()
	defer m.Close()

	hash := common.HashFromBytes([]byte{1})
	data := []byte("fact")
	if err := m.Put(hash, data); err != nil {
		t.Fatalf("failed to put fact; %v", err)
	}
	data[0] = 'X'

	stored, err := m.Get(hash)
	if err != nil {
		t.Fatalf("failed to get fact; %v", err)
	}
	if string(stored) != "fact" {
		t.Errorf("stored fact aliases the caller's buffer")
	}
}

func TestMemoryStore_ConcurrentDuplicatePutsAreSafe(t *testing.T) {
	m := NewStore()
	defer m.Close()

	hash := common.HashFromBytes([]byte{7})
	const writers = 16

	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()
			// Content-addressed writers of the same key always write
			// identical content.
			if err := m.Put(hash, []byte("fact")); err != nil {
				t.Errorf("concurrent put failed; %v", err)
			}
		}()
	}
	wg.Wait()

	if m.Size() != 1 {
		t.Errorf("store contains %d facts, want 1", m.Size())
	}
	data, err := m.Get(hash)
	if err != nil || string(data) != "fact" {
		t.Errorf("fact lost or corrupted by concurrent writes; got %q, %v", data, err)
	}
}

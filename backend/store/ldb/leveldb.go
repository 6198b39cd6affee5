package ldb

import (
	"fmt"

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/common"
	"github.com/syndtr/goleveldb/leveldb"
)

// factKeyPrefix is the table space prefix distinguishing fact keys from any
// other data sharing the same LevelDB instance.
const factKeyPrefix = 'F'

// Store is a database-based store.Store implementation. It persists facts in
// a LevelDB key-value database, surviving the process that wrote them.
type Store struct {
	db    *leveldb.DB
	owned bool
}

// NewStore constructs a new instance of the Store around an opened LevelDB
// instance. The database remains owned by the caller and is not closed when
// the store is closed.
func NewStore(db *leveldb.DB) *Store {
	return &Store{db: db}
}

// OpenStore opens a LevelDB database in the given directory and wraps it in a
// Store owning the database handle.
func OpenStore(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open fact store database %s; %w", path, err)
	}
	return &Store{db: db, owned: true}, nil
}

// Get returns the fact stored under the given hash, or store.ErrNotFound.
func (s *Store) Get(hash common.Hash) ([]byte, error) {
	data, err := s.db.Get(dbKey(hash), nil)
	if err == leveldb.ErrNotFound {
		return nil, store.ErrNotFound
	}
	return data, err
}

// Put stores a fact under its content hash. LevelDB writes are atomic, and
// concurrent duplicate writes settle on identical content by the
// content-addressing invariant.
func (s *Store) Put(hash common.Hash, data []byte) error {
	return s.db.Put(dbKey(hash), data, nil)
}

// Flush the store. LevelDB writes through on Put, so there is nothing to do.
func (s *Store) Flush() error {
	return nil
}

// Close the store, closing the underlying database if it is owned by this
// store.
func (s *Store) Close() error {
	if s.owned {
		return s.db.Close()
	}
	return nil
}

// dbKey translates a fact hash into a database key by prepending the table
// space prefix.
func dbKey(hash common.Hash) []byte {
	serializer := common.HashSerializer{}
	key := make([]byte, 0, serializer.Size()+1)
	key = append(key, factKeyPrefix)
	return append(key, serializer.ToBytes(hash)...)
}

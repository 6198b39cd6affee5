// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package trie

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/common"
)

// FactFetchingContext binds a fact store to a hash function and mediates all
// node reads and writes during trie construction. Trie algorithms never talk
// to storage directly; this context is the single seam for caching, batching
// or remote-storage backends.
//
// A context is safe for concurrent use if its store is; it holds no mutable
// state of its own.
type FactFetchingContext struct {
	store  store.Store
	hashFn HashFunction
}

// NewFactFetchingContext binds the given store and hash function.
func NewFactFetchingContext(store store.Store, hashFn HashFunction) *FactFetchingContext {
	return &FactFetchingContext{
		store:  store,
		hashFn: hashFn,
	}
}

// HashFunction returns the hash function this context was bound to.
func (c *FactFetchingContext) HashFunction() HashFunction {
	return c.hashFn
}

// ReadNode fetches the fact stored under the given hash and deserializes it
// into a node. It fails with ErrMissingFact if the hash is absent, with
// ErrCorruptFact if the fact cannot be deserialized, and with
// ErrStorageFailure on backend I/O failures.
func (c *FactFetchingContext) ReadNode(hash common.Hash) (Node, error) {
	data, err := c.store.Get(hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrMissingFact, hash)
		}
		return nil, errors.Join(ErrStorageFailure, err)
	}
	node, err := decodeNode(data)
	if err != nil {
		return nil, fmt.Errorf("fact %v: %w", hash, err)
	}
	return node, nil
}

// WriteNode serializes the given node, computes its hash and stores the fact
// under it, returning the hash. Writing an empty node is a no-op producing
// the zero sentinel, preserving the sparsity of the trie. Since facts are
// content addressed, writing the same node twice does not grow the store.
func (c *FactFetchingContext) WriteNode(node Node) (common.Hash, error) {
	hash, err := node.Hash(c.hashFn)
	if err != nil {
		return common.Hash{}, err
	}
	if _, empty := node.(EmptyNode); empty {
		return hash, nil
	}
	data, err := node.encode()
	if err != nil {
		return common.Hash{}, err
	}
	if err := c.store.Put(hash, data); err != nil {
		return common.Hash{}, errors.Join(ErrStorageFailure, err)
	}
	return hash, nil
}

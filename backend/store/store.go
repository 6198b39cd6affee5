// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package store

//go:generate mockgen -source store.go -destination store_mocks.go -package store

import (
	"github.com/Fantom-foundation/Facto/common"
)

// ErrNotFound is returned by Store.Get for hashes no fact has been stored
// under.
const ErrNotFound = common.ConstError("fact not found")

// Store is a content-addressed fact store. It maps the hash of a node's
// serialized representation to that representation. Facts are immutable once
// written; since equal keys always carry equal content, writing the same fact
// twice is observationally a no-op.
//
// A single store may be shared by many root computations. Implementations
// must tolerate concurrent Put calls for the same key without corruption;
// last-writer-wins is acceptable.
type Store interface {
	// Get returns the fact stored under the given hash, or ErrNotFound if
	// the hash is absent. The returned slice must not be modified by the
	// caller.
	Get(hash common.Hash) ([]byte, error)

	// Put stores a fact under its content hash. Implementations may verify
	// that the hash matches the content, or trust the caller for
	// performance.
	Put(hash common.Hash, data []byte) error

	common.FlushAndCloser
}

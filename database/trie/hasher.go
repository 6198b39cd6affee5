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

//go:generate mockgen -source hasher.go -destination hasher_mocks.go -package trie

import (
	"crypto/sha256"
	"fmt"
	"sync"

	"github.com/Fantom-foundation/Facto/common"
	"golang.org/x/crypto/sha3"
)

// HashFunction is the pure binary hash primitive the commitment engine is
// parameterized over. It is injected into every component touching node
// hashes; no component hard-codes a specific algorithm, so implementations
// can be swapped without touching trie logic.
type HashFunction interface {
	// Hash combines two fixed-width operands into a single digest. It is
	// deterministic and free of side effects. Operands violating the width
	// the implementation assumes are rejected with ErrInvalidInputLength.
	Hash(left, right []byte) (common.Hash, error)
}

// NewSha256HashFunction creates a HashFunction computing the SHA256 digest of
// the concatenated operands. Both operands must be common.HashSize bytes.
func NewSha256HashFunction() HashFunction {
	return sha256HashFunction{}
}

// NewKeccak256HashFunction creates a HashFunction computing the legacy
// Keccak256 digest of the concatenated operands, compatible with Ethereum's
// hashing. Both operands must be common.HashSize bytes.
func NewKeccak256HashFunction() HashFunction {
	return keccak256HashFunction{}
}

// ----------------------------------------------------------------------------
//                               SHA256
// ----------------------------------------------------------------------------

type sha256HashFunction struct{}

func (sha256HashFunction) Hash(left, right []byte) (common.Hash, error) {
	if err := checkOperandWidth(left, right); err != nil {
		return common.Hash{}, err
	}
	hasher := sha256.New()
	hasher.Write(left)
	hasher.Write(right)
	var hash common.Hash
	hasher.Sum(hash[0:0])
	return hash, nil
}

// ----------------------------------------------------------------------------
//                              Keccak256
// ----------------------------------------------------------------------------

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

type keccak256HashFunction struct{}

func (keccak256HashFunction) Hash(left, right []byte) (common.Hash, error) {
	if err := checkOperandWidth(left, right); err != nil {
		return common.Hash{}, err
	}
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(left)
	hasher.Write(right)
	var hash common.Hash
	hasher.Read(hash[:])
	keccakHasherPool.Put(hasher)
	return hash, nil
}

func checkOperandWidth(left, right []byte) error {
	if len(left) != common.HashSize || len(right) != common.HashSize {
		return fmt.Errorf("%w: got %d and %d bytes, want %d each",
			ErrInvalidInputLength, len(left), len(right), common.HashSize)
	}
	return nil
}

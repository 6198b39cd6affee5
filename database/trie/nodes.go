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
	"encoding/binary"
	"fmt"

	"github.com/Fantom-foundation/Facto/common"
)

// This file defines the interface and implementation of all node types in the
// sparse Patricia-Merkle trie. There are four different types of nodes:
//
//  - empty nodes  ... the root node of all-zero sub-tries
//  - leaf nodes   ... height-0 nodes carrying the committed values
//  - binary nodes ... inner nodes forking into two non-empty sub-tries
//  - edge nodes   ... shortcuts compressing runs of single-child nodes
//
// A node's identity is its hash; nodes reference their children by hash, not
// by pointer. The hashing and serialization conventions below form version 0
// of the fact wire format and must not change without a format version bump,
// as every downstream commitment depends on them:
//
//  - the empty node hashes to the all-zero sentinel and is never persisted
//  - a leaf hashes to its raw value and is persisted as 'L' || value
//  - a binary node hashes to H(left, right) and is persisted as
//    'B' || left || right
//  - an edge node of child hash c, path p and length l hashes to
//    H(c, p) + l, where p is a 32-byte big-endian word and the addition is
//    big-endian modulo 2^256; it is persisted as 'E' || c || p || l

const (
	leafNodeTag   = byte('L')
	binaryNodeTag = byte('B')
	edgeNodeTag   = byte('E')

	leafNodeSize   = 1 + 32
	binaryNodeSize = 1 + 2*common.HashSize
	edgeNodeSize   = 1 + common.HashSize + 32 + 1
)

// Node is the interface of all node variants of the trie. Nodes are
// constructed transiently during a root computation; only their hash and
// serialized form persist, as a fact in the backing store.
type Node interface {
	// Hash computes the commitment hash of this node using the given
	// function, following the conventions documented above.
	Hash(hashFn HashFunction) (common.Hash, error)

	// encode produces the node's serialized fact representation.
	encode() ([]byte, error)
}

// ----------------------------------------------------------------------------
//                               Empty Node
// ----------------------------------------------------------------------------

// EmptyNode is the node type of all-zero sub-tries. Empty nodes have no
// children, hash to the zero sentinel, and are never materialized in the
// fact store.
type EmptyNode struct{}

func (EmptyNode) Hash(HashFunction) (common.Hash, error) {
	return common.Hash{}, nil
}

func (EmptyNode) encode() ([]byte, error) {
	return nil, fmt.Errorf("empty nodes have no fact representation")
}

// ----------------------------------------------------------------------------
//                                Leaf Node
// ----------------------------------------------------------------------------

// LeafNode is a height-0 node carrying a committed value. Its hash is the
// value itself, making the leaf's fact key and content coincide up to the
// type tag.
type LeafNode struct {
	Value common.Value
}

func (n LeafNode) Hash(HashFunction) (common.Hash, error) {
	return common.Hash(n.Value), nil
}

func (n LeafNode) encode() ([]byte, error) {
	res := make([]byte, 0, leafNodeSize)
	res = append(res, leafNodeTag)
	return append(res, n.Value[:]...), nil
}

// ----------------------------------------------------------------------------
//                               Binary Node
// ----------------------------------------------------------------------------

// BinaryNode is an inner node at height > 0 whose two sub-tries are both
// non-empty.
type BinaryNode struct {
	Left  common.Hash
	Right common.Hash
}

func (n BinaryNode) Hash(hashFn HashFunction) (common.Hash, error) {
	return hashFn.Hash(n.Left[:], n.Right[:])
}

func (n BinaryNode) encode() ([]byte, error) {
	res := make([]byte, 0, binaryNodeSize)
	res = append(res, binaryNodeTag)
	res = append(res, n.Left[:]...)
	return append(res, n.Right[:]...), nil
}

// ----------------------------------------------------------------------------
//                                Edge Node
// ----------------------------------------------------------------------------

// EdgeNode compresses a run of single-child nodes into a single node plus a
// path descriptor, keeping the storage of a sparse trie proportional to its
// non-empty leaves instead of its height. Path bit Length-1 is the topmost
// step of the run, bit 0 the bottommost.
type EdgeNode struct {
	Child  common.Hash
	Path   uint64
	Length uint8
}

func (n EdgeNode) Hash(hashFn HashFunction) (common.Hash, error) {
	path := pathToWord(n.Path)
	hash, err := hashFn.Hash(n.Child[:], path[:])
	if err != nil {
		return common.Hash{}, err
	}
	return addToHash(hash, n.Length), nil
}

func (n EdgeNode) encode() ([]byte, error) {
	path := pathToWord(n.Path)
	res := make([]byte, 0, edgeNodeSize)
	res = append(res, edgeNodeTag)
	res = append(res, n.Child[:]...)
	res = append(res, path[:]...)
	return append(res, n.Length), nil
}

// pathToWord widens an edge path to the 32-byte big-endian word entering the
// edge hash and the wire encoding.
func pathToWord(path uint64) common.Hash {
	var res common.Hash
	binary.BigEndian.PutUint64(res[24:], path)
	return res
}

// addToHash adds a small summand into a digest, interpreting the digest as a
// big-endian integer modulo 2^256.
func addToHash(hash common.Hash, summand uint8) common.Hash {
	carry := uint16(summand)
	for i := common.HashSize - 1; i >= 0 && carry != 0; i-- {
		carry += uint16(hash[i])
		hash[i] = byte(carry)
		carry >>= 8
	}
	return hash
}

// ----------------------------------------------------------------------------
//                                Decoding
// ----------------------------------------------------------------------------

// decodeNode restores a node from its serialized fact representation,
// reporting ErrCorruptFact for any input no encoder produces.
func decodeNode(data []byte) (Node, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty fact", ErrCorruptFact)
	}
	switch data[0] {
	case leafNodeTag:
		if len(data) != leafNodeSize {
			return nil, fmt.Errorf("%w: leaf fact of %d bytes, want %d", ErrCorruptFact, len(data), leafNodeSize)
		}
		var node LeafNode
		copy(node.Value[:], data[1:])
		return node, nil
	case binaryNodeTag:
		if len(data) != binaryNodeSize {
			return nil, fmt.Errorf("%w: binary fact of %d bytes, want %d", ErrCorruptFact, len(data), binaryNodeSize)
		}
		var node BinaryNode
		copy(node.Left[:], data[1:1+common.HashSize])
		copy(node.Right[:], data[1+common.HashSize:])
		return node, nil
	case edgeNodeTag:
		if len(data) != edgeNodeSize {
			return nil, fmt.Errorf("%w: edge fact of %d bytes, want %d", ErrCorruptFact, len(data), edgeNodeSize)
		}
		var node EdgeNode
		copy(node.Child[:], data[1:1+common.HashSize])
		path := data[1+common.HashSize : 1+common.HashSize+32]
		for _, b := range path[:24] {
			if b != 0 {
				return nil, fmt.Errorf("%w: edge path exceeds 64 bits", ErrCorruptFact)
			}
		}
		node.Path = binary.BigEndian.Uint64(path[24:])
		node.Length = data[edgeNodeSize-1]
		return node, nil
	default:
		return nil, fmt.Errorf("%w: unknown node tag 0x%02x", ErrCorruptFact, data[0])
	}
}

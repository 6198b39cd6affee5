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
	"testing"

	"github.com/Fantom-foundation/Facto/common"
)

func TestEmptyNode_HashIsZeroSentinel(t *testing.T) {
	hash, err := EmptyNode{}.Hash(NewSha256HashFunction())
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}
	if hash != (common.Hash{}) {
		t.Errorf("got %v, want zero", hash)
	}
}

func TestEmptyNode_HasNoFactRepresentation(t *testing.T) {
	if _, err := (EmptyNode{}).encode(); err == nil {
		t.Errorf("encoding an empty node did not fail")
	}
}

func TestLeafNode_HashIsItsValue(t *testing.T) {
	value := common.ValueFromUint64(42)
	hash, err := LeafNode{Value: value}.Hash(NewSha256HashFunction())
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}
	if hash != common.Hash(value) {
		t.Errorf("got %v, want %v", hash, common.Hash(value))
	}
}

func TestBinaryNode_HashCombinesChildren(t *testing.T) {
	hashFn := NewSha256HashFunction()
	left := common.HashFromBytes([]byte{1})
	right := common.HashFromBytes([]byte{2})

	hash, err := BinaryNode{Left: left, Right: right}.Hash(hashFn)
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}
	want, err := hashFn.Hash(left[:], right[:])
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}
	if hash != want {
		t.Errorf("got %v, want %v", hash, want)
	}
	mirrored, err := BinaryNode{Left: right, Right: left}.Hash(hashFn)
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}
	if mirrored == hash {
		t.Errorf("swapping children does not change the hash")
	}
}

func TestEdgeNode_HashAddsTheLength(t *testing.T) {
	hashFn := NewSha256HashFunction()
	child := common.HashFromBytes([]byte{1})
	node := EdgeNode{Child: child, Path: 0b101, Length: 3}

	hash, err := node.Hash(hashFn)
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}

	path := pathToWord(0b101)
	base, err := hashFn.Hash(child[:], path[:])
	if err != nil {
		t.Fatalf("failed to hash; %v", err)
	}
	if want := addToHash(base, 3); hash != want {
		t.Errorf("got %v, want %v", hash, want)
	}
}

func TestAddToHash_CarriesAcrossBytes(t *testing.T) {
	tests := []struct {
		in      common.Hash
		summand uint8
		want    common.Hash
	}{
		{common.Hash{}, 0, common.Hash{}},
		{common.Hash{}, 5, common.HashFromBytes([]byte{5})},
		{common.HashFromBytes([]byte{0xff}), 1, common.HashFromBytes([]byte{1, 0})},
		{common.HashFromBytes([]byte{0x01, 0xff, 0xff}), 1, common.HashFromBytes([]byte{0x02, 0, 0})},
	}
	for _, test := range tests {
		if got := addToHash(test.in, test.summand); got != test.want {
			t.Errorf("%v + %d: got %v, want %v", test.in, test.summand, got, test.want)
		}
	}

	// Addition is modulo 2^256, an all-ones digest wraps around.
	var allOnes common.Hash
	for i := range allOnes {
		allOnes[i] = 0xff
	}
	if got := addToHash(allOnes, 1); got != (common.Hash{}) {
		t.Errorf("overflow did not wrap to zero, got %v", got)
	}
}

func TestNodes_EncodingRoundTrips(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"leaf", LeafNode{Value: common.ValueFromUint64(42)}},
		{"binary", BinaryNode{
			Left:  common.HashFromBytes([]byte{1}),
			Right: common.HashFromBytes([]byte{2}),
		}},
		{"edge", EdgeNode{
			Child:  common.HashFromBytes([]byte{3}),
			Path:   0b1101,
			Length: 4,
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			data, err := test.node.encode()
			if err != nil {
				t.Fatalf("failed to encode node; %v", err)
			}
			restored, err := decodeNode(data)
			if err != nil {
				t.Fatalf("failed to decode node; %v", err)
			}
			if restored != test.node {
				t.Errorf("got %v, want %v", restored, test.node)
			}
		})
	}
}

func TestDecodeNode_ReportsCorruptFacts(t *testing.T) {
	leaf, _ := LeafNode{}.encode()
	binary, _ := BinaryNode{}.encode()
	edge, _ := EdgeNode{}.encode()

	overlongPath := append([]byte{}, edge...)
	overlongPath[1+common.HashSize] = 1 // a path bit above position 63

	tests := []struct {
		name string
		data []byte
	}{
		{"empty input", nil},
		{"unknown tag", []byte{'X', 1, 2, 3}},
		{"truncated leaf", leaf[:len(leaf)-1]},
		{"oversized leaf", append(leaf, 0)},
		{"truncated binary", binary[:len(binary)-1]},
		{"truncated edge", edge[:len(edge)-1]},
		{"edge path beyond 64 bits", overlongPath},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := decodeNode(test.data); !errors.Is(err, ErrCorruptFact) {
				t.Errorf("got %v, want %v", err, ErrCorruptFact)
			}
		})
	}
}

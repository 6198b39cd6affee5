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

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/backend/store/memory"
	"github.com/Fantom-foundation/Facto/common"
	"go.uber.org/mock/gomock"
)

func TestFactFetchingContext_WriteReadRoundTrip(t *testing.T) {
	ffc := NewFactFetchingContext(memory.NewStore(), NewSha256HashFunction())

	nodes := []Node{
		LeafNode{Value: common.ValueFromUint64(42)},
		BinaryNode{
			Left:  common.HashFromBytes([]byte{1}),
			Right: common.HashFromBytes([]byte{2}),
		},
		EdgeNode{
			Child:  common.HashFromBytes([]byte{3}),
			Path:   0b10,
			Length: 2,
		},
	}
	for _, node := range nodes {
		hash, err := ffc.WriteNode(node)
		if err != nil {
			t.Fatalf("failed to write node; %v", err)
		}
		restored, err := ffc.ReadNode(hash)
		if err != nil {
			t.Fatalf("failed to read node back; %v", err)
		}
		if restored != node {
			t.Errorf("got %v, want %v", restored, node)
		}
	}
}

func TestFactFetchingContext_WritingEmptyNodeIsANoOp(t *testing.T) {
	backing := memory.NewStore()
	ffc := NewFactFetchingContext(backing, NewSha256HashFunction())

	hash, err := ffc.WriteNode(EmptyNode{})
	if err != nil {
		t.Fatalf("failed to write empty node; %v", err)
	}
	if hash != (common.Hash{}) {
		t.Errorf("got %v, want zero", hash)
	}
	if backing.Size() != 0 {
		t.Errorf("empty node materialized a fact")
	}
}

func TestFactFetchingContext_MissingFactIsReported(t *testing.T) {
	ffc := NewFactFetchingContext(memory.NewStore(), NewSha256HashFunction())

	if _, err := ffc.ReadNode(common.HashFromBytes([]byte{42})); !errors.Is(err, ErrMissingFact) {
		t.Errorf("got %v, want %v", err, ErrMissingFact)
	}
}

func TestFactFetchingContext_CorruptFactIsReported(t *testing.T) {
	backing := memory.NewStore()
	ffc := NewFactFetchingContext(backing, NewSha256HashFunction())

	hash := common.HashFromBytes([]byte{1})
	if err := backing.Put(hash, []byte{'X', 1, 2, 3}); err != nil {
		t.Fatalf("failed to plant corrupt fact; %v", err)
	}
	if _, err := ffc.ReadNode(hash); !errors.Is(err, ErrCorruptFact) {
		t.Errorf("got %v, want %v", err, ErrCorruptFact)
	}
}

func TestFactFetchingContext_StorageFailuresAreWrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	backing := store.NewMockStore(ctrl)
	ffc := NewFactFetchingContext(backing, NewSha256HashFunction())

	injected := errors.New("disk on fire")
	backing.EXPECT().Get(gomock.Any()).Return(nil, injected)
	backing.EXPECT().Put(gomock.Any(), gomock.Any()).Return(injected)

	_, err := ffc.ReadNode(common.HashFromBytes([]byte{1}))
	if !errors.Is(err, ErrStorageFailure) || !errors.Is(err, injected) {
		t.Errorf("read error %v does not wrap both %v and the cause", err, ErrStorageFailure)
	}
	_, err = ffc.WriteNode(LeafNode{Value: common.ValueFromUint64(1)})
	if !errors.Is(err, ErrStorageFailure) || !errors.Is(err, injected) {
		t.Errorf("write error %v does not wrap both %v and the cause", err, ErrStorageFailure)
	}
}

func TestFactFetchingContext_WritesAreContentAddressed(t *testing.T) {
	backing := memory.NewStore()
	ffc := NewFactFetchingContext(backing, NewSha256HashFunction())

	node := LeafNode{Value: common.ValueFromUint64(7)}
	first, err := ffc.WriteNode(node)
	if err != nil {
		t.Fatalf("failed to write node; %v", err)
	}
	second, err := ffc.WriteNode(node)
	if err != nil {
		t.Fatalf("failed to re-write node; %v", err)
	}
	if first != second {
		t.Errorf("re-writing the same node produced a different hash")
	}
	if backing.Size() != 1 {
		t.Errorf("store contains %d facts, want 1", backing.Size())
	}
}

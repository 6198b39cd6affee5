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
	"context"
	"fmt"
	"sort"

	"github.com/Fantom-foundation/Facto/common"
	"github.com/Fantom-foundation/Facto/common/interrupt"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// maxHeight bounds the trie height; edge run lengths must fit a single byte
// of the fact wire format.
const maxHeight = 255

// parallelCutoffHeight is the subtree height above which the two halves of a
// fork are evaluated in separate goroutines. Below it, the sequential walk is
// cheaper than the scheduling overhead.
const parallelCutoffHeight = 12

// LeafEntry associates a leaf value with the bit-path addressing it in the
// trie. Bit height-1 of the path is the first navigation step below the
// root, bit 0 the last.
type LeafEntry struct {
	Path  uint64
	Value common.Value
}

// CalculateRoot computes the commitment root of a sparse Patricia-Merkle trie
// of the given height over the given leaf values, where the value at index i
// is addressed by the path i. All intermediate nodes are written through the
// given context; the returned root hash is the only result, nodes are
// referenced by hash thereafter.
//
// The result is deterministic for a fixed height, leaf set and hash function,
// and independent of the evaluation order. On any failure no root is
// returned; facts written before the failure are harmless, as content
// addressing keeps them consistent with any future computation.
func CalculateRoot(ctx context.Context, ffc *FactFetchingContext, height int, leaves []common.Value) (common.Hash, error) {
	entries := make([]LeafEntry, len(leaves))
	for i, value := range leaves {
		entries[i] = LeafEntry{Path: uint64(i), Value: value}
	}
	return CalculateRootFromEntries(ctx, ffc, height, entries)
}

// CalculateRootFromEntries computes the commitment root of a sparse
// Patricia-Merkle trie of the given height over explicitly addressed leaves.
// Entries may be given in any order, but no two entries may share a path. A
// leaf carrying the zero value is equivalent to an absent leaf.
func CalculateRootFromEntries(ctx context.Context, ffc *FactFetchingContext, height int, entries []LeafEntry) (common.Hash, error) {
	if height < 0 {
		return common.Hash{}, fmt.Errorf("%w: height %d is negative", ErrHeightTooSmall, height)
	}
	if height > maxHeight {
		return common.Hash{}, fmt.Errorf("trie height %d exceeds maximum of %d", height, maxHeight)
	}

	// All input validation happens before the first write, so rejected
	// inputs leave the store untouched.
	sorted := slices.Clone(entries)
	slices.SortFunc(sorted, func(a, b LeafEntry) bool {
		return a.Path < b.Path
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Path == sorted[i-1].Path {
			return common.Hash{}, fmt.Errorf("%w: path 0b%b supplied twice", ErrDuplicateLeafPath, sorted[i].Path)
		}
	}
	if height < 64 && len(sorted) > 0 {
		if max := sorted[len(sorted)-1].Path; max >= 1<<uint(height) {
			return common.Hash{}, fmt.Errorf("%w: path 0b%b needs more than %d bits", ErrHeightTooSmall, max, height)
		}
	}

	// Zero-valued leaves collapse identically to absent leaves.
	nonZero := sorted[:0]
	for _, entry := range sorted {
		if entry.Value != (common.Value{}) {
			nonZero = append(nonZero, entry)
		}
	}

	calculator := rootCalculator{ffc: ffc}
	sub, err := calculator.calculate(ctx, height, nonZero)
	if err != nil {
		return common.Hash{}, err
	}
	if sub.empty {
		return common.Hash{}, nil
	}
	return calculator.seal(sub)
}

// rootCalculator owns the in-progress node graph of a single root
// computation. Nodes are handed to the fact fetching context as soon as they
// are complete and only their hashes travel up the recursion.
type rootCalculator struct {
	ffc *FactFetchingContext
}

// subtree is the intermediate result of evaluating one subtree: the hash of
// the node below the pending single-child run, together with the run itself.
// The run is only materialized as an edge node when its subtree joins a fork
// or reaches the root, so a chain of single-child levels costs one node
// instead of one per level.
type subtree struct {
	empty  bool
	bottom common.Hash // hash of the node below the pending run
	path   uint64      // navigation bits of the pending run
	length int         // number of levels the pending run spans
}

// calculate evaluates the subtree of the given height covering the given
// entries. Entries are sorted by path and all lie within the subtree.
func (c *rootCalculator) calculate(ctx context.Context, height int, entries []LeafEntry) (subtree, error) {
	if interrupt.IsCancelled(ctx) {
		return subtree{}, interrupt.ErrCanceled
	}
	if len(entries) == 0 {
		return subtree{empty: true}, nil
	}
	if height == 0 {
		// Paths are unique, so a single entry remains.
		hash, err := c.ffc.WriteNode(LeafNode{Value: entries[0].Value})
		if err != nil {
			return subtree{}, err
		}
		return subtree{bottom: hash}, nil
	}

	// Entries are sorted, so the two halves are consecutive ranges.
	bit := uint64(1) << uint(height-1)
	split := sort.Search(len(entries), func(i int) bool {
		return entries[i].Path&bit != 0
	})

	left, right, err := c.descend(ctx, height, entries[:split], entries[split:])
	if err != nil {
		return subtree{}, err
	}

	switch {
	case left.empty && right.empty:
		return subtree{empty: true}, nil
	case right.empty:
		// The subtree continues the left child's run with a 0 step on top.
		return subtree{bottom: left.bottom, path: left.path, length: left.length + 1}, nil
	case left.empty:
		// As above, with a 1 step on top of the right child's run.
		return subtree{bottom: right.bottom, path: right.path | 1<<uint(right.length), length: right.length + 1}, nil
	}

	// A fork: both runs are materialized and joined by a binary node.
	leftHash, err := c.seal(left)
	if err != nil {
		return subtree{}, err
	}
	rightHash, err := c.seal(right)
	if err != nil {
		return subtree{}, err
	}
	hash, err := c.ffc.WriteNode(BinaryNode{Left: leftHash, Right: rightHash})
	if err != nil {
		return subtree{}, err
	}
	return subtree{bottom: hash}, nil
}

// descend evaluates the two halves of a subtree, in parallel for large
// subtrees with entries on both sides. The halves carry no data dependency on
// each other; both merely have to complete before the parent is hashed.
func (c *rootCalculator) descend(ctx context.Context, height int, leftEntries, rightEntries []LeafEntry) (left, right subtree, err error) {
	if height >= parallelCutoffHeight && len(leftEntries) > 0 && len(rightEntries) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			left, err = c.calculate(gctx, height-1, leftEntries)
			return err
		})
		g.Go(func() error {
			var err error
			right, err = c.calculate(gctx, height-1, rightEntries)
			return err
		})
		err = g.Wait()
		return left, right, err
	}
	if left, err = c.calculate(ctx, height-1, leftEntries); err != nil {
		return left, right, err
	}
	right, err = c.calculate(ctx, height-1, rightEntries)
	return left, right, err
}

// seal materializes the pending single-child run of a subtree, if any, and
// returns the hash of the subtree's root node.
func (c *rootCalculator) seal(sub subtree) (common.Hash, error) {
	if sub.length == 0 {
		return sub.bottom, nil
	}
	return c.ffc.WriteNode(EdgeNode{
		Child:  sub.bottom,
		Path:   sub.path,
		Length: uint8(sub.length),
	})
}

// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package trie computes cryptographic commitment roots for sparse
// Patricia-Merkle tries of a fixed height over a content-addressed fact
// store.
//
// The engine is parameterized over a binary HashFunction and a backend
// store.Store; the FactFetchingContext binds the two and is the only seam
// through which trie algorithms touch storage. CalculateRoot and
// CalculateRootFromEntries drive the computation: leaves are partitioned
// recursively by their path bits, empty regions collapse to a zero sentinel,
// single-child runs compress into edge nodes, and forks become binary nodes.
// Identical subtrees deduplicate automatically, since a node's storage key is
// its hash.
package trie

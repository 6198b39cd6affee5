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
	"github.com/Fantom-foundation/Facto/common"
)

const (
	// ErrInvalidInputLength is produced by hash functions receiving operands
	// violating the fixed width they assume.
	ErrInvalidInputLength = common.ConstError("invalid hash input length")

	// ErrMissingFact is produced when a node hash has no fact associated in
	// the backing store.
	ErrMissingFact = common.ConstError("missing fact")

	// ErrCorruptFact is produced when a fact cannot be deserialized into a
	// node.
	ErrCorruptFact = common.ConstError("corrupt fact")

	// ErrDuplicateLeafPath is produced when two leaves are supplied for the
	// same trie path.
	ErrDuplicateLeafPath = common.ConstError("duplicate leaf path")

	// ErrHeightTooSmall is produced when a leaf path does not fit into the
	// requested trie height.
	ErrHeightTooSmall = common.ConstError("trie height too small for leaf path")

	// ErrStorageFailure wraps I/O failures of the backing fact store. Unlike
	// the input errors above, operations failing this way may be retried.
	ErrStorageFailure = common.ConstError("fact storage failure")
)

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

// HashElements folds the given values into a single digest by chaining the
// binary hash primitive, h_0 = H(0, v_0), h_i = H(h_i-1, v_i), and
// finalizing with the element count, H(h_n-1, n). The count makes chains of
// different lengths distinguishable even when they share a prefix.
//
// This is the primitive transaction and event commitment formulas are built
// from; those formulas themselves live with the callers assembling their
// inputs.
func HashElements(hashFn HashFunction, values []common.Value) (common.Hash, error) {
	acc := common.Hash{}
	for _, value := range values {
		var err error
		if acc, err = hashFn.Hash(acc[:], value[:]); err != nil {
			return common.Hash{}, err
		}
	}
	count := common.ValueFromUint64(uint64(len(values)))
	return hashFn.Hash(acc[:], count[:])
}

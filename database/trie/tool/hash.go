// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"fmt"

	"github.com/Fantom-foundation/Facto/database/trie"
	"github.com/urfave/cli/v2"
)

var HashElementsCmd = cli.Command{
	Action: hashElements,
	Name:   "hash-elements",
	Usage:  "computes the hash chain over the given sequence of values",
	Flags: []cli.Flag{
		&algorithmFlag,
	},
	ArgsUsage: "<hex-value> ...",
}

func hashElements(context *cli.Context) error {
	values, err := getLeafValues(context)
	if err != nil {
		return err
	}
	hashFn, err := getHashFunction(context)
	if err != nil {
		return err
	}
	hash, err := trie.HashElements(hashFn, values)
	if err != nil {
		return err
	}
	fmt.Printf("%v\n", hash)
	return nil
}

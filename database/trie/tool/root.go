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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/Fantom-foundation/Facto/backend/store"
	"github.com/Fantom-foundation/Facto/backend/store/cache"
	"github.com/Fantom-foundation/Facto/backend/store/ldb"
	"github.com/Fantom-foundation/Facto/backend/store/memory"
	"github.com/Fantom-foundation/Facto/common"
	"github.com/Fantom-foundation/Facto/common/interrupt"
	"github.com/Fantom-foundation/Facto/database/trie"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"
)

var Root = cli.Command{
	Action: root,
	Name:   "root",
	Usage:  "computes the commitment root of the given sequence of leaf values",
	Flags: []cli.Flag{
		&heightFlag,
		&dbFlag,
		&algorithmFlag,
		&cacheFlag,
		&fileFlag,
	},
	ArgsUsage: "<hex-value> ...",
}

var (
	heightFlag = cli.IntFlag{
		Name:  "height",
		Usage: "the height of the commitment trie",
		Value: 64,
	}
	dbFlag = cli.StringFlag{
		Name:  "db",
		Usage: "directory of the LevelDB fact store; facts are kept in memory if empty",
		Value: "",
	}
	algorithmFlag = cli.StringFlag{
		Name:  "algorithm",
		Usage: "the hash algorithm to use, sha256 or keccak256",
		Value: "sha256",
	}
	cacheFlag = cli.IntFlag{
		Name:  "cache",
		Usage: "number of facts to cache in front of the store, uncached if zero",
		Value: 0,
	}
	fileFlag = cli.StringFlag{
		Name:  "file",
		Usage: "JSON file holding an array of hex leaf values, used instead of arguments",
		Value: "",
	}
)

func root(context *cli.Context) error {
	leaves, err := getLeafValues(context)
	if err != nil {
		return err
	}

	hashFn, err := getHashFunction(context)
	if err != nil {
		return err
	}

	factStore, err := getFactStore(context)
	if err != nil {
		return err
	}
	defer factStore.Close()

	ctx := interrupt.Register(context.Context)
	ffc := trie.NewFactFetchingContext(factStore, hashFn)
	rootHash, err := trie.CalculateRoot(ctx, ffc, context.Int(heightFlag.Name), leaves)
	if err != nil {
		return err
	}

	fmt.Printf("%v\n", rootHash)
	return nil
}

func getLeafValues(context *cli.Context) ([]common.Value, error) {
	words := context.Args().Slice()
	if file := context.String(fileFlag.Name); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read leaf file; %w", err)
		}
		words = nil
		if err := json.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("failed to parse leaf file; %w", err)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("no leaf values given")
	}

	serializer := common.ValueSerializer{}
	leaves := make([]common.Value, 0, len(words))
	for _, word := range words {
		if !strings.HasPrefix(word, "0x") {
			word = "0x" + word
		}
		data, err := hexutil.Decode(word)
		if err != nil {
			return nil, fmt.Errorf("invalid leaf value %s; %w", word, err)
		}
		if len(data) > serializer.Size() {
			return nil, fmt.Errorf("leaf value %s exceeds %d bytes", word, serializer.Size())
		}
		buf := make([]byte, serializer.Size())
		copy(buf[serializer.Size()-len(data):], data)
		leaves = append(leaves, serializer.FromBytes(buf))
	}
	return leaves, nil
}

func getHashFunction(context *cli.Context) (trie.HashFunction, error) {
	switch name := context.String(algorithmFlag.Name); name {
	case "sha256":
		return trie.NewSha256HashFunction(), nil
	case "keccak256":
		return trie.NewKeccak256HashFunction(), nil
	default:
		return nil, fmt.Errorf("unknown hash algorithm %s", name)
	}
}

func getFactStore(context *cli.Context) (store.Store, error) {
	var factStore store.Store
	if dir := context.String(dbFlag.Name); dir != "" {
		ldbStore, err := ldb.OpenStore(dir)
		if err != nil {
			return nil, err
		}
		factStore = ldbStore
	} else {
		factStore = memory.NewStore()
	}
	if capacity := context.Int(cacheFlag.Name); capacity > 0 {
		factStore = cache.NewStore(factStore, capacity)
	}
	return factStore, nil
}

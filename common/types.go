package common

import (
	"encoding/binary"
	"fmt"
)

// HashSize is the byte length of a Hash.
const HashSize = 32

// Hash is a cryptographic digest of a fact. It serves both as the commitment
// to a node's content and as the node's key in content-addressed storage.
// Equality is byte equality.
type Hash [HashSize]byte

// HashFromBytes creates a Hash from the given big-endian byte slice. Inputs
// shorter than HashSize are zero-padded on the left, longer inputs are
// truncated to their least-significant HashSize bytes.
func HashFromBytes(data []byte) Hash {
	var hash Hash
	if len(data) > HashSize {
		data = data[len(data)-HashSize:]
	}
	copy(hash[HashSize-len(data):], data)
	return hash
}

func (h Hash) String() string {
	return fmt.Sprintf("0x%x", h[:])
}

// Value is a leaf value a trie commits to. Values are fixed-width binary
// words with big-endian integer semantics.
type Value [32]byte

// ValueFromUint64 creates a Value encoding the given integer in big-endian
// byte order.
func ValueFromUint64(value uint64) Value {
	var res Value
	binary.BigEndian.PutUint64(res[24:], value)
	return res
}

func (v Value) String() string {
	return fmt.Sprintf("0x%x", v[:])
}

// SPDX-License-Identifier: MIT

package multiindex

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint is a 256-bit BLAKE3 content digest.
type Fingerprint [32]byte

// String returns the lowercase hex form.
func (f Fingerprint) String() string { return hex.EncodeToString(f[:]) }

// Short returns the first 8 hex digits, enough for logs and tables.
func (f Fingerprint) Short() string { return hex.EncodeToString(f[:4]) }

// fingerprintOf hashes m, the member count and every entry as big-endian
// uint64 words.
func fingerprintOf(m int, exps [][]int) Fingerprint {
	hasher := blake3.New()
	writeTuples(hasher, m, exps)

	var f Fingerprint
	copy(f[:], hasher.Sum(nil))

	return f
}

// writeTuples feeds the canonical binary encoding of (m, tuples) into h.
func writeTuples(h *blake3.Hasher, m int, exps [][]int) {
	var word [8]byte
	put := func(v uint64) {
		binary.BigEndian.PutUint64(word[:], v)
		_, _ = h.Write(word[:])
	}
	put(uint64(m))
	put(uint64(len(exps)))
	for _, alpha := range exps {
		for _, v := range alpha {
			put(uint64(v))
		}
	}
}

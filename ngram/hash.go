package ngram

import (
	"encoding/binary"

	"github.com/mhr3/ngramdist/internal/crchash"
)

// hashASCII buckets the 4-gram at w[i] by hashing its four bytes as one
// little-endian 32-bit load. Only the low 16 bits are kept: the bucket index
// must fit the counter table, and no external consumer sees the hash.
func hashASCII(w []byte, i int) uint16 {
	return uint16(crchash.Uint32(binary.LittleEndian.Uint32(w[i:])))
}

// hashUTF8 buckets the 3-gram at w[i] by folding the third unit into a hash
// of the first two.
func hashUTF8(w []uint32, i int) uint16 {
	combined := uint64(w[i])<<32 | uint64(w[i+1])
	return uint16(crchash.Combine(w[i+2], combined))
}

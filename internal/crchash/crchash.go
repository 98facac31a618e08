// Package crchash provides CRC32-based integer hashing for the n-gram
// kernels. All functions use the Castagnoli polynomial, which maps to a
// single hardware instruction on SSE4.2 and ARMv8-CRC cores.
package crchash

import (
	"encoding/binary"
	"hash/crc32"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Uint32 hashes a 32-bit value.
func Uint32(v uint32) uint32 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return crc32.Checksum(b[:], castagnoli)
}

// Uint64 hashes a 64-bit value.
func Uint64(v uint64) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return crc32.Checksum(b[:], castagnoli)
}

// Combine folds v into crc. On cores with a CRC32 unit this is one chain of
// crc32 instructions; elsewhere the two inputs are hashed independently and
// mixed. The two paths produce different bits, which is fine as long as all
// hashing within a process takes the same path.
func Combine(crc uint32, v uint64) uint32 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	if hasHWCRC {
		// Undo the pre/post-inversion done by crc32.Update to get the raw
		// instruction semantics.
		return ^crc32.Update(^crc, castagnoli, b[:])
	}
	return crc32.Checksum(b[:], castagnoli) ^ Uint32(crc)
}

package crchash

import (
	"encoding/binary"
	"hash/crc32"
	"testing"
)

func TestUint32(t *testing.T) {
	for _, v := range []uint32{0, 1, 0xDEADBEEF, 0xFFFFFFFF} {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		want := crc32.Checksum(b[:], crc32.MakeTable(crc32.Castagnoli))
		if got := Uint32(v); got != want {
			t.Errorf("Uint32(%#x) = %#x; want %#x", v, got, want)
		}
	}
}

func TestCombineDeterministic(t *testing.T) {
	if Combine(5, 123456789) != Combine(5, 123456789) {
		t.Fatal("Combine is not deterministic")
	}
	if Combine(5, 123456789) == Combine(6, 123456789) {
		t.Error("Combine ignores the seed")
	}
	if Combine(5, 123456789) == Combine(5, 987654321) {
		t.Error("Combine ignores the value")
	}
}

func TestSpread(t *testing.T) {
	// The low 16 bits are what the counter table is keyed by; distinct
	// inputs must not cluster. The multiplier decorrelates the inputs from
	// the CRC's own linear structure.
	seen := make(map[uint16]bool)
	for i := uint32(0); i < 4096; i++ {
		seen[uint16(Uint32(i*2654435761))] = true
	}
	if len(seen) < 3800 {
		t.Errorf("only %d distinct low-16 buckets from 4096 sequential inputs", len(seen))
	}
}

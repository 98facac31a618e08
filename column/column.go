// Package column implements the packed string column layout the batch
// drivers consume: one contiguous byte buffer holding every row followed by
// a zero terminator, plus a monotonically increasing end offset per row.
package column

import "github.com/mhr3/ngramdist/ngram"

// String is a packed column of byte strings. Row i occupies
// chars[offsets[i-1] : offsets[i]-1]; the byte at offsets[i]-1 is the
// terminator. The buffer always keeps at least ngram.Pad zero bytes past the
// last terminator, so scoring kernels can overread any row safely.
type String struct {
	chars   []byte
	offsets []int
}

// New returns an empty column.
func New() *String {
	return &String{chars: make([]byte, ngram.Pad)}
}

// FromStrings builds a column holding the given rows.
func FromStrings(rows []string) *String {
	total := 0
	for _, r := range rows {
		total += len(r) + 1
	}
	c := &String{
		chars:   make([]byte, ngram.Pad, total+ngram.Pad),
		offsets: make([]int, 0, len(rows)),
	}
	for _, r := range rows {
		c.Append(r)
	}
	return c
}

var padding [ngram.Pad]byte

// Append adds one row to the column.
func (c *String) Append(row string) {
	c.chars = c.chars[:c.end()]
	c.chars = append(c.chars, row...)
	c.chars = append(c.chars, 0)
	c.offsets = append(c.offsets, len(c.chars))
	c.chars = append(c.chars, padding[:]...)
}

// end returns the offset one past the last terminator.
func (c *String) end() int {
	if len(c.offsets) == 0 {
		return 0
	}
	return c.offsets[len(c.offsets)-1]
}

// Len returns the number of rows.
func (c *String) Len() int { return len(c.offsets) }

// Row returns row i's bytes without the terminator. The slice shares the
// column's storage.
func (c *String) Row(i int) []byte {
	start := c.start(i)
	return c.chars[start : c.offsets[i]-1]
}

// RowPadded returns row i's bytes extended with the column's trailing slack,
// plus the row's logical size. The returned slice is readable for at least
// size+ngram.Pad bytes, as the scoring kernels require.
func (c *String) RowPadded(i int) (data []byte, size int) {
	start := c.start(i)
	return c.chars[start:], c.offsets[i] - start - 1
}

func (c *String) start(i int) int {
	if i == 0 {
		return 0
	}
	return c.offsets[i-1]
}

// Offsets returns the column's offset array. The slice shares the column's
// storage; callers must not mutate it.
func (c *String) Offsets() []int { return c.offsets }

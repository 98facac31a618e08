package ngramdist

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mhr3/ngramdist/column"
	"github.com/mhr3/ngramdist/ngram"
)

// Column scores every row of col against the constant needle and returns one
// distance per row, in row order. The needle table is built once; each row
// is scored and the table restored in place, so no per-row allocation
// happens for rows up to 256 bytes. Rows longer than ngram.MaxStringSize
// score 1 without being scanned.
func (f *Func) Column(col *column.String, needle string) []float32 {
	res := make([]float32, col.Len())
	f.ColumnInto(col, needle, res)
	return res
}

// ColumnInto is Column writing into a caller-supplied slice, which must hold
// at least col.Len() entries.
func (f *Func) ColumnInto(col *column.String, needle string, res []float32) {
	nd := ngram.MakeNeedle(needle, f.mode)
	for i := 0; i < col.Len(); i++ {
		data, size := col.RowPadded(i)
		res[i] = nd.DistancePadded(data, size)
	}
}

// ColumnNeedles scores the constant haystack against every row acting as the
// needle. The metric is symmetric, so rows are scored as haystacks against
// the constant instead, which shares one needle table across the column. The
// size cutoff applies to the constant as a whole and to each row.
func (f *Func) ColumnNeedles(col *column.String, haystack string) []float32 {
	res := make([]float32, col.Len())
	if len(haystack) > ngram.MaxStringSize {
		for i := range res {
			res[i] = 1
		}
		return res
	}
	f.ColumnInto(col, haystack, res)
	return res
}

// ColumnParallel is Column with rows partitioned into contiguous ranges
// scored concurrently, at most parallelism goroutines with one private
// needle table each. Output is identical to Column. Cancellation is observed
// between partitions, not within one.
func (f *Func) ColumnParallel(ctx context.Context, col *column.String, needle string, parallelism int) ([]float32, error) {
	if parallelism < 1 {
		return nil, ErrInvalidParallelism
	}
	rows := col.Len()
	res := make([]float32, rows)
	if rows == 0 {
		return res, nil
	}
	if parallelism > rows {
		parallelism = rows
	}
	if parallelism == 1 {
		f.ColumnInto(col, needle, res)
		return res, nil
	}

	chunk := (rows + parallelism - 1) / parallelism
	zerolog.Ctx(ctx).Debug().
		Str("func", f.name).
		Int("rows", rows).
		Int("chunk", chunk).
		Msg("scoring column in parallel")

	g, ctx := errgroup.WithContext(ctx)
	for start := 0; start < rows; start += chunk {
		start, end := start, min(start+chunk, rows)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			nd := ngram.MakeNeedle(needle, f.mode)
			for i := start; i < end; i++ {
				data, size := col.RowPadded(i)
				res[i] = nd.DistancePadded(data, size)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

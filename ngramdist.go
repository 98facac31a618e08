// Package ngramdist exposes the four n-gram similarity distance functions of
// the query engine: ngramDistance, ngramDistanceCaseInsensitive,
// ngramDistanceUTF8 and ngramDistanceCaseInsensitiveUTF8. Each maps a needle
// and a haystack to a distance in [0, 1]: 0 when their n-gram multisets
// coincide, 1 when they share nothing (or the haystack exceeds the size
// cutoff).
package ngramdist

import (
	"github.com/mhr3/ngramdist/ngram"
)

// Func is one engine-facing distance function: a name plus the mode it
// instantiates the scanning core with.
type Func struct {
	name string
	mode ngram.Mode
}

// The four built-in functions, registered with DefaultRegistry on init.
var (
	NgramDistance                    = &Func{name: "ngramDistance", mode: ngram.ASCII}
	NgramDistanceCaseInsensitive     = &Func{name: "ngramDistanceCaseInsensitive", mode: ngram.ASCIIFold}
	NgramDistanceUTF8                = &Func{name: "ngramDistanceUTF8", mode: ngram.UTF8}
	NgramDistanceCaseInsensitiveUTF8 = &Func{name: "ngramDistanceCaseInsensitiveUTF8", mode: ngram.UTF8Fold}
)

// Name returns the engine-facing function name.
func (f *Func) Name() string { return f.name }

// Mode returns the scanning mode the function instantiates.
func (f *Func) Mode() ngram.Mode { return f.mode }

// Distance scores one needle/haystack pair.
func (f *Func) Distance(needle, haystack string) float32 {
	return ngram.MakeNeedle(needle, f.mode).Distance(haystack)
}

// Needle precomputes needle stats for scoring many haystacks. The result is
// not safe for concurrent use.
func (f *Func) Needle(needle string) *ngram.Needle {
	return ngram.MakeNeedle(needle, f.mode)
}

// Distance is ngramDistance: ASCII bytes, case-sensitive, 4-grams.
func Distance(needle, haystack string) float32 {
	return NgramDistance.Distance(needle, haystack)
}

// DistanceCaseInsensitive is ngramDistanceCaseInsensitive.
func DistanceCaseInsensitive(needle, haystack string) float32 {
	return NgramDistanceCaseInsensitive.Distance(needle, haystack)
}

// DistanceUTF8 is ngramDistanceUTF8: UTF-8 code points, 3-grams.
func DistanceUTF8(needle, haystack string) float32 {
	return NgramDistanceUTF8.Distance(needle, haystack)
}

// DistanceCaseInsensitiveUTF8 is ngramDistanceCaseInsensitiveUTF8. The case
// folding is approximate outside ASCII and most Cyrillic.
func DistanceCaseInsensitiveUTF8(needle, haystack string) float32 {
	return NgramDistanceCaseInsensitiveUTF8.Distance(needle, haystack)
}

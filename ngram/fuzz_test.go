package ngram

import "testing"

func FuzzDistanceReference(f *testing.F) {
	f.Add([]byte("abcd"), []byte("abce"))
	f.Add([]byte(""), []byte(""))
	f.Add([]byte("the quick brown fox"), []byte("the quick brown fix"))
	f.Add([]byte("αβγδ"), []byte("αβγε"))
	f.Add([]byte("\xf0\x9f"), []byte("\xff\xfe\xfd"))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(a) > 4096 || len(b) > 4096 {
			t.Skip()
		}
		for _, mode := range []Mode{ASCII, ASCIIFold, UTF8, UTF8Fold} {
			nd := MakeNeedle(string(a), mode)
			got := nd.Distance(string(b))
			if want := naiveDistance(a, b, mode); got != want {
				t.Fatalf("mode %v: distance(%q, %q) = %v; reference = %v", mode, a, b, got, want)
			}
			// Scoring must leave the needle reusable.
			if again := nd.Distance(string(b)); again != got {
				t.Fatalf("mode %v: second scoring of %q = %v; first = %v", mode, b, again, got)
			}
			if rev := MakeNeedle(string(b), mode).Distance(string(a)); rev != got {
				t.Fatalf("mode %v: distance(%q, %q) = %v; reversed = %v", mode, a, b, got, rev)
			}
		}
	})
}

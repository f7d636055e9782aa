package grid

import (
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// tokenize lowercases the query and splits it on whitespace. A row matches
// when every token is a substring of its index entry (AND semantics, not a
// phrase match). An empty query produces no tokens and matches everything.
func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchesAll reports whether every token is a substring of entry.
func matchesAll(entry string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(entry, tok) {
			return false
		}
	}
	return true
}

// matchAll returns a bitmap with every dataset position set.
func matchAll(n int) *roaring.Bitmap {
	bm := roaring.New()
	if n > 0 {
		bm.AddRange(0, uint64(n))
	}
	return bm
}

// filterIndex computes the set of dataset positions whose index entry
// contains every token. Roaring iteration is ascending, so materializing the
// bitmap always preserves dataset order.
//
// When prev is non-nil it must be a superset of the result (the match set of
// a query this one narrows, see narrows); only those positions are rescanned
// instead of the whole index. This keeps per-keystroke cost proportional to
// the previous result while the user is typing a longer query.
func filterIndex(index []string, tokens []string, prev *roaring.Bitmap) *roaring.Bitmap {
	if len(tokens) == 0 {
		return matchAll(len(index))
	}
	out := roaring.New()
	if prev != nil {
		it := prev.Iterator()
		for it.HasNext() {
			i := it.Next()
			if int(i) < len(index) && matchesAll(index[i], tokens) {
				out.Add(i)
			}
		}
		return out
	}
	for i, entry := range index {
		if matchesAll(entry, tokens) {
			out.Add(uint32(i))
		}
	}
	return out
}

// narrows reports whether a query with tokens next can only match a subset
// of what prev matched: every previous token must survive as a substring of
// some new token. Typing more characters ("pla" -> "plan") and appending
// tokens both satisfy this; deleting or editing earlier tokens does not.
func narrows(prev, next []string) bool {
	if len(prev) == 0 {
		return true
	}
	for _, old := range prev {
		found := false
		for _, nw := range next {
			if strings.Contains(nw, old) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// positions materializes a match bitmap as ascending dataset positions.
func positions(bm *roaring.Bitmap) []int {
	out := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}
	return out
}

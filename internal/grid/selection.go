package grid

import "github.com/RoaringBitmap/roaring/v2"

// tracker records which dataset rows are selected. Membership is keyed by
// dataset position, never by filtered-view position, so changing the query
// cannot lose or corrupt selections of rows currently filtered out.
type tracker struct {
	picked *roaring.Bitmap
	size   int
}

func newTracker(size int) *tracker {
	return &tracker{picked: roaring.New(), size: size}
}

// seed marks the given dataset positions selected. Out-of-range positions
// are ignored, not errors; callers pass whatever the host handed them.
func (t *tracker) seed(positions []int) {
	for _, p := range positions {
		if p >= 0 && p < t.size {
			t.picked.Add(uint32(p))
		}
	}
}

// toggle flips membership of one dataset position.
func (t *tracker) toggle(pos int) {
	if pos < 0 || pos >= t.size {
		return
	}
	if t.picked.Contains(uint32(pos)) {
		t.picked.Remove(uint32(pos))
	} else {
		t.picked.Add(uint32(pos))
	}
}

func (t *tracker) contains(pos int) bool {
	return pos >= 0 && pos < t.size && t.picked.Contains(uint32(pos))
}

func (t *tracker) count() int {
	return int(t.picked.GetCardinality())
}

// selected returns the selected dataset positions in ascending order, which
// is original dataset order regardless of interaction history.
func (t *tracker) selected() []int {
	return positions(t.picked)
}

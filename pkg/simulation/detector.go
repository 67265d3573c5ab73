package simulation

// Pair is one overlapping ball pair reported by the detector.
type Pair struct {
	A *Ball
	B *Ball
}

// pairKey identifies an unordered pair; lo is always the smaller id.
type pairKey struct {
	lo, hi int
}

func makePairKey(a, b *Ball) pairKey {
	if a.ID < b.ID {
		return pairKey{lo: a.ID, hi: b.ID}
	}
	return pairKey{lo: b.ID, hi: a.ID}
}

// Detector enumerates overlapping ball pairs, using shared grid cells as
// the broad phase so the cost stays far below the naive all-pairs scan.
type Detector struct {
	grid *Grid
	// buckets, seen and pairs live across ticks; they are reset to length
	// zero each call so the underlying memory is reused, the same
	// allocation-avoidance trick as the grid rebuild in the world loop.
	buckets map[CellID][]*Ball
	seen    map[pairKey]struct{}
	pairs   []Pair
}

// NewDetector creates a detector bound to one grid.
func NewDetector(grid *Grid) *Detector {
	return &Detector{
		grid:    grid,
		buckets: make(map[CellID][]*Ball),
		seen:    make(map[pairKey]struct{}),
	}
}

// Overlaps reports whether two balls interpenetrate. Strict comparison:
// exact tangency does not count, and the test is symmetric in a and b.
func Overlaps(a, b *Ball) bool {
	return a.Pos.DistanceTo(b.Pos) < a.Radius+b.Radius
}

// FindOverlappingPairs returns every overlapping pair exactly once.
// Every ball must carry up-to-date cell memberships for the current tick.
// Candidates are two balls sharing at least one cell; the seen set dedups
// pairs that share several cells. Cells are walked in id order so the
// resulting pair order is deterministic. The returned slice is reused on
// the next call.
func (d *Detector) FindOverlappingPairs(balls []*Ball) []Pair {
	for k := range d.buckets {
		d.buckets[k] = d.buckets[k][:0]
	}
	clear(d.seen)
	d.pairs = d.pairs[:0]

	for _, b := range balls {
		for _, c := range b.Cells() {
			d.buckets[c] = append(d.buckets[c], b)
		}
	}

	for cell := CellID(0); cell < CellID(d.grid.CellCount()); cell++ {
		bucket, ok := d.buckets[cell]
		if !ok {
			continue
		}
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				key := makePairKey(a, b)
				if _, dup := d.seen[key]; dup {
					continue
				}
				d.seen[key] = struct{}{}
				if Overlaps(a, b) {
					d.pairs = append(d.pairs, Pair{A: a, B: b})
				}
			}
		}
	}
	return d.pairs
}

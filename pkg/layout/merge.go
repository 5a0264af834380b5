package layout

import "sort"

// Merge collapses spans into the minimal ordered set of disjoint regions.
//
// Spans are sorted by (Start, End) ascending and swept left to right; the
// current region absorbs the next span when next.Start <= current.End + 1,
// so overlapping and 1-unit-adjacent spans fuse into one region. Adjacency
// merging keeps touching residues from rendering as fragmented bars.
//
// The input slice is not modified. The output satisfies
// r[i+1].Start > r[i].End + 1 for all consecutive regions.
func Merge(spans []Span) []Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]Span, len(spans))
	copy(sorted, spans)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	merged := make([]Span, 0, len(sorted))
	cur := sorted[0]
	for _, s := range sorted[1:] {
		if s.Start <= cur.End+1 {
			if s.End > cur.End {
				cur.End = s.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = s
	}
	return append(merged, cur)
}

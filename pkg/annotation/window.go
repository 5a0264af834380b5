package annotation

import "fmt"

// ViewWindow is the zoomed sub-range of sequence positions being displayed.
// Start and End are inclusive amino-acid positions, Start >= 1, Start < End.
type ViewWindow struct {
	Start int
	End   int
}

// FullSequence returns the window covering the whole sequence [1, length].
func FullSequence(length int) ViewWindow {
	return ViewWindow{Start: 1, End: length}
}

// Valid reports whether the window satisfies Start >= 1 and Start < End.
func (v ViewWindow) Valid() bool {
	return v.Start >= 1 && v.Start < v.End
}

// Span returns the number of positions covered by the window.
func (v ViewWindow) Span() int { return v.End - v.Start + 1 }

// Overlaps reports whether [start, end] overlaps the window.
// Point features (start == end) follow the same rule.
func (v ViewWindow) Overlaps(start, end int) bool {
	return !(end < v.Start || start > v.End)
}

// Clip clamps [start, end] to the window. The result is empty (start > end)
// only when the input does not overlap the window.
func (v ViewWindow) Clip(start, end int) (int, int) {
	return max(start, v.Start), min(end, v.End)
}

func (v ViewWindow) String() string {
	return fmt.Sprintf("%d-%d", v.Start, v.End)
}

// Clamp restricts a requested window to [1, length]. The second return is
// false when the clamped window is degenerate (start >= end) and the caller
// should fall back to the full-sequence window.
func Clamp(v ViewWindow, length int) (ViewWindow, bool) {
	if v.Start < 1 {
		v.Start = 1
	}
	if v.End > length || v.End < 1 {
		v.End = length
	}
	if v.Start >= v.End {
		return FullSequence(length), false
	}
	return v, true
}

package layout

import (
	"fmt"

	"github.com/matzehuels/protviz/pkg/annotation"
)

// Mode selects how a track arranges its features vertically.
type Mode string

// Display modes.
const (
	// ModeFull gives each item (or each grouped entity) its own lane.
	ModeFull Mode = "full"
	// ModeCollapse merges all overlapping or adjacent features into one row.
	ModeCollapse Mode = "collapse"
)

// Valid reports whether m is a known display mode.
func (m Mode) Valid() bool { return m == ModeFull || m == ModeCollapse }

// Policy selects how lanes are assigned in full mode.
type Policy int

const (
	// PolicyFirstFit packs items into the lowest-index lane whose rightmost
	// occupied coordinate is left of the item's start.
	PolicyFirstFit Policy = iota
	// PolicyDedicated gives the i-th input item lane i unconditionally.
	PolicyDedicated
)

// Params holds the sizing knobs shared by all track kinds.
type Params struct {
	RowHeight  float64 // height of one lane; must be > 0
	RowSpacing float64 // vertical gap between lanes; >= 0
}

// Span is a closed integer range on the sequence axis.
type Span struct {
	Start int
	End   int
}

// Item is one logical visual entity to place: a single coverage record, all
// binding segments of one ligand, all location segments of one domain entry.
// All of an item's spans are drawn in the lane the item is assigned.
type Item struct {
	Spans []Span
}

// Placement records the lane assigned to an input item, with the item's
// spans clipped to the view window.
type Placement struct {
	Index int    // index into the input items
	Lane  int    // 0-based lane, bottom lane first
	Spans []Span // visible spans, clipped to the view
}

// Result is the geometry of one track for one view window. It is created
// fresh on every call and never mutated after construction.
type Result struct {
	Mode          Mode
	Placements    []Placement // full mode: one entry per placed item, input order
	Regions       []Span      // collapse mode: disjoint merged regions, ascending
	NumLanes      int
	ContentHeight float64
}

// Compute lays out items against the view window.
//
// Items must already be filtered for visibility (at least one span
// overlapping the view); items whose spans all fall outside the window
// consume no lane. The view is assumed valid (callers resolve degenerate
// windows before layout). Params.RowHeight <= 0 is a programming error and
// panics.
//
// In full mode the content height is
//
//	NumLanes*RowHeight + max(0, NumLanes-1)*RowSpacing
//
// falling back to a single RowHeight when nothing is visible, so the track
// keeps room for a "no data in view" placeholder. In collapse mode the
// height is always exactly RowHeight.
func Compute(items []Item, view annotation.ViewWindow, mode Mode, policy Policy, p Params) Result {
	if p.RowHeight <= 0 {
		panic(fmt.Sprintf("layout: RowHeight must be > 0, got %v", p.RowHeight))
	}

	switch mode {
	case ModeCollapse:
		return collapse(items, view, p)
	default:
		return full(items, view, policy, p)
	}
}

func full(items []Item, view annotation.ViewWindow, policy Policy, p Params) Result {
	res := Result{Mode: ModeFull}

	var laneEnds []int
	for i, it := range items {
		spans := clipSpans(it.Spans, view)
		if len(spans) == 0 {
			continue
		}

		var lane int
		switch policy {
		case PolicyDedicated:
			lane = len(laneEnds)
			laneEnds = append(laneEnds, hull(spans).End)
		default:
			lane = firstFit(&laneEnds, hull(spans))
		}
		res.Placements = append(res.Placements, Placement{Index: i, Lane: lane, Spans: spans})
	}

	res.NumLanes = len(laneEnds)
	res.ContentHeight = contentHeight(res.NumLanes, p)
	return res
}

// firstFit scans lanes in index order and places the span in the first lane
// whose current end is strictly left of the span's start; adjacency
// (start == end+1) is allowed to share a lane. Ties in start position are
// resolved by input order, which makes the assignment stable and, for input
// sorted by ascending start, optimal in lane count.
func firstFit(laneEnds *[]int, s Span) int {
	for i, end := range *laneEnds {
		if s.Start > end {
			(*laneEnds)[i] = s.End
			return i
		}
	}
	*laneEnds = append(*laneEnds, s.End)
	return len(*laneEnds) - 1
}

func collapse(items []Item, view annotation.ViewWindow, p Params) Result {
	var spans []Span
	for _, it := range items {
		spans = append(spans, clipSpans(it.Spans, view)...)
	}
	return Result{
		Mode:          ModeCollapse,
		Regions:       Merge(spans),
		NumLanes:      1,
		ContentHeight: p.RowHeight,
	}
}

// clipSpans clamps spans to the view window, dropping those entirely outside.
// A clipped span is empty only when it did not overlap the view, so point
// spans inside the window survive intact.
func clipSpans(spans []Span, view annotation.ViewWindow) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !view.Overlaps(s.Start, s.End) {
			continue
		}
		start, end := view.Clip(s.Start, s.End)
		out = append(out, Span{Start: start, End: end})
	}
	return out
}

// hull returns the smallest span covering all spans of an item. First-fit
// places multi-segment items by their hull so every segment lands in one lane.
func hull(spans []Span) Span {
	h := spans[0]
	for _, s := range spans[1:] {
		if s.Start < h.Start {
			h.Start = s.Start
		}
		if s.End > h.End {
			h.End = s.End
		}
	}
	return h
}

func contentHeight(lanes int, p Params) float64 {
	if lanes == 0 {
		return p.RowHeight
	}
	return float64(lanes)*p.RowHeight + float64(lanes-1)*p.RowSpacing
}

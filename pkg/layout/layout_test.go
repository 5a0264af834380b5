package layout

import (
	"reflect"
	"testing"

	"github.com/matzehuels/protviz/pkg/annotation"
)

var params = Params{RowHeight: 0.1, RowSpacing: 0.05}

func items(spans ...Span) []Item {
	out := make([]Item, len(spans))
	for i, s := range spans {
		out[i] = Item{Spans: []Span{s}}
	}
	return out
}

func TestCompute_FirstFit(t *testing.T) {
	// Overlapping pair shares no lane; the third interval reuses lane 0.
	in := items(Span{10, 20}, Span{15, 25}, Span{30, 40})
	view := annotation.ViewWindow{Start: 1, End: 100}

	res := Compute(in, view, ModeFull, PolicyFirstFit, params)

	if res.NumLanes != 2 {
		t.Fatalf("expected 2 lanes, got %d", res.NumLanes)
	}
	wantLanes := []int{0, 1, 0}
	for i, pl := range res.Placements {
		if pl.Lane != wantLanes[i] {
			t.Errorf("item %d: lane %d, want %d", pl.Index, pl.Lane, wantLanes[i])
		}
	}

	// content = 2 rows + 1 gap
	want := 2*params.RowHeight + params.RowSpacing
	if res.ContentHeight != want {
		t.Errorf("height %v, want %v", res.ContentHeight, want)
	}
}

func TestCompute_FirstFit_AdjacencySharesLane(t *testing.T) {
	// 21 starts one past 20; first-fit places it in the same lane.
	res := Compute(items(Span{10, 20}, Span{21, 30}),
		annotation.ViewWindow{Start: 1, End: 100}, ModeFull, PolicyFirstFit, params)
	if res.NumLanes != 1 {
		t.Errorf("adjacent intervals should share a lane, got %d lanes", res.NumLanes)
	}
	// Same start coordinate cannot share: lane end 20, start 20 is not > 20.
	res = Compute(items(Span{10, 20}, Span{20, 30}),
		annotation.ViewWindow{Start: 1, End: 100}, ModeFull, PolicyFirstFit, params)
	if res.NumLanes != 2 {
		t.Errorf("touching intervals should not share a lane, got %d lanes", res.NumLanes)
	}
}

func TestCompute_FirstFit_MutualOverlapLowerBound(t *testing.T) {
	// k mutually overlapping intervals need at least k lanes.
	in := items(Span{10, 100}, Span{20, 90}, Span{30, 80}, Span{40, 70})
	res := Compute(in, annotation.ViewWindow{Start: 1, End: 200}, ModeFull, PolicyFirstFit, params)
	if res.NumLanes < 4 {
		t.Errorf("4 mutually overlapping intervals need >= 4 lanes, got %d", res.NumLanes)
	}
}

func TestCompute_Dedicated(t *testing.T) {
	// Non-overlapping entities still get separate lanes.
	in := items(Span{10, 20}, Span{30, 40}, Span{50, 60})
	res := Compute(in, annotation.ViewWindow{Start: 1, End: 100}, ModeFull, PolicyDedicated, params)

	if res.NumLanes != 3 {
		t.Fatalf("dedicated policy: expected 3 lanes, got %d", res.NumLanes)
	}
	for i, pl := range res.Placements {
		if pl.Lane != i {
			t.Errorf("item %d: lane %d, want %d", i, pl.Lane, i)
		}
	}
}

func TestCompute_Dedicated_SkipsInvisible(t *testing.T) {
	in := items(Span{10, 20}, Span{300, 400}, Span{50, 60})
	res := Compute(in, annotation.ViewWindow{Start: 1, End: 100}, ModeFull, PolicyDedicated, params)

	if res.NumLanes != 2 {
		t.Fatalf("invisible item must not consume a lane, got %d lanes", res.NumLanes)
	}
	if res.Placements[0].Index != 0 || res.Placements[1].Index != 2 {
		t.Errorf("unexpected placement indices: %+v", res.Placements)
	}
	if res.Placements[1].Lane != 1 {
		t.Errorf("third item should take lane 1, got %d", res.Placements[1].Lane)
	}
}

func TestCompute_MultiSegmentItemOneLane(t *testing.T) {
	// A segmented entity occupies a single lane for all its segments,
	// and its hull blocks that lane for first-fit.
	in := []Item{
		{Spans: []Span{{10, 20}, {40, 50}}},
		{Spans: []Span{{25, 35}}}, // inside the first item's hull
	}
	res := Compute(in, annotation.ViewWindow{Start: 1, End: 100}, ModeFull, PolicyFirstFit, params)

	if res.NumLanes != 2 {
		t.Fatalf("expected 2 lanes, got %d", res.NumLanes)
	}
	if len(res.Placements[0].Spans) != 2 {
		t.Errorf("segmented item should keep both spans, got %+v", res.Placements[0].Spans)
	}
	if res.Placements[0].Lane == res.Placements[1].Lane {
		t.Error("item inside another's hull must not share its lane")
	}
}

func TestCompute_ClipsToView(t *testing.T) {
	res := Compute(items(Span{5, 50}), annotation.ViewWindow{Start: 10, End: 40},
		ModeFull, PolicyFirstFit, params)
	got := res.Placements[0].Spans[0]
	if got.Start != 10 || got.End != 40 {
		t.Errorf("span not clipped: %+v", got)
	}
}

func TestCompute_PointAnnotationGetsLane(t *testing.T) {
	// Single-residue features are first-class: they consume a lane.
	res := Compute(items(Span{50, 50}), annotation.ViewWindow{Start: 1, End: 100},
		ModeFull, PolicyFirstFit, params)
	if res.NumLanes != 1 || len(res.Placements) != 1 {
		t.Fatalf("point annotation should be placed: %+v", res)
	}
	if s := res.Placements[0].Spans[0]; s.Start != 50 || s.End != 50 {
		t.Errorf("point span altered by clipping: %+v", s)
	}
}

func TestCompute_Collapse(t *testing.T) {
	in := items(Span{10, 20}, Span{15, 25}, Span{30, 40})
	res := Compute(in, annotation.ViewWindow{Start: 1, End: 100}, ModeCollapse, PolicyFirstFit, params)

	want := []Span{{10, 25}, {30, 40}}
	if !reflect.DeepEqual(res.Regions, want) {
		t.Errorf("regions %+v, want %+v", res.Regions, want)
	}
	if res.ContentHeight != params.RowHeight {
		t.Errorf("collapse height must be RowHeight, got %v", res.ContentHeight)
	}
	if res.NumLanes != 1 {
		t.Errorf("collapse mode is one conceptual lane, got %d", res.NumLanes)
	}
}

func TestCompute_EmptyInput(t *testing.T) {
	for _, mode := range []Mode{ModeFull, ModeCollapse} {
		res := Compute(nil, annotation.ViewWindow{Start: 1, End: 100}, mode, PolicyFirstFit, params)
		if len(res.Placements) != 0 || len(res.Regions) != 0 {
			t.Errorf("%s: expected empty result, got %+v", mode, res)
		}
		if res.ContentHeight != params.RowHeight {
			t.Errorf("%s: placeholder height must be RowHeight, got %v", mode, res.ContentHeight)
		}
	}
}

func TestCompute_Idempotent(t *testing.T) {
	in := []Item{
		{Spans: []Span{{10, 20}, {40, 50}}},
		{Spans: []Span{{15, 25}}},
		{Spans: []Span{{30, 40}}},
	}
	view := annotation.ViewWindow{Start: 5, End: 60}
	for _, mode := range []Mode{ModeFull, ModeCollapse} {
		a := Compute(in, view, mode, PolicyFirstFit, params)
		b := Compute(in, view, mode, PolicyFirstFit, params)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: layout is not idempotent", mode)
		}
	}
}

func TestCompute_FilteredNeverAppears(t *testing.T) {
	view := annotation.ViewWindow{Start: 60, End: 100}
	in := items(Span{10, 20}, Span{50, 50}, Span{70, 80})

	res := Compute(in, view, ModeCollapse, PolicyFirstFit, params)
	for _, r := range res.Regions {
		if r.End < view.Start || r.Start > view.End {
			t.Errorf("region %+v outside view %v", r, view)
		}
	}
	if len(res.Regions) != 1 || res.Regions[0] != (Span{70, 80}) {
		t.Errorf("unexpected regions: %+v", res.Regions)
	}
}

func TestCompute_PanicsOnBadRowHeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RowHeight <= 0 should panic")
		}
	}()
	Compute(nil, annotation.ViewWindow{Start: 1, End: 10}, ModeFull, PolicyFirstFit, Params{})
}

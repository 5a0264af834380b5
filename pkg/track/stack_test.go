package track

import (
	"testing"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/errors"
	"github.com/matzehuels/protviz/pkg/fetch"
	"github.com/matzehuels/protviz/pkg/fetch/pdbe"
	"github.com/matzehuels/protviz/pkg/layout"
)

func testStack() *Stack {
	coverage := []pdbe.Coverage{
		{PDBID: "1aaa", Span: fetch.Segment{Start: 1, End: 100}},
	}
	return &Stack{
		Protein:        "P69905",
		SequenceLength: 142,
		Tracks: []*Track{
			NewAxisTrack(),
			NewPDBTrack(coverage, layout.ModeFull),
		},
	}
}

func TestStack_Arrange_FullSequence(t *testing.T) {
	s := testStack()

	arr, err := s.Arrange(nil)
	if err != nil {
		t.Fatal(err)
	}
	if arr.View != annotation.FullSequence(142) {
		t.Errorf("nil view should mean full sequence, got %v", arr.View)
	}
	if arr.Zoomed || arr.WindowAdjusted {
		t.Error("full-sequence arrangement should not be zoomed or adjusted")
	}
	if len(arr.Bands) != 2 {
		t.Fatalf("expected 2 bands, got %d", len(arr.Bands))
	}

	// Last track sits at the bottom; the one above starts where it ends.
	bottom := arr.Bands[1]
	top := arr.Bands[0]
	if bottom.Bottom != 0 {
		t.Errorf("last track should start at y=0, got %v", bottom.Bottom)
	}
	if top.Bottom != bottom.Geometry.TotalHeight() {
		t.Errorf("stacking gap: top bottom %v, expected %v",
			top.Bottom, bottom.Geometry.TotalHeight())
	}
	if arr.TotalHeight != top.Bottom+top.Geometry.TotalHeight() {
		t.Errorf("total height mismatch: %v", arr.TotalHeight)
	}
}

func TestStack_Arrange_Zoomed(t *testing.T) {
	s := testStack()

	view := annotation.ViewWindow{Start: 20, End: 80}
	arr, err := s.Arrange(&view)
	if err != nil {
		t.Fatal(err)
	}
	if !arr.Zoomed {
		t.Error("sub-range view should be flagged as zoomed")
	}
	if arr.View != view {
		t.Errorf("view changed unexpectedly: %v", arr.View)
	}

	pdb := arr.Bands[1].Geometry
	if pdb.Rows[0].Spans[0] != (layout.Span{Start: 20, End: 80}) {
		t.Errorf("coverage should clip to the view, got %+v", pdb.Rows[0].Spans[0])
	}
}

func TestStack_Arrange_DegenerateViewFallsBack(t *testing.T) {
	s := testStack()

	view := annotation.ViewWindow{Start: 90, End: 10}
	arr, err := s.Arrange(&view)
	if err != nil {
		t.Fatal(err)
	}
	if !arr.WindowAdjusted {
		t.Error("reversed view should be flagged as adjusted")
	}
	if arr.View != annotation.FullSequence(142) {
		t.Errorf("adjusted view should cover the full sequence, got %v", arr.View)
	}
}

func TestStack_Arrange_Errors(t *testing.T) {
	s := testStack()
	s.SequenceLength = 0
	if _, err := s.Arrange(nil); errors.GetCode(err) != errors.ErrCodeInvalidWindow {
		t.Errorf("expected INVALID_WINDOW, got %v", err)
	}

	s = testStack()
	s.Tracks = nil
	if _, err := s.Arrange(nil); errors.GetCode(err) != errors.ErrCodeInvalidTrack {
		t.Errorf("expected INVALID_TRACK, got %v", err)
	}
}

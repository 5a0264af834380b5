package annotation

import (
	"testing"

	"github.com/matzehuels/protviz/pkg/errors"
)

func intp(v int) *int { return &v }

func TestNormalize(t *testing.T) {
	recs := []Record{
		{Start: intp(10), End: intp(20), Label: "a"},
		{Position: intp(55), Label: "site"},
		{Start: intp(30), End: intp(25), Label: "reversed"},
	}

	anns, errs := Normalize(recs)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(anns) != 3 {
		t.Fatalf("expected 3 annotations, got %d", len(anns))
	}

	if anns[0].Start != 10 || anns[0].End != 20 {
		t.Errorf("range annotation: got [%d,%d]", anns[0].Start, anns[0].End)
	}
	if anns[0].Display != DisplayBar {
		t.Errorf("range annotation should default to bar, got %s", anns[0].Display)
	}

	if !anns[1].IsPoint() || anns[1].Start != 55 {
		t.Errorf("position annotation: got [%d,%d]", anns[1].Start, anns[1].End)
	}
	if anns[1].Display != DisplayMarker {
		t.Errorf("point annotation should default to marker, got %s", anns[1].Display)
	}

	if anns[2].Start != 25 || anns[2].End != 30 {
		t.Errorf("reversed range should be swapped: got [%d,%d]", anns[2].Start, anns[2].End)
	}
}

func TestNormalize_SkipsMalformed(t *testing.T) {
	recs := []Record{
		{Start: intp(10), End: intp(20)},
		{Label: "no coordinates"},
		{Start: intp(5)}, // end missing
		{Position: intp(7)},
	}

	anns, errs := Normalize(recs)
	if len(anns) != 2 {
		t.Fatalf("expected 2 surviving annotations, got %d", len(anns))
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 skip errors, got %d", len(errs))
	}
	for _, err := range errs {
		if !errors.Is(err, errors.ErrCodeInvalidAnnotation) {
			t.Errorf("expected INVALID_ANNOTATION, got %v", err)
		}
	}
}

func TestNormalize_PositionWins(t *testing.T) {
	anns, _ := Normalize([]Record{{Start: intp(1), End: intp(9), Position: intp(4)}})
	if len(anns) != 1 || anns[0].Start != 4 || anns[0].End != 4 {
		t.Fatalf("position should override start/end: %+v", anns)
	}
}

func TestSortByStart(t *testing.T) {
	anns := []Annotation{
		{Start: 30, End: 40, Label: "c"},
		{Start: 10, End: 25, Label: "b"},
		{Start: 10, End: 20, Label: "a"},
	}
	SortByStart(anns)
	if anns[0].Label != "a" || anns[1].Label != "b" || anns[2].Label != "c" {
		t.Errorf("unexpected order: %v %v %v", anns[0].Label, anns[1].Label, anns[2].Label)
	}
}

package layout_test

import (
	"fmt"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/layout"
)

func ExampleCompute() {
	items := []layout.Item{
		{Spans: []layout.Span{{Start: 10, End: 20}}},
		{Spans: []layout.Span{{Start: 15, End: 25}}},
		{Spans: []layout.Span{{Start: 30, End: 40}}},
	}
	view := annotation.ViewWindow{Start: 1, End: 100}
	params := layout.Params{RowHeight: 0.1, RowSpacing: 0.05}

	res := layout.Compute(items, view, layout.ModeFull, layout.PolicyFirstFit, params)
	for _, pl := range res.Placements {
		fmt.Printf("item %d -> lane %d\n", pl.Index, pl.Lane)
	}
	fmt.Printf("lanes: %d\n", res.NumLanes)

	// Output:
	// item 0 -> lane 0
	// item 1 -> lane 1
	// item 2 -> lane 0
	// lanes: 2
}

func ExampleMerge() {
	regions := layout.Merge([]layout.Span{
		{Start: 30, End: 40},
		{Start: 10, End: 20},
		{Start: 21, End: 25}, // adjacent to 10-20, fuses
	})
	for _, r := range regions {
		fmt.Printf("%d-%d\n", r.Start, r.End)
	}

	// Output:
	// 10-25
	// 30-40
}

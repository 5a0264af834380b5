package annotation

// Filter returns the annotations visible in the view window, preserving input
// order. An annotation is visible iff [Start, End] overlaps
// [view.Start, view.End]; features entirely left or right of the window are
// dropped. Filter is pure and assumes a valid window; degenerate windows are
// the caller's responsibility.
func Filter(anns []Annotation, view ViewWindow) []Annotation {
	visible := make([]Annotation, 0, len(anns))
	for _, a := range anns {
		if view.Overlaps(a.Start, a.End) {
			visible = append(visible, a)
		}
	}
	return visible
}

// Package annotation defines sequence features and the view window they are
// displayed against.
//
// An [Annotation] is one feature on the protein sequence axis: a closed
// integer range [Start, End] with Start <= End. Point features (Start == End)
// are a first-class case. Raw records arriving from data sources or user
// config are normalized with [Normalize], which skips malformed entries
// instead of failing the whole batch.
package annotation

import (
	"sort"

	"github.com/matzehuels/protviz/pkg/errors"
)

// Display selects how a feature is drawn.
type Display string

// Display kinds.
const (
	DisplayBar    Display = "bar"    // filled rectangle spanning [Start, End]
	DisplayMarker Display = "marker" // glyph centered on the feature
)

// Annotation is one normalized sequence feature.
// Start and End are inclusive amino-acid positions with Start <= End.
type Annotation struct {
	Start int
	End   int

	// Group identifies the logical entity this feature belongs to
	// (ligand id, domain accession, row label). Features sharing a Group
	// are drawn as one visual entity by grouping track kinds.
	Group string

	// Presentation metadata, opaque to the layout engine.
	Label   string
	Color   string
	Display Display
}

// IsPoint reports whether the annotation covers a single residue.
func (a Annotation) IsPoint() bool { return a.Start == a.End }

// Record is a raw, possibly malformed feature as supplied by config files or
// upstream APIs. Either Position or both Start and End must be set.
type Record struct {
	Start    *int
	End      *int
	Position *int
	Group    string
	Label    string
	Color    string
	Display  string
}

// Normalize converts raw records into annotations.
//
// A record with Position set collapses to Start = End = Position; Position
// wins if both forms are present. Reversed ranges are swapped. Records with
// neither Position nor both Start/End are skipped, not fatal: one malformed
// record never discards the rest of the batch. The returned error slice holds
// one INVALID_ANNOTATION error per skipped record, for the caller to log.
func Normalize(recs []Record) ([]Annotation, []error) {
	anns := make([]Annotation, 0, len(recs))
	var errs []error

	for i, r := range recs {
		var start, end int
		switch {
		case r.Position != nil:
			start, end = *r.Position, *r.Position
		case r.Start != nil && r.End != nil:
			start, end = *r.Start, *r.End
		default:
			errs = append(errs, errors.New(errors.ErrCodeInvalidAnnotation,
				"record %d (%s): needs position or both start and end", i, recLabel(r)))
			continue
		}

		if start > end {
			start, end = end, start
		}

		display := Display(r.Display)
		if display == "" {
			display = DisplayBar
			if start == end {
				display = DisplayMarker
			}
		}

		anns = append(anns, Annotation{
			Start:   start,
			End:     end,
			Group:   r.Group,
			Label:   r.Label,
			Color:   r.Color,
			Display: display,
		})
	}
	return anns, errs
}

func recLabel(r Record) string {
	if r.Label != "" {
		return r.Label
	}
	if r.Group != "" {
		return r.Group
	}
	return "unnamed"
}

// SortByStart orders annotations by (Start, End) ascending, preserving the
// given order for equal keys.
func SortByStart(anns []Annotation) {
	sort.SliceStable(anns, func(i, j int) bool {
		if anns[i].Start != anns[j].Start {
			return anns[i].Start < anns[j].Start
		}
		return anns[i].End < anns[j].End
	})
}

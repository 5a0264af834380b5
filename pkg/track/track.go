// Package track turns fetched annotation data into displayable tracks and
// stacks them into a figure-ready arrangement.
//
// A [Track] bundles entries of one kind (structure coverage, ligand binding
// sites, domains, custom features) with the sizing and lane-assignment rules
// for that kind. Tracks are view-independent; calling [Track.Layout] with a
// view window produces the geometry for that window without mutating the
// track, so one stack can serve many zoom levels concurrently.
package track

import (
	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/layout"
)

// Kind identifies what a track displays. Rendering switches on it for
// kind-specific drawing (axis ticks, marker glyphs).
type Kind string

// Track kinds.
const (
	KindAxis   Kind = "axis"
	KindPDB    Kind = "pdb"
	KindLigand Kind = "ligand"
	KindDomain Kind = "domain"
	KindTED    Kind = "ted"
	KindCustom Kind = "custom"
)

// Entry is one visual entity on a track: a single structure's coverage, all
// binding sites of one ligand, all segments of one domain. Entries sharing a
// track are placed by the track's lane policy.
type Entry struct {
	Key     string             // stable identifier (PDB id, ligand id, accession)
	Label   string             // row label drawn next to the entry's lane
	Color   string             // CSS color; empty means the track default
	Display annotation.Display // bar or marker
	Spans   []layout.Span      // segments on the sequence axis, at least one
}

// Track is a configured annotation row group. The zero value is not usable;
// construct tracks with the kind constructors in this package.
type Track struct {
	Kind        Kind
	Label       string
	Mode        layout.Mode
	Policy      layout.Policy
	Params      layout.Params
	Padding     float64 // vertical padding for the current mode
	Color       string  // default entry color
	Entries     []Entry
	Placeholder string // message shown when nothing is visible
}

// Row is one placed entry: the entry plus its lane and view-clipped spans.
type Row struct {
	Entry Entry
	Lane  int
	Spans []layout.Span
}

// Geometry is the layout of one track for one view window.
type Geometry struct {
	Track   *Track
	Rows    []Row         // full mode: visible entries in input order
	Regions []layout.Span // collapse mode: merged disjoint regions
	Lanes   int
	Content float64 // height of the content block, excluding padding
}

// Empty reports whether nothing from this track is visible in the view.
func (g *Geometry) Empty() bool {
	return len(g.Rows) == 0 && len(g.Regions) == 0
}

// TotalHeight is the vertical space the track occupies in the figure,
// content plus padding above and below.
func (g *Geometry) TotalHeight() float64 {
	return g.Content + 1.5*g.Track.Padding
}

// Layout computes the track geometry for a view window. Entries outside the
// view are dropped; the remaining ones keep their relative order.
func (t *Track) Layout(view annotation.ViewWindow) *Geometry {
	items := make([]layout.Item, len(t.Entries))
	for i, e := range t.Entries {
		items[i] = layout.Item{Spans: e.Spans}
	}

	res := layout.Compute(items, view, t.Mode, t.Policy, t.Params)

	g := &Geometry{
		Track:   t,
		Regions: res.Regions,
		Lanes:   res.NumLanes,
		Content: res.ContentHeight,
	}
	for _, p := range res.Placements {
		g.Rows = append(g.Rows, Row{
			Entry: t.Entries[p.Index],
			Lane:  p.Lane,
			Spans: p.Spans,
		})
	}
	return g
}

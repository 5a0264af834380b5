package track

import (
	"fmt"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/fetch"
	"github.com/matzehuels/protviz/pkg/fetch/interpro"
	"github.com/matzehuels/protviz/pkg/fetch/pdbe"
	"github.com/matzehuels/protviz/pkg/fetch/ted"
	"github.com/matzehuels/protviz/pkg/layout"
)

// NewAxisTrack creates the residue-number axis drawn at the top of a stack.
func NewAxisTrack() *Track {
	return &Track{
		Kind:    KindAxis,
		Label:   "Sequence",
		Mode:    layout.ModeFull,
		Params:  layout.Params{RowHeight: 0.2},
		Padding: 0.1,
	}
}

// NewPDBTrack creates a structure-coverage track. Each structure is one
// entry; overlapping structures are packed into lanes first-fit, so input
// sorted by ascending start (as the PDBe client returns it) yields the
// minimal lane count.
func NewPDBTrack(coverage []pdbe.Coverage, mode layout.Mode) *Track {
	entries := make([]Entry, len(coverage))
	for i, c := range coverage {
		entries[i] = Entry{
			Key:     c.PDBID,
			Label:   c.PDBID,
			Display: annotation.DisplayBar,
			Spans:   []layout.Span{{Start: c.Span.Start, End: c.Span.End}},
		}
	}
	return &Track{
		Kind:        KindPDB,
		Label:       "PDB Coverage",
		Mode:        normalizeMode(mode, layout.ModeFull),
		Policy:      layout.PolicyFirstFit,
		Params:      layout.Params{RowHeight: 0.1, RowSpacing: 0.05},
		Padding:     0.1,
		Color:       ColorStructure,
		Entries:     entries,
		Placeholder: "No PDB data in view",
	}
}

// NewLigandTrack creates a ligand binding-site track. Each ligand gets its
// own lane holding all its interacting segments.
func NewLigandTrack(ligands []pdbe.LigandInteraction, mode layout.Mode) *Track {
	entries := make([]Entry, len(ligands))
	for i, lig := range ligands {
		entries[i] = Entry{
			Key:     lig.LigandID,
			Label:   lig.LigandID,
			Display: annotation.DisplayBar,
			Spans:   segmentsToSpans(lig.Sites),
		}
	}
	return &Track{
		Kind:        KindLigand,
		Label:       "Ligand Binding",
		Mode:        normalizeMode(mode, layout.ModeFull),
		Policy:      layout.PolicyDedicated,
		Params:      layout.Params{RowHeight: 0.1, RowSpacing: 0.1},
		Padding:     0.1,
		Color:       ColorLigand,
		Entries:     entries,
		Placeholder: "No ligand data in view",
	}
}

// NewDomainTrack creates a domain track from InterPro member-database
// signatures. The source name ("Pfam", "CATH-Gene3D") appears in the
// placeholder message; rows are labelled with the entry-type letter and the
// signature accession, e.g. "D: PF00042".
func NewDomainTrack(domains []interpro.Entry, source string, mode layout.Mode) *Track {
	entries := make([]Entry, 0, len(domains))
	for _, d := range domains {
		if len(d.Locations) == 0 {
			continue
		}
		entries = append(entries, Entry{
			Key:     d.Accession,
			Label:   fmt.Sprintf("%s: %s", interpro.TypeChar(d.Type), d.Accession),
			Display: annotation.DisplayBar,
			Spans:   segmentsToSpans(d.Locations),
		})
	}
	return &Track{
		Kind:        KindDomain,
		Label:       "Domains",
		Mode:        normalizeMode(mode, layout.ModeFull),
		Policy:      layout.PolicyDedicated,
		Params:      layout.Params{RowHeight: 0.2, RowSpacing: 0.05},
		Padding:     0.05,
		Color:       ColorFeature,
		Entries:     entries,
		Placeholder: fmt.Sprintf("No %s data in view", source),
	}
}

// NewTEDTrack creates a predicted-domain track from TED. Domains keep the
// upstream order; in full mode each gets its own lane and a palette color,
// collapse mode merges everything into a single row.
func NewTEDTrack(domains []ted.Domain, mode layout.Mode) *Track {
	mode = normalizeMode(mode, layout.ModeCollapse)

	entries := make([]Entry, len(domains))
	for i, d := range domains {
		color := ColorTED
		if mode == layout.ModeFull {
			color = PaletteColor(i)
		}
		entries[i] = Entry{
			Key:     d.Chopping,
			Label:   d.CATHLabel,
			Color:   color,
			Display: annotation.DisplayBar,
			Spans:   segmentsToSpans(d.Segments),
		}
	}

	padding := 0.02
	if mode == layout.ModeFull {
		padding = 0.15
	}
	return &Track{
		Kind:        KindTED,
		Label:       "TED Domains",
		Mode:        mode,
		Policy:      layout.PolicyDedicated,
		Params:      layout.Params{RowHeight: 0.2, RowSpacing: 0.1},
		Padding:     padding,
		Color:       ColorTED,
		Entries:     entries,
		Placeholder: "No TED domains in view",
	}
}

// NewCustomTrack creates a track from user-supplied annotations, one lane
// per annotation in the given order. Custom tracks have no collapse mode.
func NewCustomTrack(label string, anns []annotation.Annotation) *Track {
	entries := make([]Entry, len(anns))
	for i, a := range anns {
		entries[i] = Entry{
			Key:     a.Label,
			Label:   a.Label,
			Color:   a.Color,
			Display: a.Display,
			Spans:   []layout.Span{{Start: a.Start, End: a.End}},
		}
	}
	return &Track{
		Kind:        KindCustom,
		Label:       label,
		Mode:        layout.ModeFull,
		Policy:      layout.PolicyDedicated,
		Params:      layout.Params{RowHeight: 0.1, RowSpacing: 0.05},
		Padding:     0.1,
		Color:       ColorFeature,
		Entries:     entries,
		Placeholder: "No custom data in view",
	}
}

func normalizeMode(mode, fallback layout.Mode) layout.Mode {
	if mode.Valid() {
		return mode
	}
	return fallback
}

func segmentsToSpans(segments []fetch.Segment) []layout.Span {
	spans := make([]layout.Span, len(segments))
	for i, s := range segments {
		spans[i] = layout.Span{Start: s.Start, End: s.End}
	}
	return spans
}

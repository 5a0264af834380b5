package track

import (
	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/errors"
)

// Stack is an ordered set of tracks for one protein. Tracks are listed
// top-to-bottom: the first track appears at the top of the figure.
type Stack struct {
	Protein        string // UniProt accession, used in the figure title
	SequenceLength int
	Tracks         []*Track
}

// Band is one track positioned within an arrangement. Bottom is the y
// offset of the band's lower edge, measured upward from the figure bottom.
type Band struct {
	Geometry *Geometry
	Bottom   float64
}

// Arrangement is a fully positioned stack for one view window, ready for a
// renderer to draw.
type Arrangement struct {
	Protein        string
	SequenceLength int
	View           annotation.ViewWindow
	Zoomed         bool // view covers less than the whole sequence
	WindowAdjusted bool // requested view was degenerate and fell back to full
	Bands          []Band // same order as Stack.Tracks, top-to-bottom
	TotalHeight    float64
}

// Arrange lays out every track against the view and assigns vertical
// positions, bottom-up, with the last track at the bottom of the figure.
//
// A nil view means the whole sequence. A degenerate view (reversed or out of
// range) is not an error: the arrangement falls back to the full sequence
// and flags WindowAdjusted so callers can warn.
func (s *Stack) Arrange(view *annotation.ViewWindow) (*Arrangement, error) {
	if s.SequenceLength <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidWindow,
			"sequence length must be positive, got %d", s.SequenceLength)
	}
	if len(s.Tracks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTrack, "stack has no tracks")
	}

	full := annotation.FullSequence(s.SequenceLength)
	resolved := full
	adjusted := false
	if view != nil {
		var ok bool
		resolved, ok = annotation.Clamp(*view, s.SequenceLength)
		adjusted = !ok
	}

	arr := &Arrangement{
		Protein:        s.Protein,
		SequenceLength: s.SequenceLength,
		View:           resolved,
		Zoomed:         view != nil && resolved != full,
		WindowAdjusted: adjusted,
		Bands:          make([]Band, len(s.Tracks)),
	}

	y := 0.0
	for i := len(s.Tracks) - 1; i >= 0; i-- {
		g := s.Tracks[i].Layout(resolved)
		arr.Bands[i] = Band{Geometry: g, Bottom: y}
		y += g.TotalHeight()
	}
	arr.TotalHeight = y
	return arr, nil
}

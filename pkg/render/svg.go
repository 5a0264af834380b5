// Package render draws an arranged track stack as an SVG document.
//
// The renderer is a pure function of the arrangement: no I/O, no state. The
// SVG is written by hand into a buffer, which keeps the output byte-stable
// for a given input and easy to assert on in tests.
package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/protviz/pkg/annotation"
	"github.com/matzehuels/protviz/pkg/layout"
	"github.com/matzehuels/protviz/pkg/track"
)

const (
	marginLeft   = 70.0 // room for track labels
	marginRight  = 95.0 // room for row labels
	marginTop    = 45.0 // room for the title
	marginBottom = 40.0 // room for the axis caption

	trackLabelColor  = "gray"
	placeholderColor = "gray"
	axisColor        = "black"

	minBarWidth = 2.0 // px, keeps single-residue bars visible when zoomed out
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width float64 // total document width in px
	scale float64 // px per track height unit
}

// WithWidth sets the document width in pixels (default 960).
func WithWidth(px float64) SVGOption { return func(r *svgRenderer) { r.width = px } }

// WithScale sets the vertical pixels per track height unit (default 110).
func WithScale(px float64) SVGOption { return func(r *svgRenderer) { r.scale = px } }

// RenderSVG draws the arrangement into a standalone SVG document.
func RenderSVG(arr *track.Arrangement, opts ...SVGOption) []byte {
	r := svgRenderer{width: 960, scale: 110}
	for _, opt := range opts {
		opt(&r)
	}

	contentH := arr.TotalHeight * r.scale
	totalH := marginTop + contentH + marginBottom

	x := xScale{view: arr.View, left: marginLeft, right: r.width - marginRight}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f" font-family="Helvetica, Arial, sans-serif">`+"\n",
		r.width, totalH, r.width, totalH)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="white"/>`+"\n")

	renderTitle(&buf, arr, r.width)

	// y grows downward in SVG; track units grow upward from the figure
	// bottom. toY converts a height-unit offset to a pixel y.
	toY := func(units float64) float64 {
		return marginTop + contentH - units*r.scale
	}

	for _, band := range arr.Bands {
		renderBand(&buf, band, x, toY, r.scale)
	}

	caption := fmt.Sprintf(`  <text x="%.1f" y="%.1f" font-size="12" text-anchor="middle" fill="%s">Sequence Position</text>`+"\n",
		(x.left+x.right)/2, totalH-12, axisColor)
	buf.WriteString(caption)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderTitle(buf *bytes.Buffer, arr *track.Arrangement, width float64) {
	title := fmt.Sprintf("Protein: %s (Length: %d aa)", arr.Protein, arr.SequenceLength)
	if arr.Zoomed {
		title = fmt.Sprintf("Protein: %s (View: %d-%d aa / Total: %d aa)",
			arr.Protein, arr.View.Start, arr.View.End, arr.SequenceLength)
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="24" font-size="15" font-weight="bold" text-anchor="middle">%s</text>`+"\n",
		width/2, escape(title))
}

func renderBand(buf *bytes.Buffer, band track.Band, x xScale, toY func(float64) float64, scale float64) {
	g := band.Geometry
	t := g.Track
	contentBottom := band.Bottom + t.Padding

	if t.Kind == track.KindAxis {
		renderAxis(buf, x, toY(contentBottom+t.Params.RowHeight/2))
		return
	}

	midY := toY(contentBottom + g.Content/2)

	if t.Label != "" {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" text-anchor="end" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			x.left-8, midY, trackLabelColor, escape(t.Label))
	}

	if g.Empty() {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" text-anchor="middle" dominant-baseline="middle" fill="%s">%s</text>`+"\n",
			(x.left+x.right)/2, midY, placeholderColor, escape(t.Placeholder))
		return
	}

	rowH := t.Params.RowHeight * scale

	for _, region := range g.Regions {
		renderBar(buf, x, region, toY(contentBottom)-rowH, rowH, t.Color)
	}

	for _, row := range g.Rows {
		laneBottom := contentBottom + float64(row.Lane)*(t.Params.RowHeight+t.Params.RowSpacing)
		yTop := toY(laneBottom) - rowH

		color := row.Entry.Color
		if color == "" {
			color = t.Color
		}

		for _, span := range row.Spans {
			if row.Entry.Display == annotation.DisplayMarker {
				renderMarker(buf, x, span, yTop+rowH/2, rowH, color)
			} else {
				renderBar(buf, x, span, yTop, rowH, color)
			}
		}

		if row.Entry.Label != "" {
			fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="10" dominant-baseline="middle" fill="black">%s</text>`+"\n",
				x.right+6, yTop+rowH/2, escape(row.Entry.Label))
		}
	}
}

func renderBar(buf *bytes.Buffer, x xScale, span layout.Span, yTop, h float64, color string) {
	left := x.pos(float64(span.Start) - 0.5)
	w := x.pos(float64(span.End)+0.5) - left
	if w < minBarWidth {
		w = minBarWidth
	}
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="black" stroke-width="0.3"/>`+"\n",
		left, yTop, w, h, color)
}

func renderMarker(buf *bytes.Buffer, x xScale, span layout.Span, cy, rowH float64, color string) {
	cx := x.pos((float64(span.Start) + float64(span.End)) / 2)
	r := rowH * 0.45
	if r < 2.5 {
		r = 2.5
	}
	fmt.Fprintf(buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s" stroke="black" stroke-width="0.3"/>`+"\n",
		cx, cy, r, color)
}

func renderAxis(buf *bytes.Buffer, x xScale, y float64) {
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
		x.left, y, x.right, y, axisColor)

	step := tickInterval(x.view.Span())
	first := ((x.view.Start + step - 1) / step) * step
	for pos := first; pos <= x.view.End; pos += step {
		px := x.pos(float64(pos))
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			px, y, px, y+5, axisColor)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="9" text-anchor="middle" fill="%s">%d</text>`+"\n",
			px, y+16, axisColor, pos)
	}

	// Always mark the view boundaries.
	for _, pos := range []int{x.view.Start, x.view.End} {
		px := x.pos(float64(pos))
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="1"/>`+"\n",
			px, y, px, y+5, axisColor)
	}
}

// tickInterval picks a 1/2/5 x 10^k step that yields roughly ten ticks.
func tickInterval(span int) int {
	if span <= 10 {
		return 1
	}
	target := span / 10
	magnitude := 1
	for target >= 10 {
		target /= 10
		magnitude *= 10
	}
	switch {
	case target >= 5:
		return 5 * magnitude
	case target >= 2:
		return 2 * magnitude
	default:
		return magnitude
	}
}

// xScale maps sequence positions to pixel x coordinates. The half-residue
// padding on each side matches how bars are drawn, so a feature at the exact
// view edge is fully visible.
type xScale struct {
	view        annotation.ViewWindow
	left, right float64
}

func (s xScale) pos(residue float64) float64 {
	lo := float64(s.view.Start) - 0.5
	hi := float64(s.view.End) + 0.5
	return s.left + (residue-lo)/(hi-lo)*(s.right-s.left)
}

func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

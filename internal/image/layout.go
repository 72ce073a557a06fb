package imagepkg

import (
	"image"
	"math"
)

// Geometry is the canvas and spacing in render pixels, i.e. already multiplied
// by the supersampling scale.
type Geometry struct {
	Width, Height int
	Outer, Inner  int
	// LineSpacing is the extra gap between summary lines.
	LineSpacing int
	// TextOffset nudges text down from the top of its inset.
	TextOffset int
}

// SummaryWrapWidth is the width summaries are wrapped to.
func (g Geometry) SummaryWrapWidth() float64 {
	return float64(g.Width - 2*(g.Outer+2*g.Inner))
}

// CornerRadius is the radius of every rounded rectangle.
func (g Geometry) CornerRadius() float64 {
	return float64(g.Outer) / 4
}

// FontSizes are the pixel sizes of the title and summary faces.
type FontSizes struct {
	Title, Summary int
}

// FontScaling derives font sizes from the number of entries: each entry short of
// Reference grows both sizes by Step pixels.
type FontScaling struct {
	Reference int `yaml:"reference" validate:"gte=1"`
	Step      int `yaml:"step" validate:"gte=0"`
	Minimum   int `yaml:"minimum" validate:"gte=1"`
}

// ComputeFontSizes returns render-pixel font sizes for n entries. inner is the
// unscaled inner padding; the base sizes are three and two times inner.
func ComputeFontSizes(n, inner, scale int, fs FontScaling) FontSizes {
	delta := fs.Step * (fs.Reference - n)
	return FontSizes{
		Title:   max(3*inner+delta, fs.Minimum) * scale,
		Summary: max(2*inner+delta, fs.Minimum) * scale,
	}
}

// EntryMetrics is what layout needs to know about one measured entry.
type EntryMetrics struct {
	TitleWidth   float64
	SummaryLines int
}

// Box is the computed geometry of one entry card.
type Box struct {
	Card         image.Rectangle
	TitleInset   image.Rectangle
	SummaryInset image.Rectangle
	// Origins are the top-left corners of the first text line.
	TitleOrigin   image.Point
	SummaryOrigin image.Point
	Height        int
}

func titleBand(sizes FontSizes, g Geometry) int {
	return sizes.Title + g.Inner
}

func summaryTop(sizes FontSizes, g Geometry) int {
	return 2*g.Inner + titleBand(sizes, g)
}

func summaryHeight(lines int, sizes FontSizes, g Geometry) int {
	lines = max(lines, 1)
	return g.Inner + lines*sizes.Summary + (lines-1)*g.LineSpacing
}

// BoxHeight is the full card height for an entry with the given summary line count.
func BoxHeight(lines int, sizes FontSizes, g Geometry) int {
	return summaryTop(sizes, g) + summaryHeight(lines, sizes, g) + g.Inner
}

// RequiredHeight is the height of all cards stacked with one inner padding between them.
func RequiredHeight(metrics []EntryMetrics, sizes FontSizes, g Geometry) int {
	if len(metrics) == 0 {
		return 0
	}
	total := g.Inner * (len(metrics) - 1)
	for _, m := range metrics {
		total += BoxHeight(m.SummaryLines, sizes, g)
	}
	return total
}

// Layout stacks one card per entry, centered vertically on the canvas.
// Content taller than the canvas overflows top and bottom equally; it is never
// rescaled.
func Layout(metrics []EntryMetrics, sizes FontSizes, g Geometry) []Box {
	y := g.Height/2 - RequiredHeight(metrics, sizes, g)/2

	boxes := make([]Box, 0, len(metrics))
	for _, m := range metrics {
		height := BoxHeight(m.SummaryLines, sizes, g)
		top := y + summaryTop(sizes, g)

		boxes = append(boxes, Box{
			Card: image.Rect(g.Outer, y, g.Width-g.Outer, y+height),
			TitleInset: image.Rect(
				g.Outer+g.Inner, y+g.Inner,
				g.Outer+3*g.Inner+int(math.Ceil(m.TitleWidth)), y+g.Inner+titleBand(sizes, g),
			),
			SummaryInset: image.Rect(
				g.Outer+3*g.Inner, top,
				g.Width-g.Outer-3*g.Inner, top+summaryHeight(m.SummaryLines, sizes, g),
			),
			TitleOrigin:   image.Pt(g.Outer+2*g.Inner, y+g.Inner+g.TextOffset),
			SummaryOrigin: image.Pt(g.Outer+4*g.Inner, top+g.TextOffset),
			Height:        height,
		})

		y += height + g.Inner
	}
	return boxes
}

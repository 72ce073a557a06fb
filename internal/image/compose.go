package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"math/rand/v2"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/youruser/menucard/internal/menu"
	menuerrors "github.com/youruser/menucard/pkg/errors"
)

// Options controls the look of a rendered menu card. Pixel values are in output
// pixels; the renderer multiplies them by Scale internally.
type Options struct {
	Width        int
	Height       int
	OuterPadding int
	InnerPadding int
	Scale        int
	LineSpacing  int
	TextOffset   int
	Background   color.RGBA
	Foreground   color.RGBA
	// HueOffset is the angle between the gradient's start and end hues.
	HueOffset   float64
	FontScaling FontScaling
	// QRText, when set, adds a QR badge in the bottom-right corner.
	QRText string
	QRSize int
}

// DefaultOptions returns the stock 1080×1080 look.
func DefaultOptions() Options {
	return Options{
		Width:        1080,
		Height:       1080,
		OuterPadding: 96,
		InnerPadding: 16,
		Scale:        2,
		LineSpacing:  4,
		TextOffset:   4,
		Background:   color.RGBA{R: 29, G: 29, B: 29, A: 0xff},
		Foreground:   color.RGBA{R: 58, G: 58, B: 58, A: 0xff},
		HueOffset:    math.Pi,
		FontScaling:  FontScaling{Reference: 5, Step: 4, Minimum: 8},
		QRSize:       96,
	}
}

// HueSource supplies the random draw for the gradient hue. *rand.Rand satisfies it.
type HueSource interface {
	Float64() float64
}

// Renderer turns menu entries into a finished image.
type Renderer struct {
	font *Font
	opts Options
}

// NewRenderer checks opts and binds them to f.
func NewRenderer(f *Font, opts Options) (*Renderer, error) {
	if f == nil {
		return nil, fmt.Errorf("renderer: font is required")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid canvas %dx%d", opts.Width, opts.Height)
	}
	if opts.Scale < 1 {
		return nil, fmt.Errorf("renderer: scale must be at least 1, got %d", opts.Scale)
	}
	return &Renderer{font: f, opts: opts}, nil
}

// Options returns the renderer's options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Geometry returns the supersampled geometry used for layout.
func (r *Renderer) Geometry() Geometry {
	s := r.opts.Scale
	return Geometry{
		Width:       r.opts.Width * s,
		Height:      r.opts.Height * s,
		Outer:       r.opts.OuterPadding * s,
		Inner:       r.opts.InnerPadding * s,
		LineSpacing: r.opts.LineSpacing * s,
		TextOffset:  r.opts.TextOffset * s,
	}
}

// FontSizes returns the supersampled font sizes for n entries.
func (r *Renderer) FontSizes(n int) FontSizes {
	return ComputeFontSizes(n, r.opts.InnerPadding, r.opts.Scale, r.opts.FontScaling)
}

// Render draws entries with a gradient hue drawn from hue. A nil hue uses a
// freshly seeded source. Zero entries yield ErrEmptyInput.
func (r *Renderer) Render(entries []menu.Entry, hue HueSource) (*image.NRGBA, error) {
	if len(entries) == 0 {
		return nil, menuerrors.ErrEmptyInput
	}
	if hue == nil {
		hue = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return r.RenderAngle(entries, hue.Float64()*2*math.Pi)
}

// measured is one entry after wrapping.
type measured struct {
	entry menu.Entry
	lines []string
}

// RenderAngle is Render with an explicit gradient start angle.
func (r *Renderer) RenderAngle(entries []menu.Entry, angle float64) (*image.NRGBA, error) {
	if len(entries) == 0 {
		return nil, menuerrors.ErrEmptyInput
	}

	g := r.Geometry()
	sizes := r.FontSizes(len(entries))

	titleFace, err := r.font.Face(sizes.Title)
	if err != nil {
		return nil, err
	}
	defer titleFace.Close()
	summaryFace, err := r.font.Face(sizes.Summary)
	if err != nil {
		return nil, err
	}
	defer summaryFace.Close()

	titleMetric := NewMetric(titleFace)
	summaryMetric := NewMetric(summaryFace)

	items := make([]measured, len(entries))
	metrics := make([]EntryMetrics, len(entries))
	for i, e := range entries {
		lines := Wrap(e.Summary, summaryMetric, g.SummaryWrapWidth())
		items[i] = measured{entry: e, lines: lines}
		metrics[i] = EntryMetrics{TitleWidth: titleMetric.Width(e.Title), SummaryLines: len(lines)}
	}
	boxes := Layout(metrics, sizes, g)

	canvas := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	r.drawCards(canvas, boxes, g)
	if r.opts.QRText != "" {
		if err := r.drawBadge(canvas, g); err != nil {
			return nil, err
		}
	}

	mask := image.NewAlpha(canvas.Bounds())
	drawText(mask, items, boxes, titleFace, summaryFace, sizes.Summary+g.LineSpacing)
	threshold(mask)

	gradient := Gradient(Rainbow(angle), Rainbow(angle+r.opts.HueOffset), g.Width, g.Height)
	draw.DrawMask(canvas, canvas.Bounds(), gradient, image.Point{}, mask, image.Point{}, draw.Over)

	return imaging.Resize(canvas, r.opts.Width, r.opts.Height, imaging.Lanczos), nil
}

// drawCards paints the flat chrome: background, cards and their insets.
func (r *Renderer) drawCards(dst *image.RGBA, boxes []Box, g Geometry) {
	dc := gg.NewContextForRGBA(dst)
	dc.SetColor(r.opts.Background)
	dc.Clear()

	radius := g.CornerRadius()
	for _, b := range boxes {
		fillRoundedRect(dc, b.Card, radius, r.opts.Foreground)
		fillRoundedRect(dc, b.TitleInset, radius, r.opts.Background)
		fillRoundedRect(dc, b.SummaryInset, radius, r.opts.Background)
	}
}

func fillRoundedRect(dc *gg.Context, rect image.Rectangle, radius float64, c color.Color) {
	w, h := float64(rect.Dx()), float64(rect.Dy())
	radius = math.Min(radius, math.Min(w, h)/2)
	dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), w, h, radius)
	dc.SetColor(c)
	dc.Fill()
}

// drawText renders every title and summary line into mask. lineHeight is the
// distance between summary baselines.
func drawText(mask *image.Alpha, items []measured, boxes []Box, titleFace, summaryFace font.Face, lineHeight int) {
	titleAscent := titleFace.Metrics().Ascent.Ceil()
	summaryAscent := summaryFace.Metrics().Ascent.Ceil()

	d := &font.Drawer{Dst: mask, Src: image.Opaque}
	for i, item := range items {
		b := boxes[i]

		d.Face = titleFace
		d.Dot = fixed.P(b.TitleOrigin.X, b.TitleOrigin.Y+titleAscent)
		d.DrawString(item.entry.Title)

		d.Face = summaryFace
		for n, line := range item.lines {
			d.Dot = fixed.P(b.SummaryOrigin.X, b.SummaryOrigin.Y+summaryAscent+n*lineHeight)
			d.DrawString(line)
		}
	}
}

// threshold turns glyph coverage into a one-bit mask.
func threshold(mask *image.Alpha) {
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
}

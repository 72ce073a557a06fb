package imagepkg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	menuerrors "github.com/youruser/menucard/pkg/errors"
)

// Font is a parsed TrueType/OpenType font. Faces are derived per render since
// opentype faces are not safe for concurrent use.
type Font struct {
	otf *opentype.Font
}

// LoadFont reads and parses the font at path. Any failure is a ResourceError.
func LoadFont(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, menuerrors.NewResourceError(path, err)
	}
	f, err := ParseFont(data)
	if err != nil {
		return nil, menuerrors.NewResourceError(path, err)
	}
	return f, nil
}

// ParseFont parses raw font bytes.
func ParseFont(data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Font{otf: otf}, nil
}

// Face returns a face where one unit of size is one pixel.
func (f *Font) Face(size int) (font.Face, error) {
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create %dpx face: %w", size, err)
	}
	return face, nil
}

// Metric reports the rendered pixel width of a string.
type Metric interface {
	Width(s string) float64
}

type faceMetric struct {
	face font.Face
}

// NewMetric measures strings with face, including kerning.
func NewMetric(face font.Face) Metric {
	return faceMetric{face: face}
}

func (m faceMetric) Width(s string) float64 {
	return float64(font.MeasureString(m.face, s)) / 64
}

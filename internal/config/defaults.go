package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	imagepkg "github.com/youruser/menucard/internal/image"
)

// Default returns the configuration used when no file or overrides are given.
// Font has no default and must be supplied.
func Default() *Config {
	opts := imagepkg.DefaultOptions()
	return &Config{
		Output:      "image_output/out.jpg",
		JPEGQuality: 100,
		HueOffset:   opts.HueOffset,
		Canvas: Canvas{
			Width:        opts.Width,
			Height:       opts.Height,
			OuterPadding: opts.OuterPadding,
			InnerPadding: opts.InnerPadding,
			Scale:        opts.Scale,
			LineSpacing:  opts.LineSpacing,
			TextOffset:   opts.TextOffset,
		},
		Colors: Colors{
			Background: hexColor(opts.Background),
			Foreground: hexColor(opts.Foreground),
		},
		FontScaling: opts.FontScaling,
		QR:          QR{Size: opts.QRSize},
		Log:         Log{Level: "info", HumanReadable: true},
		Server:      Server{Addr: "127.0.0.1:8080"},
	}
}

// RenderOptions converts the configuration into renderer options.
func (c *Config) RenderOptions() (imagepkg.Options, error) {
	bg, err := ParseHexColor(c.Colors.Background)
	if err != nil {
		return imagepkg.Options{}, fmt.Errorf("colors.background: %w", err)
	}
	fg, err := ParseHexColor(c.Colors.Foreground)
	if err != nil {
		return imagepkg.Options{}, fmt.Errorf("colors.foreground: %w", err)
	}

	return imagepkg.Options{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		OuterPadding: c.Canvas.OuterPadding,
		InnerPadding: c.Canvas.InnerPadding,
		Scale:        c.Canvas.Scale,
		LineSpacing:  c.Canvas.LineSpacing,
		TextOffset:   c.Canvas.TextOffset,
		Background:   bg,
		Foreground:   fg,
		HueOffset:    c.HueOffset,
		FontScaling:  c.FontScaling,
		QRText:       c.QR.Text,
		QRSize:       c.QR.Size,
	}, nil
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHexColor parses #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseHexColor(s string) (color.RGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	digits := s[1:]
	if len(digits) == 3 || len(digits) == 4 {
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
	}
	if len(digits) == 6 {
		digits += "ff"
	}
	if len(digits) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

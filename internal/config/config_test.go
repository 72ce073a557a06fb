package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	menuerrors "github.com/youruser/menucard/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "menucard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultMatchesRendererDefaults(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Font = "font.ttf"
	require.NoError(t, cfg.Validate())

	opts, err := cfg.RenderOptions()
	require.NoError(t, err)
	require.Equal(t, 1080, opts.Width)
	require.Equal(t, 1080, opts.Height)
	require.Equal(t, 2, opts.Scale)
	require.Equal(t, color.RGBA{R: 29, G: 29, B: 29, A: 255}, opts.Background)
	require.Equal(t, color.RGBA{R: 58, G: 58, B: 58, A: 255}, opts.Foreground)
	require.InDelta(t, math.Pi, opts.HueOffset, 1e-12)
}

func TestLoadOverlaysFile(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
font: fonts/CaviarDreams.ttf
output: out/menu.png
canvas:
  width: 1200
  scale: 3
colors:
  background: "#000"
qr:
  text: https://example.com/menu
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())
	require.Equal(t, "fonts/CaviarDreams.ttf", cfg.Font)
	require.Equal(t, 1200, cfg.Canvas.Width)
	require.Equal(t, 1080, cfg.Canvas.Height)
	require.Equal(t, 3, cfg.Canvas.Scale)
	require.Equal(t, 16, cfg.Canvas.InnerPadding)

	opts, err := cfg.RenderOptions()
	require.NoError(t, err)
	require.Equal(t, color.RGBA{A: 255}, opts.Background)
	require.Equal(t, "https://example.com/menu", opts.QRText)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadReportsParseErrors(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *menuerrors.ParseError
	require.ErrorAs(t, err, &parseErr)

	path := writeConfig(t, "canvas:\n  width: [wide\n")
	_, err = Load(path)
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "missing font", mutate: func(c *Config) { c.Font = "" }, field: "font"},
		{name: "tiny canvas", mutate: func(c *Config) { c.Canvas.Width = 10 }, field: "canvas.width"},
		{name: "zero scale", mutate: func(c *Config) { c.Canvas.Scale = 0 }, field: "canvas.scale"},
		{name: "bad color", mutate: func(c *Config) { c.Colors.Foreground = "gray" }, field: "colors.foreground"},
		{name: "quality", mutate: func(c *Config) { c.JPEGQuality = 101 }, field: "jpegquality"},
		{name: "log level", mutate: func(c *Config) { c.Log.Level = "loud" }, field: "log.level"},
		{name: "address", mutate: func(c *Config) { c.Server.Addr = "nowhere" }, field: "server.addr"},
		{name: "padding", mutate: func(c *Config) { c.Canvas.OuterPadding = 600 }, field: "canvas.outer_padding"},
		{name: "qr too big", mutate: func(c *Config) { c.QR.Text = "x"; c.QR.Size = 2000 }, field: "qr.size"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			cfg.Font = "font.ttf"
			tc.mutate(cfg)

			err := cfg.Validate()
			var validationErr *menuerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestApplyEnvFromDotEnv(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MENUCARD_FONT=/fonts/a.ttf\nMENUCARD_LOG_LEVEL=debug\nMENUCARD_ADDR=0.0.0.0:9000\n"), 0o644))

	values, err := godotenv.Read(path)
	require.NoError(t, err)

	cfg := Default()
	ApplyEnv(cfg, MapLookup(values))
	require.Equal(t, "/fonts/a.ttf", cfg.Font)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	require.Equal(t, "image_output/out.jpg", cfg.Output)
}

func TestLoadDotEnvMissingFileIsFine(t *testing.T) {
	t.Parallel()

	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	tests := map[string]color.RGBA{
		"#1d1d1d":   {R: 29, G: 29, B: 29, A: 255},
		"#fff":      {R: 255, G: 255, B: 255, A: 255},
		"#11223344": {R: 0x11, G: 0x22, B: 0x33, A: 0x44},
		"#abcd":     {R: 0xaa, G: 0xbb, B: 0xcc, A: 0xdd},
	}
	for in, want := range tests {
		got, err := ParseHexColor(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "1d1d1d", "#12", "#ggg"} {
		_, err := ParseHexColor(bad)
		require.Error(t, err, bad)
	}
}

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	menuerrors "github.com/youruser/menucard/pkg/errors"
)

type fixture struct {
	dir     string
	font    string
	entries string
	config  string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()

	fx := fixture{
		dir:     dir,
		font:    filepath.Join(dir, "goregular.ttf"),
		entries: filepath.Join(dir, "entries.yaml"),
		config:  filepath.Join(dir, "menucard.yaml"),
	}
	require.NoError(t, os.WriteFile(fx.font, goregular.TTF, 0o644))
	require.NoError(t, os.WriteFile(fx.entries, []byte(`
entries:
  - title: Monday
    summary: Pasta with meat sauce
    published_at: 2024-09-02T11:00:00Z
  - title: Tuesday
    summary: Fish and potatoes
    published_at: 2024-09-03T11:00:00Z
  - title: Next Monday
    summary: Pancakes
    published_at: 2024-09-09T11:00:00Z
`), 0o644))
	require.NoError(t, os.WriteFile(fx.config, []byte(`
canvas:
  width: 256
  height: 256
  outer_padding: 24
  inner_padding: 4
log:
  level: error
  human_readable: false
`), 0o644))
	return fx
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRenderCommandWritesImageAndAltText(t *testing.T) {
	fx := newFixture(t)
	output := filepath.Join(fx.dir, "out", "menu.png")
	alt := filepath.Join(fx.dir, "out", "menu.txt")

	stdout, err := execute(t,
		"render",
		"--config", fx.config,
		"--env-file", filepath.Join(fx.dir, "missing.env"),
		"--entries", fx.entries,
		"--font", fx.font,
		"--output", output,
		"--seed", "11",
		"--mode", "week",
		"--date", "2024-09-04",
		"--alt-text", alt,
	)
	require.NoError(t, err)
	require.Equal(t, output, strings.TrimSpace(stdout))

	f, err := os.Open(output)
	require.NoError(t, err)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 256, cfg.Width)
	require.Equal(t, 256, cfg.Height)

	text, err := os.ReadFile(alt)
	require.NoError(t, err)
	require.Equal(t, "Monday\n  Pasta with meat sauce\nTuesday\n  Fish and potatoes\n", string(text))
}

func TestRenderCommandSeedIsReproducible(t *testing.T) {
	fx := newFixture(t)
	first := filepath.Join(fx.dir, "a.png")
	second := filepath.Join(fx.dir, "b.png")

	for _, out := range []string{first, second} {
		_, err := execute(t, "render", "-c", fx.config, "--env-file", filepath.Join(fx.dir, "none"),
			"-e", fx.entries, "--font", fx.font, "-o", out, "--seed", "5")
		require.NoError(t, err)
	}

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRenderCommandMissingFont(t *testing.T) {
	fx := newFixture(t)
	output := filepath.Join(fx.dir, "menu.jpg")

	_, err := execute(t, "render", "-c", fx.config, "--env-file", filepath.Join(fx.dir, "none"),
		"-e", fx.entries, "--font", filepath.Join(fx.dir, "nope.ttf"), "-o", output)

	var resErr *menuerrors.ResourceError
	require.ErrorAs(t, err, &resErr)
	_, statErr := os.Stat(output)
	require.True(t, os.IsNotExist(statErr))
}

func TestRenderCommandEmptySelection(t *testing.T) {
	fx := newFixture(t)

	_, err := execute(t, "render", "-c", fx.config, "--env-file", filepath.Join(fx.dir, "none"),
		"-e", fx.entries, "--font", fx.font, "-o", filepath.Join(fx.dir, "menu.jpg"),
		"--mode", "day", "--date", "2024-09-05")
	require.ErrorIs(t, err, menuerrors.ErrEmptyInput)
}

func TestRenderCommandRequiresEntries(t *testing.T) {
	_, err := execute(t, "render")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "menucard dev")
}

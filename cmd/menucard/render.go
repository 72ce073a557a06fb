package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/youruser/menucard/internal/config"
	imagepkg "github.com/youruser/menucard/internal/image"
	"github.com/youruser/menucard/internal/menu"
	"github.com/youruser/menucard/internal/util"
)

type renderOptions struct {
	EntriesPath string
	Font        string
	Output      string
	Seed        uint64
	HasSeed     bool
	Mode        string
	Date        string
	AltText     string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render menu entries to an image file",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.HasSeed = cmd.Flags().Changed("seed")
			return runRender(cmd.OutOrStdout(), root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.EntriesPath, "entries", "e", "", "YAML or JSON file with menu entries")
	cmd.Flags().StringVar(&opts.Font, "font", "", "TrueType/OpenType font file (overrides config)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output image path, .jpg or .png (overrides config)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "Seed for the gradient hue; random when unset")
	cmd.Flags().StringVar(&opts.Mode, "mode", menu.ModeAll, "Entry selection: all, day or week")
	cmd.Flags().StringVar(&opts.Date, "date", "", "Reference date for day/week selection (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&opts.AltText, "alt-text", "", "Also write a plain-text description to this path")
	cmd.MarkFlagRequired("entries") //nolint:errcheck

	return cmd
}

func runRender(out io.Writer, root *rootFlags, opts renderOptions) error {
	cfg, err := loadConfig(root, func(c *config.Config) {
		if opts.Font != "" {
			c.Font = opts.Font
		}
		if opts.Output != "" {
			c.Output = opts.Output
		}
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	date := time.Now()
	if strings.TrimSpace(opts.Date) != "" {
		date, err = time.ParseInLocation("2006-01-02", opts.Date, time.Local)
		if err != nil {
			return fmt.Errorf("parse --date: %w", err)
		}
	}

	entries, err := menu.LoadEntries(opts.EntriesPath)
	if err != nil {
		return err
	}
	selected, err := menu.Select(entries, menu.SelectOptions{Mode: opts.Mode, Date: date})
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{"loaded": len(entries), "selected": len(selected), "mode": opts.Mode}).Debug("entries loaded")

	font, err := imagepkg.LoadFont(cfg.Font)
	if err != nil {
		return err
	}
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	renderer, err := imagepkg.NewRenderer(font, renderOpts)
	if err != nil {
		return err
	}

	var hue imagepkg.HueSource
	if opts.HasSeed {
		hue = rand.New(rand.NewPCG(opts.Seed, 0))
	}

	log.WithFields(map[string]any{"entries": len(selected), "output": cfg.Output}).Info("generating image")
	img, err := renderer.Render(selected, hue)
	if err != nil {
		return err
	}
	if err := imagepkg.Save(img, cfg.Output, cfg.JPEGQuality); err != nil {
		return err
	}
	log.WithFields(map[string]any{"output": cfg.Output}).Info("image saved")

	if opts.AltText != "" {
		err := util.WriteFileAtomic(opts.AltText, func(w io.Writer) error {
			_, err := io.WriteString(w, menu.ExportText(selected)+"\n")
			return err
		})
		if err != nil {
			return fmt.Errorf("write alt text: %w", err)
		}
	}

	fmt.Fprintln(out, cfg.Output)
	return nil
}

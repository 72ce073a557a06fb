package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/youruser/menucard/internal/api"
	"github.com/youruser/menucard/internal/config"
	imagepkg "github.com/youruser/menucard/internal/image"
)

func newServeCmd(root *rootFlags) *cobra.Command {
	var addr, font string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the render API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, root, addr, font)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&font, "font", "", "TrueType/OpenType font file (overrides config)")

	return cmd
}

func runServe(ctx context.Context, root *rootFlags, addr, font string) error {
	cfg, err := loadConfig(root, func(c *config.Config) {
		if addr != "" {
			c.Server.Addr = addr
		}
		if font != "" {
			c.Font = font
		}
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	f, err := imagepkg.LoadFont(cfg.Font)
	if err != nil {
		return err
	}
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	renderer, err := imagepkg.NewRenderer(f, renderOpts)
	if err != nil {
		return err
	}

	if !root.verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewEngine(api.NewHandler(renderer, cfg.JPEGQuality, log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(map[string]any{"addr": cfg.Server.Addr}).Info("starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/youruser/menucard/internal/config"
	"github.com/youruser/menucard/internal/logger"
)

type rootFlags struct {
	configPath string
	envFile    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "menucard",
		Short:         "menucard renders a daily menu as a square social-media image",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.envFile, "env-file", ".env", "Optional .env file with MENUCARD_* overrides")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadConfig merges defaults, the config file and the environment, lets the
// command apply its own flag overrides, then validates the result.
func loadConfig(flags *rootFlags, override func(*config.Config)) (*config.Config, error) {
	if err := config.LoadDotEnv(flags.envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	config.ApplyEnv(cfg, os.LookupEnv)
	if flags.verbose {
		cfg.Log.Level = "debug"
	}
	if override != nil {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.HumanReadable})
}

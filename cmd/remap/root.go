package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/almanac"
	"github.com/katalvlaran/remap/internal/config"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	log        *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "remap",
		Short: "Interval remapping pipelines",
		Long: `remap reads an almanac (seeds plus a chain of interval maps) and answers
point and range queries through the whole chain.

Commands:
  solve     lowest location of the seeds, as points and as ranges
  compose   merge every map into one equivalent map
  locate    follow values through the maps`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default .remap.yaml in . or $HOME)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(newSolveCommand(a))
	rootCmd.AddCommand(newComposeCommand(a))
	rootCmd.AddCommand(newLocateCommand(a))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// setup loads the configuration with this command's flags bound and builds
// the logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	return nil
}

// load parses the almanac at path and logs its shape.
func (a *app) load(path string) (*almanac.Almanac, error) {
	alm, err := almanac.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	a.log.Info("parsed almanac", "file", path, "seeds", len(alm.Seeds), "maps", len(alm.Maps))

	return alm, nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/category"
	"github.com/katalvlaran/remap/internal/config"
	"github.com/katalvlaran/remap/internal/render"
)

func newComposeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compose <file>",
		Short: "Merge every map of the almanac into one equivalent map",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.load(args[0])
			if err != nil {
				return err
			}

			composed := alm.Pipeline().Compose(category.WithOnPiece(func(pc category.Piece) {
				a.log.Debug("piece", "interval", pc.Interval.String(), "first", pc.ViaFirst, "second", pc.ViaSecond)
			}))

			out := cmd.OutOrStdout()
			switch a.cfg.Format {
			case config.FormatYAML:
				return render.YAML(out, composed)
			case config.FormatText:
				return render.Text(out, composed)
			default:
				return render.Table(out, composed)
			}
		},
	}

	cmd.Flags().String("format", config.DefaultFormat, "output format: table, yaml or text")

	return cmd
}

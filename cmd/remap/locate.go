package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/internal/render"
)

func newLocateCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate <file> [value...]",
		Short: "Follow values (default: the seeds) through every map",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]uint64, 0, len(args)-1)
			for _, s := range args[1:] {
				v, err := strconv.ParseUint(s, 10, 64)
				if err != nil {
					return fmt.Errorf("value %q: %w", s, err)
				}
				values = append(values, v)
			}

			alm, err := a.load(args[0])
			if err != nil {
				return err
			}
			if len(values) == 0 {
				values = alm.Seeds
			}
			p := alm.Pipeline()
			out := cmd.OutOrStdout()

			if a.cfg.Trace {
				header := []string{"value"}
				if len(alm.Maps) > 0 {
					header[0] = alm.Maps[0].From
				}
				for _, m := range alm.Maps {
					header = append(header, m.To)
				}
				traces := make([][]uint64, 0, len(values))
				for _, v := range values {
					traces = append(traces, p.Trace(v))
				}

				return render.Traces(out, header, traces)
			}

			for _, v := range values {
				if _, err := fmt.Fprintf(out, "%d -> %d\n", v, p.Locate(v)); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().Bool("trace", false, "show the value after every map")

	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/remap/internal/config"
	"github.com/katalvlaran/remap/internal/render"
	"github.com/katalvlaran/remap/pipeline"
)

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve <file>",
		Short: "Lowest location of the seeds as points and as (start, length) ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.load(args[0])
			if err != nil {
				return err
			}

			p := alm.Pipeline()
			composed := p.Compose()
			a.log.Debug("composed pipeline", "stages", p.Len(), "intervals", composed.Len())

			lowSeed, err := p.MinimumOverSeeds()
			if err != nil {
				return err
			}

			strategy := a.cfg.PipelineStrategy()
			res := render.Result{
				Seeds:      len(alm.Seeds),
				Stages:     p.Len(),
				Composed:   composed.Len(),
				Strategy:   strategy.String(),
				LowestSeed: lowSeed,
			}

			ranges, err := alm.SeedRanges()
			if err == nil {
				res.LowestRange, err = p.MinimumOverRanges(ranges,
					pipeline.WithStrategy(strategy),
					pipeline.WithComposed(composed),
					pipeline.WithOnRun(func(r pipeline.Range, low uint64) {
						a.log.Debug("run", "range", r.String(), "low", low)
					}),
				)
			}
			if err != nil {
				a.log.Warn("range query skipped", "error", err)
				res.RangesFailed = err
			}

			return render.Summary(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().String("strategy", config.DefaultStrategy, "range strategy: composed or propagate")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FloorFit/internal/engine"
)

func newCompareCmd() *cobra.Command {
	opts := placeOptions{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every scoring strategy and report which fits the plan best",
		Long: `Run every scoring strategy and report which fits the plan best.

Each strategy runs the full pipeline on the same plan and seed, so the
comparison isolates the effect of the scoring function. The strategy with
the most placed units wins; coverage breaks ties.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.planPath, "plan", "p", "", "floor plan DXF file")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "plan width when no DXF is given")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "plan height when no DXF is given")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "settings file (TOML)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (overrides settings)")
	cmd.Flags().IntVar(&opts.count, "count", 0, "target unit count (overrides settings)")

	return cmd
}

func runCompare(cmd *cobra.Command, opts placeOptions) error {
	logger := loggerFromContext(cmd.Context())

	settings, err := resolveSettings(opts)
	if err != nil {
		return err
	}
	plan, err := loadPlan(opts, logger)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	results := engine.CompareStrategies(plan, settings)
	prog.done("Compared strategies")

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-14s %8s %8s %10s\n", "STRATEGY", "PLACED", "SKIPPED", "COVERAGE")
	for _, r := range results {
		fmt.Fprintf(out, "%-14s %8d %8d %9.1f%%\n", r.Strategy, r.Placed, r.Skipped, r.Coverage*100)
	}
	if best, ok := engine.BestStrategy(results); ok {
		fmt.Fprintf(out, "\nbest: %s\n", best.Strategy)
	}
	return nil
}

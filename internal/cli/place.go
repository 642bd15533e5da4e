package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/FloorFit/internal/engine"
	"github.com/piwi3910/FloorFit/internal/export"
	"github.com/piwi3910/FloorFit/internal/importer"
	"github.com/piwi3910/FloorFit/internal/model"
	"github.com/piwi3910/FloorFit/internal/project"
)

// placeOptions collects every input the place command accepts.
type placeOptions struct {
	planPath   string
	width      float64
	height     float64
	specsPath  string
	configPath string
	preset     string
	strategy   string
	seed       int64
	count      int
	outDir     string
	name       string
	labels     bool
	graph      bool
}

func newPlaceCmd() *cobra.Command {
	opts := placeOptions{}

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Run placement and corridor synthesis on a floor plan",
		Long: `Run placement and corridor synthesis on a floor plan.

The plan is read from a DXF file (--plan) or built as an empty rectangle
(--width/--height) with an entrance on the left wall. Unit specs are either
generated from the configured size distribution or imported from a CSV or
Excel file (--specs).

Outputs are written to the output directory: a project file (JSON), a PDF
report, and optionally unit labels and a corridor network graph.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlace(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.planPath, "plan", "p", "", "floor plan DXF file")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "plan width when no DXF is given")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "plan height when no DXF is given")
	cmd.Flags().StringVarP(&opts.specsPath, "specs", "s", "", "unit spec file (CSV or Excel)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "settings file (TOML)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "named settings preset")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "scoring strategy: balanced, compact, wall-hugging")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (overrides settings)")
	cmd.Flags().IntVar(&opts.count, "count", 0, "target unit count (overrides settings)")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.name, "name", "layout", "base name for output files")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "also write a printable unit label sheet")
	cmd.Flags().BoolVar(&opts.graph, "graph", false, "also write the corridor network as SVG")

	return cmd
}

func runPlace(cmd *cobra.Command, opts placeOptions) error {
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
	var result engine.Result
	if opts.specsPath != "" {
		specs, err := loadSpecs(opts.specsPath, logger)
		if err != nil {
			return err
		}
		result = engine.RunWithSpecs(plan, settings, specs)
	} else {
		result = engine.Run(plan, settings)
	}
	prog.done(fmt.Sprintf("Placed %d units, %d corridors",
		result.Stats.TotalUnits, result.Stats.CorridorCount))

	if result.Stats.SkippedSpecs > 0 {
		logger.Warnf("%d unit specs could not be placed", result.Stats.SkippedSpecs)
	}

	return writeOutputs(opts, result, logger)
}

// resolveSettings layers settings sources: preset or TOML file first, then
// individual flag overrides.
func resolveSettings(opts placeOptions) (model.PlaceSettings, error) {
	settings := model.DefaultPlaceSettings()

	switch {
	case opts.preset != "":
		custom, err := project.LoadCustomPresets(project.DefaultPresetsPath())
		if err != nil {
			return settings, fmt.Errorf("load presets: %w", err)
		}
		p, ok := project.FindPreset(opts.preset, custom)
		if !ok {
			return settings, fmt.Errorf("unknown preset %q", opts.preset)
		}
		settings = p.Settings
	case opts.configPath != "":
		s, err := model.LoadPlaceSettings(opts.configPath)
		if err != nil {
			return settings, err
		}
		settings = s
	}

	if opts.strategy != "" {
		strategy := model.Strategy(opts.strategy)
		switch strategy {
		case model.StrategyBalanced, model.StrategyCompact, model.StrategyWallHugging:
			settings.Strategy = strategy
		default:
			return settings, fmt.Errorf("unknown strategy %q", opts.strategy)
		}
	}
	if opts.seed != 0 {
		settings.Seed = opts.seed
	}
	if opts.count != 0 {
		settings.TargetCount = opts.count
	}
	return settings, nil
}

// loadPlan reads the plan from DXF, or builds a rectangular plan with a
// single left-wall entrance when only dimensions are given.
func loadPlan(opts placeOptions, logger *log.Logger) (model.FloorPlan, error) {
	if opts.planPath != "" {
		result := importer.ImportPlanDXF(opts.planPath)
		for _, w := range result.Warnings {
			logger.Warn(w)
		}
		if len(result.Errors) > 0 {
			return model.FloorPlan{}, fmt.Errorf("import plan: %s", strings.Join(result.Errors, "; "))
		}
		return result.Plan, nil
	}
	if opts.width <= 0 || opts.height <= 0 {
		return model.FloorPlan{}, fmt.Errorf("either --plan or both --width and --height are required")
	}
	return model.FloorPlan{
		Bounds: model.Bounds{MinX: 0, MinY: 0, MaxX: opts.width, MaxY: opts.height},
		Entrances: []model.Entrance{
			{ID: "entrance-0", Position: model.Point2D{X: 0, Y: opts.height / 2}},
		},
	}, nil
}

func loadSpecs(path string, logger *log.Logger) ([]model.UnitSpec, error) {
	var result importer.SpecResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		result = importer.ImportExcel(path)
	default:
		result = importer.ImportCSV(path)
	}
	for _, w := range result.Warnings {
		logger.Warn(w)
	}
	if len(result.Errors) > 0 {
		return nil, fmt.Errorf("import specs: %s", strings.Join(result.Errors, "; "))
	}
	if len(result.Specs) == 0 {
		return nil, fmt.Errorf("spec file %s contains no usable rows", path)
	}
	return result.Specs, nil
}

func writeOutputs(opts placeOptions, result engine.Result, logger *log.Logger) error {
	projectPath := filepath.Join(opts.outDir, opts.name+".json")
	if err := project.Save(projectPath, opts.name, result); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	logger.Info("Wrote project", "path", projectPath)

	pdfPath := filepath.Join(opts.outDir, opts.name+".pdf")
	if err := export.ExportPDF(pdfPath, result); err != nil {
		return fmt.Errorf("export PDF: %w", err)
	}
	logger.Info("Wrote report", "path", pdfPath)

	if opts.labels {
		labelsPath := filepath.Join(opts.outDir, opts.name+"-labels.pdf")
		if err := export.ExportLabels(labelsPath, result.Units); err != nil {
			return fmt.Errorf("export labels: %w", err)
		}
		logger.Info("Wrote labels", "path", labelsPath)
	}
	if opts.graph {
		graphPath := filepath.Join(opts.outDir, opts.name+"-corridors.svg")
		if err := export.ExportGraph(graphPath, result); err != nil {
			return fmt.Errorf("export graph: %w", err)
		}
		logger.Info("Wrote corridor graph", "path", graphPath)
	}

	// Track the project in the recent list; failure here is not fatal.
	configPath := project.DefaultConfigPath()
	if config, err := project.LoadAppConfig(configPath); err == nil {
		config.AddRecentProject(projectPath)
		config.LastExportDir = opts.outDir
		_ = project.SaveAppConfig(configPath, config)
	}
	return nil
}

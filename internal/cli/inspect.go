package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FloorFit/internal/export"
	"github.com/piwi3910/FloorFit/internal/model"
	"github.com/piwi3910/FloorFit/internal/project"
)

func newInspectCmd() *cobra.Command {
	var (
		pdfPath   string
		graphPath string
	)

	cmd := &cobra.Command{
		Use:   "inspect [project.json]",
		Short: "Summarize a saved project and optionally re-export it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := project.Load(args[0])
			if err != nil {
				return fmt.Errorf("load project %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			stats := file.Result.Stats
			if file.Name != "" {
				fmt.Fprintf(out, "project:          %s\n", file.Name)
			}
			fmt.Fprintf(out, "units placed:     %d (%d specs skipped)\n", stats.TotalUnits, stats.SkippedSpecs)
			fmt.Fprintf(out, "total area:       %.1f m² (avg %.1f m²)\n", stats.TotalArea, stats.AverageArea)
			fmt.Fprintf(out, "coverage:         %.1f%%\n", stats.Coverage*100)
			fmt.Fprintf(out, "rows:             %d\n", stats.RowCount)
			fmt.Fprintf(out, "corridors:        %d (%d mandatory, %.1fm total)\n",
				stats.CorridorCount, stats.MandatoryCount, stats.CorridorLength)
			for _, cat := range model.SizeCategories {
				if n := stats.PerCategory[cat]; n > 0 {
					fmt.Fprintf(out, "  %-8s %d\n", cat, n)
				}
			}

			if pdfPath != "" {
				if err := export.ExportPDF(pdfPath, file.Result); err != nil {
					return fmt.Errorf("export PDF: %w", err)
				}
				fmt.Fprintf(out, "wrote %s\n", pdfPath)
			}
			if graphPath != "" {
				if err := export.ExportGraph(graphPath, file.Result); err != nil {
					return fmt.Errorf("export graph: %w", err)
				}
				fmt.Fprintf(out, "wrote %s\n", graphPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pdfPath, "pdf", "", "re-export the PDF report to this path")
	cmd.Flags().StringVar(&graphPath, "graph", "", "re-export the corridor graph (svg, png, or dot)")

	return cmd
}

package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with
// values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the floorfit CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. Default level is info; --verbose (-v) enables debug.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "floorfit",
		Short:        "FloorFit places space units and synthesizes corridor networks",
		Long:         `FloorFit is a CLI tool for automated floor plan layout: it places rectangular space units inside a plan under spacing and clearance constraints, groups them into rows, and synthesizes a connected corridor network with entrance access.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("floorfit %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlaceCmd())
	root.AddCommand(newCompareCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newPresetsCmd())
	root.AddCommand(newBackupCmd())

	return root.ExecuteContext(context.Background())
}

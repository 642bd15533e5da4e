package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FloorFit/internal/project"
)

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import all application data",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export [file.json]",
		Short: "Export app config and custom presets to a single file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := project.LoadAppConfig(project.DefaultConfigPath())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			presets, err := project.LoadCustomPresets(project.DefaultPresetsPath())
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			if err := project.ExportAllData(args[0], config, presets); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import [file.json]",
		Short: "Restore app config and custom presets from a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if err := project.SaveCustomPresets(project.DefaultPresetsPath(), backup.Presets); err != nil {
				return fmt.Errorf("save presets: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "restored config and %d presets\n", len(backup.Presets))
			return nil
		},
	})

	return cmd
}

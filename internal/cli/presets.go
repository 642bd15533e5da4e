package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/piwi3910/FloorFit/internal/project"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List, export, and import parameter presets",
	}
	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsExportCmd())
	cmd.AddCommand(newPresetsImportCmd())
	return cmd
}

func newPresetsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List built-in and custom presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomPresets(project.DefaultPresetsPath())
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, p := range project.AllPresets(custom) {
				kind := "custom"
				if p.IsBuiltIn {
					kind = "built-in"
				}
				fmt.Fprintf(out, "%-16s %-9s strategy=%s seed=%d\n",
					p.Name, kind, p.Settings.Strategy, p.Settings.Seed)
			}
			return nil
		},
	}
}

func newPresetsExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export a preset to a JSON file for sharing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			custom, err := project.LoadCustomPresets(project.DefaultPresetsPath())
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			p, ok := project.FindPreset(args[0], custom)
			if !ok {
				return fmt.Errorf("unknown preset %q", args[0])
			}
			p.IsBuiltIn = false
			data, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "preset.json", "output file")
	return cmd
}

func newPresetsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file.json]",
		Short: "Import a preset and add it to the custom presets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var p project.Preset
			if err := json.Unmarshal(data, &p); err != nil {
				return fmt.Errorf("parse preset: %w", err)
			}
			if p.Name == "" {
				return fmt.Errorf("imported preset has no name")
			}
			p.IsBuiltIn = false

			path := project.DefaultPresetsPath()
			custom, err := project.LoadCustomPresets(path)
			if err != nil {
				return fmt.Errorf("load presets: %w", err)
			}
			// Replace any existing preset of the same name.
			kept := custom[:0]
			for _, c := range custom {
				if c.Name != p.Name {
					kept = append(kept, c)
				}
			}
			kept = append(kept, p)
			if err := project.SaveCustomPresets(path, kept); err != nil {
				return fmt.Errorf("save presets: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %q\n", p.Name)
			return nil
		},
	}
}

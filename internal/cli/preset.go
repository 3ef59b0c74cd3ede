// Package cli provides preset management commands.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetCmd)
	presetCmd.AddCommand(presetListCmd)
	presetCmd.AddCommand(presetApplyCmd)
	presetCmd.AddCommand(presetRenameCmd)
	presetCmd.AddCommand(presetDeleteCmd)
}

var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage presets",
	Long:  "List, apply, rename and delete saved token presets.",
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := context.Background()
		presets, err := a.engine.ListPresets(ctx)
		if err != nil {
			return err
		}
		if len(presets) == 0 {
			fmt.Println("No presets saved.")
			return nil
		}

		sourceID := a.engine.Draft().SourcePresetID
		rows := make([][]string, 0, len(presets))
		for _, preset := range presets {
			rows = append(rows, []string{
				preset.ID,
				preset.Name,
				fmt.Sprintf("%d", len(preset.Versions)),
				preset.UpdatedAt.Local().Format("2006-01-02 15:04"),
				formatYesNo(preset.ID == sourceID),
			})
		}
		return writeTable(os.Stdout, []string{"ID", "NAME", "VERSIONS", "UPDATED", "CURRENT"}, rows)
	},
}

var presetApplyCmd = &cobra.Command{
	Use:   "apply <id>",
	Short: "Load a preset into the working draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		a.engine.ApplyPreset(context.Background(), args[0])
		if a.engine.Draft().SourcePresetID != args[0] {
			fmt.Fprintf(os.Stderr, "Preset %s not found; draft unchanged.\n", args[0])
			return nil
		}
		fmt.Printf("Applied preset %s.\n", args[0])
		return nil
	},
}

var presetRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a preset",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		name := strings.Join(args[1:], " ")
		if err := a.engine.RenamePreset(context.Background(), args[0], name); err != nil {
			return err
		}
		fmt.Printf("Renamed preset %s to %q.\n", args[0], strings.TrimSpace(name))
		return nil
	},
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a preset",
	Long:  "Delete a saved preset. A draft based on the deleted preset keeps its tokens.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.engine.DeletePreset(context.Background(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted preset %s.\n", args[0])
		return nil
	},
}

// Package cli provides working-draft lifecycle commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var saveAsName string

func init() {
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statusCmd)

	saveCmd.Flags().StringVar(&saveAsName, "as", "", "save as a new preset with this name")
}

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the draft to its preset",
	Long: `Save the working draft.

Without flags the draft's tokens are appended as a new version of the
preset it was loaded from. With --as a brand-new preset is created and
the draft is re-linked to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()
		ctx := context.Background()

		if saveAsName != "" {
			preset, err := a.engine.SaveAsNewPreset(ctx, saveAsName)
			if err != nil {
				return err
			}
			fmt.Printf("Created preset %s (%s).\n", preset.ID, preset.Name)
			return nil
		}

		preset, err := a.engine.SaveToCurrentPreset(ctx)
		if err != nil {
			return err
		}
		if preset == nil {
			fmt.Fprintln(os.Stderr, "Draft has no saved preset; use --as <name> to create one.")
			return nil
		}
		version := preset.Versions[len(preset.Versions)-1]
		fmt.Printf("Saved %s to preset %s (%s).\n", version.ID, preset.ID, preset.Name)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard unsaved draft edits",
	Long:  "Restore the draft's tokens from its source preset, or from the built-in defaults when it has none.",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		a.engine.ResetWorkingDraft()
		if source := a.engine.Draft().SourcePresetID; source != "" {
			fmt.Printf("Draft reset to preset %s.\n", source)
		} else {
			fmt.Println("Draft reset to defaults.")
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show draft and preset status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		draft := a.engine.Draft()
		presets, err := a.engine.ListPresets(context.Background())
		if err != nil {
			return err
		}

		source := draft.SourcePresetID
		if source == "" {
			source = "(none)"
		}
		return writePairs(os.Stdout, [][2]string{
			{"Source preset", source},
			{"Unsaved changes", formatYesNo(draft.Dirty)},
			{"Preview mode", string(draft.UI.PreviewMode)},
			{"Saved presets", fmt.Sprintf("%d", len(presets))},
			{"Database", a.cfg.DBPath},
		})
	},
}

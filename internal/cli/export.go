// Package cli provides the stylesheet export command.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/modcn/modcn/internal/css"
	"github.com/modcn/modcn/internal/models"
)

var (
	exportOutput  string
	exportPreview bool
	exportMode    string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write the stylesheet to a file instead of stdout")
	exportCmd.Flags().BoolVar(&exportPreview, "preview", false, "emit the scoped preview sheet instead of the portable theme")
	exportCmd.Flags().StringVar(&exportMode, "mode", "", "color mode for --preview (defaults to the draft's preview mode)")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the draft as CSS",
	Long: `Export the working draft as a stylesheet.

The default output is the portable theme: :root and .dark variable blocks
plus an inline alias layer, suitable for pasting into a project. With
--preview the output is the live-preview sheet, every rule scoped under
the preview canvas selector.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		draft := a.engine.Draft()

		var sheet string
		if exportPreview {
			mode := draft.UI.PreviewMode
			if exportMode != "" {
				mode = models.ParsePreviewMode(exportMode)
				if mode == "" {
					return fmt.Errorf("invalid mode %q (want light or dark)", exportMode)
				}
			}
			sheet = css.PreviewSheet(draft.Tokens, mode)
		} else {
			sheet = css.ThemeSheet(draft.Tokens)
		}

		if exportOutput == "" {
			fmt.Println(sheet)
			return nil
		}
		if err := os.WriteFile(exportOutput, []byte(sheet+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOutput, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s.\n", exportOutput)
		return nil
	},
}

// Package cli provides the TUI launch command.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/modcn/modcn/internal/tui"
)

var editTheme string

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editTheme, "theme", "default", "editor chrome theme (default, high-contrast)")
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive token editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		if IsNonInteractive() {
			return errors.New("the editor requires an interactive terminal; use token set and export instead")
		}

		a, err := openApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		return tui.Run(tui.Config{
			Engine: a.engine,
			Theme:  editTheme,
		})
	},
}

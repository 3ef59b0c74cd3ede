// Package cli provides token editing commands.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modcn/modcn/internal/models"
)

var (
	tokenSetMode  string
	tokenListMode string
)

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenListCmd)
	tokenCmd.AddCommand(tokenSetCmd)

	tokenSetCmd.Flags().StringVar(&tokenSetMode, "mode", "light", "color mode for color tokens (light, dark, both)")
	tokenListCmd.Flags().StringVar(&tokenListMode, "mode", "", "color mode to list (defaults to the draft's preview mode)")
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Inspect and edit draft tokens",
}

// validDimension accepts css lengths with a leading numeric value
// ("0.5rem", "-2px", "24"). Input with no numeric prefix is rejected so
// the prior token value stays in place.
func validDimension(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	number, unit := models.ParseValueWithUnit(trimmed)
	return number != 0 || unit != ""
}

var tokenListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the working draft's tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(false)
		if err != nil {
			return err
		}
		defer a.Close()

		draft := a.engine.Draft()
		mode := draft.UI.PreviewMode
		if tokenListMode != "" {
			mode = models.ParsePreviewMode(tokenListMode)
			if mode == "" {
				return fmt.Errorf("invalid mode %q (want light or dark)", tokenListMode)
			}
		}

		colors := draft.Tokens.Modes.Light
		if mode == models.PreviewModeDark {
			colors = draft.Tokens.Modes.Dark
		}

		rows := make([][]string, 0, len(colors)+8)
		for _, role := range colors.SortedRoles() {
			rows = append(rows, []string{"color", role, colors[role]})
		}

		typography := draft.Tokens.Shared.Typography
		keys := make([]string, 0, len(typography))
		for key := range typography {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			rows = append(rows, []string{"typography", key, typography[key]})
		}

		rows = append(rows,
			[]string{"shared", "radius", draft.Tokens.Shared.Radius},
			[]string{"shared", "spacing", draft.Tokens.Shared.Spacing},
		)
		if shadow := draft.Tokens.Shared.Shadow; shadow != nil {
			rows = append(rows,
				[]string{"shadow", "shadow-color", shadow.Color},
				[]string{"shadow", "shadow-opacity", strconv.FormatFloat(shadow.Opacity, 'g', -1, 64)},
				[]string{"shadow", "shadow-blur", shadow.Blur},
				[]string{"shadow", "shadow-spread", shadow.Spread},
				[]string{"shadow", "shadow-x", shadow.X},
				[]string{"shadow", "shadow-y", shadow.Y},
			)
		}
		return writeTable(os.Stdout, []string{"CATEGORY", "KEY", "VALUE"}, rows)
	},
}

var tokenSetCmd = &cobra.Command{
	Use:   "set <category> <key> <value>",
	Short: "Set one draft token",
	Long: `Set a single token on the working draft.

Categories:
  color       role + 6-digit hex value, scoped by --mode
  typography  key (font-sans, tracking-normal, ...) + css value
  shared      radius or spacing + css length
  shadow      shadow-color, shadow-opacity, shadow-blur, shadow-spread, shadow-x, shadow-y`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		category, key, value := args[0], args[1], args[2]
		tokens := a.engine.Draft().Tokens

		switch category {
		case "color":
			hex, ok := models.NormalizeHex(value)
			if !ok {
				return fmt.Errorf("invalid color %q (want 6-digit hex like #1a2b3c)", value)
			}
			switch tokenSetMode {
			case "light":
				tokens.Modes.Light[key] = hex
			case "dark":
				tokens.Modes.Dark[key] = hex
			case "both":
				tokens.Modes.Light[key] = hex
				tokens.Modes.Dark[key] = hex
			default:
				return fmt.Errorf("invalid mode %q (want light, dark or both)", tokenSetMode)
			}
		case "typography":
			tokens.Shared.Typography[key] = value
		case "shared":
			if !validDimension(value) {
				return fmt.Errorf("invalid dimension %q (want a css length like 0.5rem)", value)
			}
			switch key {
			case "radius":
				tokens.Shared.Radius = value
			case "spacing":
				tokens.Shared.Spacing = value
			default:
				return fmt.Errorf("invalid shared key %q (want radius or spacing)", key)
			}
		case "shadow":
			if tokens.Shared.Shadow == nil {
				tokens.Shared.Shadow = &models.ShadowSpec{}
			}
			switch key {
			case "shadow-color":
				hex, ok := models.NormalizeHex(value)
				if !ok {
					return fmt.Errorf("invalid color %q (want 6-digit hex like #1a2b3c)", value)
				}
				tokens.Shared.Shadow.Color = hex
			case "shadow-opacity":
				opacity, err := strconv.ParseFloat(value, 64)
				if err != nil || opacity < 0 || opacity > 1 {
					return fmt.Errorf("invalid opacity %q (want a number between 0 and 1)", value)
				}
				tokens.Shared.Shadow.Opacity = opacity
			case "shadow-blur", "shadow-spread", "shadow-x", "shadow-y":
				if !validDimension(value) {
					return fmt.Errorf("invalid dimension %q (want a css length like 24px)", value)
				}
				switch key {
				case "shadow-blur":
					tokens.Shared.Shadow.Blur = value
				case "shadow-spread":
					tokens.Shared.Shadow.Spread = value
				case "shadow-x":
					tokens.Shared.Shadow.X = value
				case "shadow-y":
					tokens.Shared.Shadow.Y = value
				}
			default:
				return fmt.Errorf("invalid shadow key %q", key)
			}
		default:
			return fmt.Errorf("invalid category %q (want color, typography, shared or shadow)", category)
		}

		a.engine.UpdateTokens(tokens)
		fmt.Printf("Set %s %s = %s.\n", category, key, value)
		return nil
	},
}

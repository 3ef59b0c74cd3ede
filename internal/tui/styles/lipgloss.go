package styles

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Selected lipgloss.Style
	Input    lipgloss.Style
	Dirty    lipgloss.Style
	Clean    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles builds styles from the default theme.
func DefaultStyles() Styles {
	return BuildStyles(DefaultTheme)
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(theme Theme) Styles {
	tokens := theme.Tokens

	return Styles{
		Theme:    theme,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Input:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)),
		Dirty:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Warning)).Bold(true),
		Clean:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Success)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
	}
}

// Swatch returns a two-cell color sample for a hex value.
func Swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

package css

import (
	"fmt"
	"strings"

	"github.com/modcn/modcn/internal/models"
)

// PreviewSheet renders the scoped preview stylesheet for the active
// color mode: one block declaring custom properties on the preview
// container, followed by override rules that redefine the known utility
// classes in terms of those properties. Utility overrides for radius,
// spacing and shadow are omitted entirely when the shared field is
// absent.
func PreviewSheet(tokens models.Tokens, mode models.PreviewMode) string {
	colors := tokens.Modes.Light
	if mode == models.PreviewModeDark {
		colors = tokens.Modes.Dark
	}

	var vars []string
	for _, role := range colors.SortedRoles() {
		vars = append(vars, fmt.Sprintf("  %s: %s;", VarName("color", role), colors[role]))
	}

	typography := tokens.Shared.Typography
	for _, key := range sortedKeys(typography) {
		vars = append(vars, fmt.Sprintf("  --%s: %s;", key, typography[key]))
	}

	if tokens.Shared.Radius != "" {
		vars = append(vars, fmt.Sprintf("  --radius: %s;", tokens.Shared.Radius))
	}
	if tokens.Shared.Spacing != "" {
		vars = append(vars, fmt.Sprintf("  --spacing: %s;", tokens.Shared.Spacing))
	}

	shadow := tokens.Shared.Shadow
	if shadow != nil {
		vars = append(vars,
			fmt.Sprintf("  --shadow-color: %s;", fallback(shadow.Color, "#000")),
			fmt.Sprintf("  --shadow-opacity: %s;", formatOpacity(shadowOpacity(shadow))),
			fmt.Sprintf("  --shadow-blur: %s;", fallback(shadow.Blur, "16px")),
			fmt.Sprintf("  --shadow-spread: %s;", fallback(shadow.Spread, "0px")),
			fmt.Sprintf("  --shadow-x: %s;", fallback(shadow.X, "0px")),
			fmt.Sprintf("  --shadow-y: %s;", fallback(shadow.Y, "8px")),
		)
	}

	// Typography is applied directly on the canvas so plain text picks
	// it up without utility classes.
	if _, ok := typography["font-sans"]; ok {
		vars = append(vars, "  font-family: var(--font-sans);")
	}
	if _, ok := typography["tracking-normal"]; ok {
		vars = append(vars, "  letter-spacing: var(--tracking-normal);")
	}

	rules := []string{
		fmt.Sprintf("%s {\n%s\n}", PreviewSelector, strings.Join(vars, "\n")),
	}

	if tokens.Shared.Radius != "" {
		rules = append(rules,
			PreviewSelector+" .rounded { border-radius: calc(var(--radius) * 0.5) !important; }",
			PreviewSelector+" .rounded-sm { border-radius: calc(var(--radius) * 0.5) !important; }",
			PreviewSelector+" .rounded-md { border-radius: var(--radius) !important; }",
			PreviewSelector+" .rounded-lg { border-radius: calc(var(--radius) * 1.5) !important; }",
			PreviewSelector+" .rounded-full { border-radius: 9999px !important; }",
		)
	}

	if tokens.Shared.Spacing != "" {
		rules = append(rules,
			PreviewSelector+" .space-y-1 > * + * { margin-top: var(--spacing) !important; }",
			PreviewSelector+" .space-y-2 > * + * { margin-top: calc(var(--spacing) * 2) !important; }",
			PreviewSelector+" .space-y-3 > * + * { margin-top: calc(var(--spacing) * 3) !important; }",
			PreviewSelector+" .gap-2 { gap: calc(var(--spacing) * 2) !important; }",
			PreviewSelector+" .gap-3 { gap: calc(var(--spacing) * 3) !important; }",
		)
	}

	if shadow != nil {
		colorWithAlpha := fallback(shadow.Color, "#000000") + AlphaHex(shadowOpacity(shadow))
		rules = append(rules,
			fmt.Sprintf("%s .shadow-sm { box-shadow: var(--shadow-x) var(--shadow-y) var(--shadow-blur) var(--shadow-spread) %s !important; }",
				PreviewSelector, colorWithAlpha),
			fmt.Sprintf("%s .shadow-lg { box-shadow: var(--shadow-x) var(--shadow-y) calc(var(--shadow-blur) * 1.5) var(--shadow-spread) %s !important; }",
				PreviewSelector, colorWithAlpha),
		)
	}

	return strings.Join(rules, "\n\n")
}

// shadowOpacity keeps visual parity with the original editor, which
// treated a zero opacity as unset and fell back to 0.1.
func shadowOpacity(shadow *models.ShadowSpec) float64 {
	if shadow.Opacity == 0 {
		return 0.1
	}
	return shadow.Opacity
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func sortedKeys(m map[string]string) []string {
	return models.ColorMap(m).SortedRoles()
}

package css

import (
	"fmt"
	"strings"

	"github.com/modcn/modcn/internal/models"
)

// themeRoles is the fixed role set the portable sheet exports, in
// emission order. Roles absent from a mode emit an empty value rather
// than being dropped, so the output shape is stable.
var themeRoles = []string{
	"background", "foreground",
	"card", "card-foreground",
	"popover", "popover-foreground",
	"primary", "primary-foreground",
	"secondary", "secondary-foreground",
	"muted", "muted-foreground",
	"accent", "accent-foreground",
	"destructive", "destructive-foreground",
	"border", "input", "ring",
	"chart-1", "chart-2", "chart-3", "chart-4", "chart-5",
	"sidebar", "sidebar-foreground",
	"sidebar-primary", "sidebar-primary-foreground",
	"sidebar-accent", "sidebar-accent-foreground",
	"sidebar-border", "sidebar-ring",
}

// stageShadows is the fixed elevation ramp included verbatim in both
// mode blocks of the portable sheet.
const stageShadows = `  --shadow-2xs: 0 1px 3px 0px hsl(0 0% 0% / 0.05);
  --shadow-xs: 0 1px 3px 0px hsl(0 0% 0% / 0.05);
  --shadow-sm: 0 1px 3px 0px hsl(0 0% 0% / 0.10), 0 1px 2px -1px hsl(0 0% 0% / 0.10);
  --shadow: 0 1px 3px 0px hsl(0 0% 0% / 0.10), 0 1px 2px -1px hsl(0 0% 0% / 0.10);
  --shadow-md: 0 1px 3px 0px hsl(0 0% 0% / 0.10), 0 2px 4px -1px hsl(0 0% 0% / 0.10);
  --shadow-lg: 0 1px 3px 0px hsl(0 0% 0% / 0.10), 0 4px 6px -1px hsl(0 0% 0% / 0.10);
  --shadow-xl: 0 1px 3px 0px hsl(0 0% 0% / 0.10), 0 8px 10px -1px hsl(0 0% 0% / 0.10);
  --shadow-2xl: 0 1px 3px 0px hsl(0 0% 0% / 0.25);`

// ThemeSheet renders the portable theme stylesheet: a :root block for
// light values, a .dark block for dark values, and a semantic alias
// block with derived radius, tracking and spacing scales. The output
// carries no scoping selector and is meant to be pasted into a
// consumer's own stylesheet.
func ThemeSheet(tokens models.Tokens) string {
	typography := tokens.Shared.Typography
	fontSans := typography["font-sans"]
	fontSerif := typography["font-serif"]
	fontMono := typography["font-mono"]
	trackingNormal := typography["tracking-normal"]
	if trackingNormal == "" {
		trackingNormal = "0em"
	}

	shadow := tokens.Shared.Shadow
	shadowX, shadowY := "0", "1px"
	shadowBlur, shadowSpread := "3px", "0px"
	shadowOpacityValue := "0.1"
	shadowColor := "oklch(0 0 0)"
	if shadow != nil {
		shadowX = shadow.X
		shadowY = shadow.Y
		shadowBlur = shadow.Blur
		shadowSpread = shadow.Spread
		shadowOpacityValue = formatOpacity(shadow.Opacity)
		shadowColor = shadow.Color
	}

	var b strings.Builder

	writeModeBlock := func(selector string, colors models.ColorMap) {
		fmt.Fprintf(&b, "%s {\n", selector)
		for _, role := range themeRoles {
			fmt.Fprintf(&b, "  --%s: %s;\n", role, colors[role])
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "  --font-sans: %s;\n", fontSans)
		fmt.Fprintf(&b, "  --font-serif: %s;\n", fontSerif)
		fmt.Fprintf(&b, "  --font-mono: %s;\n", fontMono)
		fmt.Fprintf(&b, "  --radius: %s;\n", tokens.Shared.Radius)
		fmt.Fprintf(&b, "  --shadow-x: %s;\n", shadowX)
		fmt.Fprintf(&b, "  --shadow-y: %s;\n", shadowY)
		fmt.Fprintf(&b, "  --shadow-blur: %s;\n", shadowBlur)
		fmt.Fprintf(&b, "  --shadow-spread: %s;\n", shadowSpread)
		fmt.Fprintf(&b, "  --shadow-opacity: %s;\n", shadowOpacityValue)
		fmt.Fprintf(&b, "  --shadow-color: %s;\n", shadowColor)
		b.WriteString(stageShadows + "\n")
	}

	writeModeBlock(":root", tokens.Modes.Light)
	fmt.Fprintf(&b, "  --tracking-normal: %s;\n", trackingNormal)
	fmt.Fprintf(&b, "  --spacing: %s;\n", tokens.Shared.Spacing)
	b.WriteString("}\n\n")

	writeModeBlock(".dark", tokens.Modes.Dark)
	b.WriteString("}\n\n")

	b.WriteString("@theme inline {\n")
	for _, role := range themeRoles {
		fmt.Fprintf(&b, "  --color-%s: var(--%s);\n", role, role)
	}
	b.WriteString(`
  --font-sans: var(--font-sans);
  --font-mono: var(--font-mono);
  --font-serif: var(--font-serif);

  --radius-sm: calc(var(--radius) - 4px);
  --radius-md: calc(var(--radius) - 2px);
  --radius-lg: var(--radius);
  --radius-xl: calc(var(--radius) + 4px);

  --shadow-2xs: var(--shadow-2xs);
  --shadow-xs: var(--shadow-xs);
  --shadow-sm: var(--shadow-sm);
  --shadow: var(--shadow);
  --shadow-md: var(--shadow-md);
  --shadow-lg: var(--shadow-lg);
  --shadow-xl: var(--shadow-xl);
  --shadow-2xl: var(--shadow-2xl);

  --tracking-tighter: calc(var(--tracking-normal) - 0.05em);
  --tracking-tight: calc(var(--tracking-normal) - 0.025em);
  --tracking-normal: var(--tracking-normal);
  --tracking-wide: calc(var(--tracking-normal) + 0.025em);
  --tracking-wider: calc(var(--tracking-normal) + 0.05em);
  --tracking-widest: calc(var(--tracking-normal) + 0.1em);

  --spacing-1: calc(var(--spacing) * 0.5);
  --spacing-2: var(--spacing);
  --spacing-3: calc(var(--spacing) * 1.5);
  --spacing-4: calc(var(--spacing) * 2);
  --spacing-5: calc(var(--spacing) * 3);
}

body { letter-spacing: var(--tracking-normal); }
`)

	return b.String()
}

package models

// DefaultTokens returns the system default token set: the full light and
// dark role palettes plus shared typography, radius, spacing and shadow.
// Callers receive an independent copy and may mutate it freely.
func DefaultTokens() Tokens {
	return Tokens{
		Modes: Modes{
			Light: ColorMap{
				"primary":                    "#6366f1",
				"primary-foreground":         "#fafafa",
				"secondary":                  "#e8eaf6",
				"secondary-foreground":       "#3c3f52",
				"accent":                     "#e1f5e1",
				"accent-foreground":          "#2d4d2d",
				"background":                 "#ffffff",
				"foreground":                 "#262626",
				"card":                       "#ffffff",
				"card-foreground":            "#262626",
				"popover":                    "#ffffff",
				"popover-foreground":         "#262626",
				"muted":                      "#f3f3f3",
				"muted-foreground":           "#808080",
				"destructive":                "#ef4444",
				"destructive-foreground":     "#fafafa",
				"border":                     "#e5e5e5",
				"input":                      "#ffffff",
				"ring":                       "#8b90fe",
				"chart-1":                    "#6366f1",
				"chart-2":                    "#f59e0b",
				"chart-3":                    "#10b981",
				"chart-4":                    "#ec4899",
				"chart-5":                    "#06b6d4",
				"sidebar":                    "#fafafa",
				"sidebar-foreground":         "#333333",
				"sidebar-primary":            "#7c7ff5",
				"sidebar-primary-foreground": "#fafafa",
				"sidebar-accent":             "#eff0fd",
				"sidebar-accent-foreground":  "#404152",
				"sidebar-border":             "#ebebeb",
				"sidebar-ring":               "#8b90fe",
			},
			Dark: ColorMap{
				"primary":                    "#8b90fe",
				"primary-foreground":         "#1a1a1a",
				"secondary":                  "#3c3f52",
				"secondary-foreground":       "#e8eaf6",
				"accent":                     "#b8e6b8",
				"accent-foreground":          "#2d3d2d",
				"background":                 "#262626",
				"foreground":                 "#f7f7f7",
				"card":                       "#2b2b2b",
				"card-foreground":            "#f5f5f5",
				"popover":                    "#2b2b2b",
				"popover-foreground":         "#f5f5f5",
				"muted":                      "#4a4a4a",
				"muted-foreground":           "#bebebe",
				"destructive":                "#ef4444",
				"destructive-foreground":     "#161616",
				"border":                     "#424242",
				"input":                      "#303030",
				"ring":                       "#a5abff",
				"chart-1":                    "#8088f0",
				"chart-2":                    "#d69e0a",
				"chart-3":                    "#0eae75",
				"chart-4":                    "#db3e8d",
				"chart-5":                    "#09a3c1",
				"sidebar":                    "#2b2b2b",
				"sidebar-foreground":         "#f5f5f5",
				"sidebar-primary":            "#8b90fe",
				"sidebar-primary-foreground": "#1a1a1a",
				"sidebar-accent":             "#383a4a",
				"sidebar-accent-foreground":  "#e3e5f1",
				"sidebar-border":             "#3e3e3e",
				"sidebar-ring":               "#a5abff",
			},
		},
		Shared: Shared{
			Typography: map[string]string{
				"font-sans":       "'Noto Sans KR', system-ui, sans-serif",
				"font-serif":      "'Noto Serif KR', Georgia, serif",
				"font-mono":       "ui-monospace, SFMono-Regular, Menlo, monospace",
				"tracking-normal": "0em",
			},
			Radius:  "0.5rem",
			Spacing: "0.25rem",
			Shadow: &ShadowSpec{
				Color:   "#333333",
				Opacity: 0.2,
				Blur:    "24px",
				Spread:  "0px",
				X:       "0px",
				Y:       "0px",
			},
		},
	}
}

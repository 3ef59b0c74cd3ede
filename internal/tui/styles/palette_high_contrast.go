package styles

// HighContrastTheme maximizes legibility on washed-out terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#000000",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#FFFFFF",
		Accent:     "#00BFFF",
		Focus:      "#FFFF00",
		Success:    "#00FF00",
		Warning:    "#FFA500",
		Error:      "#FF4040",
	},
}

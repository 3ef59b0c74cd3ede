package styles

// DefaultTheme is the baseline palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#10141A",
		Panel:      "#171D26",
		Text:       "#E8EDF2",
		TextMuted:  "#8A97A8",
		Border:     "#273345",
		Accent:     "#6C8EEF",
		Focus:      "#86A5F8",
		Success:    "#46B45B",
		Warning:    "#D4A12A",
		Error:      "#EF5A50",
	},
}

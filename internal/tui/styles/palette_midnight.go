package styles

// MidnightTheme leans fully into the product it is selling.
var MidnightTheme = Theme{
	Name: "midnight",
	Tokens: ThemeTokens{
		Background:   "#000000",
		Panel:        "#0A0A12",
		Text:         "#D8D8E8",
		TextMuted:    "#6E6E8A",
		Border:       "#2A2A44",
		Accent:       "#9D7CFF",
		Focus:        "#C4A8FF",
		Success:      "#4ADE80",
		Warning:      "#FACC15",
		Error:        "#F87171",
		Info:         "#7DD3FC",
		LightSurface: "#EFEFF4",
		LightInk:     "#26262E",
		DarkSurface:  "#05050A",
		DarkInk:      "#B8B8D0",
	},
}

package styles

// DefaultTheme is the baseline palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background:   "#0B0F14",
		Panel:        "#121821",
		Text:         "#E6EDF3",
		TextMuted:    "#8B9AAE",
		Border:       "#223043",
		Accent:       "#5B8DEF",
		Focus:        "#7AA2F7",
		Success:      "#3FB950",
		Warning:      "#D29922",
		Error:        "#F85149",
		Info:         "#58A6FF",
		LightSurface: "#F6F8FA",
		LightInk:     "#1F2328",
		DarkSurface:  "#0D1117",
		DarkInk:      "#C9D1D9",
	},
}

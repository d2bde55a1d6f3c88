package styles

// ThemeTokens defines the semantic color roles for the demo UI.
type ThemeTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
	// Light and Dark back the fake device preview panel.
	LightSurface string
	LightInk     string
	DarkSurface  string
	DarkInk      string
}

// Theme bundles a palette with a name.
type Theme struct {
	Name   string
	Tokens ThemeTokens
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":  DefaultTheme,
	"midnight": MidnightTheme,
}

// ThemeByName returns the named theme, falling back to the default.
func ThemeByName(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}

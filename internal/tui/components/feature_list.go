package components

import (
	"strings"

	"github.com/Design-Arena-Gens/darklock/internal/tui/styles"
)

// Feature is one entry of the static marketing feature list.
type Feature struct {
	Name  string
	Blurb string
}

// Features returns the static feature list shown under the demo panels.
func Features() []Feature {
	return []Feature{
		{Name: "Neural dimming", Blurb: "every pixel individually counseled"},
		{Name: "Vibe-signed themes", Blurb: "cryptographically unverifiable, emotionally binding"},
		{Name: "Zero telemetry", Blurb: "the model simply remembers"},
		{Name: "Retina gratitude", Blurb: "thank-you notes delivered nightly"},
	}
}

// RenderFeatureList renders the feature list with the given styles.
func RenderFeatureList(styleSet styles.Styles, features []Feature) string {
	lines := make([]string, 0, len(features))
	for _, feature := range features {
		lines = append(lines, styleSet.Text.Render("* "+feature.Name)+styleSet.Muted.Render("  "+feature.Blurb))
	}
	return strings.Join(lines, "\n")
}

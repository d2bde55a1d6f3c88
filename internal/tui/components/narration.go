package components

import (
	"fmt"
	"strings"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/tui/styles"
)

// NarrationPanel renders the current beat of the demo script with a 1-based
// beat counter.
type NarrationPanel struct {
	Script []catalog.Beat
	Beat   int
}

// Render renders the panel with the given styles.
func (n NarrationPanel) Render(styleSet styles.Styles) string {
	if len(n.Script) == 0 {
		return styleSet.Muted.Render("(no narration)")
	}

	beat := n.Beat
	if beat < 0 || beat >= len(n.Script) {
		beat = 0
	}
	entry := n.Script[beat]

	lines := []string{
		styleSet.Accent.Render(entry.Caption),
		styleSet.Muted.Render(entry.Detail),
		"",
		styleSet.Muted.Render(n.Counter()),
	}
	return strings.Join(lines, "\n")
}

// Counter returns the 1-based beat counter label.
func (n NarrationPanel) Counter() string {
	return fmt.Sprintf("beat %d/%d", n.Beat+1, len(n.Script))
}

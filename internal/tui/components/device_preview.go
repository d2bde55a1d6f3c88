package components

import (
	"strings"

	"github.com/Design-Arena-Gens/darklock/internal/session"
	"github.com/Design-Arena-Gens/darklock/internal/tui/styles"
)

const previewWidth = 30

// DevicePreview renders the fake phone screen whose content set is keyed by
// the session's preview mode.
type DevicePreview struct {
	Mode session.PreviewMode
}

// Render renders the preview with the given styles.
func (p DevicePreview) Render(styleSet styles.Styles) string {
	body := styleSet.PreviewLight
	lines := lightScreen()
	if p.Mode == session.PreviewDark {
		body = styleSet.PreviewDark
		lines = darkScreen()
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(body.Width(previewWidth).Render(line))
	}
	return styleSet.Panel.Render(sb.String())
}

func lightScreen() []string {
	return []string{
		"09:41            LTE  100%",
		"",
		"Inbox (3 unread)",
		"Meeting notes, again",
		"Your invoice is ready",
		"",
		"brightness: searing",
	}
}

func darkScreen() []string {
	return []string{
		"23:41            LTE  100%",
		"",
		"Inbox (0 unread)",
		"The inbox rests.",
		"So do your retinas.",
		"",
		"brightness: merciful",
	}
}

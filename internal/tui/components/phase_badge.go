// Package components provides reusable panels for the unlock demo TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/Design-Arena-Gens/darklock/internal/session"
	"github.com/Design-Arena-Gens/darklock/internal/tui/styles"
)

// RenderPhaseBadge renders the session phase with icon and color.
func RenderPhaseBadge(styleSet styles.Styles, phase session.Phase) string {
	icon, label, style := phaseDescriptor(styleSet, phase)
	return style.Render(fmt.Sprintf("%s %s", icon, label))
}

func phaseDescriptor(styleSet styles.Styles, phase session.Phase) (string, string, lipgloss.Style) {
	switch phase {
	case session.PhaseRunning:
		return ">", "Unlocking", styleSet.StatusRunning
	case session.PhaseComplete:
		return "OK", "Dark mode unlocked", styleSet.StatusComplete
	default:
		return "-", "Locked in light mode", styleSet.StatusIdle
	}
}

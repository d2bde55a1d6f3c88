package components

import (
	"strings"

	"github.com/Design-Arena-Gens/darklock/internal/catalog"
	"github.com/Design-Arena-Gens/darklock/internal/session"
	"github.com/Design-Arena-Gens/darklock/internal/tui/styles"
)

// StepStatus is the visual status of one timeline row.
type StepStatus string

const (
	StepPending  StepStatus = "pending"
	StepActive   StepStatus = "active"
	StepComplete StepStatus = "complete"
)

// StatusFor derives a step's display status from the session phase and the
// index of the step currently playing. Once the phase is complete, every
// step reads as complete.
func StatusFor(phase session.Phase, currentIndex, index int) StepStatus {
	switch {
	case phase == session.PhaseComplete:
		return StepComplete
	case index < currentIndex:
		return StepComplete
	case index == currentIndex:
		return StepActive
	default:
		return StepPending
	}
}

// Timeline renders the unlock console: one row per catalog step.
type Timeline struct {
	Steps        []catalog.Step
	Phase        session.Phase
	CurrentIndex int
}

// Render renders the timeline with the given styles.
func (t Timeline) Render(styleSet styles.Styles) string {
	lines := make([]string, 0, len(t.Steps))
	for i, step := range t.Steps {
		status := StatusFor(t.Phase, t.CurrentIndex, i)
		lines = append(lines, t.renderRow(styleSet, step, status))
	}
	return strings.Join(lines, "\n")
}

func (t Timeline) renderRow(styleSet styles.Styles, step catalog.Step, status StepStatus) string {
	switch status {
	case StepComplete:
		return styleSet.Success.Render("x ") + styleSet.Text.Render(step.Title) + highlightSuffix(styleSet, step)
	case StepActive:
		line := styleSet.Focus.Render("> "+step.Title) + styleSet.Muted.Render(" ...")
		if step.Description != "" {
			line += "\n" + styleSet.Muted.Render("    "+step.Description)
		}
		return line
	default:
		return styleSet.Muted.Render(". " + step.Title)
	}
}

func highlightSuffix(styleSet styles.Styles, step catalog.Step) string {
	if step.Highlight == "" {
		return ""
	}
	return styleSet.Muted.Render("  (" + step.Highlight + ")")
}

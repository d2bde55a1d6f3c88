// Package tui implements the darklock terminal user interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Design-Arena-Gens/darklock/internal/session"
)

// SessionChangeMsg wraps a session state change for the TUI.
type SessionChangeMsg session.Change

// programSubscriber bridges the session controller to the running program.
type programSubscriber struct {
	program *tea.Program
}

// OnSessionChange implements session.Subscriber.
func (s *programSubscriber) OnSessionChange(change session.Change) {
	if s.program != nil {
		s.program.Send(SessionChangeMsg(change))
	}
}

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Design-Arena-Gens/darklock/internal/session"
	"github.com/Design-Arena-Gens/darklock/internal/tui/components"
	"github.com/Design-Arena-Gens/darklock/internal/tui/styles"
)

const (
	minWidth     = 60
	minHeight    = 20
	tickInterval = 500 * time.Millisecond
	subscriberID = "tui"
)

// Run launches the demo TUI over a session controller. The controller is
// closed before Run returns so no timer outlives the screen.
func Run(controller *session.Controller, themeName string) error {
	program := tea.NewProgram(newModel(controller, themeName), tea.WithAltScreen())

	if err := controller.Subscribe(subscriberID, &programSubscriber{program: program}); err != nil {
		return err
	}
	defer controller.Close()
	defer func() { _ = controller.Unsubscribe(subscriberID) }()

	_, err := program.Run()
	return err
}

type model struct {
	width  int
	height int
	styles styles.Styles

	controller *session.Controller
	state      session.State
	bar        progress.Model

	startedAt time.Time
	now       time.Time
}

func newModel(controller *session.Controller, themeName string) model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	return model{
		styles:     styles.BuildStyles(styles.ThemeByName(themeName)),
		controller: controller,
		state:      controller.State(),
		bar:        bar,
		now:        time.Now(),
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		barWidth := msg.Width - 12
		if barWidth > 48 {
			barWidth = 48
		}
		if barWidth >= 10 {
			m.bar.Width = barWidth
		}

	case SessionChangeMsg:
		if msg.Current.Phase == session.PhaseRunning && msg.Previous.Phase != session.PhaseRunning {
			m.startedAt = time.Now()
		}
		m.state = msg.Current

	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	running := m.state.Phase == session.PhaseRunning

	switch msg.String() {
	case "s", "enter":
		if !running {
			m.controller.StartUnlock()
		}
	case "r":
		if !running {
			m.controller.ResetUnlock()
		}
	case "d":
		m.controller.TogglePreview()
	case "left", "h":
		m.controller.PreviousBeat()
	case "right", "l":
		m.controller.NextBeat()
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return m.smallView() + "\n"
		}
	}

	sections := []string{
		m.headerLine(),
		"",
		m.progressLine(),
		"",
		m.styles.Panel.Render(m.timeline()),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, m.preview(), "  ", m.styles.Panel.Render(m.narration())),
		"",
		components.RenderFeatureList(m.styles, components.Features()),
		"",
		m.footerLine(),
	}
	return strings.Join(sections, "\n") + "\n"
}

func (m model) smallView() string {
	lines := []string{
		m.styles.Warning.Render(fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)),
		m.styles.Muted.Render(fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)),
		m.styles.Muted.Render("Press q to quit."),
	}
	return strings.Join(lines, "\n")
}

func (m model) headerLine() string {
	title := m.styles.Title.Render("darklock: the AI dark mode unlocker")
	badge := components.RenderPhaseBadge(m.styles, m.state.Phase)
	return title + "  " + badge
}

func (m model) progressLine() string {
	line := m.bar.ViewAs(float64(m.state.Progress)/100) +
		m.styles.Text.Render(fmt.Sprintf(" %3d%%", m.state.Progress))
	if m.state.Phase == session.PhaseRunning && !m.startedAt.IsZero() {
		elapsed := m.now.Sub(m.startedAt)
		if elapsed > 0 {
			line += m.styles.Muted.Render(fmt.Sprintf("  %s elapsed", elapsed.Round(100*time.Millisecond)))
		}
	}
	return line
}

func (m model) timeline() string {
	return components.Timeline{
		Steps:        m.controller.Catalog().Steps,
		Phase:        m.state.Phase,
		CurrentIndex: m.state.StepIndex,
	}.Render(m.styles)
}

func (m model) preview() string {
	return components.DevicePreview{Mode: m.state.Preview}.Render(m.styles)
}

func (m model) narration() string {
	return components.NarrationPanel{
		Script: m.controller.Script(),
		Beat:   m.state.Beat,
	}.Render(m.styles)
}

func (m model) footerLine() string {
	running := m.state.Phase == session.PhaseRunning

	start := "s start"
	reset := "r reset"
	if running {
		start = m.styles.Muted.Render(start)
		reset = m.styles.Muted.Render(reset)
	} else {
		start = m.styles.Accent.Render(start)
		reset = m.styles.Text.Render(reset)
	}

	parts := []string{
		start,
		reset,
		m.styles.Text.Render("d preview"),
		m.styles.Text.Render("←/→ narration"),
		m.styles.Text.Render("q quit"),
	}
	return m.styles.Muted.Render("Shortcuts: ") + strings.Join(parts, m.styles.Muted.Render(" | "))
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

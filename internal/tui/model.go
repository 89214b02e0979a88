package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/turboboost/internal/models"
	"github.com/watchfire-io/turboboost/internal/power"
)

// Controller is the control path the presenter drives.
type Controller interface {
	Preferences() models.Preferences
	HandleUserToggle(ctx context.Context, c models.PowerContext, enabled bool) error
}

// StatusSource reads the live throttle values of the active scheme.
type StatusSource interface {
	Status(ctx context.Context) (*power.Status, error)
}

// Model is the root Bubbletea model for the TUI.
type Model struct {
	ctx    context.Context
	ctrl   Controller
	source StatusSource

	contexts []models.PowerContext
	prefs    models.Preferences
	cursor   int

	// busy is set while a toggle is in flight. The controller is not
	// touched from Update until its ToggleDoneMsg arrives.
	busy bool

	status *power.Status
	err    error

	help  help.Model
	width int
}

// NewModel creates the initial TUI model.
func NewModel(ctx context.Context, ctrl Controller, source StatusSource) Model {
	return Model{
		ctx:      ctx,
		ctrl:     ctrl,
		source:   source,
		contexts: models.AllContexts(),
		prefs:    ctrl.Preferences(),
		help:     help.New(),
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return loadStatusCmd(m.ctx, m.source)
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ToggleDoneMsg:
		m.busy = false
		m.err = msg.Err
		m.prefs = msg.Prefs
		if msg.Err != nil {
			return m, nil
		}
		return m, loadStatusCmd(m.ctx, m.source)

	case StatusLoadedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.status = msg.Status
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, keys.Down):
		if m.cursor < len(m.contexts)-1 {
			m.cursor++
		}

	case key.Matches(msg, keys.Toggle):
		if m.busy {
			return m, nil
		}
		c := m.contexts[m.cursor]
		m.busy = true
		m.err = nil
		return m, toggleCmd(m.ctx, m.ctrl, c, !m.prefs.Get(c))

	case key.Matches(msg, keys.Refresh):
		if m.busy {
			return m, nil
		}
		m.err = nil
		m.prefs = m.ctrl.Preferences()
		return m, loadStatusCmd(m.ctx, m.source)
	}

	return m, nil
}

// View renders the current state.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.status))
	b.WriteString("\n\n")

	for i, c := range m.contexts {
		cursor := "  "
		style := itemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, style.Render(fmt.Sprintf("%-12s", c.Label())), renderBadge(m.prefs.Get(c)))
	}

	b.WriteString("\n")
	b.WriteString(renderStatusBar(&m))
	return b.String()
}

func renderBadge(enabled bool) string {
	if enabled {
		return onBadgeStyle.Render("[On ]")
	}
	return offBadgeStyle.Render("[Off]")
}

package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/watchfire-io/turboboost/internal/models"
)

const statusTimeout = 10 * time.Second

func toggleCmd(ctx context.Context, ctrl Controller, c models.PowerContext, enabled bool) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.HandleUserToggle(ctx, c, enabled)
		return ToggleDoneMsg{Context: c, Enabled: enabled, Prefs: ctrl.Preferences(), Err: err}
	}
}

func loadStatusCmd(ctx context.Context, src StatusSource) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, statusTimeout)
		defer cancel()

		status, err := src.Status(ctx)
		return StatusLoadedMsg{Status: status, Err: err}
	}
}

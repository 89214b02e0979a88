// Package tui implements the terminal presenter for Turbo Boost Manager.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Options configures Run.
type Options struct {
	Controller Controller
	Status     StatusSource // optional; nil hides the live scheme line
	Logger     zerolog.Logger
}

// Run launches the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	model := NewModel(ctx, opts.Controller, opts.Status)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	opts.Logger.Debug().Msg("Starting terminal presenter")
	_, err := p.Run()
	return err
}

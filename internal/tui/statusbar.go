package tui

import (
	"github.com/charmbracelet/x/ansi"
)

const defaultWidth = 80

func renderStatusBar(m *Model) string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	if m.busy {
		return busyStyle.Render("Applying…")
	}

	if m.err != nil {
		return errorStyle.Render(ansi.Truncate("Error: "+m.err.Error(), width, "…"))
	}

	return m.help.View(keys)
}

package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed   = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorCyan  = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	schemeStyle = lipgloss.NewStyle().Foreground(colorDim)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	itemStyle = lipgloss.NewStyle().Foreground(colorDim)

	onBadgeStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	offBadgeStyle = lipgloss.NewStyle().Foreground(colorDim)

	errorStyle = lipgloss.NewStyle().Foreground(colorRed)
	busyStyle  = lipgloss.NewStyle().Foreground(colorCyan)
)

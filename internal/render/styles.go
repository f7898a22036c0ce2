package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorWarm      = lipgloss.Color("11")  // bright yellow
	colorHot       = lipgloss.Color("9")   // bright red

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleHeader = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	styleBar = lipgloss.NewStyle().
			Foreground(colorSecondary)

	// Heatmap intensity ramp, cold to hot
	styleHeatLow = lipgloss.NewStyle().
			Foreground(colorDim)

	styleHeatMid = lipgloss.NewStyle().
			Foreground(colorWarm)

	styleHeatHigh = lipgloss.NewStyle().
			Foreground(colorHot).
			Bold(true)
)

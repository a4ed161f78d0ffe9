// SPDX-License-Identifier: MIT

package presentation

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface2 lipgloss.Color = "#585b70"
)

const (
	colorBrand   = colorMauve
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	value   lipgloss.Style
	answer  lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style
	hint    lipgloss.Style
	box     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Foreground(colorBrand).Bold(true),
		label:   r.NewStyle().Foreground(colorSubtext0),
		value:   r.NewStyle().Foreground(colorPeach),
		answer:  r.NewStyle().Foreground(colorSuccess).Bold(true),
		warning: r.NewStyle().Foreground(colorWarning),
		err:     r.NewStyle().Foreground(colorError).Bold(true),
		hint:    r.NewStyle().Foreground(colorSubtext0).Italic(true),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1),
	}
}

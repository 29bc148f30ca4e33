package ui

import (
	"strings"

	"system-indicators/models"

	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#ffffff")).
	Padding(0, 1)

// RenderLabel draws one label on its urgency background. Blank labels
// collapse to nothing, like an empty Tk label.
func RenderLabel(l models.Label) string {
	if l.Text == "" {
		return ""
	}
	return labelStyle.
		Background(lipgloss.Color(l.Background.Hex())).
		Render(l.Text)
}

// RenderRow lays labels out left to right in configured order
func RenderRow(labels []models.Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if s := RenderLabel(l); s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// PlainRow is the uncolored form used when stdout is not a terminal
func PlainRow(labels []models.Label) string {
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		if l.Text != "" {
			parts = append(parts, l.Text)
		}
	}
	return strings.Join(parts, " ")
}

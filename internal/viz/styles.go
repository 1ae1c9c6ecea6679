package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wigging/ent-flow-reactor/internal/kinetics"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	statusDone    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// ProgressBar renders run progress as a fixed-width bar.
func ProgressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// YieldPanel renders final phase yields as a bordered summary block.
func YieldPanel(title string, y kinetics.Yields) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render(title) + "\n")
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"gas", y.Gas},
		{"tar", y.Tar},
		{"char", y.Char},
		{"solid", y.Solid},
	} {
		bar := ProgressBar(row.value, 20)
		sb.WriteString(labelStyle.Render(row.name) + valueStyle.Render(fmt.Sprintf("%s %6.2f wt%%", bar, row.value*100)) + "\n")
	}
	return panelStyle.Render(strings.TrimRight(sb.String(), "\n"))
}

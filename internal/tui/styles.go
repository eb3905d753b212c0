package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fareycalc/internal/ui"
)

// Style variables for the step-through visualizer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle     lipgloss.Style
	titleStyle     lipgloss.Style
	versionStyle   lipgloss.Style
	boundStyle     lipgloss.Style
	mediantStyle   lipgloss.Style
	convergedStyle lipgloss.Style
	errorStyle     lipgloss.Style
	statLabelStyle lipgloss.Style
	statValueStyle lipgloss.Style
	traceStyle     lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 2)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	boundStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	mediantStyle = lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	convergedStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	statLabelStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	statValueStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	traceStyle = lipgloss.NewStyle().
		Foreground(t.Info)
}

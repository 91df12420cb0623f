package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rlmsinclair/lhc/internal/ui"
)

// Style variables for the TUI explorer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle      lipgloss.Style
	titleStyle      lipgloss.Style
	versionStyle    lipgloss.Style
	inputLabelStyle lipgloss.Style
	reportLineStyle lipgloss.Style
	labelStyle      lipgloss.Style
	valueStyle      lipgloss.Style
	errorStyle      lipgloss.Style
	helpStyle       lipgloss.Style
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
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	versionStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	inputLabelStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	reportLineStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	labelStyle = lipgloss.NewStyle().
		Foreground(t.Info)

	valueStyle = lipgloss.NewStyle().
		Foreground(t.Accent)

	errorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}

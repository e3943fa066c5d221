// internal/tui/styles.go
package tui

import "github.com/charmbracelet/lipgloss"

// --- STYLES ---
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#575B7E")).
			Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Width(38).Padding(0, 1)
	focusedLabelStyle = labelStyle.Copy().Bold(true).Foreground(lipgloss.Color("212"))

	choiceStyle         = lipgloss.NewStyle().Padding(0, 1)
	selectedChoiceStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true)

	statusStyle = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

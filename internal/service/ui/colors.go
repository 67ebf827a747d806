package ui

import "github.com/charmbracelet/lipgloss"

// ANSI base colors read well on both light and dark terminals.
var (
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)
	UsageStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	DescStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FlagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	SystemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// System renders an out-of-band line in the terminal chat.
func System(s string) string {
	return SystemStyle.Render("[System] " + s)
}

func Error(err error) string {
	return ErrorStyle.Render("Error: " + err.Error())
}

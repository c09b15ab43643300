package tui

import "github.com/charmbracelet/lipgloss"

// ------- styling (Lip Gloss) -------
//
// Palette follows the classic 16-color terminal slots: 7 for active
// chrome, 8 for inactive chrome, 13 for the focused element, 11 for
// the menu shortcut letters.
var (
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	inactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
	shortcutStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Underline(true)

	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("7")).
			Padding(0, 1)

	focusedFieldStyle = lipgloss.NewStyle().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("13")).
				Padding(0, 1)

	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

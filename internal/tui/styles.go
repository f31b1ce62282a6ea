package tui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header      lipgloss.Style
	Welcome     lipgloss.Style
	Status      lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	PromptBox   lipgloss.Style
	PromptTitle lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("0")).Padding(0, 1),
		Welcome: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(1, 2),
		PromptTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
	}
}

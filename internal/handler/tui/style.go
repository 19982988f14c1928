package tui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle = lipgloss.NewStyle().
			Margin(1, 2)

	welcomeTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("196")). // red
				Padding(1, 0)
	welcomePromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#A49FA5",
			Dark:  "#777777",
		})

	listHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("240")).
			MarginBottom(1)
	listItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	selectedListItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(lipgloss.Color("196")).
				SetString("> ")
	metaStyle = lipgloss.NewStyle().
			PaddingLeft(4).
			Foreground(lipgloss.Color("244"))
	hiddenChannelStyle = lipgloss.NewStyle().
				Strikethrough(true).
				Foreground(lipgloss.Color("240"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{
			Light: "#04B575",
			Dark:  "#04B575",
		})
	errorMessageStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("9"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Underline(true)
)

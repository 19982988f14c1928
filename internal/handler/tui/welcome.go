package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type WelcomeModel struct {
	parent *AppModel
}

func NewWelcomeModel(parent *AppModel) *WelcomeModel {
	return &WelcomeModel{parent: parent}
}

func (m *WelcomeModel) Init() tea.Cmd {
	return nil
}

func (m *WelcomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			return m, m.parent.send(showAPIKeyMsg{back: showWelcomeMsg{}})
		case tea.KeyEsc:
			_, cmd := m.parent.quit()
			return m, cmd
		}
	}
	return m, nil
}

func (m *WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(welcomeTitleStyle.Render("📺 SociaLite"))
	b.WriteString("\n\n")
	b.WriteString("The latest uploads of the YouTube channels you follow, in one feed.")
	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("A YouTube Data API key is needed. Press Enter to set it up."))
	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("(Ctrl+C or Esc to quit)"))

	return docStyle.Render(b.String())
}

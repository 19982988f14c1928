package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type apiKeySavedMsg struct{}
type apiKeyErrorMsg struct{ err error }

type APIKeyModel struct {
	parent *AppModel
	input  textinput.Model
	back   tea.Msg
	saving bool
	err    error
}

// NewAPIKeyModel returns to back when the user cancels.
func NewAPIKeyModel(parent *AppModel, back tea.Msg) *APIKeyModel {
	input := textinput.New()
	input.Placeholder = "AIza…"
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '•'
	input.CharLimit = 128
	input.Width = 48
	input.Focus()

	return &APIKeyModel{
		parent: parent,
		input:  input,
		back:   back,
	}
}

func (m *APIKeyModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *APIKeyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case apiKeySavedMsg:
		m.saving = false
		m.parent.logger.Info("API key saved")
		return m, m.parent.send(showFeedMsg{refresh: true})

	case apiKeyErrorMsg:
		m.saving = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(m.back)
		case tea.KeyEnter:
			key := m.input.Value()
			m.saving = true
			m.err = nil
			feedUC := m.parent.feedUseCase
			return m, func() tea.Msg {
				if err := feedUC.SaveAPIKey(key); err != nil {
					return apiKeyErrorMsg{err: err}
				}
				return apiKeySavedMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *APIKeyModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("YouTube API key"))
	b.WriteString("\n\n")
	b.WriteString("Paste your YouTube Data API v3 key and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.saving {
		b.WriteString("Saving…\n\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(welcomePromptStyle.Render("The key is stored locally in your settings file."))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Enter to save, Esc to cancel."))
	return docStyle.Render(b.String())
}

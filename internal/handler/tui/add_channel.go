package tui

import (
	"fmt"
	"strings"

	"socialite/internal/core/domain"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type channelAddedMsg struct{ channel domain.Channel }
type channelAddErrorMsg struct{ err error }

type AddChannelModel struct {
	parent  *AppModel
	input   textinput.Model
	looking bool
	err     error
}

func NewAddChannelModel(parent *AppModel) *AddChannelModel {
	input := textinput.New()
	input.Placeholder = "UC…"
	input.CharLimit = 64
	input.Width = 48
	input.Focus()

	return &AddChannelModel{
		parent: parent,
		input:  input,
	}
}

func (m *AddChannelModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AddChannelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case channelAddedMsg:
		m.looking = false
		m.parent.feedStale = true
		m.parent.logger.Info(fmt.Sprintf("Channel added: %s (ID: %s)", msg.channel.DisplayName, msg.channel.ID))
		return m, m.parent.send(showSettingsMsg{})

	case channelAddErrorMsg:
		m.looking = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.looking {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc:
			return m, m.parent.send(showSettingsMsg{})
		case tea.KeyEnter:
			channelID := strings.TrimSpace(m.input.Value())
			if channelID == "" {
				m.err = domain.ErrEmptyChannelID
				return m, nil
			}
			m.looking = true
			m.err = nil

			feedUC := m.parent.feedUseCase
			ctx := m.parent.appContext
			return m, func() tea.Msg {
				channel, err := feedUC.AddChannel(ctx, channelID)
				if err != nil {
					return channelAddErrorMsg{err: err}
				}
				return channelAddedMsg{channel: channel}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AddChannelModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Add channel"))
	b.WriteString("\n\n")
	b.WriteString("Type the channel ID and press Enter:\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.looking {
		b.WriteString("Looking up channel…\n\n")
	}
	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString(welcomePromptStyle.Render("Channel IDs start with UC. Find one at:"))
	b.WriteString("\n")
	b.WriteString(urlStyle.Render(channelIDFinderURL))
	b.WriteString("\n\n")
	b.WriteString(welcomePromptStyle.Render("Enter to add, Esc to cancel."))
	return docStyle.Render(b.String())
}

package tui

import (
	"fmt"
	"strings"

	"socialite/internal/core/domain"

	tea "github.com/charmbracelet/bubbletea"
)

type settingsLoadedMsg struct{ settings domain.Settings }
type settingsErrorMsg struct{ err error }
type channelRemovedMsg struct{ channel domain.Channel }
type visibilityToggledMsg struct {
	channel domain.Channel
	hidden  bool
}
type apiKeyRemovedMsg struct{}

type SettingsModel struct {
	parent   *AppModel
	settings domain.Settings
	channels []domain.Channel
	cursor   int
	loading  bool

	statusMessage string
	err           error
}

func NewSettingsModel(parent *AppModel) *SettingsModel {
	return &SettingsModel{
		parent:  parent,
		loading: true,
	}
}

func (m *SettingsModel) Init() tea.Cmd {
	m.loading = true
	return m.load()
}

func (m *SettingsModel) load() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.parent.feedUseCase.GetSettings()
		if err != nil {
			m.parent.logger.Error("Failed to load settings", err)
			return settingsErrorMsg{err: err}
		}
		return settingsLoadedMsg{settings: settings}
	}
}

func (m *SettingsModel) selected() (domain.Channel, bool) {
	if len(m.channels) == 0 {
		return domain.Channel{}, false
	}
	return m.channels[m.cursor], true
}

func (m *SettingsModel) toggleCmd(channel domain.Channel) tea.Cmd {
	return func() tea.Msg {
		hidden, err := m.parent.feedUseCase.ToggleChannelVisibility(channel.ID)
		if err != nil {
			return settingsErrorMsg{err: err}
		}
		return visibilityToggledMsg{channel: channel, hidden: hidden}
	}
}

func (m *SettingsModel) removeCmd(channel domain.Channel) tea.Cmd {
	return func() tea.Msg {
		if err := m.parent.feedUseCase.RemoveChannel(channel.ID); err != nil {
			return settingsErrorMsg{err: err}
		}
		return channelRemovedMsg{channel: channel}
	}
}

func (m *SettingsModel) removeKeyCmd() tea.Cmd {
	return func() tea.Msg {
		if err := m.parent.feedUseCase.RemoveAPIKey(); err != nil {
			return settingsErrorMsg{err: err}
		}
		return apiKeyRemovedMsg{}
	}
}

func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		m.loading = false
		m.settings = msg.settings
		m.channels = msg.settings.ChannelList()
		if m.cursor >= len(m.channels) {
			m.cursor = max(len(m.channels)-1, 0)
		}
		return m, nil

	case settingsErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case visibilityToggledMsg:
		m.err = nil
		if msg.hidden {
			m.statusMessage = fmt.Sprintf("%s is hidden from the feed.", msg.channel.DisplayName)
		} else {
			m.statusMessage = fmt.Sprintf("%s is visible again.", msg.channel.DisplayName)
		}
		return m, m.load()

	case channelRemovedMsg:
		m.err = nil
		m.parent.feedStale = true
		m.statusMessage = fmt.Sprintf("Removed %s.", msg.channel.DisplayName)
		return m, m.load()

	case apiKeyRemovedMsg:
		m.parent.logger.Info("API key removed by the user")
		return m, m.parent.send(showWelcomeMsg{})

	case browserErrorMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.Type {
		case tea.KeyEsc, tea.KeyBackspace:
			return m, m.parent.send(showFeedMsg{})
		case tea.KeyUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case tea.KeyDown:
			if m.cursor < len(m.channels)-1 {
				m.cursor++
			}
		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "h":
				if channel, ok := m.selected(); ok {
					return m, m.toggleCmd(channel)
				}
			case "x":
				if channel, ok := m.selected(); ok {
					return m, m.removeCmd(channel)
				}
			case "a":
				return m, m.parent.send(showAddChannelMsg{})
			case "k":
				return m, m.parent.send(showAPIKeyMsg{back: showSettingsMsg{}})
			case "d":
				return m, m.removeKeyCmd()
			case "f":
				return m, m.parent.openURL(channelIDFinderURL)
			}
		}
	}
	return m, nil
}

func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("•", len(key))
	}
	return strings.Repeat("•", 8) + key[len(key)-4:]
}

func (m *SettingsModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Settings"))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString("Loading settings…")
		return docStyle.Render(b.String())
	}

	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	b.WriteString("API key: ")
	if m.settings.APIKey == "" {
		b.WriteString(errorMessageStyle.Render("not set"))
	} else {
		b.WriteString(maskKey(m.settings.APIKey))
	}
	b.WriteString("\n\n")

	b.WriteString("Channels:\n")
	if len(m.channels) == 0 {
		b.WriteString(listItemStyle.Render("none yet, press a to add one"))
		b.WriteString("\n")
	}
	for i, channel := range m.channels {
		label := fmt.Sprintf("%s (%s)", channel.DisplayName, channel.ID)
		if m.settings.IsHidden(channel.ID) {
			label = hiddenChannelStyle.Render(label + " [hidden]")
		}
		if i == m.cursor {
			b.WriteString(selectedListItemStyle.Render(label))
		} else {
			b.WriteString(listItemStyle.Render(label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("h hide/show, x remove, a add channel, f find a channel ID."))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("k change API key, d delete API key, Backspace or Esc to go back."))

	if m.statusMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
	}

	return docStyle.Render(b.String())
}

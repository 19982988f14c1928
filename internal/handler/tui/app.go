package tui

import (
	"context"
	"fmt"

	"socialite/infrastructure/logger"
	"socialite/internal/core/usecases"
	"socialite/internal/handler/server"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
)

const channelIDFinderURL = "https://www.tunepocket.com/youtube-channel-id-finder/"

type currentView int

const (
	viewWelcome currentView = iota
	viewAPIKey
	viewFeed
	viewSettings
	viewAddChannel
)

type AppModel struct {
	feedUseCase usecases.FeedUseCase
	gridServer  server.GridServer
	logger      logger.Logger
	gridAddr    string

	welcomeModel    *WelcomeModel
	apiKeyModel     *APIKeyModel
	feedModel       *FeedModel
	settingsModel   *SettingsModel
	addChannelModel *AddChannelModel

	currentView currentView
	err         error

	// feedStale is set when the channel list changed since the last refresh.
	feedStale bool

	gridURL      string
	gridStarting bool

	appContext context.Context
	cancelApp  context.CancelFunc

	width  int
	height int
}

func NewAppModel(
	feedUC usecases.FeedUseCase,
	grid server.GridServer,
	log logger.Logger,
	gridAddr string,
) *AppModel {
	appCtx, cancel := context.WithCancel(context.Background())

	m := &AppModel{
		feedUseCase: feedUC,
		gridServer:  grid,
		logger:      log,
		gridAddr:    gridAddr,

		appContext: appCtx,
		cancelApp:  cancel,
	}

	m.welcomeModel = NewWelcomeModel(m)
	m.apiKeyModel = NewAPIKeyModel(m, showWelcomeMsg{})
	m.feedModel = NewFeedModel(m)
	m.settingsModel = NewSettingsModel(m)
	m.addChannelModel = NewAddChannelModel(m)

	m.currentView = viewWelcome
	return m
}

func (m *AppModel) Init() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.feedUseCase.GetSettings()
		if err != nil {
			m.logger.Error("Failed to load settings on startup", err)
			return appErrorMsg{err: err}
		}
		if settings.APIKey != "" {
			m.logger.Info("API key found, showing the feed")
			return showFeedMsg{refresh: true}
		}
		m.logger.Info("No API key stored, showing welcome screen")
		return showWelcomeMsg{}
	}
}

// Navigation messages used by the sub-models.
type showWelcomeMsg struct{}
type showAPIKeyMsg struct{ back tea.Msg }
type showFeedMsg struct{ refresh bool }
type showSettingsMsg struct{}
type showAddChannelMsg struct{}

type appErrorMsg struct{ err error }
type browserErrorMsg struct{ err error }
type gridStartedMsg struct{ url string }
type gridErrorMsg struct{ err error }

func (m *AppModel) send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func (m *AppModel) openURL(url string) tea.Cmd {
	return func() tea.Msg {
		if err := browser.OpenURL(url); err != nil {
			m.logger.Error("Could not open the browser", err)
			return browserErrorMsg{err: err}
		}
		return nil
	}
}

// openGrid starts the grid server on first use and opens the page.
func (m *AppModel) openGrid() tea.Cmd {
	if m.gridURL != "" {
		return m.openURL(m.gridURL)
	}
	if m.gridStarting {
		return nil
	}
	m.gridStarting = true

	return func() tea.Msg {
		url, err := m.gridServer.ListenAndServe(m.appContext, m.gridAddr)
		if err != nil {
			m.logger.Error("Failed to start grid server", err)
			return gridErrorMsg{err: err}
		}
		return gridStartedMsg{url: url}
	}
}

func (m *AppModel) quit() (tea.Model, tea.Cmd) {
	m.logger.Info("Quitting application.")
	m.cancelApp()
	return m, tea.Quit
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.inputWidth()

	case appErrorMsg:
		m.err = msg.err
		return m, nil

	case gridStartedMsg:
		m.gridStarting = false
		m.gridURL = msg.url
		return m, m.openURL(m.gridURL)

	case gridErrorMsg:
		m.gridStarting = false

	// Refresh results always belong to the feed, whichever screen is open.
	case feedRefreshedMsg, feedRefreshErrorMsg:
		updated, cmd := m.feedModel.Update(msg)
		if casted, ok := updated.(*FeedModel); ok {
			m.feedModel = casted
		}
		return m, cmd
	}

	switch msg := msg.(type) {
	case showWelcomeMsg:
		m.currentView = viewWelcome
		m.err = nil
		cmd = m.welcomeModel.Init()

	case showAPIKeyMsg:
		m.currentView = viewAPIKey
		m.err = nil
		m.apiKeyModel = NewAPIKeyModel(m, msg.back)
		m.inputWidth()
		cmd = m.apiKeyModel.Init()

	case showFeedMsg:
		m.currentView = viewFeed
		m.err = nil
		refreshing := m.feedModel.refreshing
		fm := NewFeedModel(m)
		fm.refreshing = refreshing
		m.feedModel = fm
		cmd = fm.Init(msg.refresh || m.feedStale)
		m.feedStale = false

	case showSettingsMsg:
		m.currentView = viewSettings
		m.err = nil
		sm := NewSettingsModel(m)
		m.settingsModel = sm
		cmd = sm.Init()

	case showAddChannelMsg:
		m.currentView = viewAddChannel
		m.err = nil
		m.addChannelModel = NewAddChannelModel(m)
		m.inputWidth()
		cmd = m.addChannelModel.Init()
	}

	cmds = append(cmds, cmd)

	var currentViewCmd tea.Cmd
	switch m.currentView {
	case viewWelcome:
		updated, cmd := m.welcomeModel.Update(msg)
		if casted, ok := updated.(*WelcomeModel); ok {
			m.welcomeModel = casted
		}
		currentViewCmd = cmd

	case viewAPIKey:
		updated, cmd := m.apiKeyModel.Update(msg)
		if casted, ok := updated.(*APIKeyModel); ok {
			m.apiKeyModel = casted
		}
		currentViewCmd = cmd

	case viewFeed:
		updated, cmd := m.feedModel.Update(msg)
		if casted, ok := updated.(*FeedModel); ok {
			m.feedModel = casted
		}
		currentViewCmd = cmd

	case viewSettings:
		updated, cmd := m.settingsModel.Update(msg)
		if casted, ok := updated.(*SettingsModel); ok {
			m.settingsModel = casted
		}
		currentViewCmd = cmd

	case viewAddChannel:
		updated, cmd := m.addChannelModel.Update(msg)
		if casted, ok := updated.(*AddChannelModel); ok {
			m.addChannelModel = casted
		}
		currentViewCmd = cmd
	}

	cmds = append(cmds, currentViewCmd)
	return m, tea.Batch(cmds...)
}

func (m *AppModel) inputWidth() {
	if m.width <= 0 {
		return
	}
	w := m.width - 10
	if w < 20 {
		w = 20
	}
	m.apiKeyModel.input.Width = w
	m.addChannelModel.input.Width = w
}

func (m *AppModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Something went wrong: %v\n\n(Ctrl+C to quit)", m.err)
	}

	switch m.currentView {
	case viewWelcome:
		return m.welcomeModel.View()
	case viewAPIKey:
		return m.apiKeyModel.View()
	case viewFeed:
		return m.feedModel.View()
	case viewSettings:
		return m.settingsModel.View()
	case viewAddChannel:
		return m.addChannelModel.View()
	default:
		return "Unknown view…"
	}
}

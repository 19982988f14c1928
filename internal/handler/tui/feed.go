package tui

import (
	"fmt"
	"strings"
	"time"

	"socialite/internal/core/domain"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type snapshotLoadedMsg struct {
	videos      domain.Feed
	refreshedAt time.Time
}
type snapshotErrorMsg struct{ err error }
type feedRefreshedMsg struct {
	videos      domain.Feed
	refreshedAt time.Time
}
type feedRefreshErrorMsg struct{ err error }

type FeedModel struct {
	parent      *AppModel
	videos      domain.Feed
	refreshedAt time.Time
	cursor      int

	refreshing bool
	spinner    spinner.Model

	statusMessage string
	err           error
}

func NewFeedModel(parent *AppModel) *FeedModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return &FeedModel{
		parent:  parent,
		spinner: s,
	}
}

// Init shows the stored snapshot right away and optionally refreshes it.
func (m *FeedModel) Init(refresh bool) tea.Cmd {
	cmds := []tea.Cmd{m.loadSnapshot()}
	if refresh && !m.refreshing {
		cmds = append(cmds, m.startRefresh())
	}
	if m.refreshing {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *FeedModel) loadSnapshot() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.parent.feedUseCase.GetSettings()
		if err != nil {
			m.parent.logger.Error("Failed to load feed snapshot", err)
			return snapshotErrorMsg{err: err}
		}
		return snapshotLoadedMsg{
			videos:      settings.Visible(settings.Snapshot),
			refreshedAt: settings.RefreshedAt,
		}
	}
}

func (m *FeedModel) startRefresh() tea.Cmd {
	m.refreshing = true
	m.statusMessage = ""
	m.parent.logger.Info("FeedModel: refreshing feed…")

	feedUC := m.parent.feedUseCase
	ctx := m.parent.appContext

	return func() tea.Msg {
		feed, err := feedUC.RefreshFeed(ctx)
		if err != nil {
			m.parent.logger.Error("Feed refresh failed", err)
			return feedRefreshErrorMsg{err: err}
		}

		settings, err := feedUC.GetSettings()
		if err != nil {
			return feedRefreshErrorMsg{err: err}
		}

		m.parent.logger.Info(fmt.Sprintf("Feed refreshed: %d videos.", len(feed)))
		return feedRefreshedMsg{
			videos:      settings.Visible(feed),
			refreshedAt: settings.RefreshedAt,
		}
	}
}

func (m *FeedModel) setVideos(videos domain.Feed, refreshedAt time.Time) {
	m.videos = videos
	m.refreshedAt = refreshedAt
	if m.cursor >= len(m.videos) {
		m.cursor = max(len(m.videos)-1, 0)
	}
}

func (m *FeedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotLoadedMsg:
		// a finished refresh wins over a late snapshot read
		if !m.refreshedAt.After(msg.refreshedAt) {
			m.setVideos(msg.videos, msg.refreshedAt)
		}
		return m, nil

	case snapshotErrorMsg:
		m.err = msg.err
		return m, nil

	case feedRefreshedMsg:
		m.refreshing = false
		m.err = nil
		m.setVideos(msg.videos, msg.refreshedAt)
		if len(m.videos) == 0 {
			m.statusMessage = "No videos found. Add channels in settings (s)."
		} else {
			m.statusMessage = fmt.Sprintf("🔄 %d videos loaded.", len(m.videos))
		}
		return m, nil

	case feedRefreshErrorMsg:
		m.refreshing = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.refreshing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case browserErrorMsg:
		m.err = msg.err
		return m, nil

	case gridErrorMsg:
		m.err = fmt.Errorf("grid server: %w", msg.err)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			_, cmd := m.parent.quit()
			return m, cmd
		case tea.KeyCtrlR:
			if m.refreshing {
				return m, nil
			}
			return m, tea.Batch(m.startRefresh(), m.spinner.Tick)
		case tea.KeyUp:
			m.moveCursor(-1)
		case tea.KeyDown:
			m.moveCursor(1)
		case tea.KeyEnter:
			if len(m.videos) == 0 {
				return m, nil
			}
			selected := m.videos[m.cursor]
			m.parent.logger.Info(fmt.Sprintf("Opening video: %s (ID: %s)", selected.Title, selected.ID))
			return m, m.parent.openURL(selected.WatchURL())
		case tea.KeyRunes:
			switch string(msg.Runes) {
			case "k":
				m.moveCursor(-1)
			case "j":
				m.moveCursor(1)
			case "g":
				m.statusMessage = "Opening the grid in your browser…"
				return m, m.parent.openGrid()
			case "s":
				return m, m.parent.send(showSettingsMsg{})
			case "q":
				_, cmd := m.parent.quit()
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m *FeedModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.videos) {
		return
	}
	m.cursor = next
}

// window returns the range of videos that fits the terminal height.
func (m *FeedModel) window() (int, int) {
	rows := 8
	if m.parent.height > 0 {
		rows = max((m.parent.height-12)/2, 3)
	}
	if rows >= len(m.videos) {
		return 0, len(m.videos)
	}

	start := m.cursor - rows/2
	start = max(start, 0)
	start = min(start, len(m.videos)-rows)
	return start, start + rows
}

func publishedLabel(v domain.Video) string {
	if t := v.Published(); !t.IsZero() {
		return t.Local().Format("2006-01-02 15:04")
	}
	return v.PublishedAt
}

func (m *FeedModel) View() string {
	var b strings.Builder
	b.WriteString(listHeaderStyle.Render("Latest videos"))
	b.WriteString("\n")

	if m.refreshing {
		b.WriteString(m.spinner.View())
		b.WriteString(" Refreshing…")
	} else if !m.refreshedAt.IsZero() {
		b.WriteString(welcomePromptStyle.Render("Updated " + m.refreshedAt.Local().Format("2006-01-02 15:04")))
	}
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(errorMessageStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if len(m.videos) == 0 {
		if !m.refreshing {
			b.WriteString("No videos yet.\n\n")
		}
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			v := m.videos[i]
			meta := fmt.Sprintf("%s · %s · %s", v.ChannelName, v.Duration, publishedLabel(v))
			if i == m.cursor {
				b.WriteString(selectedListItemStyle.Render(v.Title))
			} else {
				b.WriteString(listItemStyle.Render(v.Title))
			}
			b.WriteString("\n")
			b.WriteString(metaStyle.Render(meta))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(welcomePromptStyle.Render(fmt.Sprintf("%d/%d · total %s", m.cursor+1, len(m.videos), m.videos.TotalLength())))
		b.WriteString("\n\n")
	}

	b.WriteString(welcomePromptStyle.Render("↑/↓ or j/k to move, Enter to watch, g for the grid in the browser."))
	b.WriteString("\n")
	b.WriteString(welcomePromptStyle.Render("Ctrl+R to refresh, s for settings, q or Esc to quit."))

	if m.statusMessage != "" {
		b.WriteString("\n\n")
		b.WriteString(statusMessageStyle.Render(m.statusMessage))
	}

	return docStyle.Render(b.String())
}

package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// The raw log view shows the tail of the logfile as-is. Parsing problems
// are easiest to diagnose by looking at the lines the monitor is scraping.

func (m *Model) initLogViewport() {
	m.logViewport = viewport.New(m.width, m.logViewportHeight())
}

func (m *Model) resizeLogViewport() {
	m.logViewport.Width = m.width
	m.logViewport.Height = m.logViewportHeight()
}

func (m Model) logViewportHeight() int {
	h := m.height - 3 // header, view title, statusbar
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) handleLogTail(msg logTailMsg) {
	m.logLines = msg
	m.logViewport.SetContent(strings.Join(msg, "\n"))
	if m.logFollow {
		m.logViewport.GotoBottom()
	}
}

// handleLogsKey processes keyboard input for the raw log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logFollow = !m.logFollow
		if m.logFollow {
			m.logViewport.GotoBottom()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.logFollow = false
		m.logViewport.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.logFollow = false
		m.logViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageUp):
		m.logFollow = false
		m.logViewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keys.HalfPageDown):
		m.logViewport.HalfPageDown()
		return m, nil
	}

	return m, nil
}

// renderLogs renders the raw log tail view.
func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	title := styles.AccentText.Bold(true).Render("Raw log")
	if m.config != nil {
		title += "  " + styles.FaintText.Render(truncateMiddle(m.config.LogPath, 60))
	}
	if m.logFollow {
		title += "  " + styles.MutedText.Render("(following)")
	}

	if len(m.logLines) == 0 {
		empty := styles.MutedText.Render("logfile is empty or missing")
		return title + "\n" + padToHeight(empty, m.logViewportHeight())
	}

	return title + "\n" + m.logViewport.View()
}

// padToHeight pads content with blank lines so the statusbar stays put.
func padToHeight(content string, height int) string {
	lines := strings.Count(content, "\n") + 1
	if lines >= height {
		return content
	}
	return content + strings.Repeat("\n", height-lines)
}

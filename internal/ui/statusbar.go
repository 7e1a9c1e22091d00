package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusbar renders the bottom bar: short key help on the right and
// either a transient note or the theme name on the left.
func (m Model) renderStatusbar() string {
	styles := m.theme.Styles()

	left := styles.MutedText.Render(m.theme.Name)
	if m.note != "" && time.Now().Before(m.noteUntil) {
		if m.noteErr {
			left = styles.DangerText.Render(m.note)
		} else {
			left = styles.SuccessText.Render(m.note)
		}
	}

	right := m.help.View(m.keys)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	content := left + lipgloss.NewStyle().Width(gap).Render("") + right

	return styles.Footer.Width(m.width).Render(content)
}

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top status bar: logo, the two indicator lamps,
// and a digest of the latest parsed step.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	now := time.Now()
	compact := m.width < 100

	var parts []string

	parts = append(parts, styles.Logo.Render("nekmon"))
	parts = append(parts, m.renderLamp("Update", m.snapshot.UpdateLit(now), styles.SuccessText))
	parts = append(parts, m.renderLamp("Jam", m.snapshot.JamLit(now), styles.DangerText))

	if last, ok := m.snapshot.History.Last(); ok {
		parts = append(parts,
			styles.MutedText.Render("Step:")+" "+styles.Text.Render(fmt.Sprintf("%d", last.Step)),
			styles.MutedText.Render("t:")+" "+styles.Text.Render(fmt.Sprintf("%.4g", last.Time)),
		)
		if !compact {
			parts = append(parts,
				styles.MutedText.Render("CFL:")+" "+styles.Text.Render(fmt.Sprintf("%.3g", last.CFL)),
			)
		}
	} else {
		parts = append(parts, styles.WarningText.Render("waiting for logfile..."))
	}

	if m.config != nil && !compact {
		path := truncateMiddle(m.config.LogPath, 40)
		parts = append(parts, styles.FaintText.Render(path))
	}

	if !m.snapshot.LastPoll.IsZero() {
		age := humanizeDuration(now.Sub(m.snapshot.LastPoll))
		parts = append(parts, styles.MutedText.Render(age))
	}

	if m.snapshot.IsStale() {
		parts = append(parts, styles.DangerText.Render("STALE"))
	}
	if m.snapshot.LastError != nil {
		errText := truncate(m.snapshot.LastError.Error(), 40)
		parts = append(parts, styles.DangerText.Render("ERROR ")+styles.MutedText.Render(errText))
	}

	content := strings.Join(parts, "  ")
	return styles.Header.Width(m.width).Render(content)
}

// renderLamp renders one labeled indicator. Lit lamps take the given color,
// dark lamps stay faint.
func (m Model) renderLamp(label string, lit bool, litStyle lipgloss.Style) string {
	styles := m.theme.Styles()
	lamp := styles.FaintText.Render("●")
	if lit {
		lamp = litStyle.Render("●")
	}
	return styles.MutedText.Render(label) + " " + lamp
}

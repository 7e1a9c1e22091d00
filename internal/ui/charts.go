package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nek-tools/nekmon/internal/chart"
	"github.com/nek-tools/nekmon/internal/prefs"
)

// chartRows describes the fixed layout: three panels on top, two below.
var chartRows = [2][]int{
	{chart.SolutionTime, chart.TimeStep, chart.CFL},
	{chart.TotalWall, chart.StepWall},
}

// renderCharts renders the five-panel chart grid.
func (m Model) renderCharts() string {
	contentHeight := m.height - 2 // header + statusbar
	if contentHeight < 8 || m.width < 30 {
		return m.theme.Styles().MutedText.Render("window too small")
	}

	topHeight := contentHeight / 2
	bottomHeight := contentHeight - topHeight

	rows := make([]string, 0, len(chartRows))
	for r, indices := range chartRows {
		rowHeight := topHeight
		if r == 1 {
			rowHeight = bottomHeight
		}

		widths := splitWidth(m.width, len(indices))
		panels := make([]string, 0, len(indices))
		for i, idx := range indices {
			panels = append(panels, m.renderChartPanel(idx, widths[i], rowHeight))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderChartPanel renders one bordered chart panel of the given outer size.
func (m Model) renderChartPanel(idx, outerWidth, outerHeight int) string {
	styles := m.theme.Styles()

	innerWidth := outerWidth - 2
	innerHeight := outerHeight - 2

	mode := prefs.AxisStep
	if idx < len(m.axisModes) {
		mode = m.axisModes[idx]
	}

	title := styles.ChartTitle(idx).Render(truncate(chart.Title(idx), innerWidth))
	caption := styles.FaintText.Render(truncate(axisCaption(idx, mode), innerWidth))

	plotHeight := innerHeight - 2 // title + caption lines
	plot := chart.Render(m.snapshot.History, idx, mode, innerWidth, plotHeight)
	if plot == "" {
		placeholder := "waiting for data"
		if plotHeight < 4 || innerWidth < 10 {
			placeholder = ""
		}
		plot = styles.MutedText.Render(placeholder)
	}

	content := strings.Join([]string{title, caption, plot}, "\n")

	return styles.Panel.
		Width(innerWidth).
		Height(innerHeight).
		Render(content)
}

// axisCaption describes the current x-axis and how to flip it.
func axisCaption(idx int, mode string) string {
	label := "x: Step"
	if mode == prefs.AxisTime {
		label = "x: Solution Time"
	}
	if idx == chart.SolutionTime && mode == prefs.AxisTime {
		// The first chart swaps axes entirely in time mode.
		label = "x: Solution Time, y: Step"
	}
	return label + "  [" + string(rune('1'+idx)) + "]"
}

// splitWidth divides width into n panel widths, giving the remainder to the
// last panel so the row always spans the full terminal.
func splitWidth(width, n int) []int {
	if n <= 0 {
		return nil
	}
	widths := make([]int, n)
	each := width / n
	for i := range widths {
		widths[i] = each
	}
	widths[n-1] = width - each*(n-1)
	return widths
}

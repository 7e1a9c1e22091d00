// Package chart renders the five monitor charts as terminal line plots.
package chart

import (
	tm "github.com/buger/goterm"

	"github.com/nek-tools/nekmon/internal/neklog"
	"github.com/nek-tools/nekmon/internal/prefs"
)

// Count is the number of charts nekmon renders.
const Count = 5

// Chart indices, in layout order.
const (
	SolutionTime = iota
	TimeStep
	CFL
	TotalWall
	StepWall
)

var titles = [Count]string{
	"Solution Time vs Step",
	"Time Step (DT)",
	"CFL",
	"Total Wall Time",
	"Step Wall Time",
}

var yLabels = [Count]string{
	"Solution Time",
	"DT",
	"CFL",
	"Total Wall",
	"Step Wall",
}

// Title returns the display title for chart idx.
func Title(idx int) string {
	if idx < 0 || idx >= Count {
		return ""
	}
	return titles[idx]
}

// Series resolves the x and y data and axis labels for chart idx given its
// axis mode. The solution-time chart swaps axes entirely in time mode; the
// other charts only switch what the y series is plotted against.
func Series(h neklog.History, idx int, mode string) (x, y []float64, xLabel, yLabel string) {
	steps := make([]float64, len(h.Steps))
	for i, s := range h.Steps {
		steps[i] = float64(s)
	}

	if idx == SolutionTime {
		if mode == prefs.AxisTime {
			return h.Times, steps, "Solution Time", "Step"
		}
		return steps, h.Times, "Step", "Solution Time"
	}

	var series []float64
	switch idx {
	case TimeStep:
		series = h.DTs
	case CFL:
		series = h.CFLs
	case TotalWall:
		series = h.WallTimes
	case StepWall:
		series = h.StepWalls
	default:
		return nil, nil, "", ""
	}

	if mode == prefs.AxisTime {
		return h.Times, series, "Solution Time", yLabels[idx]
	}
	return steps, series, "Step", yLabels[idx]
}

// Render draws chart idx as a string sized to width x height. An empty
// history renders to an empty string; the caller decides on a placeholder.
func Render(h neklog.History, idx int, mode string, width, height int) string {
	x, y, xLabel, yLabel := Series(h, idx, mode)
	if len(x) == 0 || width < 10 || height < 4 {
		return ""
	}

	data := new(tm.DataTable)
	data.AddColumn(xLabel)
	data.AddColumn(yLabel)
	for i := range x {
		data.AddRow(x[i], y[i])
	}

	plot := tm.NewLineChart(width, height)
	return plot.Draw(data)
}

// Package export writes the monitor charts as PNG files.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/nek-tools/nekmon/internal/chart"
	"github.com/nek-tools/nekmon/internal/neklog"
)

var fileNames = [chart.Count]string{
	"solution_time.png",
	"dt.png",
	"cfl.png",
	"total_wall.png",
	"step_wall.png",
}

// seriesColors holds one fixed series color per chart.
var seriesColors = [chart.Count]drawing.Color{
	drawing.ColorFromHex("FF6F61"),
	drawing.ColorFromHex("6B5B95"),
	drawing.ColorFromHex("88B04B"),
	drawing.ColorFromHex("F7CAC9"),
	drawing.ColorFromHex("92A8D1"),
}

// WritePNGs renders all five charts into dir, honoring each chart's axis
// mode, and returns the written paths. At least two parsed steps are
// required to draw a line.
func WritePNGs(h neklog.History, modes []string, dir string) ([]string, error) {
	if h.Len() < 2 {
		return nil, fmt.Errorf("not enough data to export: %d steps", h.Len())
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}

	paths := make([]string, 0, chart.Count)
	for idx := 0; idx < chart.Count; idx++ {
		mode := ""
		if idx < len(modes) {
			mode = modes[idx]
		}

		path := filepath.Join(dir, fileNames[idx])
		if err := writeOne(h, idx, mode, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeOne(h neklog.History, idx int, mode, path string) error {
	x, y, xLabel, yLabel := chart.Series(h, idx, mode)

	graph := gochart.Chart{
		Title:  chart.Title(idx),
		Width:  800,
		Height: 500,
		XAxis:  gochart.XAxis{Name: xLabel},
		YAxis:  gochart.YAxis{Name: yLabel},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				XValues: x,
				YValues: y,
				Style: gochart.Style{
					StrokeColor: seriesColors[idx],
					StrokeWidth: 2,
				},
			},
		},
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := graph.Render(gochart.PNG, file); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

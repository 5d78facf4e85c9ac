package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/zeu5/tictactoe-rl/train"
)

// RenderChart writes the training curves of every matchup to a single HTML
// page in dir, one line chart per matchup with learner win, opponent win and
// draw series over the checkpoint episodes. It returns the file path.
func RenderChart(dir string, results map[string]*train.Result) (string, error) {
	page := components.NewPage()

	for _, name := range sortedNames(results) {
		history := results[name].History

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithTitleOpts(opts.Title{
				Title: name,
			}),
			charts.WithInitializationOpts(opts.Initialization{
				Theme: "shine",
			}),
		)

		episodes := make([]string, 0, len(history.Checkpoints))
		learnerWin := make([]opts.LineData, 0, len(history.Checkpoints))
		opponentWin := make([]opts.LineData, 0, len(history.Checkpoints))
		draws := make([]opts.LineData, 0, len(history.Checkpoints))
		for _, cp := range history.Checkpoints {
			episodes = append(episodes, fmt.Sprintf("%d", cp.Episode))
			learnerWin = append(learnerWin, opts.LineData{Value: cp.XWinRate})
			opponentWin = append(opponentWin, opts.LineData{Value: cp.OWinRate})
			draws = append(draws, opts.LineData{Value: cp.DrawRate})
		}

		line = line.SetXAxis(episodes)
		line.AddSeries("learner win %", learnerWin)
		line.AddSeries("opponent win %", opponentWin)
		line.AddSeries("draw %", draws)

		page.AddCharts(line)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "training_progress.html")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return "", err
	}
	return path, nil
}

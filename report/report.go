package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"

	"github.com/logrusorgru/aurora"

	"github.com/zeu5/tictactoe-rl/train"
	"github.com/zeu5/tictactoe-rl/util"
)

// sortedNames gives the matchups a stable order for tables and charts.
func sortedNames(results map[string]*train.Result) []string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WriteComparison prints the final table of every matchup and names the one
// whose learner won most.
func WriteComparison(w io.Writer, results map[string]*train.Result) {
	fmt.Fprintln(w, "Final comparison")

	best := ""
	bestRate := -1.0
	for _, name := range sortedNames(results) {
		s := results[name].Stats
		fmt.Fprintf(w, "  %-22s %6d games  win %6.2f%%  loss %6.2f%%  draw %6.2f%%\n",
			name, s.TotalGames, s.XWinRate, s.OWinRate, s.DrawRate)
		if s.XWinRate > bestRate {
			best, bestRate = name, s.XWinRate
		}
	}
	if best != "" {
		fmt.Fprintf(w, "Best performer: %s (%.2f%% wins)\n", aurora.Green(best), bestRate)
	}
}

// SaveHistories writes every matchup's checkpoint history to history.json in
// dir.
func SaveHistories(dir string, results map[string]*train.Result) error {
	out := make(map[string]*train.History, len(results))
	for name, r := range results {
		out[name] = r.History
	}
	return util.SaveJson(filepath.Join(dir, "history.json"), out)
}

// SaveComparison writes every matchup's final statistics to comparison.json
// in dir.
func SaveComparison(dir string, results map[string]*train.Result) error {
	out := make(map[string]*train.Stats, len(results))
	for name, r := range results {
		out[name] = r.Stats
	}
	return util.SaveJson(filepath.Join(dir, "comparison.json"), out)
}

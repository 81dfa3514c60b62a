package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/maps"
	"github.com/vovakirdan/tui-defense/internal/platform/tui"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

// recentRunLimit is how many runs the per-map listing shows.
const recentRunLimit = 5

var (
	flagScoresTUI bool
	flagScoresAll bool
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [map]",
	Short: "Show high scores and recent runs",
	Long: `Display the top 10 scores and the latest runs for a map. Without a map,
print a summary of every map that has been played.

Examples:
  defense scores
  defense scores meadow
  defense scores meadow --all
  defense scores hive --clear
  defense scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	f := scoresCmd.Flags()
	f.BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	f.BoolVar(&flagScoresAll, "all", false, "List every score instead of the top 10")
	f.BoolVar(&flagClear, "clear", false, "Delete the scores and run history of a map")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresTUI {
		cfg := runtimeConfig()
		initial := ""
		if len(args) > 0 {
			initial = args[0]
		}
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, initial)
		return err
	}

	if len(args) == 0 {
		if flagClear {
			return fmt.Errorf("--clear needs a map")
		}
		return printSummary(out, store)
	}

	m, err := mapArg(args)
	if err != nil {
		return err
	}
	if flagClear {
		return clearMap(out, store, m)
	}
	return printMapScores(out, store, m, flagScoresAll)
}

func printSummary(w io.Writer, store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-12s  %-6s  %-8s  %-9s  %s\n", "Map", "Games", "Best", "Average", "Last played")
	fmt.Fprintf(w, "  %-12s  %-6s  %-8s  %-9s  %s\n", "---", "-----", "----", "-------", "-----------")
	for _, m := range catalog {
		s, ok := stats[m.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "  %-12s  %-6d  %-8d  %-9.1f  %s\n",
			m.ID, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printMapScores(w io.Writer, store *storage.Store, m maps.Map, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(m.ID)
	} else {
		scores, err = store.TopScores(m.ID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", m.Name)

	if len(scores) == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'defense play %s' to set the first high score!\n", m.ID)
		return nil
	}

	stats, err := store.GetGameStats(m.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d games, average %.1f, total %d, last played %s\n",
		stats.GamesCount, stats.AvgScore, stats.TotalScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	if best, err := store.HighScore(m.ID); err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}

	runs, err := store.RecentRuns(m.ID, recentRunLimit)
	if err != nil || len(runs) == 0 {
		return err
	}
	total, err := store.CountRuns(m.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recent runs:")
	fmt.Fprintf(w, "  %-16s  %-8s  %-6s  %-8s  %-6s  %-5s  %s\n", "Date", "Mode", "Diff", "Score", "Ticks", "Kills", "Seed")
	for _, r := range runs {
		fmt.Fprintf(w, "  %-16s  %-8s  %-6s  %-8d  %-6d  %-5d  %d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Source, r.Difficulty, r.Score, r.Ticks, r.Kills, r.Seed)
	}
	if total > len(runs) {
		fmt.Fprintf(w, "  showing %d of %d runs\n", len(runs), total)
	}
	return nil
}

// clearMap wipes the scores and run history of one map.
func clearMap(w io.Writer, store *storage.Store, m maps.Map) error {
	if err := store.ClearScores(m.ID); err != nil {
		return err
	}
	n, err := store.ClearRuns(m.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared scores and %d runs for %s.\n", n, m.Name)
	return nil
}

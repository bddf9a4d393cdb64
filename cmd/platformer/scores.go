package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
	flagAllScores   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and level records",
	Long: `Display the top 10 scores and per-level records for a mode.

Examples:
  platformer scores
  platformer scores platformer_practice
  platformer scores --all       # Every recorded score, not just the top 10
  platformer scores -i          # Browse in the interactive scoreboard
  platformer scores --clear     # Delete the mode's scores and records`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and level records of the mode")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every score instead of the top 10")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'platformer list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		return err
	}
	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared scores for %s.\n", gameID)
		return nil
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return printScores(cmd, store, gameID, game.Title())
}

func printScores(cmd *cobra.Command, store *storage.Store, gameID, title string) error {
	out := cmd.OutOrStdout()

	var scores []storage.ScoreEntry
	var err error
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}
	summary, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	stats, err := store.LevelStats(gameID)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
	} else {
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintf(out, "\n%d games played, average score %.0f, last played %s\n",
			summary.GamesCount, summary.AvgScore, summary.LastPlayed.Format("2006-01-02 15:04"))
	}

	fmt.Fprintf(out, "\nLevel Records\n\n")
	if len(stats) == 0 {
		fmt.Fprintf(out, "No level attempts yet. Play 'platformer play %s' to set one!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-24s  %5s  %6s  %6s  %8s\n", "Level", "Tries", "Clears", "Deaths", "Best")
	for _, st := range stats {
		best := "-"
		if st.Clears > 0 {
			best = fmt.Sprintf("%.1fs", st.BestTime.Seconds())
		}
		fmt.Fprintf(out, "  %-24s  %5d  %6d  %6d  %8s\n", st.LevelID, st.Attempts, st.Clears, st.Deaths, best)
	}

	runs, err := store.BestRuns(gameID, stats[0].LevelID, 3)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Fprintf(out, "\nFastest clears of %s:\n", stats[0].LevelID)
		for i, r := range runs {
			fmt.Fprintf(out, "  %d. %.1fs  %d coins  %s\n", i+1, r.Run.Duration.Seconds(), r.Run.Coins, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}
	return nil
}

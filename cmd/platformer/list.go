package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes",
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	games := registry.List()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	stats := allStats(newLogger("list"))

	maxIDLen := len("ID")
	maxTitleLen := len("Title")
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-*s  %6s  %6s\n", maxIDLen, "ID", maxTitleLen, "Title", "Played", "Best")
	fmt.Fprintf(out, "  %-*s  %-*s  %6s  %6s\n", maxIDLen, "--", maxTitleLen, "-----", "------", "----")
	for _, g := range games {
		played, best := "-", "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprint(st.GamesCount)
			best = fmt.Sprint(st.HighScore)
		}
		fmt.Fprintf(out, "  %-*s  %-*s  %6s  %6s\n", maxIDLen, g.ID, maxTitleLen, g.Title, played, best)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'platformer play <id>' to play.")
}

// allStats reads per-mode score statistics. The listing works without them.
func allStats(logger *log.Logger) map[string]*storage.GameStats {
	store := openStore(logger)
	if store == nil {
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		logger.Warn("could not read score stats", "err", err)
		return nil
	}
	return stats
}

// platformer is a tile-based platformer for the terminal.
//
// Usage:
//
//	platformer list              - List game modes
//	platformer play [mode]       - Play (default: platformer)
//	platformer menu              - Start menu with level picker and scores
//	platformer levels            - List or check level files
//	platformer scores [mode]     - Show high scores and level records
//	platformer config [mode]     - Print the default game config
//	platformer serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/platformer.db)
//	--levels <dir>  - Load levels from a directory instead of the built-in set
//	--verbose       - Log debug messages to stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const defaultGame = "platformer"

var (
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLevelsDir string
	flagTheme     string
	flagVerbose   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Terminal platformer - jump over lava, collect coins",
	Long: `A tile-based platformer played in the terminal.

Collect every coin in a level to clear it. Touching lava costs a life.

Available commands:
  list     - Show game modes
  play     - Play directly
  menu     - Interactive menu with level picker and scores
  levels   - List or validate level files
  scores   - View high scores and level records
  config   - Print the default game config
  serve    - Start SSH server for remote play

Examples:
  platformer play
  platformer play platformer_practice --start 03-lava-works
  platformer play --levels ./my-levels --watch
  platformer levels --check --levels ./my-levels
  platformer serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagTheme == "" {
			return nil
		}
		theme, ok := tui.ThemeByName(flagTheme)
		if !ok {
			return fmt.Errorf("unknown theme %q (available: %v)", flagTheme, tui.ThemeNames())
		}
		tui.SetTheme(theme)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level YAML files (default: built-in levels)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Menu theme: default, lava, monochrome")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger returns the stderr logger shared by the commands.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// levelLoader returns the loader for --levels, or the built-in set.
func levelLoader(logger *log.Logger) *levels.Loader {
	var loader *levels.Loader
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	} else {
		loader = levels.Builtin()
	}
	loader.SetLogger(logger)
	return loader
}

// configureGame passes the shared flags to the platformer package.
func configureGame(logger *log.Logger) {
	platformer.SetLevelsDir(flagLevelsDir)
	platformer.SetLogger(logger)
}

// openStore opens the scores database, or returns nil so play goes on
// without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

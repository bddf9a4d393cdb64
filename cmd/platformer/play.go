package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagWatch      bool
	flagStart      string
	flagPick       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play the platformer",
	Long: `Start playing. The mode defaults to the campaign ("platformer").

Controls:
  Left/A, Right/D   - Run
  Space/Up/W        - Jump
  P                 - Pause
  R                 - Restart (after game over or victory)
  Esc/B             - Leave the game
  Ctrl+S            - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 5 lives, game speed ramps up from normal
  normal - Starts slightly faster, ramps up
  hard   - 2 lives, starts fast, ramps up
  fixed  - No speed progression

Examples:
  platformer play
  platformer play --difficulty hard
  platformer play platformer_practice --start 04-the-climb
  platformer play --pick
  platformer play --levels ./levels --watch
  platformer play --config ./my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when files in --levels change")
	playCmd.Flags().StringVar(&flagStart, "start", "", "Level id to start from")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the starting level from a list")
}

// terminalConfig builds the runtime config from the flags and terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'platformer list' to see available modes", gameID)
	}
	if flagDifficulty != "" {
		if _, ok := config.ParsePreset(flagDifficulty); !ok {
			return fmt.Errorf("unknown difficulty %q", flagDifficulty)
		}
	}
	if flagWatch && flagLevelsDir == "" {
		return fmt.Errorf("--watch needs --levels")
	}

	logger := newLogger("platformer")
	if flagStart != "" {
		ids, err := levelLoader(logger).ListIDs()
		if err != nil {
			return err
		}
		if !slices.Contains(ids, flagStart) {
			return fmt.Errorf("unknown level %q, run 'platformer levels' to see available levels", flagStart)
		}
	}
	configureGame(logger)
	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetWatch(flagWatch)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	start := flagStart
	if flagPick {
		list, err := levelLoader(logger).LoadAll()
		if err != nil {
			return err
		}
		sel, err := tui.RunLevelPicker(list, store, gameID, cfg)
		if err != nil {
			return err
		}
		if sel == nil {
			return nil
		}
		start = sel.LevelID
	}

	platformer.SetStartLevel(start)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Debug("starting game", "game", gameID, "level", start, "fps", cfg.TickRate)
	if _, err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu",
	Long: `Pick a mode, choose a starting level and browse scores.

Controls:
  Up/Down or W/S or K/J  - Navigate
  Enter/Space            - Select
  Tab                    - Scores and level records
  Esc/B                  - Back
  Q/Ctrl+C               - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger("platformer")
	configureGame(logger)

	list, err := levelLoader(logger).LoadAll()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(store, terminalConfig(), list, logger)
}

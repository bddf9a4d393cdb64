package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var configCmd = &cobra.Command{
	Use:   "config [mode]",
	Short: "Print the default game config",
	Long: `Prints the built-in config YAML for a mode. Save it to
~/.arcade/configs/platformer.yaml or pass it to 'play --config' after editing.

Examples:
  platformer config > my-physics.yaml
  platformer play --config my-physics.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'platformer list' to see available modes", gameID)
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		return fmt.Errorf("no default config for %q", gameID)
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

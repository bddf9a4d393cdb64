package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var flagCheck bool

var levelsCmd = &cobra.Command{
	Use:   "levels [id]",
	Short: "List, show or validate level files",
	Long: `Lists the levels that would be played, in campaign order.
Given a level id, prints that level's plan instead.

With --check, every problem found while loading is reported and the
command fails if there is any.

Examples:
  platformer levels
  platformer levels 03-lava-works
  platformer levels --levels ./my-levels --check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagCheck, "check", false, "Report invalid level files and fail if any")
}

func runLevels(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	loader := levelLoader(newLogger("levels"))

	if len(args) == 1 {
		lvl, err := loader.LoadByID(args[0])
		if err != nil {
			return err
		}
		w, h := lvl.Size()
		fmt.Fprintf(out, "%s - %s (%dx%d, %s)\n\n", lvl.ID, lvl.Name, w, h, lvl.FilePath)
		for _, row := range lvl.Plan {
			fmt.Fprintf(out, "  |%s|\n", row)
		}
		return nil
	}

	list, problems, err := loader.Check()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Levels in %s:\n\n", loader.Root())
	if len(list) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for i, lvl := range list {
		w, h := lvl.Size()
		fmt.Fprintf(out, "  %2d. %-24s %-28s %3dx%-3d %s\n", i+1, lvl.ID, lvl.Name, w, h, lvl.FilePath)
	}

	if len(problems) == 0 {
		return nil
	}

	fmt.Fprintf(out, "\n%d problem(s):\n", len(problems))
	for _, p := range problems {
		fmt.Fprintf(out, "  - %v\n", p)
	}
	if flagCheck {
		return errors.New("level check failed")
	}
	fmt.Fprintln(out, "\nRun with --check to fail on problems.")
	return nil
}

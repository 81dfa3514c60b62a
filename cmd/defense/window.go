package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/games/honey"
	"github.com/vovakirdan/tui-defense/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window [map]",
	Short: "Defend a map in a desktop window",
	Long: `Open the map in a desktop window. Controls match 'defense play';
click a tower to upgrade it.

Examples:
  defense window
  defense window hive --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	m, err := mapArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := gui.Run(honey.New(m, rules), gui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: string(difficulty),
		Seed:       flagSeed,
		FPS:        flagFPS,
	}); err != nil {
		return fmt.Errorf("cannot run window: %w", err)
	}
	return nil
}

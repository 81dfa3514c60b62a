package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/platform/tui"
	"github.com/vovakirdan/tui-defense/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [map]",
	Short: "Defend a map in the terminal",
	Long: `Start defending the given map (default: meadow).

Controls:
  Tab/Shift+Tab  - Select next/previous tower
  Enter/U        - Upgrade the selected tower
  1-9            - Upgrade tower N
  Mouse click    - Upgrade the tower under the cursor
  P/Esc          - Pause
  R              - Restart (after game over)
  Y              - Copy the score line to the clipboard
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - 20 lives and 300 honey
  normal - The classic balance
  hard   - 5 lives, enemies start one wave harder
  fixed  - Hardness never rises

Examples:
  defense play
  defense play hive --difficulty hard
  defense play meadow --seed 42
  defense play meadow --config ./my-balance.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	m, err := mapArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(m.ID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, runtimeConfig(), tui.Options{
		Store:      store,
		Logger:     logger,
		Difficulty: string(difficulty),
	}); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}

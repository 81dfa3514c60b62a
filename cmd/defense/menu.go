package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-defense/internal/platform/tui"
	"github.com/vovakirdan/tui-defense/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick maps and difficulty from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a map, Left/Right to change difficulty and
Enter to play. After a session ends you return to the menu.

Controls:
  Up/Down/j/k     - Navigate maps
  Left/Right/h/l  - Change difficulty
  Enter/Space     - Play
  Tab             - Scores
  Q               - Quit

Examples:
  defense menu
  defense menu --fps 60
  defense menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}
	cfg := runtimeConfig()
	preset := difficulty
	lastMap := ""

	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			return err
		}

		cfg = menuResult.Config
		preset = menuResult.Difficulty

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, lastMap)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return nil
		}

		useDifficulty(preset)
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		lastMap = menuResult.GameID

		// Fresh seed for each session unless one was pinned.
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, tui.Options{
			Store:      store,
			Logger:     logger,
			Difficulty: string(preset),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}

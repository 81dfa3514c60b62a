// defense is a tick-based tower-defense game for the terminal and the
// desktop.
//
// Usage:
//
//	defense list              - List available maps
//	defense play [map]        - Defend a map in the terminal
//	defense menu              - Pick maps and difficulty interactively
//	defense scores [map]      - Show high scores and recent runs
//	defense simulate [map]    - Run headless autopilot batches
//	defense window [map]      - Defend a map in a desktop window
//
// Global flags:
//
//	--fps <rate>         - Render frames per second (default: 30)
//	--seed <value>       - RNG seed for reproducible sessions
//	--db <path>          - Scores database (default: ~/.defense/scores.db)
//	--maps <dir>         - Extra directory of map files
//	--config <path>      - Balance config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log-file <path>    - Write logs of interactive sessions to a file
//	--log-level <level>  - debug, info, warn or error
//
// DEFENSE_* environment variables and a .env file in the working directory
// fill in flags that were not given on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagMapsDir    string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "defense",
	Short: "Honey Defense - hold the hive against endless waves",
	Long: `Honey Defense is a tick-based tower-defense game. Enemies walk a fixed
path toward the hive; kills pay honey, honey buys tower upgrades, and every
enemy that reaches the hive costs a life.

Available commands:
  list      - Show all available maps
  play      - Defend a map in the terminal
  menu      - Interactive map and difficulty picker
  scores    - View high scores and run history
  simulate  - Headless autopilot batches for balancing
  window    - Defend a map in a desktop window

Examples:
  defense list
  defense play meadow
  defense play hive --difficulty hard
  defense simulate --runs 20 --strategy focus
  defense window meadow --fps 60`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 30, "Render frames per second")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.defense/scores.db", "Path to scores database")
	flags.StringVar(&flagMapsDir, "maps", "", "Extra directory of map files")
	flags.StringVar(&flagConfig, "config", "", "Path to balance config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogFile, "log-file", "", "Log file for interactive sessions (default: no logs)")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(windowCmd)
}

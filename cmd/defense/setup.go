package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/games/honey"
	"github.com/vovakirdan/tui-defense/internal/maps"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

// Resolved once per invocation by setup.
var (
	balance    config.DefenseConfig // loaded from --config, before presets
	rules      config.DefenseConfig // balance with the active preset applied
	difficulty config.DifficultyPreset
	catalog    []maps.Map
)

// setup runs before every command: environment, balance and maps.
func setup(cmd *cobra.Command, _ []string) error {
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	applyEnv(cmd.Flags(), env)

	difficulty, err = config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}

	balance, err = config.LoadDefense(flagConfig)
	if err != nil {
		return err
	}

	catalog, err = maps.Catalog(mapDirs()...)
	if err != nil {
		return err
	}
	useDifficulty(difficulty)
	return nil
}

// applyEnv fills flags the user did not set from DEFENSE_* variables.
func applyEnv(flags *pflag.FlagSet, env config.Env) {
	if env.FPS > 0 && !flags.Changed("fps") {
		flagFPS = env.FPS
	}
	if env.Seed != 0 && !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if env.DB != "" && !flags.Changed("db") {
		flagDBPath = env.DB
	}
	if env.Config != "" && !flags.Changed("config") {
		flagConfig = env.Config
	}
	if env.Difficulty != "" && !flags.Changed("difficulty") {
		flagDifficulty = env.Difficulty
	}
	if env.Maps != "" && !flags.Changed("maps") {
		flagMapsDir = env.Maps
	}
}

// useDifficulty applies a preset on top of the loaded balance and registers
// every catalog map with the result.
func useDifficulty(preset config.DifficultyPreset) {
	rules = balance
	config.ApplyDefensePreset(&rules, preset)
	for _, m := range catalog {
		honey.Register(m, rules)
	}
}

// mapDirs lists user map directories, lowest priority first.
func mapDirs() []string {
	var dirs []string
	if dir := config.UserDir(); dir != "" {
		dirs = append(dirs, filepath.Join(dir, "maps"))
	}
	if flagMapsDir != "" {
		dirs = append(dirs, flagMapsDir)
	}
	return dirs
}

// newLogger builds the logger for a command. Interactive sessions own the
// terminal, so they log to --log-file or nowhere.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var w io.Writer = os.Stderr
	closer := func() {}

	if interactive {
		w = io.Discard
		if flagLogFile != "" {
			f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err != nil {
				return nil, closer, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closer = func() { f.Close() }
		}
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, closer, fmt.Errorf("invalid --log-level: %w", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "defense",
		Level:           level,
	})
	return logger, closer, nil
}

// openStore opens the scores database. A failure is a warning: the game
// still works without storage.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the session to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.FPS = flagFPS
	cfg.TickRate = rules.Interval()
	cfg.Seed = flagSeed
	return cfg
}

// mapArg returns the map named on the command line, or the default map.
func mapArg(args []string) (maps.Map, error) {
	id := maps.DefaultMapID
	if len(args) > 0 {
		id = args[0]
	}
	m, ok := maps.Find(catalog, id)
	if !ok {
		return maps.Map{}, fmt.Errorf("unknown map %q (run 'defense list' to see available maps)", id)
	}
	return m, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by the CLI.
const (
	EnvFPS        = "DEFENSE_FPS"
	EnvSeed       = "DEFENSE_SEED"
	EnvDB         = "DEFENSE_DB"
	EnvConfig     = "DEFENSE_CONFIG"
	EnvDifficulty = "DEFENSE_DIFFICULTY"
	EnvMaps       = "DEFENSE_MAPS"
)

// Env holds values read from the process environment and .env files.
// Zero values mean "not set".
type Env struct {
	FPS        int
	Seed       int64
	DB         string
	Config     string
	Difficulty string
	Maps       string
}

// LoadEnv loads the given .env files (default ".env") into the process
// environment without overriding variables that are already set, then reads
// the DEFENSE_* variables. Missing files are not an error.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, fmt.Errorf("config: cannot load %s: %w", f, err)
		}
	}
	return ReadEnv()
}

// ReadEnv reads the DEFENSE_* variables from the process environment.
func ReadEnv() (Env, error) {
	env := Env{
		DB:         os.Getenv(EnvDB),
		Config:     os.Getenv(EnvConfig),
		Difficulty: os.Getenv(EnvDifficulty),
		Maps:       os.Getenv(EnvMaps),
	}

	if v := os.Getenv(EnvFPS); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return env, fmt.Errorf("config: %s must be a positive integer, got %q", EnvFPS, v)
		}
		env.FPS = fps
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return env, fmt.Errorf("config: %s must be an integer, got %q", EnvSeed, v)
		}
		env.Seed = seed
	}
	return env, nil
}

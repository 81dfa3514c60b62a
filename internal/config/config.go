// Package config provides YAML-based game configuration loading and
// difficulty presets for the defense simulation.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-defense/internal/defense"
)

// DefenseConfig contains all tunable numbers of a session.
type DefenseConfig struct {
	Tick    TickConfig    `yaml:"tick"`
	Economy EconomyConfig `yaml:"economy"`
	Waves   WavesConfig   `yaml:"waves"`
	Enemies EnemiesConfig `yaml:"enemies"`
	Towers  TowersConfig  `yaml:"towers"`
}

// TickConfig defines the simulation clock.
type TickConfig struct {
	IntervalMS int `yaml:"interval_ms"` // 125ms = 8 ticks per second
}

// EconomyConfig defines the starting counters and score payout.
type EconomyConfig struct {
	Lives           int `yaml:"lives"`
	StartingHoney   int `yaml:"starting_honey"`
	ScoreMultiplier int `yaml:"score_multiplier"` // score gained per honey of reward
}

// WavesConfig defines spawn cadence and difficulty escalation.
type WavesConfig struct {
	SpawnEvery      int `yaml:"spawn_every"`
	HardenEvery     int `yaml:"harden_every"` // 0 keeps hardness fixed
	InitialHardness int `yaml:"initial_hardness"`
}

// RangeConfig is a half-open [min, max) interval.
type RangeConfig struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// EnemiesConfig defines the noise applied to spawned enemies.
type EnemiesConfig struct {
	RewardNoise      RangeConfig `yaml:"reward_noise"`
	HealthPercent    RangeConfig `yaml:"health_percent"`
	HealthAdditive   RangeConfig `yaml:"health_additive"`
	MultiplierSpread int         `yaml:"multiplier_spread"`
}

// TowersConfig defines the damage and price curves.
type TowersConfig struct {
	DamagePerLevel int `yaml:"damage_per_level"`
	UpgradeBase    int `yaml:"upgrade_base"`
}

// Interval returns the tick interval as a duration.
func (c DefenseConfig) Interval() time.Duration {
	return time.Duration(c.Tick.IntervalMS) * time.Millisecond
}

// Validate reports the first value that would make a session unplayable.
func (c DefenseConfig) Validate() error {
	switch {
	case c.Tick.IntervalMS <= 0:
		return fmt.Errorf("tick.interval_ms must be positive, got %d", c.Tick.IntervalMS)
	case c.Economy.Lives <= 0:
		return fmt.Errorf("economy.lives must be positive, got %d", c.Economy.Lives)
	case c.Economy.StartingHoney < 0:
		return fmt.Errorf("economy.starting_honey must not be negative, got %d", c.Economy.StartingHoney)
	case c.Waves.SpawnEvery <= 0:
		return fmt.Errorf("waves.spawn_every must be positive, got %d", c.Waves.SpawnEvery)
	case c.Waves.HardenEvery < 0:
		return fmt.Errorf("waves.harden_every must not be negative, got %d", c.Waves.HardenEvery)
	case c.Waves.InitialHardness <= 0:
		return fmt.Errorf("waves.initial_hardness must be positive, got %d", c.Waves.InitialHardness)
	case c.Towers.UpgradeBase <= 0:
		return fmt.Errorf("towers.upgrade_base must be positive, got %d", c.Towers.UpgradeBase)
	case c.Enemies.HealthPercent.Min < 1:
		return fmt.Errorf("enemies.health_percent.min must be at least 1, got %d", c.Enemies.HealthPercent.Min)
	case c.Enemies.HealthAdditive.Min < 0:
		return fmt.Errorf("enemies.health_additive.min must not be negative, got %d", c.Enemies.HealthAdditive.Min)
	}
	for name, r := range map[string]RangeConfig{
		"enemies.reward_noise":    c.Enemies.RewardNoise,
		"enemies.health_percent":  c.Enemies.HealthPercent,
		"enemies.health_additive": c.Enemies.HealthAdditive,
	} {
		if r.Max < r.Min {
			return fmt.Errorf("%s: max %d below min %d", name, r.Max, r.Min)
		}
	}
	return nil
}

// ToRules converts the config into simulation rules.
func (c DefenseConfig) ToRules() defense.Rules {
	return defense.Rules{
		Lives:            c.Economy.Lives,
		StartingHoney:    c.Economy.StartingHoney,
		InitialHardness:  c.Waves.InitialHardness,
		SpawnEvery:       c.Waves.SpawnEvery,
		HardenEvery:      c.Waves.HardenEvery,
		ScoreMultiplier:  c.Economy.ScoreMultiplier,
		RewardNoise:      defense.Range(c.Enemies.RewardNoise),
		HealthPercent:    defense.Range(c.Enemies.HealthPercent),
		HealthAdditive:   defense.Range(c.Enemies.HealthAdditive),
		MultiplierSpread: c.Enemies.MultiplierSpread,
		DamagePerLevel:   c.Towers.DamagePerLevel,
		UpgradeBase:      c.Towers.UpgradeBase,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every preset in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParseDifficulty converts a flag value to a preset. An empty string means
// normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// IsFixedPreset returns true if the preset disables escalation.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

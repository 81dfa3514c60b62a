package config

import (
	_ "embed"
)

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

// DefaultDefenseConfig returns the built-in balance.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Tick: TickConfig{
			IntervalMS: 125,
		},
		Economy: EconomyConfig{
			Lives:           10,
			StartingHoney:   100,
			ScoreMultiplier: 3,
		},
		Waves: WavesConfig{
			SpawnEvery:      7,
			HardenEvery:     70,
			InitialHardness: 1,
		},
		Enemies: EnemiesConfig{
			RewardNoise:      RangeConfig{Min: 70, Max: 130},
			HealthPercent:    RangeConfig{Min: 90, Max: 110},
			HealthAdditive:   RangeConfig{Min: 0, Max: 10},
			MultiplierSpread: 2,
		},
		Towers: TowersConfig{
			DamagePerLevel: 2,
			UpgradeBase:    100,
		},
	}
}

package defense

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

// Rules holds every tunable number of the simulation. The zero value is not
// useful; start from DefaultRules.
type Rules struct {
	Lives            int
	StartingHoney    int
	InitialHardness  int
	SpawnEvery       int // ticks between spawns, first spawn on tick 0
	HardenEvery      int // ticks between hardness increments, 0 disables
	ScoreMultiplier  int // score gained per point of honey reward
	RewardNoise      Range
	HealthPercent    Range
	HealthAdditive   Range
	MultiplierSpread int // how far below hardness the health multiplier may roll
	DamagePerLevel   int
	UpgradeBase      int
}

// DefaultRules returns the classic balance: spawn every 7 ticks, harden every
// 70, kills pay 3x their honey in score.
func DefaultRules() Rules {
	return Rules{
		Lives:            10,
		StartingHoney:    100,
		InitialHardness:  1,
		SpawnEvery:       7,
		HardenEvery:      70,
		ScoreMultiplier:  3,
		RewardNoise:      Range{Min: 70, Max: 130},
		HealthPercent:    Range{Min: 90, Max: 110},
		HealthAdditive:   Range{Min: 0, Max: 10},
		MultiplierSpread: 2,
		DamagePerLevel:   DefaultDamagePerLevel,
		UpgradeBase:      DefaultUpgradeBase,
	}
}

// normalized replaces values that would stall the tick loop.
func (r Rules) normalized() Rules {
	if r.SpawnEvery <= 0 {
		r.SpawnEvery = 1
	}
	if r.HardenEvery < 0 {
		r.HardenEvery = 0
	}
	if r.MultiplierSpread < 0 {
		r.MultiplierSpread = 0
	}
	return r
}

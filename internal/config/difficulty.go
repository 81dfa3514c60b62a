package config

// Schedule predicts wave hardness from the tick counter. The simulation owns
// the real counter; the schedule answers "what next" questions for the HUD
// and for headless reports.
type Schedule struct {
	cfg WavesConfig
}

// NewSchedule creates a schedule for the given wave settings.
func NewSchedule(cfg WavesConfig) Schedule {
	return Schedule{cfg: cfg}
}

// IsEnabled returns whether hardness escalates at all.
func (s Schedule) IsEnabled() bool {
	return s.cfg.HardenEvery > 0
}

// HardnessAt returns the hardness in effect after the given tick ran.
func (s Schedule) HardnessAt(tick int) int {
	if !s.IsEnabled() || tick <= 0 {
		return s.cfg.InitialHardness
	}
	return s.cfg.InitialHardness + tick/s.cfg.HardenEvery
}

// TicksUntilEscalation returns how many ticks remain before the tick that
// raises hardness, given the index of the next tick to run. It returns -1
// when escalation is disabled.
func (s Schedule) TicksUntilEscalation(next int) int {
	if !s.IsEnabled() {
		return -1
	}
	every := s.cfg.HardenEvery
	at := (max(next, 1) + every - 1) / every * every
	return at - next
}

// SpawnsBy returns how many enemies have spawned once ticks 0..tick-1 ran.
func (s Schedule) SpawnsBy(tick int) int {
	if tick <= 0 || s.cfg.SpawnEvery <= 0 {
		return 0
	}
	return (tick-1)/s.cfg.SpawnEvery + 1
}

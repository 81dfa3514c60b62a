package defense

import "github.com/vovakirdan/tui-defense/internal/grid"

// Economy is the set of counters shown to the player.
type Economy struct {
	Score    int
	Honey    int
	Lives    int
	Tick     int
	Hardness int
	GameOver bool
}

// EnemyView is a read-only copy of one enemy.
type EnemyView struct {
	Position   grid.Position
	Health     int
	Hardness   int
	Checkpoint int
	Speed      float64
}

// TowerView is a read-only copy of one tower.
type TowerView struct {
	Position    grid.Position
	Bounds      grid.Bounds
	Level       int
	Damage      int
	UpgradeCost int
}

// Snapshot captures everything a renderer needs for one frame. It shares no
// memory with the simulation.
type Snapshot struct {
	Economy Economy
	Enemies []EnemyView // front first
	Towers  []TowerView
	Nexus   grid.Bounds
	Stats   Stats
}

// Economy returns the current counters.
func (s *Simulation) Economy() Economy {
	return Economy{
		Score:    s.score,
		Honey:    s.honey,
		Lives:    s.lives,
		Tick:     s.tick,
		Hardness: s.hardness,
		GameOver: s.gameOver,
	}
}

// Enemies returns copies of the queued enemies, front first.
func (s *Simulation) Enemies() []EnemyView {
	out := make([]EnemyView, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = EnemyView{
			Position:   e.Position(),
			Health:     e.Health(),
			Hardness:   e.Hardness(),
			Checkpoint: e.CheckpointIndex(),
			Speed:      e.Speed(),
		}
	}
	return out
}

// Towers returns copies of the towers in placement order.
func (s *Simulation) Towers() []TowerView {
	out := make([]TowerView, len(s.towers))
	for i, t := range s.towers {
		out[i] = TowerView{
			Position:    t.Position(),
			Bounds:      t.Bounds(),
			Level:       t.Level(),
			Damage:      t.Damage(),
			UpgradeCost: t.HoneyToUpgrade(),
		}
	}
	return out
}

// Snapshot returns a full read-only view of the session.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Economy: s.Economy(),
		Enemies: s.Enemies(),
		Towers:  s.Towers(),
		Nexus:   s.nexus.Bounds(),
		Stats:   s.stats,
	}
}

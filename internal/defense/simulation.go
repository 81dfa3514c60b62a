// Package defense implements the tick-based tower-defense simulation: enemies
// walking a checkpoint path, towers pooling their damage into the enemy
// queue front to back, wave spawning, difficulty escalation and the economy
// of score, honey and lives.
//
// The package has no dependencies outside the module's grid types and does
// no I/O. Platforms drive it through Tick and the upgrade commands and read
// it through Snapshot.
package defense

import "github.com/vovakirdan/tui-defense/internal/grid"

// Layout describes the fixed geometry of a session.
type Layout struct {
	Path   *Path
	Nexus  Nexus
	Towers []grid.Position
}

// Simulation owns all mutable game state: the enemy queue, the towers, the
// nexus and the economy counters.
type Simulation struct {
	rules   Rules
	rng     Rand
	path    *Path
	nexus   Nexus
	towers  []*Tower
	enemies []*Enemy // front (index 0) is closest to the nexus

	score    int
	honey    int
	lives    int
	tick     int
	hardness int
	gameOver bool

	stats Stats
}

// NewSimulation builds a fresh session on the given layout.
func NewSimulation(layout Layout, rules Rules, rng Rand) *Simulation {
	rules = rules.normalized()

	towers := make([]*Tower, len(layout.Towers))
	for i, pos := range layout.Towers {
		towers[i] = newTower(pos, rules.DamagePerLevel, rules.UpgradeBase)
	}

	return &Simulation{
		rules:    rules,
		rng:      rng,
		path:     layout.Path,
		nexus:    layout.Nexus,
		towers:   towers,
		score:    0,
		honey:    rules.StartingHoney,
		lives:    rules.Lives,
		hardness: rules.InitialHardness,
	}
}

// Tick advances the world by one step. Once the game is over only the tick
// counter moves.
func (s *Simulation) Tick() TickReport {
	report := TickReport{Tick: s.tick}
	defer func() { s.tick++ }()

	if s.gameOver {
		report.Skipped = true
		report.Hardness = s.hardness
		return report
	}

	// Movement precedes damage resolution.
	for _, e := range s.enemies {
		e.Update()
	}

	s.applyDamage(s.TotalDamage(), &report)

	if s.rules.HardenEvery > 0 && s.tick > 0 && s.tick%s.rules.HardenEvery == 0 {
		s.hardness++
		report.Escalated = true
	}
	report.Hardness = s.hardness

	if s.tick%s.rules.SpawnEvery == 0 {
		health := SpawnHealth(s.rng, s.hardness, s.rules)
		s.enemies = append(s.enemies, NewEnemy(s.path, s.hardness, health))
		s.stats.Spawned++
		report.Spawned = true
		report.SpawnHealth = health
	}

	// Only the front enemy is checked: enemies share one path and speed, so
	// the queue is ordered by distance to the nexus.
	if front := s.front(); front != nil {
		if s.nexus.IsEnemyIn(front.Position()) || front.PathComplete() {
			s.lives--
			s.pop()
			s.stats.Breaches++
			report.Breached = true
		}
	}

	if s.lives <= 0 {
		s.gameOver = true
		report.GameOver = true
	}

	return report
}

// applyDamage spends total damage on the queue head first. Damage left over
// after a kill carries into the next enemy within the same tick.
func (s *Simulation) applyDamage(total int, report *TickReport) {
	for total > 0 && len(s.enemies) > 0 {
		front := s.enemies[0]
		dealt := min(total, max(front.Health(), 0))
		front.ReduceHealth(dealt)
		total -= dealt
		report.Damage += dealt
		s.stats.DamageDealt += dealt

		if front.IsAlive() {
			continue
		}

		reward := front.reward(s.rng, s.rules.RewardNoise)
		s.score += reward * s.rules.ScoreMultiplier
		s.honey += reward
		s.pop()
		s.stats.Kills++
		report.Kills = append(report.Kills, Kill{Hardness: front.Hardness(), Reward: reward})
	}
}

// TotalDamage sums the per-tick damage of every tower.
func (s *Simulation) TotalDamage() int {
	total := 0
	for _, t := range s.towers {
		total += t.Damage()
	}
	return total
}

// UpgradeTower buys the next level of tower i. It does nothing and returns
// false if the index is invalid, the game is over or honey is short.
func (s *Simulation) UpgradeTower(i int) bool {
	if s.gameOver || i < 0 || i >= len(s.towers) {
		return false
	}
	t := s.towers[i]
	cost := t.HoneyToUpgrade()
	if s.honey < cost {
		return false
	}
	s.honey -= cost
	t.Upgrade()
	s.stats.Upgrades++
	s.stats.HoneySpent += cost
	return true
}

// TowerAt returns the index of the first tower whose footprint covers pos.
func (s *Simulation) TowerAt(pos grid.Position) (int, bool) {
	for i, t := range s.towers {
		if t.IsClickingOn(pos) {
			return i, true
		}
	}
	return -1, false
}

// Click routes a board click to the tower beneath it and tries to upgrade it.
func (s *Simulation) Click(pos grid.Position) bool {
	i, ok := s.TowerAt(pos)
	if !ok {
		return false
	}
	return s.UpgradeTower(i)
}

func (s *Simulation) front() *Enemy {
	if len(s.enemies) == 0 {
		return nil
	}
	return s.enemies[0]
}

func (s *Simulation) pop() {
	s.enemies[0] = nil
	s.enemies = s.enemies[1:]
}

// GameOver reports whether the session has ended.
func (s *Simulation) GameOver() bool { return s.gameOver }

// Rules returns the rules the session runs with.
func (s *Simulation) Rules() Rules { return s.rules }

// Path returns the shared enemy route.
func (s *Simulation) Path() *Path { return s.path }

// Nexus returns the defended region.
func (s *Simulation) Nexus() Nexus { return s.nexus }

// Stats returns running totals for the session.
func (s *Simulation) Stats() Stats { return s.stats }

// TowerCount returns the number of towers.
func (s *Simulation) TowerCount() int { return len(s.towers) }

// EnemyCount returns the queue length.
func (s *Simulation) EnemyCount() int { return len(s.enemies) }

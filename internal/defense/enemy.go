package defense

import "github.com/vovakirdan/tui-defense/internal/grid"

// DefaultEnemySpeed is the nominal speed carried by every enemy. Movement is
// always one cell per tick.
const DefaultEnemySpeed = 1.0

// Enemy walks the shared path one cell per tick toward its current
// checkpoint. It is owned by the simulation's enemy queue.
type Enemy struct {
	path       *Path
	position   grid.Position
	checkpoint int
	health     int
	hardness   int
	speed      float64
}

// NewEnemy places a new enemy on the path's start cell.
func NewEnemy(path *Path, hardness, health int) *Enemy {
	return &Enemy{
		path:     path,
		position: path.Start(),
		health:   health,
		hardness: hardness,
		speed:    DefaultEnemySpeed,
	}
}

// Direction returns the step toward the current checkpoint. It returns false
// when the enemy stands on the checkpoint or the path is exhausted.
func (e *Enemy) Direction() (grid.Direction, bool) {
	cp, ok := e.path.Checkpoint(e.checkpoint)
	if !ok {
		return 0, false
	}
	return toward(e.position, cp)
}

// Step moves one cell toward the checkpoint. Arriving on a checkpoint costs
// a whole tick: the index advances and the enemy does not move.
// Past the last checkpoint the index is clamped and the enemy stays put.
func (e *Enemy) Step() {
	if e.PathComplete() {
		return
	}
	dir, ok := e.Direction()
	if !ok {
		e.checkpoint++
		return
	}
	e.position = grid.NewFromMove(e.position, dir, e.path.Size())
}

// Update advances the enemy by one simulation tick.
func (e *Enemy) Update() {
	e.Step()
}

// ReduceHealth subtracts amount from health. Health may go negative.
func (e *Enemy) ReduceHealth(amount int) {
	e.health -= amount
}

// IsAlive reports whether health is above zero.
func (e *Enemy) IsAlive() bool {
	return e.health > 0
}

// HoneyReward rolls the honey paid out for killing this enemy: hardness
// times a noise factor in [70, 130).
func (e *Enemy) HoneyReward(r Rand) int {
	return e.reward(r, DefaultRules().RewardNoise)
}

func (e *Enemy) reward(r Rand, noise Range) int {
	return e.hardness * between(r, noise.Min, noise.Max)
}

// PathComplete reports whether every checkpoint has been reached.
func (e *Enemy) PathComplete() bool {
	return e.checkpoint >= e.path.Len()
}

// Position returns the current cell.
func (e *Enemy) Position() grid.Position { return e.position }

// Health returns the remaining health.
func (e *Enemy) Health() int { return e.health }

// Hardness returns the difficulty the enemy was spawned at.
func (e *Enemy) Hardness() int { return e.hardness }

// Speed returns the nominal speed.
func (e *Enemy) Speed() float64 { return e.speed }

// CheckpointIndex returns the index of the checkpoint being walked to.
func (e *Enemy) CheckpointIndex() int { return e.checkpoint }

// SpawnHealth rolls the health of a new enemy for the given hardness:
// a multiplier in [max(1, h-spread), h] scaled by a percent noise, plus an
// additive noise.
func SpawnHealth(r Rand, hardness int, rules Rules) int {
	multiplier := between(r, max(1, hardness-rules.MultiplierSpread), hardness+1)
	percent := between(r, rules.HealthPercent.Min, rules.HealthPercent.Max)
	additive := between(r, rules.HealthAdditive.Min, rules.HealthAdditive.Max)
	// A spawn is never born dead.
	return max(multiplier*percent+additive, 1)
}

package defense

import (
	"testing"

	"github.com/vovakirdan/tui-defense/internal/grid"
)

func TestEnemyDirectionPrefersHorizontal(t *testing.T) {
	path := NewPath(grid.Size{W: 30, H: 30}, grid.P(5, 5), []grid.Position{grid.P(10, 10)})

	tests := []struct {
		name     string
		pos      grid.Position
		expected grid.Direction
		moving   bool
	}{
		{"right before down", grid.P(5, 5), grid.Right, true},
		{"left before up", grid.P(15, 15), grid.Left, true},
		{"down once aligned", grid.P(10, 5), grid.Down, true},
		{"up once aligned", grid.P(10, 20), grid.Up, true},
		{"on checkpoint", grid.P(10, 10), 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEnemy(path, 1, 10)
			e.position = tc.pos
			dir, ok := e.Direction()
			if ok != tc.moving {
				t.Fatalf("Direction() ok = %v, expected %v", ok, tc.moving)
			}
			if ok && dir != tc.expected {
				t.Errorf("Direction() = %v, expected %v", dir, tc.expected)
			}
		})
	}
}

func TestEnemyWalksCheckpoints(t *testing.T) {
	path := NewPath(grid.Size{W: 10, H: 10}, grid.P(0, 0), []grid.Position{grid.P(2, 0), grid.P(2, 1)})
	e := NewEnemy(path, 1, 10)

	expected := []struct {
		pos        grid.Position
		checkpoint int
	}{
		{grid.P(1, 0), 0},
		{grid.P(2, 0), 0},
		{grid.P(2, 0), 1}, // arrival costs a tick
		{grid.P(2, 1), 1},
		{grid.P(2, 1), 2},
		{grid.P(2, 1), 2}, // exhausted: clamped and idle
	}

	for i, want := range expected {
		e.Update()
		if e.Position() != want.pos || e.CheckpointIndex() != want.checkpoint {
			t.Fatalf("after update %d: at %v cp %d, expected %v cp %d",
				i+1, e.Position(), e.CheckpointIndex(), want.pos, want.checkpoint)
		}
	}
	if !e.PathComplete() {
		t.Error("enemy should report a completed path")
	}
}

func TestEnemyHealth(t *testing.T) {
	path := NewPath(grid.Size{W: 5, H: 5}, grid.P(0, 0), nil)
	e := NewEnemy(path, 2, 10)

	e.ReduceHealth(4)
	if e.Health() != 6 || !e.IsAlive() {
		t.Errorf("expected 6 health and alive, got %d", e.Health())
	}

	e.ReduceHealth(10)
	if e.Health() != -4 {
		t.Errorf("health may go negative, got %d", e.Health())
	}
	if e.IsAlive() {
		t.Error("enemy with negative health should be dead")
	}
}

func TestEnemyHoneyReward(t *testing.T) {
	path := NewPath(grid.Size{W: 5, H: 5}, grid.P(0, 0), nil)
	e := NewEnemy(path, 3, 10)

	tests := []struct {
		roll     int
		expected int
	}{
		{0, 3 * 70},
		{59, 3 * 129},
		{30, 3 * 100},
	}

	for _, tc := range tests {
		got := e.HoneyReward(&seqRand{vals: []int{tc.roll}})
		if got != tc.expected {
			t.Errorf("roll %d: reward %d, expected %d", tc.roll, got, tc.expected)
		}
	}
}

func TestSpawnHealth(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name     string
		hardness int
		rolls    []int
		expected int
	}{
		// multiplier in [1,1], percent 90+0, additive 0+0
		{"hardness 1 minimum", 1, []int{0, 0, 0}, 90},
		// multiplier 1, percent 90+19, additive 9
		{"hardness 1 maximum", 1, []int{0, 19, 9}, 118},
		// multiplier in [3,5]: 3+2, percent 100, additive 4
		{"hardness 5", 5, []int{2, 10, 4}, 5*100 + 4},
		// hardness 0 still yields a multiplier of 1
		{"hardness 0", 0, []int{0, 0, 0}, 90},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SpawnHealth(&seqRand{vals: tc.rolls}, tc.hardness, rules)
			if got != tc.expected {
				t.Errorf("SpawnHealth = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestSpawnHealthIsPositive(t *testing.T) {
	rules := DefaultRules()
	rules.HealthPercent = Range{Min: 0, Max: 1}
	rules.HealthAdditive = Range{Min: -3, Max: 1}

	got := SpawnHealth(&seqRand{vals: []int{0, 0, 0}}, 1, rules)
	if got != 1 {
		t.Errorf("SpawnHealth = %d, expected the floor of 1", got)
	}
}

func TestPathCells(t *testing.T) {
	path := NewPath(grid.Size{W: 10, H: 10}, grid.P(0, 0), []grid.Position{grid.P(2, 0), grid.P(2, 2)})
	cells := path.Cells()

	expected := []grid.Position{
		grid.P(0, 0), grid.P(1, 0), grid.P(2, 0), grid.P(2, 1), grid.P(2, 2),
	}
	if len(cells) != len(expected) {
		t.Fatalf("got %d cells, expected %d: %v", len(cells), len(expected), cells)
	}
	for i := range expected {
		if cells[i] != expected[i] {
			t.Errorf("cell %d = %v, expected %v", i, cells[i], expected[i])
		}
	}
}

func TestPathIsImmutable(t *testing.T) {
	cps := []grid.Position{grid.P(3, 3)}
	path := NewPath(grid.Size{W: 10, H: 10}, grid.P(0, 0), cps)
	cps[0] = grid.P(9, 9)

	if cp, _ := path.Checkpoint(0); cp != grid.P(3, 3) {
		t.Error("NewPath must copy its checkpoints")
	}
	path.Checkpoints()[0] = grid.P(8, 8)
	if cp, _ := path.Checkpoint(0); cp != grid.P(3, 3) {
		t.Error("Checkpoints must return a copy")
	}
	if _, ok := path.Checkpoint(1); ok {
		t.Error("Checkpoint past the end should report false")
	}
}

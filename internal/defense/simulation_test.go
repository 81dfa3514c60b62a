package defense

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-defense/internal/grid"
)

// seqRand replays a fixed sequence of values, reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// testLayout is a 20x10 board: enemies walk along row 0 to the right edge,
// the nexus covers the last two columns of rows 0-1.
func testLayout(towers ...grid.Position) Layout {
	size := grid.Size{W: 20, H: 10}
	return Layout{
		Path:   NewPath(size, grid.P(0, 0), []grid.Position{grid.P(19, 0)}),
		Nexus:  NewNexus(grid.NewBounds(grid.P(18, 0), grid.P(19, 1))),
		Towers: towers,
	}
}

func newTestSim(rng Rand, towers ...grid.Position) *Simulation {
	return NewSimulation(testLayout(towers...), DefaultRules(), rng)
}

func TestDamageSplashesThroughQueue(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{30}}, grid.P(5, 5), grid.P(10, 5))
	s.towers[0].level = 2
	s.towers[1].level = 3
	s.tick = 1 // not a spawn tick

	a := NewEnemy(s.path, 1, 5)
	b := NewEnemy(s.path, 1, 20)
	s.enemies = []*Enemy{a, b}

	if got := s.TotalDamage(); got != 10 {
		t.Fatalf("TotalDamage() = %d, expected 10", got)
	}

	report := s.Tick()

	if len(s.enemies) != 1 || s.enemies[0] != b {
		t.Fatalf("expected queue [B], got %d enemies", len(s.enemies))
	}
	if b.Health() != 15 {
		t.Errorf("B health = %d, expected 15", b.Health())
	}
	if report.Damage != 10 {
		t.Errorf("report.Damage = %d, expected 10", report.Damage)
	}
	if len(report.Kills) != 1 || report.Kills[0].Reward != 100 {
		t.Fatalf("expected one kill with reward 100, got %+v", report.Kills)
	}

	econ := s.Economy()
	if econ.Score != 300 {
		t.Errorf("score = %d, expected 300", econ.Score)
	}
	if econ.Honey != DefaultRules().StartingHoney+100 {
		t.Errorf("honey = %d, expected %d", econ.Honey, DefaultRules().StartingHoney+100)
	}
}

func TestDamageKillsSeveralInOneTick(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}}, grid.P(5, 5))
	s.towers[0].level = 10 // 20 damage

	s.enemies = []*Enemy{
		NewEnemy(s.path, 1, 4),
		NewEnemy(s.path, 1, 6),
		NewEnemy(s.path, 1, 7),
		NewEnemy(s.path, 1, 30),
	}

	report := TickReport{}
	s.applyDamage(s.TotalDamage(), &report)

	if len(report.Kills) != 3 {
		t.Fatalf("expected 3 kills, got %d", len(report.Kills))
	}
	if len(s.enemies) != 1 || s.enemies[0].Health() != 27 {
		t.Fatalf("expected one survivor at 27 health, got %+v", s.Enemies())
	}
	if s.Stats().Kills != 3 {
		t.Errorf("stats.Kills = %d, expected 3", s.Stats().Kills)
	}
}

func TestDamageConservation(t *testing.T) {
	tests := []struct {
		name    string
		healths []int
		damage  int
	}{
		{"less than front", []int{50, 50}, 10},
		{"exactly front", []int{10, 50}, 10},
		{"spills into second", []int{10, 50, 5}, 25},
		{"more than everything", []int{3, 4, 5}, 100},
		{"empty queue", nil, 40},
		{"zero damage", []int{8, 9}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSim(&seqRand{vals: []int{0}})
			sum := 0
			for _, h := range tc.healths {
				s.enemies = append(s.enemies, NewEnemy(s.path, 1, h))
				sum += h
			}
			before := s.Enemies()

			report := TickReport{}
			s.applyDamage(tc.damage, &report)

			expected := min(tc.damage, sum)
			if report.Damage != expected {
				t.Errorf("applied %d damage, expected %d", report.Damage, expected)
			}

			// Survivors are a suffix of the original queue; only the new front
			// may be partially damaged.
			killed := len(before) - len(s.enemies)
			if killed != len(report.Kills) {
				t.Errorf("queue shrank by %d but %d kills reported", killed, len(report.Kills))
			}
			for i, e := range s.Enemies() {
				orig := before[killed+i]
				if i > 0 && e.Health != orig.Health {
					t.Errorf("enemy %d behind the front took damage: %d -> %d", killed+i, orig.Health, e.Health)
				}
			}
		})
	}
}

func TestBreachEndsGame(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}})
	s.lives = 1
	s.tick = 1

	// Standing on the final checkpoint inside the nexus.
	e := NewEnemy(s.path, 1, 50)
	e.position = grid.P(19, 0)
	s.enemies = []*Enemy{e}

	report := s.Tick()

	if !report.Breached || !report.GameOver {
		t.Fatalf("expected breach and game over, got %+v", report)
	}
	econ := s.Economy()
	if econ.Lives != 0 || !econ.GameOver {
		t.Errorf("expected lives=0 and game over, got %+v", econ)
	}
	if econ.Score != 0 || econ.Honey != DefaultRules().StartingHoney {
		t.Errorf("breach must not pay out: score=%d honey=%d", econ.Score, econ.Honey)
	}
	if s.EnemyCount() != 0 {
		t.Errorf("breaching enemy should be removed, queue has %d", s.EnemyCount())
	}
}

func TestOnlyFrontEnemyIsCheckedForBreach(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}})
	s.tick = 1

	front := NewEnemy(s.path, 1, 50)
	front.position = grid.P(3, 0)
	back := NewEnemy(s.path, 1, 50)
	back.position = grid.P(18, 1) // inside the nexus, but not at the front
	s.enemies = []*Enemy{front, back}

	report := s.Tick()
	if report.Breached {
		t.Error("a non-front enemy must not trigger a breach")
	}
	if s.Economy().Lives != DefaultRules().Lives {
		t.Errorf("lives changed to %d", s.Economy().Lives)
	}
}

func TestPathCompleteCountsAsBreach(t *testing.T) {
	size := grid.Size{W: 10, H: 10}
	layout := Layout{
		Path:  NewPath(size, grid.P(0, 0), []grid.Position{grid.P(2, 0)}),
		Nexus: NewNexus(grid.NewBounds(grid.P(8, 8), grid.P(9, 9))), // off the route
	}
	rules := DefaultRules()
	rules.SpawnEvery = 1000
	s := NewSimulation(layout, rules, &seqRand{vals: []int{0}})

	// Tick 0 spawns, ticks 1-2 walk to (2,0), tick 3 reaches the checkpoint
	// and exhausts the path.
	breached := false
	for i := 0; i < 4; i++ {
		if s.Tick().Breached {
			breached = true
		}
	}
	if !breached {
		t.Fatal("an enemy that finished the path should breach")
	}
	if s.Economy().Lives != rules.Lives-1 {
		t.Errorf("lives = %d, expected %d", s.Economy().Lives, rules.Lives-1)
	}
}

func TestTerminalStateFreezesWorld(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{5}}, grid.P(5, 5))
	s.lives = 1
	s.tick = 1
	e := NewEnemy(s.path, 1, 50)
	e.position = grid.P(19, 0)
	s.enemies = []*Enemy{e, NewEnemy(s.path, 1, 40)}

	s.Tick()
	if !s.GameOver() {
		t.Fatal("expected game over")
	}

	before := s.Snapshot()
	for i := 0; i < 50; i++ {
		report := s.Tick()
		if !report.Skipped {
			t.Fatalf("tick %d after game over was not skipped", report.Tick)
		}
	}
	after := s.Snapshot()

	if before.Economy.Score != after.Economy.Score ||
		before.Economy.Honey != after.Economy.Honey ||
		before.Economy.Lives != after.Economy.Lives {
		t.Errorf("economy changed after game over: %+v -> %+v", before.Economy, after.Economy)
	}
	if !reflect.DeepEqual(before.Enemies, after.Enemies) {
		t.Error("enemy queue changed after game over")
	}
	if !reflect.DeepEqual(before.Towers, after.Towers) {
		t.Error("towers changed after game over")
	}
	if after.Economy.Tick != before.Economy.Tick+50 {
		t.Errorf("tick counter should keep advancing: %d -> %d", before.Economy.Tick, after.Economy.Tick)
	}

	s.honey = 10_000
	if s.UpgradeTower(0) {
		t.Error("upgrades must be rejected after game over")
	}
}

func TestHardnessEscalation(t *testing.T) {
	rules := DefaultRules()
	rules.Lives = 1_000_000
	s := NewSimulation(testLayout(), rules, NewRand(3))

	prev := rules.InitialHardness
	for i := 0; i < 400; i++ {
		report := s.Tick()
		expected := rules.InitialHardness + report.Tick/rules.HardenEvery
		if report.Hardness != expected {
			t.Fatalf("tick %d: hardness %d, expected %d", report.Tick, report.Hardness, expected)
		}
		if report.Hardness < prev {
			t.Fatalf("hardness decreased at tick %d", report.Tick)
		}
		if report.Escalated != (report.Tick > 0 && report.Tick%rules.HardenEvery == 0) {
			t.Fatalf("tick %d: Escalated=%v", report.Tick, report.Escalated)
		}
		prev = report.Hardness
	}
}

func TestFixedHardnessWhenEscalationDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.Lives = 1_000_000
	rules.HardenEvery = 0
	s := NewSimulation(testLayout(), rules, NewRand(3))

	for i := 0; i < 300; i++ {
		s.Tick()
	}
	if h := s.Economy().Hardness; h != rules.InitialHardness {
		t.Errorf("hardness = %d, expected it to stay at %d", h, rules.InitialHardness)
	}
}

func TestSpawnCadenceAndHealthRange(t *testing.T) {
	rules := DefaultRules()
	rules.Lives = 1_000_000
	s := NewSimulation(testLayout(), rules, NewRand(11))

	const ticks = 500
	for i := 0; i < ticks; i++ {
		report := s.Tick()
		shouldSpawn := report.Tick%rules.SpawnEvery == 0
		if report.Spawned != shouldSpawn {
			t.Fatalf("tick %d: spawned=%v, expected %v", report.Tick, report.Spawned, shouldSpawn)
		}
		if !report.Spawned {
			continue
		}

		h := report.Hardness
		lo := max(1, h-rules.MultiplierSpread)*rules.HealthPercent.Min + rules.HealthAdditive.Min
		hi := h*(rules.HealthPercent.Max-1) + rules.HealthAdditive.Max - 1
		if report.SpawnHealth < lo || report.SpawnHealth > hi {
			t.Fatalf("tick %d: spawn health %d outside [%d, %d] for hardness %d",
				report.Tick, report.SpawnHealth, lo, hi, h)
		}
	}

	expected := (ticks + rules.SpawnEvery - 1) / rules.SpawnEvery
	if got := s.Stats().Spawned; got != expected {
		t.Errorf("spawned %d enemies over %d ticks, expected %d", got, ticks, expected)
	}
}

func TestSpawnedEnemyAppendsToBack(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}})
	existing := NewEnemy(s.path, 1, 500)
	s.enemies = []*Enemy{existing}

	report := s.Tick() // tick 0 spawns
	if !report.Spawned {
		t.Fatal("expected a spawn on tick 0")
	}
	if s.EnemyCount() != 2 || s.enemies[0] != existing {
		t.Fatal("new enemies must join the back of the queue")
	}
	if s.enemies[1].Position() != s.path.Start() {
		t.Errorf("new enemy at %v, expected path start %v", s.enemies[1].Position(), s.path.Start())
	}
}

func TestUpgradeTower(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}}, grid.P(5, 5), grid.P(12, 5))

	if !s.UpgradeTower(0) {
		t.Fatal("first upgrade costs 100 and should be affordable")
	}
	econ := s.Economy()
	if econ.Honey != 0 {
		t.Errorf("honey = %d after upgrade, expected 0", econ.Honey)
	}
	if s.Towers()[0].Level != 1 {
		t.Errorf("level = %d, expected 1", s.Towers()[0].Level)
	}

	// Over budget: nothing changes.
	if s.UpgradeTower(1) {
		t.Error("upgrade without honey should be rejected")
	}
	if s.Towers()[1].Level != 0 || s.Economy().Honey != 0 {
		t.Error("rejected upgrade must not change level or honey")
	}

	if s.UpgradeTower(5) || s.UpgradeTower(-1) {
		t.Error("invalid tower index should be rejected")
	}

	stats := s.Stats()
	if stats.Upgrades != 1 || stats.HoneySpent != 100 {
		t.Errorf("unexpected stats %+v", stats)
	}
}

func TestClickRoutesToTower(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}}, grid.P(5, 5), grid.P(12, 5))
	s.honey = 1000

	if s.Click(grid.P(0, 9)) {
		t.Error("click on empty ground should do nothing")
	}
	if !s.Click(grid.P(13, 6)) {
		t.Fatal("click on the corner of tower 1 should upgrade it")
	}
	if s.Towers()[1].Level != 1 || s.Towers()[0].Level != 0 {
		t.Errorf("wrong tower upgraded: %+v", s.Towers())
	}
	if idx, ok := s.TowerAt(grid.P(4, 4)); !ok || idx != 0 {
		t.Errorf("TowerAt((4,4)) = %d, %v", idx, ok)
	}
}

func TestSimulationDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := NewSimulation(testLayout(grid.P(5, 5), grid.P(12, 5)), DefaultRules(), NewRand(42))
		for i := 0; i < 600; i++ {
			s.UpgradeTower(i % 2)
			s.Tick()
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed produced different sessions:\n%+v\n%+v", a.Economy, b.Economy)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSim(&seqRand{vals: []int{0}}, grid.P(5, 5))
	s.enemies = []*Enemy{NewEnemy(s.path, 1, 10)}

	snap := s.Snapshot()
	snap.Enemies[0].Health = 999
	snap.Towers[0].Level = 7

	if s.enemies[0].Health() != 10 || s.towers[0].Level() != 0 {
		t.Error("mutating a snapshot leaked into the simulation")
	}
}

package headless

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/maps"
)

func meadow(t *testing.T) maps.Map {
	t.Helper()
	all, err := maps.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	m, ok := maps.Find(all, "meadow")
	if !ok {
		t.Fatal("meadow not built in")
	}
	return m
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in       string
		expected Strategy
		wantErr  bool
	}{
		{"", StrategyGreedy, false},
		{"greedy", StrategyGreedy, false},
		{" Focus ", StrategyFocus, false},
		{"NONE", StrategyNone, false},
		{"random", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseStrategy(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseStrategy(%q) error = %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseStrategy(%q) = %q, expected %q", tc.in, got, tc.expected)
			}
		})
	}
}

func TestStrategySpending(t *testing.T) {
	m := meadow(t)
	rules := defense.DefaultRules()
	rules.StartingHoney = 1000

	tests := []struct {
		strategy  Strategy
		upgrades  int
		honeyLeft int
		levels    []int
	}{
		// four level-1 upgrades at 100, then three level-2 upgrades at 200
		{StrategyGreedy, 7, 0, []int{2, 2, 2, 1}},
		// 100 + 200 + 500, then 1000 is out of reach
		{StrategyFocus, 3, 200, []int{3, 0, 0, 0}},
		{StrategyNone, 0, 1000, []int{0, 0, 0, 0}},
	}

	for _, tc := range tests {
		t.Run(string(tc.strategy), func(t *testing.T) {
			sim := defense.NewSimulation(m.ToLayout(), rules, defense.NewRand(1))
			if got := tc.strategy.apply(sim); got != tc.upgrades {
				t.Errorf("bought %d upgrades, expected %d", got, tc.upgrades)
			}
			if honey := sim.Economy().Honey; honey != tc.honeyLeft {
				t.Errorf("honey left %d, expected %d", honey, tc.honeyLeft)
			}
			for i, tw := range sim.Towers() {
				if tw.Level != tc.levels[i] {
					t.Errorf("tower %d level %d, expected %d", i, tw.Level, tc.levels[i])
				}
			}
		})
	}
}

func TestRunOnceWithoutUpgrades(t *testing.T) {
	res := RunOnce(meadow(t), config.DefaultDefenseConfig(), StrategyNone, 7, 5000)

	if !res.GameOver {
		t.Fatal("an undefended map should fall")
	}
	if res.FirstBreachTick != 212 {
		t.Errorf("first breach on tick %d, expected 212", res.FirstBreachTick)
	}
	if res.FirstKillTick != -1 || res.Stats.Kills != 0 {
		t.Errorf("level-0 towers should not kill: %+v", res)
	}
	if res.Stats.Breaches != 10 || res.Lives != 0 {
		t.Errorf("expected 10 breaches and no lives, got %d and %d", res.Stats.Breaches, res.Lives)
	}
	if res.Stats.Upgrades != 0 || res.Honey != 100 {
		t.Errorf("none strategy spent honey: %+v", res.Stats)
	}
	if res.Bought != 0 || res.FirstBuyTick != -1 {
		t.Errorf("none strategy bought %d, first on tick %d", res.Bought, res.FirstBuyTick)
	}
}

func TestRunOnceStopsAtTickLimit(t *testing.T) {
	cfg := config.DefaultDefenseConfig()
	res := RunOnce(meadow(t), cfg, StrategyGreedy, 3, 100)

	if res.GameOver || res.Ticks != 100 {
		t.Fatalf("expected an undefeated run of 100 ticks, got %+v", res)
	}
	sched := config.NewSchedule(cfg.Waves)
	if res.Stats.Spawned != sched.SpawnsBy(100) {
		t.Errorf("spawned %d, schedule predicts %d", res.Stats.Spawned, sched.SpawnsBy(100))
	}
	if res.Hardness != sched.HardnessAt(99) {
		t.Errorf("hardness %d, schedule predicts %d", res.Hardness, sched.HardnessAt(99))
	}
	if res.Stats.Upgrades < 1 || res.FirstKillTick <= 0 {
		t.Errorf("greedy should upgrade at once and kill early: %+v", res)
	}
	// The starting 100 honey buys the first level before tick 0 runs.
	if res.FirstBuyTick != 0 {
		t.Errorf("first buy on tick %d, expected 0", res.FirstBuyTick)
	}
	if res.Bought != res.Stats.Upgrades {
		t.Errorf("strategy reported %d upgrades, simulation counted %d", res.Bought, res.Stats.Upgrades)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	opts := Options{
		Map:      meadow(t),
		Config:   config.DefaultDefenseConfig(),
		Strategy: StrategyGreedy,
		Runs:     3,
		SeedBase: 11,
		SeedStep: 5,
		MaxTicks: 600,
	}

	var seen []int64
	first, err := Run(opts, func(r RunResult) { seen = append(seen, r.Seed) })
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	second, err := Run(opts, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(seen) != 3 || seen[0] != 11 || seen[1] != 16 || seen[2] != 21 {
		t.Errorf("unexpected seeds %v", seen)
	}
	for i := range first.Runs {
		if first.Runs[i] != second.Runs[i] {
			t.Errorf("run %d differs:\n%+v\n%+v", i, first.Runs[i], second.Runs[i])
		}
		if first.Runs[i].Index != i+1 {
			t.Errorf("run %d has index %d", i, first.Runs[i].Index)
		}
	}
}

func TestOptionsValidate(t *testing.T) {
	base := Options{
		Map:      meadow(t),
		Config:   config.DefaultDefenseConfig(),
		Strategy: StrategyNone,
		Runs:     1,
		MaxTicks: 10,
	}

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"no map", func(o *Options) { o.Map = maps.Map{} }},
		{"zero runs", func(o *Options) { o.Runs = 0 }},
		{"zero ticks", func(o *Options) { o.MaxTicks = 0 }},
		{"bad strategy", func(o *Options) { o.Strategy = "random" }},
		{"bad config", func(o *Options) { o.Config.Waves.SpawnEvery = 0 }},
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("base options invalid: %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := base
			tc.mutate(&opts)
			if _, err := Run(opts, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestReportSummary(t *testing.T) {
	r := Report{
		MapID:    "meadow",
		Strategy: StrategyFocus,
		MaxTicks: 100,
		Runs: []RunResult{
			{Index: 1, Score: 300, Ticks: 100},
			{Index: 2, Score: 100, Ticks: 60, GameOver: true},
		},
	}

	if r.Survived() != 1 || r.BestScore() != 300 || r.MeanScore() != 200 || r.MeanTicks() != 80 {
		t.Errorf("unexpected aggregate: survived=%d best=%d mean=%.1f ticks=%.1f",
			r.Survived(), r.BestScore(), r.MeanScore(), r.MeanTicks())
	}

	var buf bytes.Buffer
	WriteRun(&buf, r.Runs[1])
	r.WriteSummary(&buf)
	out := buf.String()
	for _, want := range []string{"Run 2", "fell at tick 60", "map=meadow", "survived=1/2", "best_score=300"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

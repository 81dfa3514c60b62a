// Package headless runs the simulation without a frontend: seeded batches
// driven by an autopilot strategy, summarised into balancing reports.
package headless

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/maps"
)

// Options configure a batch.
type Options struct {
	Map      maps.Map
	Config   config.DefenseConfig
	Strategy Strategy
	Runs     int
	SeedBase int64 // seed of the first run
	SeedStep int64 // seed increment between runs
	MaxTicks int   // a run that survives this long stops undefeated
}

// RunResult summarises one seeded run.
type RunResult struct {
	Index           int
	Seed            int64
	Ticks           int
	Score           int
	Honey           int
	Lives           int
	Hardness        int
	GameOver        bool
	FirstKillTick   int // -1 if nothing was killed
	FirstBreachTick int // -1 if the nexus was never reached
	FirstBuyTick    int // -1 if the strategy never bought an upgrade
	Bought          int // upgrades bought by the strategy
	Stats           defense.Stats
}

// Report is the outcome of a batch.
type Report struct {
	MapID    string
	Strategy Strategy
	MaxTicks int
	Runs     []RunResult
}

// Validate checks the options before a batch starts.
func (o Options) Validate() error {
	if o.Map.ID == "" {
		return errors.New("headless: no map")
	}
	if o.Runs <= 0 {
		return fmt.Errorf("headless: runs must be > 0, got %d", o.Runs)
	}
	if o.MaxTicks <= 0 {
		return fmt.Errorf("headless: max ticks must be > 0, got %d", o.MaxTicks)
	}
	if _, err := ParseStrategy(string(o.Strategy)); err != nil {
		return err
	}
	if err := o.Config.Validate(); err != nil {
		return fmt.Errorf("headless: %w", err)
	}
	return nil
}

// Run plays every run of the batch in order. The optional onRun callback
// sees each result as soon as it is ready.
func Run(opts Options, onRun func(RunResult)) (Report, error) {
	if err := opts.Validate(); err != nil {
		return Report{}, err
	}
	strategy, _ := ParseStrategy(string(opts.Strategy))

	report := Report{
		MapID:    opts.Map.ID,
		Strategy: strategy,
		MaxTicks: opts.MaxTicks,
		Runs:     make([]RunResult, 0, opts.Runs),
	}
	for i := range opts.Runs {
		seed := opts.SeedBase + int64(i)*opts.SeedStep
		res := RunOnce(opts.Map, opts.Config, strategy, seed, opts.MaxTicks)
		res.Index = i + 1
		report.Runs = append(report.Runs, res)
		if onRun != nil {
			onRun(res)
		}
	}
	return report, nil
}

// RunOnce plays a single seeded session until the game ends or maxTicks
// ticks have run. Upgrades are applied between ticks.
func RunOnce(m maps.Map, cfg config.DefenseConfig, strategy Strategy, seed int64, maxTicks int) RunResult {
	sim := defense.NewSimulation(m.ToLayout(), cfg.ToRules(), defense.NewRand(seed))

	res := RunResult{Seed: seed, FirstKillTick: -1, FirstBreachTick: -1, FirstBuyTick: -1}
	for sim.Economy().Tick < maxTicks && !sim.GameOver() {
		if n := strategy.apply(sim); n > 0 {
			if res.FirstBuyTick < 0 {
				res.FirstBuyTick = sim.Economy().Tick
			}
			res.Bought += n
		}
		rep := sim.Tick()
		if len(rep.Kills) > 0 && res.FirstKillTick < 0 {
			res.FirstKillTick = rep.Tick
		}
		if rep.Breached && res.FirstBreachTick < 0 {
			res.FirstBreachTick = rep.Tick
		}
	}

	econ := sim.Economy()
	res.Ticks = econ.Tick
	res.Score = econ.Score
	res.Honey = econ.Honey
	res.Lives = econ.Lives
	res.Hardness = econ.Hardness
	res.GameOver = econ.GameOver
	res.Stats = sim.Stats()
	return res
}

// Survived counts runs that reached the tick limit.
func (r Report) Survived() int {
	n := 0
	for _, run := range r.Runs {
		if !run.GameOver {
			n++
		}
	}
	return n
}

// BestScore returns the highest score in the batch.
func (r Report) BestScore() int {
	best := 0
	for _, run := range r.Runs {
		best = max(best, run.Score)
	}
	return best
}

// MeanScore returns the average score, or 0 for an empty batch.
func (r Report) MeanScore() float64 {
	if len(r.Runs) == 0 {
		return 0
	}
	total := 0
	for _, run := range r.Runs {
		total += run.Score
	}
	return float64(total) / float64(len(r.Runs))
}

// MeanTicks returns the average run length, or 0 for an empty batch.
func (r Report) MeanTicks() float64 {
	if len(r.Runs) == 0 {
		return 0
	}
	total := 0
	for _, run := range r.Runs {
		total += run.Ticks
	}
	return float64(total) / float64(len(r.Runs))
}

// WriteRun prints one run line.
func WriteRun(w io.Writer, run RunResult) {
	outcome := "fell"
	if !run.GameOver {
		outcome = "held"
	}
	fmt.Fprintf(w, "--- Run %d (seed=%d) %s at tick %d ---\n", run.Index, run.Seed, outcome, run.Ticks)
	fmt.Fprintf(w, "economy: score=%d honey=%d lives=%d hardness=%d\n",
		run.Score, run.Honey, run.Lives, run.Hardness)
	fmt.Fprintf(w, "markers: first_kill=%d first_breach=%d first_buy=%d\n",
		run.FirstKillTick, run.FirstBreachTick, run.FirstBuyTick)
	fmt.Fprintf(w, "totals: spawned=%d kills=%d breaches=%d upgrades=%d honey_spent=%d damage=%d\n\n",
		run.Stats.Spawned, run.Stats.Kills, run.Stats.Breaches,
		run.Stats.Upgrades, run.Stats.HoneySpent, run.Stats.DamageDealt)
}

// WriteSummary prints the aggregate of the batch.
func (r Report) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "=== Aggregate: map=%s strategy=%s runs=%d max_ticks=%d ===\n",
		r.MapID, r.Strategy, len(r.Runs), r.MaxTicks)
	fmt.Fprintf(w, "survived=%d/%d best_score=%d mean_score=%.1f mean_ticks=%.1f\n",
		r.Survived(), len(r.Runs), r.BestScore(), r.MeanScore(), r.MeanTicks())
}

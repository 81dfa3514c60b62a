// Package honey is the tower-defense game: bees walk a map's path toward the
// hive while the player spends honey upgrading fixed towers. It wraps a
// defense.Simulation behind the registry.Game interface and draws it into a
// core.Screen.
package honey

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/grid"
	"github.com/vovakirdan/tui-defense/internal/maps"
	"github.com/vovakirdan/tui-defense/internal/registry"
)

// HUDHeight is the number of screen rows above the board.
const HUDHeight = 2

// Game implements registry.Game for one map.
type Game struct {
	m     maps.Map
	cfg   config.DefenseConfig
	sched config.Schedule

	sim    *defense.Simulation
	pacer  *core.Pacer
	now    func() time.Time
	onTick func(defense.TickReport)

	seed     int64
	selected int
	paused   bool
	last     defense.TickReport
	message  string

	// Screen layout
	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a game on the given map with the given rules.
func New(m maps.Map, cfg config.DefenseConfig) *Game {
	return &Game{
		m:     m,
		cfg:   cfg,
		sched: config.NewSchedule(cfg.Waves),
		now:   time.Now,
	}
}

// Register exposes a map as a playable game, replacing any game with the
// same ID. Games created by the factory use cfg.
func Register(m maps.Map, cfg config.DefenseConfig) {
	registry.Replace(m.ID, func() registry.Game {
		return New(m, cfg)
	})
}

func init() {
	builtin, err := maps.Builtin()
	if err != nil {
		// Built-in maps are embedded in the binary.
		panic(fmt.Sprintf("honey: %v", err))
	}
	for _, m := range builtin {
		Register(m, config.DefaultDefenseConfig())
	}
}

// ID returns the map identifier.
func (g *Game) ID() string {
	return g.m.ID
}

// Title returns the map's display name.
func (g *Game) Title() string {
	return g.m.Name
}

// Map returns the map the game is played on.
func (g *Game) Map() maps.Map {
	return g.m
}

// SetClock replaces the time source used to pace ticks.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// SetTickHook registers a function called after every simulation tick.
func (g *Game) SetTickHook(fn func(defense.TickReport)) {
	g.onTick = fn
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	interval := cfg.TickRate
	if interval <= 0 {
		interval = g.cfg.Interval()
	}

	g.sim = defense.NewSimulation(g.m.ToLayout(), g.cfg.ToRules(), defense.NewRand(g.seed))
	g.pacer = core.NewPacer(interval)
	g.selected = 0
	g.paused = false
	g.last = defense.TickReport{}
	g.message = ""
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the board placement without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < g.m.Size.W || h < g.m.Size.H+HUDHeight
	g.offsetX = max((w-g.m.Size.W)/2, 0)
	g.offsetY = HUDHeight
}

// Step applies the frame's input and runs a simulation tick when one is due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	res := core.StepResult{}

	// Handle restart
	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.seed + 1,
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.pacer.Interval(),
		})
		res.State = g.State()
		return res
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall {
		res.State = g.State()
		return res
	}

	res.Upgrades = g.processInput(in)

	if g.pacer.Ready(g.now()) {
		g.last = g.sim.Tick()
		res.Ticked = true
		if g.onTick != nil {
			g.onTick(g.last)
		}
	}

	res.State = g.State()
	return res
}

// processInput handles selection and upgrade commands. It returns the
// number of upgrades bought.
func (g *Game) processInput(in core.InputFrame) int {
	n := g.sim.TowerCount()
	if n == 0 {
		return 0
	}

	if in.Has(core.ActionNextTower) {
		g.selected = (g.selected + 1) % n
	}
	if in.Has(core.ActionPrevTower) {
		g.selected = (g.selected - 1 + n) % n
	}

	bought := 0
	for _, i := range in.Picks {
		if g.upgrade(i) {
			bought++
		}
	}
	for _, c := range in.Clicks {
		pos, ok := g.ScreenToGrid(c.X, c.Y)
		if !ok {
			continue
		}
		if g.ClickGrid(pos) {
			bought++
		}
	}
	if in.Has(core.ActionUpgrade) && g.upgrade(g.selected) {
		bought++
	}
	return bought
}

// ClickGrid selects the tower under a board cell and tries to upgrade it.
func (g *Game) ClickGrid(pos grid.Position) bool {
	i, ok := g.sim.TowerAt(pos)
	if !ok {
		return false
	}
	return g.upgrade(i)
}

// upgrade buys the next level of tower i and leaves a status message.
func (g *Game) upgrade(i int) bool {
	towers := g.sim.Towers()
	if i < 0 || i >= len(towers) {
		return false
	}
	g.selected = i

	if g.sim.UpgradeTower(i) {
		g.message = fmt.Sprintf("Tower %d upgraded to level %d", i+1, towers[i].Level+1)
		return true
	}

	switch {
	case g.sim.GameOver():
		g.message = "Game over"
	default:
		g.message = fmt.Sprintf("Need %d honey for tower %d", towers[i].UpgradeCost, i+1)
	}
	return false
}

// ScreenToGrid converts a screen cell to a board cell.
func (g *Game) ScreenToGrid(x, y int) (grid.Position, bool) {
	if g.tooSmall {
		return grid.Position{}, false
	}
	p := grid.P(x-g.offsetX, y-g.offsetY)
	return p, g.m.Size.Contains(p)
}

// GridToScreen converts a board cell to a screen cell.
func (g *Game) GridToScreen(p grid.Position) (int, int) {
	return p.X + g.offsetX, p.Y + g.offsetY
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	e := g.sim.Economy()
	return core.GameState{
		Score:    e.Score,
		Lives:    e.Lives,
		Honey:    e.Honey,
		Tick:     e.Tick,
		Hardness: e.Hardness,
		GameOver: e.GameOver,
		Paused:   g.paused,
	}
}

// Snapshot returns a read-only copy of the session.
func (g *Game) Snapshot() defense.Snapshot {
	return g.sim.Snapshot()
}

// Selected returns the index of the selected tower.
func (g *Game) Selected() int {
	return g.selected
}

// LastReport returns what happened during the most recent tick.
func (g *Game) LastReport() defense.TickReport {
	return g.last
}

// Message returns the latest upgrade feedback.
func (g *Game) Message() string {
	return g.message
}

// Seed returns the seed of the running session.
func (g *Game) Seed() int64 {
	return g.seed
}

// TooSmall reports whether the screen cannot fit the board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// TicksUntilEscalation returns the ticks left before hardness rises, or -1
// when escalation is off.
func (g *Game) TicksUntilEscalation() int {
	return g.sched.TicksUntilEscalation(g.sim.Economy().Tick)
}

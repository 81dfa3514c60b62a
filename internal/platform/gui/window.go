// Package gui runs a map in a desktop window with Ebiten. It shares the
// game, pacing and input model with the terminal frontend and only differs
// in how cells become pixels.
package gui

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/games/honey"
	"github.com/vovakirdan/tui-defense/internal/grid"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

// Options carry the collaborators of a window session. Every field is
// optional.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Difficulty string
	Seed       int64
	FPS        int // update rate; Ebiten's default when zero
}

type keyBinding struct {
	key    ebiten.Key
	action core.Action
}

var keyBindings = []keyBinding{
	{ebiten.KeyArrowRight, core.ActionNextTower},
	{ebiten.KeyArrowLeft, core.ActionPrevTower},
	{ebiten.KeyEnter, core.ActionUpgrade},
	{ebiten.KeyU, core.ActionUpgrade},
	{ebiten.KeySpace, core.ActionUpgrade},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Window implements ebiten.Game around a honey game.
type Window struct {
	game   *honey.Game
	layout Layout
	opts   Options
	logger *log.Logger
	frame  core.InputFrame
	state  core.GameState
	saved  bool
}

// NewWindow prepares a session on the game's map.
func NewWindow(game *honey.Game, opts Options) *Window {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	m := game.Map()
	w := &Window{
		game:   game,
		layout: Layout{Board: m.Size},
		opts:   opts,
		logger: opts.Logger.With("map", m.ID, "frontend", "window"),
		frame:  core.NewInputFrame(),
	}

	// The terminal screen mirrors the board exactly, so board cells map to
	// screen cells through the game's own offsets.
	cfg := core.DefaultConfig()
	cfg.ScreenW = m.Size.W
	cfg.ScreenH = m.Size.H + honey.HUDHeight
	cfg.Seed = opts.Seed
	cfg.TickRate = 0
	game.SetTickHook(func(r defense.TickReport) {
		if r.Breached {
			w.logger.Info("nexus breached", "tick", r.Tick)
		}
		if r.Escalated {
			w.logger.Info("hardness rose", "tick", r.Tick, "hardness", r.Hardness)
		}
	})
	game.Reset(cfg)
	return w
}

// Update reads input and steps the game once per Ebiten tick; the game's
// pacer decides when a simulation tick is due.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		w.saveSession()
		return ebiten.Termination
	}

	w.collectInput()
	wasOver := w.state.GameOver
	res := w.game.Step(w.frame)
	w.state = res.State
	w.frame.Clear()

	switch {
	case wasOver && !w.state.GameOver:
		w.saved = false
	case w.state.GameOver && !w.saved:
		w.logger.Info("hive fell", "score", w.state.Score, "tick", w.state.Tick)
		w.saveSession()
	}
	return nil
}

func (w *Window) collectInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			w.frame.Set(core.ActionPrevTower)
		} else {
			w.frame.Set(core.ActionNextTower)
		}
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			w.frame.Set(b.action)
		}
	}
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			w.frame.Pick(i)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		w.Click(ebiten.CursorPosition())
	}
}

// Click queues a board click at a window pixel for the next step.
func (w *Window) Click(x, y int) bool {
	p, ok := w.layout.PixelToGrid(x, y)
	if !ok {
		return false
	}
	sx, sy := w.game.GridToScreen(p)
	w.frame.Click(sx, sy)
	return true
}

// saveSession stores the score and run summary once per session.
func (w *Window) saveSession() {
	if w.saved || w.opts.Store == nil || w.state.Tick == 0 {
		return
	}
	w.saved = true

	if w.state.Score > 0 {
		if _, err := w.opts.Store.SaveScore(w.game.ID(), w.state.Score); err != nil {
			w.logger.Warn("score not saved", "err", err)
		}
	}

	stats := w.game.Snapshot().Stats
	_, err := w.opts.Store.SaveRun(storage.RunRecord{
		MapID:       w.game.ID(),
		Source:      storage.SourceWindow,
		Difficulty:  w.opts.Difficulty,
		Seed:        w.game.Seed(),
		Score:       w.state.Score,
		Ticks:       w.state.Tick,
		Hardness:    w.state.Hardness,
		Kills:       stats.Kills,
		Breaches:    stats.Breaches,
		Spawned:     stats.Spawned,
		Upgrades:    stats.Upgrades,
		HoneySpent:  stats.HoneySpent,
		DamageDealt: stats.DamageDealt,
	})
	if err != nil {
		w.logger.Warn("run not saved", "err", err)
	}
}

// Layout reports the fixed logical size; Ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.layout.Width(), w.layout.Height()
}

// Run opens the window and blocks until it is closed.
func Run(game *honey.Game, opts Options) error {
	w := NewWindow(game, opts)
	ebiten.SetWindowSize(w.layout.Width(), w.layout.Height())
	ebiten.SetWindowTitle(fmt.Sprintf("Honey Defense - %s", game.Title()))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}

// drawText wraps the classic text.Draw signature with the HUD font.
func drawText(img *ebiten.Image, s string, x, y int, c color.Color) {
	text.Draw(img, s, basicfont.Face7x13, x, y, c)
}

// fillCells paints a rectangle of board cells.
func (w *Window) fillCells(dst *ebiten.Image, b grid.Bounds, c color.Color) {
	x, y := w.layout.CellOrigin(b.Min)
	width := float32((b.Max.X - b.Min.X + 1) * CellSize)
	height := float32((b.Max.Y - b.Min.Y + 1) * CellSize)
	vector.DrawFilledRect(dst, x, y, width, height, c, false)
}

package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-defense/internal/config"
	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/registry"
	"github.com/vovakirdan/tui-defense/internal/storage"
)

// statusTTL is how long a status message replaces the help line.
const statusTTL = 3 * time.Second

// tickObserver is implemented by games that report every simulation tick.
type tickObserver interface {
	SetTickHook(func(defense.TickReport))
}

// sessionReporter is implemented by games that can describe a finished
// session for the run history.
type sessionReporter interface {
	Snapshot() defense.Snapshot
	Seed() int64
}

// Options carry the collaborators of a play session. Every field is optional.
type Options struct {
	Store      *storage.Store
	Logger     *log.Logger
	Difficulty string
	// Clipboard receives the score line on yank. Defaults to the system
	// clipboard.
	Clipboard func(string) error
	// ScreenshotDir is where ctrl+s writes the screen. Defaults to
	// ~/.defense/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for playing one map.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the session has been stored for the current game over
	upgrades   int
	status     string
	statusAt   time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(config.UserDir(), "screenshots")
	}

	logger := opts.Logger.With("map", game.ID())
	if obs, ok := game.(tickObserver); ok {
		obs.SetTickHook(func(r defense.TickReport) { logTick(logger, r) })
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// boardHeight leaves the last terminal row for the help line.
func boardHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the game and the frame loop.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	m.logger.Info("session started", "seed", cfg.Seed, "difficulty", m.opts.Difficulty)
	return frameCmd(m.config.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keys.MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Yank):
		m.yank()
		return m, nil
	case key.Matches(msg, m.keys.Keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		m.saveSession()
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the screen without restarting the session when the
// game supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := boardHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, h)
	} else if !m.gameState.GameOver {
		cfg := m.config
		cfg.ScreenH = h
		m.game.Reset(cfg)
	}

	return m, nil
}

// handleFrame runs one platform frame: input first, then at most one tick.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.upgrades += result.Upgrades

	switch {
	case wasOver && !m.gameState.GameOver:
		m.logger.Info("session restarted")
		m.scoreSaved = false
		m.upgrades = 0
	case m.gameState.GameOver && !m.scoreSaved:
		m.logger.Info("hive fell", "score", m.gameState.Score, "tick", m.gameState.Tick)
		m.saveSession()
	}

	if m.status != "" && now.Sub(m.statusAt) > statusTTL {
		m.status = ""
	}

	m.inputFrame.Clear()
	return m, frameCmd(m.config.FrameInterval())
}

// saveSession stores the score and run summary once per session.
func (m *Model) saveSession() {
	if m.scoreSaved || m.opts.Store == nil || m.gameState.Tick == 0 {
		return
	}
	m.scoreSaved = true

	if m.gameState.Score > 0 {
		m.saveScore()
	}

	rec := storage.RunRecord{
		MapID:      m.game.ID(),
		Source:     storage.SourcePlay,
		Difficulty: m.opts.Difficulty,
		Seed:       m.config.Seed,
		Score:      m.gameState.Score,
		Ticks:      m.gameState.Tick,
		Hardness:   m.gameState.Hardness,
		Upgrades:   m.upgrades,
	}
	if r, ok := m.game.(sessionReporter); ok {
		stats := r.Snapshot().Stats
		rec.Seed = r.Seed()
		rec.Kills = stats.Kills
		rec.Breaches = stats.Breaches
		rec.Spawned = stats.Spawned
		rec.Upgrades = stats.Upgrades
		rec.HoneySpent = stats.HoneySpent
		rec.DamageDealt = stats.DamageDealt
	}
	if _, err := m.opts.Store.SaveRun(rec); err != nil {
		m.logger.Warn("run not saved", "err", err)
	}
}

// saveScore records the score and reports it against the map's best.
func (m *Model) saveScore() {
	score := m.gameState.Score
	best, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("high score unavailable", "err", err)
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), score); err != nil {
		m.logger.Warn("score not saved", "err", err)
		return
	}
	if score > best {
		m.setStatus(fmt.Sprintf("New best: %d", score))
		m.logger.Info("new high score", "score", score, "previous", best)
		return
	}
	m.setStatus(fmt.Sprintf("Best: %d", best))
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.setStatus("Screenshot failed")
		m.logger.Warn("screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("Screenshot failed")
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.setStatus("Saved " + path)
	m.logger.Info("screenshot saved", "path", path)
}

// yank copies the score line to the clipboard.
func (m *Model) yank() {
	st := m.game.State()
	line := fmt.Sprintf("%s  %s  Tick: %d", m.game.Title(),
		defense.NewScoreBoard(st.Score, st.Lives, st.Honey), st.Tick)
	if err := m.opts.Clipboard(line); err != nil {
		m.setStatus("Clipboard unavailable")
		m.logger.Warn("clipboard", "err", err)
		return
	}
	m.setStatus("Copied: " + line)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusAt = time.Now()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + RenderStatus(m.status, m.help.View(m.keys.Keys), m.config.ScreenW)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks upgrade towers
	)

	_, err := p.Run()
	return err
}

// logTick records the notable events of a tick.
func logTick(logger *log.Logger, r defense.TickReport) {
	if r.Skipped {
		return
	}
	for _, k := range r.Kills {
		logger.Debug("enemy killed", "tick", r.Tick, "hardness", k.Hardness, "reward", k.Reward)
	}
	if r.Escalated {
		logger.Info("hardness rose", "tick", r.Tick, "hardness", r.Hardness)
	}
	if r.Breached {
		logger.Info("nexus breached", "tick", r.Tick)
	}
	if r.GameOver {
		logger.Info("game over", "tick", r.Tick)
	}
}

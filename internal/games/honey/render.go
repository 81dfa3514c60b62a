package honey

import (
	"fmt"

	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/grid"
)

// maxHearts caps the heart bar; extra lives show as "+N".
const maxHearts = 10

// hardnessColors tints enemies by the wave they spawned in.
var hardnessColors = []core.Color{
	core.ColorBrightYellow,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorBrightRed,
	core.ColorMagenta,
	core.ColorBrightMagenta,
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.Resize(dst.Width(), dst.Height())
	}

	snap := g.sim.Snapshot()

	g.renderHUD(dst, snap)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d, resize to continue", g.m.Size.W, g.m.Size.H+HUDHeight))
		return
	}

	g.renderTiles(dst)
	g.renderNexus(dst, snap.Nexus)
	g.renderTowers(dst, snap)
	g.renderEnemies(dst, snap.Enemies)

	switch {
	case snap.Economy.GameOver:
		g.renderOverlay(dst, "The hive has fallen",
			fmt.Sprintf("Score: %d   Press R to restart", snap.Economy.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the two status lines above the board.
func (g *Game) renderHUD(dst *core.Screen, snap defense.Snapshot) {
	board := defense.FromEconomy(snap.Economy)

	x := put(dst, 0, 0, " "+g.m.Name+"  ", core.ColorBrightWhite)
	x = put(dst, x, 0, board.String()+"  ", core.ColorDefault)
	put(dst, x, 0, board.Hearts(min(g.cfg.Economy.Lives, maxHearts)), core.ColorRed)

	wave := fmt.Sprintf(" Hardness %d", snap.Economy.Hardness)
	if next := g.TicksUntilEscalation(); next >= 0 {
		wave += fmt.Sprintf(" (+1 in %d)", next)
	}
	x = put(dst, 0, 1, wave, core.ColorOrange)

	if len(snap.Enemies) > 0 {
		x = put(dst, x, 1, fmt.Sprintf("  Front: %dhp", snap.Enemies[0].Health), core.ColorYellow)
	}

	if g.selected < len(snap.Towers) {
		t := snap.Towers[g.selected]
		sel := fmt.Sprintf("  Tower %d: lvl %d dmg %d next $%d", g.selected+1, t.Level, t.Damage, t.UpgradeCost)
		x = put(dst, x, 1, sel, core.ColorBrightCyan)
	}

	if g.message != "" {
		put(dst, x, 1, "  "+g.message, core.ColorGray)
	}
}

// renderTiles draws terrain and the enemy route.
func (g *Game) renderTiles(dst *core.Screen) {
	for y := range g.m.Size.H {
		for x := range g.m.Size.W {
			style := g.m.TileAt(grid.P(x, y)).Style()
			sx, sy := g.GridToScreen(grid.P(x, y))
			dst.SetColor(sx, sy, style.Rune, style.Color)
		}
	}
}

// renderNexus shades the defended region.
func (g *Game) renderNexus(dst *core.Screen, b grid.Bounds) {
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			sx, sy := g.GridToScreen(grid.P(x, y))
			dst.SetColor(sx, sy, '▒', core.ColorBrightYellow)
		}
	}
}

// renderTowers draws each 3x3 tower with its level and the price of the
// next upgrade underneath.
func (g *Game) renderTowers(dst *core.Screen, snap defense.Snapshot) {
	for i, t := range snap.Towers {
		color := core.ColorWhite
		switch {
		case snap.Economy.GameOver:
			color = core.ColorGray
		case i == g.selected:
			color = core.ColorBrightCyan
		case snap.Economy.Honey >= t.UpgradeCost:
			color = core.ColorBrightGreen
		}

		sx, sy := g.GridToScreen(t.Bounds.Min)
		dst.DrawBox(core.NewRect(sx, sy, t.Bounds.Width(), t.Bounds.Height()), color)

		cx, cy := g.GridToScreen(t.Position)
		dst.SetColor(cx, cy, levelRune(t.Level), color)

		// Price label sits one row below the footprint, left-aligned with it.
		put(dst, sx, cy+2, fmt.Sprintf("$%d", t.UpgradeCost), core.ColorYellow)
	}
}

// renderEnemies draws the queue back to front so the front enemy is on top.
func (g *Game) renderEnemies(dst *core.Screen, enemies []defense.EnemyView) {
	for i := len(enemies) - 1; i >= 0; i-- {
		e := enemies[i]
		sx, sy := g.GridToScreen(e.Position)
		dst.SetColor(sx, sy, '●', HardnessColor(e.Hardness))
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(core.Clamp((w-maxLen-4)/2, 0, w), core.Clamp((h-5)/2, 0, h), maxLen+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}

// put writes text and returns the column after it.
func put(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColor(x, y, text, c)
	return x + len([]rune(text))
}

func levelRune(level int) rune {
	if level > 9 {
		return '+'
	}
	return rune('0' + level)
}

// HardnessColor returns the tint of an enemy of the given hardness.
func HardnessColor(h int) core.Color {
	return hardnessColors[core.Clamp(h, 1, len(hardnessColors))-1]
}

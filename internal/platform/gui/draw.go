package gui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-defense/internal/core"
	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/games/honey"
	"github.com/vovakirdan/tui-defense/internal/grid"
)

// palette maps terminal colors to window colors.
var palette = [...]color.RGBA{
	core.ColorDefault:       {0xe0, 0xe0, 0xe0, 0xff},
	core.ColorRed:           {0xc0, 0x30, 0x30, 0xff},
	core.ColorGreen:         {0x40, 0xa0, 0x40, 0xff},
	core.ColorYellow:        {0xd0, 0xb0, 0x20, 0xff},
	core.ColorBlue:          {0x30, 0x60, 0xc0, 0xff},
	core.ColorMagenta:       {0xa0, 0x40, 0xa0, 0xff},
	core.ColorCyan:          {0x30, 0xa0, 0xb0, 0xff},
	core.ColorWhite:         {0xd0, 0xd0, 0xd0, 0xff},
	core.ColorBrightRed:     {0xff, 0x50, 0x50, 0xff},
	core.ColorBrightGreen:   {0x60, 0xf0, 0x60, 0xff},
	core.ColorBrightYellow:  {0xff, 0xe0, 0x40, 0xff},
	core.ColorBrightBlue:    {0x60, 0x90, 0xff, 0xff},
	core.ColorBrightMagenta: {0xff, 0x70, 0xff, 0xff},
	core.ColorBrightCyan:    {0x60, 0xf0, 0xff, 0xff},
	core.ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	core.ColorOrange:        {0xff, 0x8c, 0x00, 0xff},
	core.ColorGray:          {0x80, 0x80, 0x80, 0xff},
	core.ColorBrown:         {0x8b, 0x5a, 0x2b, 0xff},
}

var (
	hudBackground = color.RGBA{0x20, 0x18, 0x10, 0xff}
	shade         = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// rgba converts a terminal color for the window.
func rgba(c core.Color) color.RGBA {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}

// Draw renders the session.
func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.game.Snapshot()

	w.drawTiles(screen)
	w.fillCells(screen, snap.Nexus, rgba(core.ColorBrightYellow))
	w.drawTowers(screen, snap)
	w.drawEnemies(screen, snap.Enemies)
	w.drawHUD(screen, snap)

	switch {
	case snap.Economy.GameOver:
		w.drawOverlay(screen, "The hive has fallen",
			fmt.Sprintf("Score: %d   Press R to restart", snap.Economy.Score))
	case w.state.Paused:
		w.drawOverlay(screen, "Paused", "Press P to continue")
	}
}

func (w *Window) drawTiles(dst *ebiten.Image) {
	m := w.game.Map()
	for y := range m.Size.H {
		for x := range m.Size.W {
			p := grid.P(x, y)
			px, py := w.layout.CellOrigin(p)
			vector.DrawFilledRect(dst, px, py, CellSize, CellSize, m.TileAt(p).Style().RGBA, false)
		}
	}
}

func (w *Window) drawTowers(dst *ebiten.Image, snap defense.Snapshot) {
	selected := w.game.Selected()
	for i, t := range snap.Towers {
		c := core.ColorWhite
		switch {
		case snap.Economy.GameOver:
			c = core.ColorGray
		case i == selected:
			c = core.ColorBrightCyan
		case snap.Economy.Honey >= t.UpgradeCost:
			c = core.ColorBrightGreen
		}

		x, y := w.layout.CellOrigin(t.Bounds.Min)
		width := float32(t.Bounds.Width() * CellSize)
		height := float32(t.Bounds.Height() * CellSize)
		vector.DrawFilledRect(dst, x, y, width, height, rgba(core.ColorBrown), false)
		vector.StrokeRect(dst, x, y, width, height, 2, rgba(c), false)

		cx, cy := w.layout.CellCenter(t.Position)
		drawText(dst, fmt.Sprintf("%d", t.Level), int(cx)-3, int(cy)+5, rgba(c))
		drawText(dst, fmt.Sprintf("$%d", t.UpgradeCost), int(x), int(y+height)+12, rgba(core.ColorYellow))
	}
}

// drawEnemies paints the queue back to front and labels the front enemy
// with its health.
func (w *Window) drawEnemies(dst *ebiten.Image, enemies []defense.EnemyView) {
	for i := len(enemies) - 1; i >= 0; i-- {
		e := enemies[i]
		cx, cy := w.layout.CellCenter(e.Position)
		vector.DrawFilledCircle(dst, cx, cy, CellSize/2-2, rgba(honey.HardnessColor(e.Hardness)), true)
	}
	if len(enemies) > 0 {
		front := enemies[0]
		x, y := w.layout.CellOrigin(front.Position)
		drawText(dst, fmt.Sprintf("%d", front.Health), int(x), int(y)-2, rgba(core.ColorBrightWhite))
	}
}

func (w *Window) drawHUD(dst *ebiten.Image, snap defense.Snapshot) {
	vector.DrawFilledRect(dst, 0, 0, float32(w.layout.Width()), HUDPixels, hudBackground, false)

	board := defense.FromEconomy(snap.Economy)
	drawText(dst, w.game.Title()+"  "+board.String(), 6, 16, rgba(core.ColorBrightWhite))

	line := fmt.Sprintf("Hardness %d", snap.Economy.Hardness)
	if next := w.game.TicksUntilEscalation(); next >= 0 {
		line += fmt.Sprintf(" (+1 in %d)", next)
	}
	if msg := w.game.Message(); msg != "" {
		line += "   " + msg
	}
	drawText(dst, line, 6, 32, rgba(core.ColorYellow))
}

func (w *Window) drawOverlay(dst *ebiten.Image, line1, line2 string) {
	width, height := w.layout.Width(), w.layout.Height()
	vector.DrawFilledRect(dst, 0, float32(height/2-30), float32(width), 60, shade, false)
	// basicfont glyphs are 7 pixels wide
	drawText(dst, line1, (width-7*len(line1))/2, height/2-6, rgba(core.ColorBrightYellow))
	drawText(dst, line2, (width-7*len(line2))/2, height/2+16, rgba(core.ColorWhite))
}

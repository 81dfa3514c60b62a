package gui

import (
	"github.com/vovakirdan/tui-defense/internal/grid"
)

// Window geometry.
const (
	CellSize  = 16 // pixels per board cell
	HUDPixels = 40 // status area above the board
)

// Layout converts between window pixels and board cells.
type Layout struct {
	Board grid.Size
}

// Width returns the window width in pixels.
func (l Layout) Width() int {
	return l.Board.W * CellSize
}

// Height returns the window height in pixels.
func (l Layout) Height() int {
	return HUDPixels + l.Board.H*CellSize
}

// PixelToGrid returns the board cell under a pixel. Pixels in the HUD or
// outside the board report false.
func (l Layout) PixelToGrid(x, y int) (grid.Position, bool) {
	if x < 0 || y < HUDPixels {
		return grid.Position{}, false
	}
	p := grid.P(x/CellSize, (y-HUDPixels)/CellSize)
	return p, l.Board.Contains(p)
}

// CellOrigin returns the top-left pixel of a board cell.
func (l Layout) CellOrigin(p grid.Position) (float32, float32) {
	return float32(p.X * CellSize), float32(HUDPixels + p.Y*CellSize)
}

// CellCenter returns the center pixel of a board cell.
func (l Layout) CellCenter(p grid.Position) (float32, float32) {
	x, y := l.CellOrigin(p)
	return x + CellSize/2, y + CellSize/2
}

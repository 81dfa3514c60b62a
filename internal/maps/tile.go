package maps

import (
	"image/color"
	"strings"

	"github.com/vovakirdan/tui-defense/internal/core"
)

// Tile is a decorative terrain kind. Tiles never affect the simulation.
type Tile uint8

const (
	TileGrass Tile = iota
	TilePath
	TileFlower
	TileRock
	TileWater
	TileTree
	tileCount // Sentinel value for iteration
)

// DefaultTile is used for unknown tile names and unset cells.
const DefaultTile = TileGrass

// TileStyle describes how a tile is drawn by each frontend.
type TileStyle struct {
	Name  string
	Rune  rune
	Color core.Color
	RGBA  color.RGBA
}

var tileStyles = [tileCount]TileStyle{
	TileGrass:  {Name: "grass", Rune: ' ', Color: core.ColorGreen, RGBA: color.RGBA{0x5a, 0x9e, 0x3c, 0xff}},
	TilePath:   {Name: "path", Rune: '·', Color: core.ColorBrown, RGBA: color.RGBA{0xc8, 0xa8, 0x6e, 0xff}},
	TileFlower: {Name: "flower", Rune: '*', Color: core.ColorBrightMagenta, RGBA: color.RGBA{0xe0, 0x6c, 0xc0, 0xff}},
	TileRock:   {Name: "rock", Rune: '^', Color: core.ColorGray, RGBA: color.RGBA{0x80, 0x80, 0x80, 0xff}},
	TileWater:  {Name: "water", Rune: '~', Color: core.ColorBlue, RGBA: color.RGBA{0x3c, 0x78, 0xd8, 0xff}},
	TileTree:   {Name: "tree", Rune: '♣', Color: core.ColorBrightGreen, RGBA: color.RGBA{0x2e, 0x6b, 0x22, 0xff}},
}

// Style returns the drawing style of the tile, falling back to the default
// tile for out-of-range values.
func (t Tile) Style() TileStyle {
	if t >= tileCount {
		return tileStyles[DefaultTile]
	}
	return tileStyles[t]
}

// String returns the tile name used in map files.
func (t Tile) String() string {
	return t.Style().Name
}

// ParseTile converts a map file name or its first letter to a Tile.
// Returns DefaultTile and false if the string is not recognized.
func ParseTile(s string) (Tile, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t := range tileCount {
		name := tileStyles[t].Name
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return t, true
		}
	}
	return DefaultTile, false
}

// AllTiles returns every tile kind in table order.
func AllTiles() []Tile {
	out := make([]Tile, 0, tileCount)
	for t := range tileCount {
		out = append(out, t)
	}
	return out
}

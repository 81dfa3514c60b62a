package maps

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-defense/internal/grid"
)

// YAMLMap is the on-disk layout of a map file.
type YAMLMap struct {
	ID          string          `yaml:"id"`
	Name        string          `yaml:"name"`
	Description string          `yaml:"description,omitempty"`
	Size        grid.Size       `yaml:"size"`
	Background  string          `yaml:"background,omitempty"`
	Start       grid.Position   `yaml:"start"`
	Checkpoints []grid.Position `yaml:"checkpoints"`
	Nexus       grid.Bounds     `yaml:"nexus"`
	Towers      []grid.Position `yaml:"towers"`
	Tiles       []YAMLTile      `yaml:"tiles,omitempty"`
	Fills       []YAMLFill      `yaml:"fills,omitempty"`
}

// YAMLTile places one decorative tile.
type YAMLTile struct {
	X int    `yaml:"x"`
	Y int    `yaml:"y"`
	T string `yaml:"t"`
}

// YAMLFill covers a rectangle with one tile kind.
type YAMLFill struct {
	Min grid.Position `yaml:"min"`
	Max grid.Position `yaml:"max"`
	T   string        `yaml:"t"`
}

// Parse decodes a YAML map file. Unknown tile names fall back to the
// default tile; the result is not validated.
func Parse(data []byte) (Map, error) {
	var ym YAMLMap
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Map{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	background, _ := ParseTile(ym.Background)

	m := Map{
		ID:          ym.ID,
		Name:        ym.Name,
		Description: ym.Description,
		Size:        ym.Size,
		Background:  background,
		Start:       ym.Start,
		Checkpoints: ym.Checkpoints,
		Nexus:       grid.NewBounds(ym.Nexus.Min, ym.Nexus.Max),
		Towers:      ym.Towers,
		Tiles:       make(map[grid.Position]Tile),
	}
	if m.Name == "" {
		m.Name = m.ID
	}

	for _, f := range ym.Fills {
		if !m.sizeInRange() {
			break // Validate reports the size
		}
		tile, _ := ParseTile(f.T)
		b, ok := grid.NewBounds(f.Min, f.Max).Clip(m.Size)
		if !ok {
			continue
		}
		for y := b.Min.Y; y <= b.Max.Y; y++ {
			for x := b.Min.X; x <= b.Max.X; x++ {
				m.setTile(grid.P(x, y), tile)
			}
		}
	}
	for _, t := range ym.Tiles {
		tile, _ := ParseTile(t.T)
		m.setTile(grid.P(t.X, t.Y), tile)
	}

	return m, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

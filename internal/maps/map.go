// Package maps loads board layouts: the enemy path, the nexus, tower slots
// and decorative tiles. Maps come from embedded built-ins and from user
// directories of YAML files.
package maps

import (
	"fmt"

	"github.com/vovakirdan/tui-defense/internal/defense"
	"github.com/vovakirdan/tui-defense/internal/grid"
)

// Map is a parsed board layout.
type Map struct {
	ID          string
	Name        string
	Description string
	Size        grid.Size
	Background  Tile
	Start       grid.Position
	Checkpoints []grid.Position
	Nexus       grid.Bounds
	Towers      []grid.Position
	Tiles       map[grid.Position]Tile
	FilePath    string // empty for built-ins
}

func (m *Map) setTile(p grid.Position, t Tile) {
	if !m.Size.Contains(p) {
		return // off-board decor is ignored
	}
	if m.Tiles == nil {
		m.Tiles = make(map[grid.Position]Tile)
	}
	m.Tiles[p] = t
}

// TileAt returns the decorative tile at p. Loaded maps report TilePath for
// every cell of the enemy route.
func (m *Map) TileAt(p grid.Position) Tile {
	if t, ok := m.Tiles[p]; ok {
		return t
	}
	return m.Background
}

// NewPath builds the enemy route of the map.
func (m *Map) NewPath() *defense.Path {
	return defense.NewPath(m.Size, m.Start, m.Checkpoints)
}

// ToLayout converts the map into simulation geometry.
func (m *Map) ToLayout() defense.Layout {
	towers := make([]grid.Position, len(m.Towers))
	copy(towers, m.Towers)
	return defense.Layout{
		Path:   m.NewPath(),
		Nexus:  defense.NewNexus(m.Nexus),
		Towers: towers,
	}
}

// markPath overlays the walked route onto the map's tiles.
func (m *Map) markPath() {
	for _, p := range m.NewPath().Cells() {
		m.setTile(p, TilePath)
	}
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// MaxSide bounds both board dimensions.
const MaxSide = 512

func (m *Map) sizeInRange() bool {
	return m.Size.W > 0 && m.Size.H > 0 && m.Size.W <= MaxSide && m.Size.H <= MaxSide
}

// Validate checks that the layout can be simulated.
func (m *Map) Validate() error {
	if m.ID == "" {
		return ValidationError{Code: "MISSING_ID", Message: "map has no id"}
	}
	if !m.sizeInRange() {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("size %dx%d must be between 1x1 and %dx%d", m.Size.W, m.Size.H, MaxSide, MaxSide),
		}
	}
	if !m.Size.Contains(m.Start) {
		return ValidationError{
			Code:    "START_OFF_GRID",
			Message: fmt.Sprintf("start %v is outside %dx%d", m.Start, m.Size.W, m.Size.H),
		}
	}
	if len(m.Checkpoints) == 0 {
		return ValidationError{Code: "EMPTY_PATH", Message: "path has no checkpoints"}
	}
	for i, cp := range m.Checkpoints {
		if !m.Size.Contains(cp) {
			return ValidationError{
				Code:    "CHECKPOINT_OFF_GRID",
				Message: fmt.Sprintf("checkpoint %d at %v is outside %dx%d", i, cp, m.Size.W, m.Size.H),
			}
		}
	}
	if !m.Nexus.Within(m.Size) {
		return ValidationError{
			Code:    "NEXUS_OFF_GRID",
			Message: fmt.Sprintf("nexus %v-%v is outside %dx%d", m.Nexus.Min, m.Nexus.Max, m.Size.W, m.Size.H),
		}
	}
	if len(m.Towers) == 0 {
		return ValidationError{Code: "NO_TOWERS", Message: "map has no tower slots"}
	}
	for i, t := range m.Towers {
		if !m.Size.Contains(t) {
			return ValidationError{
				Code:    "TOWER_OFF_GRID",
				Message: fmt.Sprintf("tower %d at %v is outside %dx%d", i, t, m.Size.W, m.Size.H),
			}
		}
	}
	return nil
}

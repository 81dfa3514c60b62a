package defense

import "github.com/vovakirdan/tui-defense/internal/grid"

// Nexus is the defended region at the end of the path.
type Nexus struct {
	bounds grid.Bounds
}

// NewNexus creates a nexus covering the given region.
func NewNexus(bounds grid.Bounds) Nexus {
	return Nexus{bounds: bounds}
}

// IsEnemyIn reports whether pos lies inside the nexus.
func (n Nexus) IsEnemyIn(pos grid.Position) bool {
	return n.bounds.Contains(pos)
}

// Bounds returns the defended region.
func (n Nexus) Bounds() grid.Bounds {
	return n.bounds
}

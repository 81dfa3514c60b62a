package defense

import "github.com/vovakirdan/tui-defense/internal/grid"

// Path is the fixed route every enemy walks: a start cell followed by an
// ordered list of checkpoints. It is immutable once built and shared by all
// enemies of a simulation.
type Path struct {
	size        grid.Size
	start       grid.Position
	checkpoints []grid.Position
}

// NewPath builds a path on a board of the given size.
func NewPath(size grid.Size, start grid.Position, checkpoints []grid.Position) *Path {
	cps := make([]grid.Position, len(checkpoints))
	copy(cps, checkpoints)
	return &Path{
		size:        size,
		start:       start,
		checkpoints: cps,
	}
}

// Size returns the board dimensions the path lives on.
func (p *Path) Size() grid.Size {
	return p.size
}

// Start returns the spawn cell.
func (p *Path) Start() grid.Position {
	return p.start
}

// Len returns the number of checkpoints.
func (p *Path) Len() int {
	return len(p.checkpoints)
}

// Checkpoint returns checkpoint i, or false past the end of the path.
func (p *Path) Checkpoint(i int) (grid.Position, bool) {
	if i < 0 || i >= len(p.checkpoints) {
		return grid.Position{}, false
	}
	return p.checkpoints[i], true
}

// Checkpoints returns a copy of the checkpoint list.
func (p *Path) Checkpoints() []grid.Position {
	out := make([]grid.Position, len(p.checkpoints))
	copy(out, p.checkpoints)
	return out
}

// Cells walks the route the way an enemy would and returns every cell it
// visits, start included, without duplicates at checkpoints.
func (p *Path) Cells() []grid.Position {
	cells := []grid.Position{p.start}
	pos := p.start
	// Off-board checkpoints are never reached; cap each leg.
	limit := p.size.W + p.size.H
	for _, cp := range p.checkpoints {
		for step := 0; step < limit; step++ {
			dir, ok := toward(pos, cp)
			if !ok {
				break
			}
			pos = grid.NewFromMove(pos, dir, p.size)
			cells = append(cells, pos)
		}
	}
	return cells
}

// toward picks the next step from -> to. Horizontal distance is corrected
// before vertical; false means the two cells coincide.
func toward(from, to grid.Position) (grid.Direction, bool) {
	switch {
	case from.X < to.X:
		return grid.Right, true
	case from.X > to.X:
		return grid.Left, true
	case from.Y < to.Y:
		return grid.Down, true
	case from.Y > to.Y:
		return grid.Up, true
	}
	return 0, false
}

package grid

// Bounds is an axis-aligned region with inclusive edges.
type Bounds struct {
	Min Position `yaml:"min"`
	Max Position `yaml:"max"`
}

// NewBounds builds a region from two corners in any order.
func NewBounds(a, b Position) Bounds {
	return Bounds{
		Min: Position{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Position{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Around returns the square of cells within radius r of center (no wrap).
func Around(center Position, r int) Bounds {
	return Bounds{
		Min: center.Add(-r, -r),
		Max: center.Add(r, r),
	}
}

// Contains reports whether p lies inside the region, edges included.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Width returns the number of columns covered.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the number of rows covered.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// Clip returns the part of the region that lies on a board of the given
// size. ok is false when nothing is left.
func (b Bounds) Clip(s Size) (clipped Bounds, ok bool) {
	clipped = Bounds{
		Min: Position{X: max(b.Min.X, 0), Y: max(b.Min.Y, 0)},
		Max: Position{X: min(b.Max.X, s.W-1), Y: min(b.Max.Y, s.H-1)},
	}
	if clipped.Min.X > clipped.Max.X || clipped.Min.Y > clipped.Max.Y {
		return Bounds{}, false
	}
	return clipped, true
}

// Within reports whether the whole region lies on a board of the given size.
func (b Bounds) Within(s Size) bool {
	return s.Contains(b.Min) && s.Contains(b.Max)
}

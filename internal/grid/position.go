// Package grid provides the discrete coordinate types shared by the defense
// simulation: positions on a wraparound board, cardinal directions and
// inclusive rectangular regions. Everything here is a pure value type.
package grid

import "fmt"

// Size is the width and height of a toroidal board.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Contains reports whether p lies on the board.
func (s Size) Contains(p Position) bool {
	return p.X >= 0 && p.X < s.W && p.Y >= 0 && p.Y < s.H
}

// Wrap folds p back onto the board in both axes.
func (s Size) Wrap(p Position) Position {
	return Position{X: Mod(p.X, s.W), Y: Mod(p.Y, s.H)}
}

// Cells returns the number of cells on the board.
func (s Size) Cells() int {
	return s.W * s.H
}

// Position is a cell coordinate. X grows to the right, Y grows downward.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// P is a shorthand constructor for Position.
func P(x, y int) Position {
	return Position{X: x, Y: y}
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p offset by (dx, dy) without wrapping.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// NewFromMove returns the cell one step from pos in dir, wrapped onto a board
// of the given size.
func NewFromMove(pos Position, dir Direction, size Size) Position {
	dx, dy := dir.Delta()
	return size.Wrap(pos.Add(dx, dy))
}

// Intn is the random source used by Random. *rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

// Random returns a uniformly distributed position with 0 <= X < maxX and
// 0 <= Y < maxY.
func Random(r Intn, maxX, maxY int) Position {
	return Position{X: r.Intn(maxX), Y: r.Intn(maxY)}
}

// Mod is the mathematical modulo: the result is always in [0, n) for n > 0.
func Mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	return (a%n + n) % n
}

package defense

import "github.com/vovakirdan/tui-defense/internal/grid"

// Tower defaults.
const (
	DefaultDamagePerLevel = 2
	DefaultUpgradeBase    = 100
	TowerRadius           = 1 // footprint is the 3x3 square around the tower
)

// Tower deals damage every tick according to its level. It is placed once at
// game start and only ever changes through Upgrade.
type Tower struct {
	position       grid.Position
	bounds         grid.Bounds
	level          int
	damagePerLevel int
	upgradeBase    int
}

// NewTower creates a level 0 tower at pos with the default damage and cost
// curves.
func NewTower(pos grid.Position) *Tower {
	return newTower(pos, DefaultDamagePerLevel, DefaultUpgradeBase)
}

func newTower(pos grid.Position, damagePerLevel, upgradeBase int) *Tower {
	return &Tower{
		position:       pos,
		bounds:         grid.Around(pos, TowerRadius),
		damagePerLevel: damagePerLevel,
		upgradeBase:    upgradeBase,
	}
}

// HoneyToUpgrade returns the price of the next level: (level^2 + 1) * 100.
func (t *Tower) HoneyToUpgrade() int {
	return (t.level*t.level + 1) * t.upgradeBase
}

// Damage returns the damage dealt per tick. Level 0 towers deal nothing.
func (t *Tower) Damage() int {
	return t.level * t.damagePerLevel
}

// Upgrade raises the level by one. Affordability is the caller's concern.
func (t *Tower) Upgrade() {
	t.level++
}

// IsClickingOn reports whether pos falls on the tower's footprint.
func (t *Tower) IsClickingOn(pos grid.Position) bool {
	return t.bounds.Contains(pos)
}

// Position returns the tower's center cell.
func (t *Tower) Position() grid.Position { return t.position }

// Bounds returns the tower's footprint.
func (t *Tower) Bounds() grid.Bounds { return t.bounds }

// Level returns the current level.
func (t *Tower) Level() int { return t.level }

package headless

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-defense/internal/defense"
)

// Strategy decides which towers an autopilot buys between ticks.
type Strategy string

const (
	// StrategyNone never upgrades. It measures how long the map holds on
	// starting honey alone.
	StrategyNone Strategy = "none"
	// StrategyGreedy buys the cheapest affordable upgrade until honey runs
	// short, spreading levels across towers.
	StrategyGreedy Strategy = "greedy"
	// StrategyFocus pours every upgrade into the first tower.
	StrategyFocus Strategy = "focus"
)

// Strategies lists the available strategies in display order.
var Strategies = []Strategy{StrategyGreedy, StrategyFocus, StrategyNone}

// ParseStrategy converts a name to a Strategy. Empty means greedy.
func ParseStrategy(s string) (Strategy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return StrategyGreedy, nil
	}
	for _, st := range Strategies {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("headless: unknown strategy %q (expected greedy, focus or none)", s)
}

// apply spends honey according to the strategy and returns the number of
// upgrades bought.
func (st Strategy) apply(sim *defense.Simulation) int {
	bought := 0
	switch st {
	case StrategyGreedy:
		for {
			i, ok := cheapest(sim)
			if !ok || !sim.UpgradeTower(i) {
				return bought
			}
			bought++
		}
	case StrategyFocus:
		for sim.TowerCount() > 0 && sim.UpgradeTower(0) {
			bought++
		}
	}
	return bought
}

func cheapest(sim *defense.Simulation) (int, bool) {
	best, cost := -1, 0
	for i, t := range sim.Towers() {
		if best < 0 || t.UpgradeCost < cost {
			best, cost = i, t.UpgradeCost
		}
	}
	return best, best >= 0
}

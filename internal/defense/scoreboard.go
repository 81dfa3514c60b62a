package defense

import (
	"fmt"
	"strings"
)

// ScoreBoard formats the economy counters for display.
type ScoreBoard struct {
	Score int
	Lives int
	Honey int
}

// NewScoreBoard builds a scoreboard from raw values.
func NewScoreBoard(score, lives, honey int) ScoreBoard {
	return ScoreBoard{Score: score, Lives: lives, Honey: honey}
}

// FromEconomy builds a scoreboard from the simulation counters.
func FromEconomy(e Economy) ScoreBoard {
	return NewScoreBoard(e.Score, e.Lives, e.Honey)
}

// String returns a single-line summary.
func (b ScoreBoard) String() string {
	return fmt.Sprintf("Score: %d  Lives: %d  Honey: %d", b.Score, b.Lives, b.Honey)
}

// Lines returns one counter per line.
func (b ScoreBoard) Lines() []string {
	return []string{
		fmt.Sprintf("Score: %d", b.Score),
		fmt.Sprintf("Lives: %d", b.Lives),
		fmt.Sprintf("Honey: %d", b.Honey),
	}
}

// Hearts draws lives as a bar of full and empty hearts, capped at maxLives.
// Lives beyond the cap are shown as a "+N" suffix.
func (b ScoreBoard) Hearts(maxLives int) string {
	lives := max(b.Lives, 0)
	full := min(lives, maxLives)

	var sb strings.Builder
	sb.WriteString(strings.Repeat("♥", full))
	sb.WriteString(strings.Repeat("♡", max(maxLives-full, 0)))
	if lives > maxLives {
		fmt.Fprintf(&sb, "+%d", lives-maxLives)
	}
	return sb.String()
}

package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // Up arrow, k - menu navigation
	ActionDown             // Down arrow, j - menu navigation
	ActionNextTower        // Tab, right - select next tower
	ActionPrevTower        // Shift+Tab, left - select previous tower
	ActionUpgrade          // Enter, u - upgrade selected tower
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // Escape - go back to menu
	ActionRestart          // R key - start a new session
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionNextTower:
		return "NextTower"
	case ActionPrevTower:
		return "PrevTower"
	case ActionUpgrade:
		return "Upgrade"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did between two frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Clicks holds left-button presses in screen cells, oldest first.
	Clicks []Point
	// Picks holds towers chosen by index (number keys), oldest first.
	Picks []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at screen cell (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Pick records a tower chosen by index.
func (f *InputFrame) Pick(i int) {
	f.Picks = append(f.Picks, i)
}

// Empty reports whether nothing was recorded.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0 && len(f.Picks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
	f.Picks = f.Picks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append([]Point(nil), f.Clicks...)
	clone.Picks = append([]int(nil), f.Picks...)
	return clone
}

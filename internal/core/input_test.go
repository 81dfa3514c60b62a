package core

import "testing"

func TestInputFrameRecordsAndClears(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUpgrade)
	f.Click(3, 4)
	f.Pick(2)

	if !f.Has(ActionUpgrade) || f.Has(ActionPause) {
		t.Error("Has reported the wrong actions")
	}
	if len(f.Clicks) != 1 || f.Clicks[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("unexpected clicks: %v", f.Clicks)
	}
	if len(f.Picks) != 1 || f.Picks[0] != 2 {
		t.Errorf("unexpected picks: %v", f.Picks)
	}

	clone := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if !clone.Has(ActionUpgrade) || len(clone.Clicks) != 1 || len(clone.Picks) != 1 {
		t.Error("Clone should not share state with the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:      "None",
		ActionUpgrade:   "Upgrade",
		ActionNextTower: "NextTower",
		ActionPause:     "Pause",
		Action(99):      "Unknown",
	}
	for a, expected := range tests {
		if got := a.String(); got != expected {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, expected)
		}
	}
}

package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame // zero value must be usable

	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true after Set")
	}
	if f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) should be false")
	}
}

func TestInputFrameClicks(t *testing.T) {
	f := NewInputFrame()
	f.Click(3, 4)
	f.Click(5, 6)

	if len(f.Clicks) != 2 || f.Clicks[0] != (Click{X: 3, Y: 4}) {
		t.Errorf("Clicks = %v, expected [{3 4} {5 6}]", f.Clicks)
	}

	clone := f.Clone()
	f.Clear()

	if len(f.Clicks) != 0 {
		t.Errorf("Clear should drop clicks, got %v", f.Clicks)
	}
	if len(clone.Clicks) != 2 {
		t.Errorf("Clone should be independent of Clear, got %v", clone.Clicks)
	}
}

func TestActionString(t *testing.T) {
	if ActionRestart.String() != "Restart" {
		t.Errorf("ActionRestart.String() = %q", ActionRestart.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}

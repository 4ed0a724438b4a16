package core

import "testing"

func TestInputFrameDeduplicates(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLaunch)
	f.Set(ActionLaunch)

	if !f.Has(ActionLaunch) {
		t.Fatal("launch should be set")
	}
	if len(f.Actions) != 1 {
		t.Errorf("repeated presses should collapse, got %d actions", len(f.Actions))
	}
	if f.Has(ActionPause) {
		t.Error("pause was never set")
	}
}

func TestInputFramePointer(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero frame should have no actions")
	}

	f.SetPointer(0.25)
	f.SetPointer(1.7)
	if !f.HasPointer || f.Pointer != 1 {
		t.Errorf("pointer = %v (has=%v), expected clamped 1", f.Pointer, f.HasPointer)
	}

	f.Set(ActionLeft)
	f.Clear()
	if f.HasPointer || f.Has(ActionLeft) {
		t.Error("Clear should reset the frame")
	}
}

func TestActionString(t *testing.T) {
	if ActionLaunch.String() != "Launch" {
		t.Errorf("ActionLaunch.String() = %q", ActionLaunch.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

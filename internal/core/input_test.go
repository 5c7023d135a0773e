package core

import "testing"

func TestActionIsDirection(t *testing.T) {
	directions := []Action{ActionUp, ActionDown, ActionLeft, ActionRight}
	for _, a := range directions {
		if !a.IsDirection() {
			t.Errorf("%v should be a direction", a)
		}
	}

	others := []Action{ActionNone, ActionRestart, ActionQuit, ActionPause}
	for _, a := range others {
		if a.IsDirection() {
			t.Errorf("%v should not be a direction", a)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionUp.String() != "Up" {
		t.Errorf("ActionUp.String() = %q", ActionUp.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}

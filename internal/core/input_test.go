package core

import "testing"

func TestFrameOrdering(t *testing.T) {
	f := NewFrame(KeyDown(ActionTalk))
	f.Push(TextInput("h"))
	f.Push(KeyDown(ActionCommit))

	if f.Len() != 3 {
		t.Fatalf("Len() = %d, expected 3", f.Len())
	}
	kinds := []EventKind{EventKeyDown, EventText, EventKeyDown}
	for i, want := range kinds {
		if f.Events[i].Kind != want {
			t.Errorf("event %d kind = %v, expected %v", i, f.Events[i].Kind, want)
		}
	}
}

func TestFrameCloneAndClear(t *testing.T) {
	f := NewFrame(KeyDown(ActionJump), KeyUp(ActionLeft))
	clone := f.Clone()

	f.Clear()
	if f.Len() != 0 {
		t.Errorf("Clear() left %d events", f.Len())
	}
	if clone.Len() != 2 {
		t.Errorf("clone should be unaffected by Clear, has %d events", clone.Len())
	}
	if clone.Events[1] != KeyUp(ActionLeft) {
		t.Errorf("clone event = %+v", clone.Events[1])
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:    "None",
		ActionJump:    "Jump",
		ActionTalk:    "Talk",
		ActionHistory: "History",
		Action(99):    "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
	if QuitEvent().Kind.String() != "Quit" {
		t.Error("QuitEvent kind should print as Quit")
	}
}

package core

import "testing"

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Set(ActionNone)
	f.Set(ActionLeft)
	f.Set(ActionUp)

	got := f.Actions()
	expected := []Action{ActionUp, ActionLeft, ActionUp}
	if len(got) != len(expected) {
		t.Fatalf("Actions() = %v, expected %v", got, expected)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}

	if !f.Has(ActionLeft) || f.Has(ActionDown) {
		t.Error("Has() misreports membership")
	}

	// Returned slice is a copy
	got[0] = ActionQuit
	if f.Has(ActionQuit) {
		t.Error("Actions() leaked internal storage")
	}

	f.Clear()
	if f.Len() != 0 || f.Has(ActionUp) {
		t.Error("Clear() should empty the frame")
	}
}

func TestActionIsDirectional(t *testing.T) {
	tests := []struct {
		a        Action
		expected bool
	}{
		{ActionLeft, true},
		{ActionRight, true},
		{ActionUp, true},
		{ActionDown, true},
		{ActionPause, false},
		{ActionRestart, false},
		{ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.a.String(), func(t *testing.T) {
			if tc.a.IsDirectional() != tc.expected {
				t.Errorf("%v.IsDirectional() = %v", tc.a, !tc.expected)
			}
		})
	}
}

package core

import "testing"

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("New frame should have no actions set")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)

	if !f.Has(ActionJump) {
		t.Error("ActionJump should be set")
	}
	if !f.Has(ActionLeft) {
		t.Error("ActionLeft should be set")
	}
	if f.Has(ActionRight) {
		t.Error("ActionRight should not be set")
	}

	f.Unset(ActionJump)
	if f.Has(ActionJump) {
		t.Error("ActionJump should be unset")
	}
	if !f.Has(ActionLeft) {
		t.Error("Unset should not affect other actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionRight)
	f.Set(ActionPause)

	f.Clear()

	for _, a := range []Action{ActionLeft, ActionRight, ActionPause} {
		if f.Has(a) {
			t.Errorf("After Clear, %v should not be set", a)
		}
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)

	c := f.Clone()
	if !c.Has(ActionJump) {
		t.Error("Clone should carry over set actions")
	}

	// Mutating the clone must not affect the original
	c.Set(ActionLeft)
	if f.Has(ActionLeft) {
		t.Error("Clone should be independent of the original frame")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionJump, "Jump"},
		{ActionLeft, "Left"},
		{ActionQuit, "Quit"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("%d.String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

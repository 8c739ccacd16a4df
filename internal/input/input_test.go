package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// TestDefaultBindings verifies the stock key map drives the expected
// actions.
func TestDefaultBindings(t *testing.T) {
	im := NewInputManager()

	cases := []struct {
		key    glfw.Key
		action Action
	}{
		{glfw.KeyW, ActionCamForward},
		{glfw.KeyRight, ActionCamTurnRight},
		{glfw.KeyU, ActionModelUp},
		{glfw.KeyPeriod, ActionModelYawRight},
		{glfw.KeyPageDown, ActionEyesApart},
		{glfw.KeyPageUp, ActionEyesTogether},
		{glfw.KeyEscape, ActionQuit},
	}

	for _, c := range cases {
		im.HandleKeyEvent(c.key, glfw.Press)
		if !im.IsActive(c.action) {
			t.Errorf("key %v did not activate action %v", c.key, c.action)
		}
		im.HandleKeyEvent(c.key, glfw.Release)
		if im.IsActive(c.action) {
			t.Errorf("key %v release did not deactivate action %v", c.key, c.action)
		}
	}
}

// TestHeldAcrossFrames verifies a held key stays active over PostUpdate
// calls until released. Continuous controls read the held state every frame.
func TestHeldAcrossFrames(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyPageDown, glfw.Press)
	for frame := 0; frame < 3; frame++ {
		if !im.IsActive(ActionEyesApart) {
			t.Fatalf("frame %d: held key no longer active", frame)
		}
		im.PostUpdate()
	}

	im.HandleKeyEvent(glfw.KeyPageDown, glfw.Release)
	if im.IsActive(ActionEyesApart) {
		t.Error("action still active after release")
	}
}

// TestEdgeDetection verifies JustPressed and JustReleased fire exactly once
// and are cleared by PostUpdate.
func TestEdgeDetection(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	if !im.JustPressed(ActionQuit) {
		t.Error("JustPressed not set on press")
	}
	im.PostUpdate()
	if im.JustPressed(ActionQuit) {
		t.Error("JustPressed survived PostUpdate")
	}
	if !im.IsActive(ActionQuit) {
		t.Error("held state cleared by PostUpdate")
	}

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	if !im.JustReleased(ActionQuit) {
		t.Error("JustReleased not set on release")
	}
	im.PostUpdate()
	if im.JustReleased(ActionQuit) {
		t.Error("JustReleased survived PostUpdate")
	}
}

// TestRepeatKeepsHeld verifies OS key repeat events do not retrigger the
// pressed edge.
func TestRepeatKeepsHeld(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyW, glfw.Repeat)

	if !im.IsActive(ActionCamForward) {
		t.Error("repeat event dropped held state")
	}
	if im.JustPressed(ActionCamForward) {
		t.Error("repeat event retriggered the pressed edge")
	}
}

// TestRebind verifies unbinding and rebinding a key.
func TestRebind(t *testing.T) {
	im := NewInputManager()

	im.UnbindKey(glfw.KeyW)
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if im.IsActive(ActionCamForward) {
		t.Error("unbound key still activates its action")
	}

	im.BindKey(glfw.KeyT, ActionCamForward)
	im.HandleKeyEvent(glfw.KeyT, glfw.Press)
	if !im.IsActive(ActionCamForward) {
		t.Error("rebound key does not activate the action")
	}
}

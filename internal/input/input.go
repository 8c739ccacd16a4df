package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action represents a logical action, not a physical key
type Action int

const (
	ActionCamForward Action = iota
	ActionCamBackward
	ActionCamLeft
	ActionCamRight
	ActionCamTurnUp
	ActionCamTurnDown
	ActionCamTurnLeft
	ActionCamTurnRight
	ActionModelForward
	ActionModelBackward
	ActionModelLeft
	ActionModelRight
	ActionModelUp
	ActionModelDown
	ActionModelYawLeft
	ActionModelYawRight
	ActionEyesApart
	ActionEyesTogether
	ActionQuit
	ActionCount // Sentinel value for array sizing
)

// InputManager manages keyboard state and maps physical keys to logical actions
type InputManager struct {
	mu sync.RWMutex

	// Key to action mapping (one key can map to multiple actions)
	keyToActions map[glfw.Key][]Action

	// Current frame state (indexed by Action)
	currentState [ActionCount]bool

	// Just pressed/released flags (reset each frame)
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewInputManager creates a new InputManager with default key bindings
func NewInputManager() *InputManager {
	im := &InputManager{
		keyToActions: make(map[glfw.Key][]Action),
	}

	// Camera movement and turning
	im.BindKey(glfw.KeyW, ActionCamForward)
	im.BindKey(glfw.KeyS, ActionCamBackward)
	im.BindKey(glfw.KeyA, ActionCamLeft)
	im.BindKey(glfw.KeyD, ActionCamRight)
	im.BindKey(glfw.KeyUp, ActionCamTurnUp)
	im.BindKey(glfw.KeyDown, ActionCamTurnDown)
	im.BindKey(glfw.KeyLeft, ActionCamTurnLeft)
	im.BindKey(glfw.KeyRight, ActionCamTurnRight)

	// Cube control
	im.BindKey(glfw.KeyI, ActionModelForward)
	im.BindKey(glfw.KeyK, ActionModelBackward)
	im.BindKey(glfw.KeyJ, ActionModelLeft)
	im.BindKey(glfw.KeyL, ActionModelRight)
	im.BindKey(glfw.KeyU, ActionModelUp)
	im.BindKey(glfw.KeyO, ActionModelDown)
	im.BindKey(glfw.KeyComma, ActionModelYawLeft)
	im.BindKey(glfw.KeyPeriod, ActionModelYawRight)

	// Interocular distance adjustment
	im.BindKey(glfw.KeyPageDown, ActionEyesApart)
	im.BindKey(glfw.KeyPageUp, ActionEyesTogether)

	im.BindKey(glfw.KeyEscape, ActionQuit)

	return im
}

// BindKey binds a physical key to a logical action.
// Multiple keys can be bound to the same action.
func (im *InputManager) BindKey(key glfw.Key, action Action) {
	im.mu.Lock()
	defer im.mu.Unlock()

	if action < 0 || action >= ActionCount {
		return
	}

	im.keyToActions[key] = append(im.keyToActions[key], action)
}

// UnbindKey removes all action bindings for a key
func (im *InputManager) UnbindKey(key glfw.Key) {
	im.mu.Lock()
	defer im.mu.Unlock()

	delete(im.keyToActions, key)
}

// HandleKeyEvent processes a key event and updates internal state.
// This can be called from a custom key callback.
func (im *InputManager) HandleKeyEvent(key glfw.Key, action glfw.Action) {
	im.mu.RLock()
	actions, exists := im.keyToActions[key]
	im.mu.RUnlock()

	if !exists {
		return
	}

	isPressed := action == glfw.Press || action == glfw.Repeat

	im.mu.Lock()
	for _, act := range actions {
		if act >= 0 && act < ActionCount {
			// Detect edges immediately when event arrives
			if isPressed && !im.currentState[act] {
				im.justPressed[act] = true
			}
			if !isPressed && im.currentState[act] {
				im.justReleased[act] = true
			}
			im.currentState[act] = isPressed
		}
	}
	im.mu.Unlock()
}

// SetKeyCallback sets up the GLFW key callback for this input manager.
// This should be called once during initialization.
func (im *InputManager) SetKeyCallback(window *glfw.Window) {
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})
}

// PostUpdate must be called at the end of each frame to reset edge flags.
func (im *InputManager) PostUpdate() {
	im.mu.Lock()
	defer im.mu.Unlock()

	for i := Action(0); i < ActionCount; i++ {
		im.justPressed[i] = false
		im.justReleased[i] = false
	}
}

// IsActive returns true if the action is currently being held down
func (im *InputManager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.currentState[action]
}

// JustPressed returns true only if the action was pressed in the current frame
func (im *InputManager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justPressed[action]
}

// JustReleased returns true only if the action was released in the current frame
func (im *InputManager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}

	im.mu.RLock()
	defer im.mu.RUnlock()

	return im.justReleased[action]
}

package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/uibridge"
)

const mouseButtonCount = 3

// Host implements uibridge.Host on top of a GLFW window. GLFW callbacks
// accumulate events between frames; NewFrame snapshots them into the
// current-frame state the uibridge queries read.
//
// Call NewFrame once per frame, after glfw.PollEvents and before any
// uibridge.Window call.
type Host struct {
	window *glfw.Window

	// Current-frame snapshot.
	mousePressed  [mouseButtonCount]bool
	mouseReleased [mouseButtonCount]bool
	keysDown      [uibridge.KeyCount]bool
	keysPressed   [uibridge.KeyCount]bool
	wheel         uibridge.Vec2
	chars         []rune
	charCursor    int
	frameTime     float32

	// Pending events accumulated by callbacks since the last NewFrame.
	pendingMousePressed  [mouseButtonCount]bool
	pendingMouseReleased [mouseButtonCount]bool
	pendingKeysDown      [uibridge.KeyCount]bool
	pendingKeysPressed   [uibridge.KeyCount]bool
	pendingWheel         uibridge.Vec2
	pendingChars         []rune

	lastFrame float64
}

// NewHost creates a GLFW host and installs its input callbacks on the window.
func NewHost(window *glfw.Window) *Host {
	h := &Host{
		window:       window,
		chars:        make([]rune, 0, 16),
		pendingChars: make([]rune, 0, 16),
		lastFrame:    glfw.GetTime(),
	}

	window.SetKeyCallback(h.keyCallback)
	window.SetCharCallback(h.charCallback)
	window.SetMouseButtonCallback(h.mouseButtonCallback)
	window.SetScrollCallback(h.scrollCallback)

	return h
}

// NewFrame snapshots the pending input events into the current-frame state
// and advances the frame clock. Edge queries (MousePressed, KeyPressed) and
// the wheel delta refer to events accumulated since the previous NewFrame.
func (h *Host) NewFrame() {
	h.mousePressed = h.pendingMousePressed
	h.mouseReleased = h.pendingMouseReleased
	h.keysDown = h.pendingKeysDown
	h.keysPressed = h.pendingKeysPressed
	h.wheel = h.pendingWheel
	h.chars = append(h.chars[:0], h.pendingChars...)
	h.charCursor = 0

	h.pendingMousePressed = [mouseButtonCount]bool{}
	h.pendingMouseReleased = [mouseButtonCount]bool{}
	h.pendingKeysPressed = [uibridge.KeyCount]bool{}
	h.pendingWheel = uibridge.Vec2{}
	h.pendingChars = h.pendingChars[:0]

	now := glfw.GetTime()
	h.frameTime = float32(now - h.lastFrame)
	h.lastFrame = now
}

// MousePosition returns the pointer position in screen coordinates.
func (h *Host) MousePosition() uibridge.Vec2 {
	x, y := h.window.GetCursorPos()
	return uibridge.Vec2{X: float32(x), Y: float32(y)}
}

// MousePressed reports a press edge for the button this frame.
func (h *Host) MousePressed(btn uibridge.MouseButton) bool {
	if btn < 0 || int(btn) >= mouseButtonCount {
		return false
	}
	return h.mousePressed[btn]
}

// MouseReleased reports a release edge for the button this frame.
func (h *Host) MouseReleased(btn uibridge.MouseButton) bool {
	if btn < 0 || int(btn) >= mouseButtonCount {
		return false
	}
	return h.mouseReleased[btn]
}

// MouseWheel returns this frame's scroll delta (positive Y = scroll up).
func (h *Host) MouseWheel() uibridge.Vec2 {
	return h.wheel
}

// KeyPressed reports a press edge for the key this frame.
func (h *Host) KeyPressed(key uibridge.KeyCode) bool {
	if key <= uibridge.KeyNone || key >= uibridge.KeyCount {
		return false
	}
	return h.keysPressed[key]
}

// KeyDown reports whether the key is currently held.
func (h *Host) KeyDown(key uibridge.KeyCode) bool {
	if key <= uibridge.KeyNone || key >= uibridge.KeyCount {
		return false
	}
	return h.keysDown[key]
}

// NextChar pops the next typed character from this frame's queue.
func (h *Host) NextChar() (rune, bool) {
	if h.charCursor >= len(h.chars) {
		return 0, false
	}
	ch := h.chars[h.charCursor]
	h.charCursor++
	return ch, true
}

// FrameTime returns the elapsed time since the previous NewFrame in seconds.
func (h *Host) FrameTime() float32 {
	return h.frameTime
}

// ClipboardGet returns the window system's clipboard text. An empty
// clipboard is a normal absent value, not an error.
func (h *Host) ClipboardGet() (string, bool) {
	s := h.window.GetClipboardString()
	return s, s != ""
}

// ClipboardSet copies text to the window system's clipboard.
func (h *Host) ClipboardSet(text string) {
	h.window.SetClipboardString(text)
}

func (h *Host) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	code := glfwKeyToKeyCode(key)
	if code == uibridge.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		h.pendingKeysDown[code] = true
		h.pendingKeysPressed[code] = true
	case glfw.Repeat:
		h.pendingKeysDown[code] = true
	case glfw.Release:
		h.pendingKeysDown[code] = false
	}
}

func (h *Host) charCallback(w *glfw.Window, char rune) {
	h.pendingChars = append(h.pendingChars, char)
}

func (h *Host) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	btn := glfwMouseButton(button)
	if btn < 0 {
		return
	}

	switch action {
	case glfw.Press:
		h.pendingMousePressed[btn] = true
	case glfw.Release:
		h.pendingMouseReleased[btn] = true
	}
}

func (h *Host) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	h.pendingWheel.X += float32(xoff)
	h.pendingWheel.Y += float32(yoff)
}

// glfwKeyToKeyCode maps GLFW keys to the uibridge key vocabulary.
func glfwKeyToKeyCode(key glfw.Key) uibridge.KeyCode {
	switch key {
	case glfw.KeyUp:
		return uibridge.KeyUp
	case glfw.KeyDown:
		return uibridge.KeyDown
	case glfw.KeyRight:
		return uibridge.KeyRight
	case glfw.KeyLeft:
		return uibridge.KeyLeft
	case glfw.KeyHome:
		return uibridge.KeyHome
	case glfw.KeyEnd:
		return uibridge.KeyEnd
	case glfw.KeyDelete:
		return uibridge.KeyDelete
	case glfw.KeyBackspace:
		return uibridge.KeyBackspace
	case glfw.KeyTab:
		return uibridge.KeyTab
	case glfw.KeyZ:
		return uibridge.KeyZ
	case glfw.KeyY:
		return uibridge.KeyY
	case glfw.KeyC:
		return uibridge.KeyC
	case glfw.KeyX:
		return uibridge.KeyX
	case glfw.KeyV:
		return uibridge.KeyV
	case glfw.KeyA:
		return uibridge.KeyA
	case glfw.KeyEscape:
		return uibridge.KeyEscape
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return uibridge.KeyEnter
	case glfw.KeyLeftShift:
		return uibridge.KeyLeftShift
	case glfw.KeyRightShift:
		return uibridge.KeyRightShift
	case glfw.KeyLeftControl:
		return uibridge.KeyLeftControl
	case glfw.KeyRightControl:
		return uibridge.KeyRightControl
	default:
		return uibridge.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons to the uibridge vocabulary.
func glfwMouseButton(button glfw.MouseButton) uibridge.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return uibridge.MouseButtonLeft
	case glfw.MouseButtonRight:
		return uibridge.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return uibridge.MouseButtonMiddle
	default:
		return -1
	}
}

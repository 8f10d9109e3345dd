package uibridge

// forwardedKeys is the allow-list of navigation/editing keys forwarded to the
// UI library: arrows, Home/End, Delete/Backspace/Tab, the letters used in
// copy/cut/paste/select-all/undo-redo shortcuts, Escape, and Enter.
var forwardedKeys = [...]KeyCode{
	KeyUp,
	KeyDown,
	KeyRight,
	KeyLeft,
	KeyHome,
	KeyEnd,
	KeyDelete,
	KeyBackspace,
	KeyTab,
	KeyZ,
	KeyY,
	KeyC,
	KeyX,
	KeyV,
	KeyA,
	KeyEscape,
	KeyEnter,
}

// forwardInput pushes the host's current-frame input state into the UI
// library. Every Window call invokes it, but the inputForwarded guard makes
// only the first call of a frame do any work; Flush clears the guard for the
// next frame.
func (c *Context) forwardInput() {
	if c.inputForwarded {
		return
	}

	pos := c.host.MousePosition()
	c.ui.MouseMove(pos)

	if c.host.MousePressed(MouseButtonLeft) {
		c.ui.MouseDown(pos)
	}
	if c.host.MouseReleased(MouseButtonLeft) {
		c.ui.MouseUp(pos)
	}

	shift := c.host.KeyDown(KeyLeftShift) || c.host.KeyDown(KeyRightShift)
	ctrl := c.host.KeyDown(KeyLeftControl) || c.host.KeyDown(KeyRightControl)

	// Drain the typed-character queue. Characters are suppressed while
	// control is held so shortcut combos don't leak control characters into
	// text fields.
	for {
		ch, ok := c.host.NextChar()
		if !ok {
			break
		}
		if !ctrl {
			c.ui.Char(ch, false, false)
		}
	}

	// Allow-listed keys fire on press or while held. A held key re-fires
	// every frame; repeat throttling is the UI library's job.
	for _, key := range forwardedKeys {
		if c.host.KeyPressed(key) || c.host.KeyDown(key) {
			c.ui.KeyDown(key, shift, ctrl)
		}
	}

	if ctrl || c.host.KeyPressed(KeyLeftControl) || c.host.KeyPressed(KeyRightControl) {
		c.ui.KeyDown(KeyControl, shift, ctrl)
	}

	// The UI library wants positive Y = scroll down; the host reports the
	// opposite.
	wheel := c.host.MouseWheel()
	c.ui.MouseWheel(Vec2{X: wheel.X, Y: -wheel.Y})

	c.inputForwarded = true
}

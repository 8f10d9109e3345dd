package uibridge

// WindowParams configures a window declaration. Values are ephemeral: they
// are passed to the UI library on every declaration and not retained by the
// binding. Pass nil to Window for the defaults.
type WindowParams struct {
	Label       string
	Movable     bool
	CloseButton bool
	Titlebar    bool
}

// DefaultWindowParams returns the default window configuration: movable, with
// a titlebar, without a close button, with an empty label.
func DefaultWindowParams() WindowParams {
	return WindowParams{
		Movable:  true,
		Titlebar: true,
	}
}

// Window declares a window for this frame and returns whether it is open.
//
// id is the window's stable identity across frames; pos and size apply on
// first appearance (afterwards the UI library keeps per-window placement
// keyed by id). body declares the window's widgets against the UI library's
// builder API; it is invoked only while the window is open.
//
// The first Window call of a frame forwards the host's input state into the
// UI library before declaring anything; later calls in the same frame skip
// that step.
//
// The return value is false once the user has clicked the window's close
// button. Windows declared with CloseButton false have no affordance to
// close and always return true.
func (c *Context) Window(id WindowID, pos, size Vec2, params *WindowParams, body func(UI)) bool {
	c.forwardInput()

	p := DefaultWindowParams()
	if params != nil {
		p = *params
	}

	open := c.ui.BeginWindow(id, pos, size, p)
	if !open {
		return false
	}
	if body != nil {
		body(c.ui)
	}
	c.ui.EndWindow()
	return true
}

// MouseOverUI reports whether the pointer is over any UI element, per the UI
// library's hit-testing at the current pointer position. Embedders use it to
// suppress world-space clicks under UI.
func (c *Context) MouseOverUI() bool {
	return c.ui.IsMouseOver(c.host.MousePosition())
}

// MouseCaptured reports whether the UI is holding the pointer for an active
// drag, scroll, or resize interaction.
func (c *Context) MouseCaptured() bool {
	return c.ui.IsMouseCaptured()
}

// Window declares a window against the default context. See Context.Window.
func Window(id WindowID, pos, size Vec2, params *WindowParams, body func(UI)) bool {
	return Current().Window(id, pos, size, params, body)
}

// MouseOverUI reports pointer-over-UI for the default context.
func MouseOverUI() bool {
	return Current().MouseOverUI()
}

// MouseCaptured reports pointer capture for the default context.
func MouseCaptured() bool {
	return Current().MouseCaptured()
}

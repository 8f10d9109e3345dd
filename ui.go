package uibridge

import "image"

// Style is an opaque style descriptor. SetStyle forwards it verbatim to the
// UI library, which asserts it to its own concrete style type.
type Style any

// UI is the surface uibridge requires from an immediate-mode UI library.
//
// The binding drives it in a fixed per-frame sequence: input events first
// (forwarded once, by the first Window call), then BeginWindow/EndWindow
// pairs for each declared window, then Render followed by NewFrame from
// Flush. Implementations may assume that sequence and a single calling
// thread.
type UI interface {
	// Input event sink. Positions and deltas are in screen coordinates with
	// the origin at the top-left and Y growing downward; scroll deltas arrive
	// already converted to that convention by the forwarder.
	MouseMove(pos Vec2)
	MouseDown(pos Vec2)
	MouseUp(pos Vec2)
	MouseWheel(delta Vec2)
	Char(ch rune, shift, ctrl bool)
	KeyDown(key KeyCode, shift, ctrl bool)

	// SetClipboard injects the clipboard capability. Called once during
	// context construction, before any events are forwarded.
	SetClipboard(c Clipboard)

	// FontAtlas returns the font-atlas bitmap to upload as the default
	// texture for draw commands that carry no texture handle.
	FontAtlas() image.Image

	// SetStyle applies a style descriptor. The value is whatever the
	// embedder passed to uibridge.SetStyle, untouched.
	SetStyle(style Style)

	// BeginWindow declares a window for this frame and returns whether it is
	// open. When it returns false (the user closed it), the binding declares
	// no widgets and does not call EndWindow. EndWindow is called exactly
	// once for every BeginWindow that returned true.
	BeginWindow(id WindowID, pos, size Vec2, params WindowParams) bool
	EndWindow()

	// IsMouseOver reports whether the point hits any UI element, using the
	// library's own hit-testing.
	IsMouseOver(pos Vec2) bool

	// IsMouseCaptured reports whether the UI is holding the pointer for an
	// active interaction (drag, scroll, resize).
	IsMouseCaptured() bool

	// Render appends this frame's draw commands to dst and returns the
	// resulting slice. The library must emit commands in paint order and
	// clear its internal accumulation so the next frame starts empty.
	Render(dst []DrawCommand) []DrawCommand

	// NewFrame advances the library's per-frame clock by dt seconds.
	// Called by Flush after the draw lists are fully replayed.
	NewFrame(dt float32)
}

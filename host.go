package uibridge

import "image"

// Host is the engine side of the binding: per-frame input queries, the system
// clipboard, and the frame clock. A Host implementation snapshots input once
// per frame (see backend/opengl.Host.NewFrame), so every query below is a
// cheap read of current-frame state.
type Host interface {
	// MousePosition returns the pointer position in screen coordinates.
	MousePosition() Vec2

	// MousePressed reports whether the button transitioned to pressed this
	// frame (edge, not level).
	MousePressed(btn MouseButton) bool

	// MouseReleased reports whether the button transitioned to released this
	// frame (edge, not level).
	MouseReleased(btn MouseButton) bool

	// MouseWheel returns this frame's scroll delta in the host's convention
	// (positive Y = scroll up). The forwarder inverts Y before handing it to
	// the UI library.
	MouseWheel() Vec2

	// KeyPressed reports whether the key transitioned to pressed this frame.
	KeyPressed(key KeyCode) bool

	// KeyDown reports whether the key is currently held.
	KeyDown(key KeyCode) bool

	// NextChar pops the next typed character from this frame's text-input
	// queue. ok is false once the queue is drained.
	NextChar() (ch rune, ok bool)

	// FrameTime returns the elapsed time since the previous frame, in
	// seconds.
	FrameTime() float32

	// ClipboardGet returns the system clipboard text. ok is false when the
	// clipboard is empty or holds non-text data; that is a normal result,
	// not an error.
	ClipboardGet() (text string, ok bool)

	// ClipboardSet copies text to the system clipboard.
	ClipboardSet(text string)
}

// TextureFilter selects the sampling mode for a created texture.
type TextureFilter int

const (
	FilterNearest TextureFilter = iota
	FilterLinear
)

// Texture is a renderer-native texture object. uibridge never inspects it;
// values flow from Renderer.CreateTexture (or the embedder) through the
// registry back into Renderer.BindTexture.
type Texture any

// Renderer is the draw side of the binding. Calls arrive in replay order from
// Flush: BindTexture and Scissor configure state for the DrawTriangles call
// that follows them.
type Renderer interface {
	// CreateTexture uploads an image as a renderer-native texture with the
	// given sampling filter. Requires a live rendering context.
	CreateTexture(img image.Image, filter TextureFilter) (Texture, error)

	// BindTexture makes t the active texture for subsequent triangle
	// submissions. A nil Texture restores the renderer's default (unbound)
	// state.
	BindTexture(t Texture)

	// Scissor sets the active clip rectangle in screen coordinates, or
	// disables clipping when r is nil.
	Scissor(r *Rect)

	// DrawTriangles submits an indexed triangle batch as filled triangles
	// using the active texture and clip rectangle.
	DrawTriangles(vertices []Vertex, indices []uint16)
}

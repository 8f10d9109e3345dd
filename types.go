package uibridge

// Vec2 represents a 2D vector for positions, sizes, and deltas.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Vertex represents a vertex of a UI triangle batch.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// TextureHandle is an opaque numeric handle the UI library uses to reference
// embedder textures in draw commands. Handles carry no meaning for uibridge
// beyond registry lookup; the embedder picks them.
type TextureHandle uint32

// WindowID is a stable identity for a window across frames. The UI library
// keys per-window state (position after a drag, open/closed) by it.
type WindowID uint64

// DrawCommand is one textured triangle batch emitted by the UI library.
// Commands are replayed by Flush in exactly the order they were emitted.
type DrawCommand struct {
	Vertices []Vertex
	Indices  []uint16
	Clip     *Rect          // Clip rectangle; nil disables clipping
	Texture  *TextureHandle // Registered texture; nil means the font atlas
}

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyCode represents a keyboard key, in the vocabulary shared by the Host
// (which reports key state) and the UI library (which receives key events).
type KeyCode int

const (
	KeyNone KeyCode = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeyTab
	KeyZ
	KeyY
	KeyC
	KeyX
	KeyV
	KeyA
	KeyEscape
	KeyEnter

	// Control is the synthetic control-key event forwarded to the UI library
	// whenever either physical control key is pressed or held.
	KeyControl

	// Physical modifier keys, queried on the Host side only.
	KeyLeftShift
	KeyRightShift
	KeyLeftControl
	KeyRightControl

	KeyCount
)

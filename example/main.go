// Example wires uibridge between a minimal demo UI library and the OpenGL
// backend.
//
// Prerequisites: a desktop with OpenGL 4.1 and the GLFW build dependencies
// (X11 headers on Linux).
//
//	go run ./example/
//
// The demo UI implements just enough of the uibridge.UI interface to show the
// full frame cycle: one draggable window rendered as flat quads, hit-testing
// for MouseOverUI, and clipboard injection. A real embedder would plug in a
// full immediate-mode UI library here instead.
package main

import (
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/uibridge"
	"github.com/go-theft-auto/uibridge/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "uibridge example"

	titlebarHeight = 24
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("ui renderer: %w", err)
	}
	defer renderer.Delete()

	host := opengl.NewHost(window)

	if err := uibridge.Init(&demoUI{}, host, renderer); err != nil {
		return fmt.Errorf("uibridge init: %w", err)
	}

	params := &uibridge.WindowParams{Label: "demo", Movable: true, Titlebar: true}

	for !window.ShouldClose() {
		glfw.PollEvents()
		host.NewFrame()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		renderer.Resize(w, h)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		uibridge.Window(1,
			uibridge.Vec2{X: 40, Y: 40},
			uibridge.Vec2{X: 300, Y: 200},
			params,
			func(uibridge.UI) {
				// Widgets would be declared here against the concrete
				// UI library. The demo UI draws only its own chrome.
			})

		uibridge.Flush()

		window.SwapBuffers()
	}

	return nil
}

// demoUI is a toy uibridge.UI implementation: a single movable window drawn
// as flat quads. It exists to exercise the binding, not to be a UI library.
type demoUI struct {
	clipboard uibridge.Clipboard

	mouse     uibridge.Vec2
	mouseHeld bool

	// Window placement persists across frames once the window first
	// appears, keyed implicitly by the single window this demo supports.
	rect    uibridge.Rect
	placed  bool
	movable bool
	dragOff uibridge.Vec2
	drag    bool

	commands []uibridge.DrawCommand
}

func (d *demoUI) MouseMove(pos uibridge.Vec2) {
	d.mouse = pos
	if d.drag {
		d.rect.X = pos.X - d.dragOff.X
		d.rect.Y = pos.Y - d.dragOff.Y
	}
}

func (d *demoUI) MouseDown(pos uibridge.Vec2) {
	d.mouseHeld = true
	titlebar := uibridge.Rect{X: d.rect.X, Y: d.rect.Y, W: d.rect.W, H: titlebarHeight}
	if d.placed && d.movable && titlebar.Contains(pos) {
		d.drag = true
		d.dragOff = uibridge.Vec2{X: pos.X - d.rect.X, Y: pos.Y - d.rect.Y}
	}
}

func (d *demoUI) MouseUp(pos uibridge.Vec2) {
	d.mouseHeld = false
	d.drag = false
}

func (d *demoUI) MouseWheel(delta uibridge.Vec2)                 {}
func (d *demoUI) Char(ch rune, shift, ctrl bool)                 {}
func (d *demoUI) KeyDown(key uibridge.KeyCode, shift, ctrl bool) {}

func (d *demoUI) SetClipboard(c uibridge.Clipboard) { d.clipboard = c }
func (d *demoUI) SetStyle(style uibridge.Style)     {}

func (d *demoUI) FontAtlas() image.Image {
	// A solid white atlas: quads sample it for flat fills.
	atlas := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := range atlas.Pix {
		atlas.Pix[i] = 255
	}
	return atlas
}

func (d *demoUI) BeginWindow(id uibridge.WindowID, pos, size uibridge.Vec2, params uibridge.WindowParams) bool {
	if !d.placed {
		d.rect = uibridge.Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
		d.placed = true
	}
	d.movable = params.Movable

	d.quad(d.rect, uibridge.RGBA(40, 44, 52, 235))
	if params.Titlebar {
		d.quad(uibridge.Rect{X: d.rect.X, Y: d.rect.Y, W: d.rect.W, H: titlebarHeight},
			uibridge.RGBA(66, 72, 84, 255))
	}
	return true
}

func (d *demoUI) EndWindow() {}

func (d *demoUI) IsMouseOver(pos uibridge.Vec2) bool {
	return d.placed && d.rect.Contains(pos)
}

func (d *demoUI) IsMouseCaptured() bool { return d.drag }

func (d *demoUI) Render(dst []uibridge.DrawCommand) []uibridge.DrawCommand {
	dst = append(dst, d.commands...)
	d.commands = d.commands[:0]
	return dst
}

func (d *demoUI) NewFrame(dt float32) {}

// quad appends one solid-color quad as a draw command sampling the white
// atlas texel.
func (d *demoUI) quad(r uibridge.Rect, col uint32) {
	uv := [2]float32{0.5, 0.5}
	d.commands = append(d.commands, uibridge.DrawCommand{
		Vertices: []uibridge.Vertex{
			{Pos: [2]float32{r.X, r.Y}, TexCoord: uv, Color: col},
			{Pos: [2]float32{r.X + r.W, r.Y}, TexCoord: uv, Color: col},
			{Pos: [2]float32{r.X + r.W, r.Y + r.H}, TexCoord: uv, Color: col},
			{Pos: [2]float32{r.X, r.Y + r.H}, TexCoord: uv, Color: col},
		},
		Indices: []uint16{0, 1, 2, 0, 2, 3},
	})
}

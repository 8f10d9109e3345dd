package uibridge

import (
	"fmt"
	"log/slog"
	"os"
)

// logLevel controls the log level for binding debug logging.
// Default is LevelInfo, which suppresses Debug messages.
var logLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for the binding.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
}

// logger is the package logger for binding debugging.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// Context owns the binding state for one UI session: the UI library, the
// host, the renderer, the uploaded font-atlas texture, the embedder texture
// registry, the reusable draw-command buffer, and the per-frame input guard.
//
// A Context lives for the process; there is no teardown path. All methods
// must be called from the single thread driving the render loop.
type Context struct {
	ui       UI
	host     Host
	renderer Renderer

	fontTexture Texture
	textures    map[TextureHandle]Texture

	// drawList is the draw-command buffer handed to UI.Render each flush.
	// Flush takes it out of the context during the replay loop and puts the
	// consumed buffer back so its storage is reused next frame.
	drawList []DrawCommand

	// inputForwarded guards the once-per-frame input forwarding. Set by the
	// first Window call of a frame, cleared at the start of Flush.
	inputForwarded bool
}

// NewContext constructs a binding context. It requires a live rendering
// context: construction uploads the UI library's font atlas as a texture with
// nearest-neighbor filtering and injects the host-backed clipboard into the
// UI library. Calling it before the renderer is initialized is a programming
// error.
func NewContext(ui UI, host Host, renderer Renderer) (*Context, error) {
	fontTexture, err := renderer.CreateTexture(ui.FontAtlas(), FilterNearest)
	if err != nil {
		return nil, fmt.Errorf("upload font atlas: %w", err)
	}

	ui.SetClipboard(hostClipboard{host: host})

	logger.Debug("context created")

	return &Context{
		ui:          ui,
		host:        host,
		renderer:    renderer,
		fontTexture: fontTexture,
		textures:    make(map[TextureHandle]Texture),
	}, nil
}

// UI returns the bound UI library.
func (c *Context) UI() UI {
	return c.ui
}

// SetStyle forwards a style descriptor verbatim to the UI library.
func (c *Context) SetStyle(style Style) {
	c.ui.SetStyle(style)
}

// RegisterTexture maps a handle to a renderer-native texture, inserting or
// replacing. Draw commands emitted by the UI library reference textures by
// handle; register one before any frame whose draw list uses it. The texture
// must outlive its use in any draw list; removal and cleanup are the
// embedder's responsibility.
func (c *Context) RegisterTexture(handle TextureHandle, texture Texture) {
	c.textures[handle] = texture
}

// texture resolves a registered handle. A missing handle is a programming
// error on the embedder's side (a draw command referenced a texture that was
// never registered) and fails loudly rather than substituting the atlas.
func (c *Context) texture(handle TextureHandle) Texture {
	t, ok := c.textures[handle]
	if !ok {
		panic(fmt.Sprintf("uibridge: no texture registered for handle %d", handle))
	}
	return t
}

// Package-level default context. The free functions below mirror the Context
// methods for embedders that want a single implicit UI session.
var defaultContext *Context

// Init constructs the package-level default context. Call it once, after the
// rendering context exists and before any other package-level call.
func Init(ui UI, host Host, renderer Renderer) error {
	ctx, err := NewContext(ui, host, renderer)
	if err != nil {
		return err
	}
	defaultContext = ctx
	return nil
}

// Current returns the default context established by Init.
func Current() *Context {
	if defaultContext == nil {
		panic("uibridge: Init not called")
	}
	return defaultContext
}

// SetStyle forwards a style descriptor to the default context's UI library.
func SetStyle(style Style) {
	Current().SetStyle(style)
}

// RegisterTexture registers a texture with the default context.
func RegisterTexture(handle TextureHandle, texture Texture) {
	Current().RegisterTexture(handle, texture)
}

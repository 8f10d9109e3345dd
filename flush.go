package uibridge

// Flush replays the UI library's draw lists for this frame against the
// renderer and advances the library's frame clock. Call it exactly once per
// frame, after all Window declarations.
//
// Commands are replayed in exactly the order the UI library emitted them;
// overlapping widgets rely on painter's-algorithm ordering. After the replay
// the active texture is unbound so no binding leaks into the embedder's own
// rendering.
func (c *Context) Flush() {
	// Re-arm input forwarding for the next frame.
	c.inputForwarded = false

	// Take the buffer out of the context while the replay loop runs, then
	// put the consumed buffer back so its storage is reused next frame.
	list := c.drawList[:0]
	c.drawList = nil
	list = c.ui.Render(list)

	for i := range list {
		cmd := &list[i]
		if cmd.Texture != nil {
			c.renderer.BindTexture(c.texture(*cmd.Texture))
		} else {
			c.renderer.BindTexture(c.fontTexture)
		}
		c.renderer.Scissor(cmd.Clip)
		c.renderer.DrawTriangles(cmd.Vertices, cmd.Indices)
	}
	c.renderer.BindTexture(nil)

	if len(list) > 0 {
		logger.Debug("flushed frame", "commands", len(list))
	}

	c.drawList = list
	c.ui.NewFrame(c.host.FrameTime())
}

// Flush flushes the default context's frame. See Context.Flush.
func Flush() {
	Current().Flush()
}

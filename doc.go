// Package uibridge binds an immediate-mode UI library to a game-engine-style
// rendering and input host.
//
// The package owns no widget logic, layout, or text rasterization. Those live
// in the UI library behind the UI interface. uibridge only translates between
// the two sides, once per frame, in a fixed order:
//
//  1. The first Window call of a frame forwards the host's input state into
//     the UI library (pointer, buttons, typed characters, navigation keys,
//     scroll wheel). Further Window calls in the same frame forward nothing.
//  2. After all window declarations, Flush asks the UI library to render its
//     draw lists and replays them against the Renderer as textured triangle
//     batches, honoring per-command clip rectangles and texture bindings.
//
// Usage:
//
//	host := opengl.NewHost(window)
//	renderer, err := opengl.NewRenderer(width, height)
//	if err != nil { ... }
//	if err := uibridge.Init(myUI, host, renderer); err != nil { ... }
//
//	for !window.ShouldClose() {
//		host.NewFrame()
//		uibridge.Window(1, uibridge.Vec2{X: 20, Y: 20}, uibridge.Vec2{X: 300, Y: 200}, nil, func(ui uibridge.UI) {
//			// declare widgets against the concrete UI library
//		})
//		uibridge.Flush()
//		window.SwapBuffers()
//		glfw.PollEvents()
//	}
//
// All state is confined to the thread driving the render loop. There is no
// locking: the design assumes one Flush call site per frame and any number of
// Window calls before it, all invoked from that single thread.
package uibridge

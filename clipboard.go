package uibridge

// Clipboard abstracts system clipboard access for the UI library. Every call
// round-trips to the OS; nothing is buffered or cached.
type Clipboard interface {
	// Get retrieves text from the system clipboard. ok is false when the
	// clipboard is empty or holds non-text data; callers must treat that as
	// a valid steady state, not an error.
	Get() (text string, ok bool)

	// Set copies text to the system clipboard.
	Set(text string)
}

// hostClipboard backs the Clipboard capability with the Host's clipboard
// calls. The context injects one into the UI library at construction.
type hostClipboard struct {
	host Host
}

func (c hostClipboard) Get() (string, bool) {
	return c.host.ClipboardGet()
}

func (c hostClipboard) Set(text string) {
	c.host.ClipboardSet(text)
}

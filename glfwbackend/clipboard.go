package glfwbackend

import "errors"

// errClipboardEmpty is returned when the window reports no clipboard
// text. imgui treats a clipboard error as an empty paste, so clipboard
// trouble can never interrupt UI construction.
var errClipboardEmpty = errors.New("clipboard is empty")

// Clipboard forwards imgui clipboard access to the GLFW window. It is
// registered with imgui during New; imgui calls it whenever a widget
// copies or pastes, at any point during UI construction.
type Clipboard struct {
	window windowDevice
}

// Text returns the clipboard content, or an error when it is empty or
// unavailable on the platform.
func (c Clipboard) Text() (string, error) {
	text := c.window.GetClipboardString()
	if text == "" {
		return "", errClipboardEmpty
	}
	return text, nil
}

// SetText stores text in the system clipboard.
func (c Clipboard) SetText(value string) {
	c.window.SetClipboardString(value)
}

// ClipboardText returns the window's clipboard text.
func (b *Backend) ClipboardText() (string, error) {
	return Clipboard{window: b.window}.Text()
}

// SetClipboardText stores text in the window's clipboard.
func (b *Backend) SetClipboardText(text string) {
	Clipboard{window: b.window}.SetText(text)
}

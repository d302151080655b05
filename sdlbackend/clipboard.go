package sdlbackend

import (
	"errors"

	"github.com/veandco/go-sdl2/sdl"
)

var errClipboardEmpty = errors.New("clipboard is empty")

// Clipboard forwards imgui clipboard access to SDL. SDL's clipboard is
// process-global, so the bridge carries no window handle.
type Clipboard struct{}

// Text returns the clipboard content, or an error when it is empty or
// unavailable. imgui treats the error as an empty paste.
func (Clipboard) Text() (string, error) {
	text, err := sdl.GetClipboardText()
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errClipboardEmpty
	}
	return text, nil
}

// SetText stores text in the system clipboard. Failures are dropped;
// clipboard trouble must never interrupt UI construction.
func (Clipboard) SetText(value string) {
	_ = sdl.SetClipboardText(value)
}

// ClipboardText returns the system clipboard text.
func (b *Backend) ClipboardText() (string, error) {
	return Clipboard{}.Text()
}

// SetClipboardText stores text in the system clipboard.
func (b *Backend) SetClipboardText(text string) {
	Clipboard{}.SetText(text)
}

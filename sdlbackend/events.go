package sdlbackend

import (
	"unicode"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
)

// ProcessEvent applies one SDL event to imgui's input state and reports
// whether imgui wants to capture it. Events the backend does not model
// are ignored; dispatch never fails.
func (b *Backend) ProcessEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		b.shouldStop = true
		return false

	case *sdl.MouseMotionEvent:
		if b.maskCursorOutside && !b.mouseInside {
			return false
		}
		x, y := e.X, e.Y
		if x < 0 {
			x = 0
		}
		if y < 0 {
			y = 0
		}
		b.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
		return b.io.WantCaptureMouse()

	case *sdl.MouseButtonEvent:
		index := mouseButtonIndex(e.Button)
		if index < 0 {
			b.log.Debug("ignoring unmapped mouse button", zap.Uint8("button", e.Button))
			return false
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			// Latched until NewFrame so sub-frame clicks survive.
			b.buttonsDown[index] = true
			b.io.SetMouseButtonDown(index, true)
		} else {
			b.io.SetMouseButtonDown(index, false)
		}
		return b.io.WantCaptureMouse()

	case *sdl.MouseWheelEvent:
		// Accumulate; imgui consumes the sum once per frame.
		b.io.AddMouseWheelDelta(float32(e.X), float32(e.Y))
		return b.io.WantCaptureMouse()

	case *sdl.KeyboardEvent:
		if index, ok := keyIndex(e.Keysym.Scancode); ok {
			if e.Type == sdl.KEYDOWN {
				b.io.KeyPress(index)
			} else {
				b.io.KeyRelease(index)
			}
		} else {
			b.log.Debug("ignoring unmapped key", zap.Int("scancode", int(e.Keysym.Scancode)))
		}
		b.applyModifiers()
		return b.io.WantCaptureKeyboard()

	case *sdl.TextInputEvent:
		for _, r := range e.GetText() {
			if !unicode.IsControl(r) {
				b.io.AddInputCharacters(string(r))
			}
		}
		return b.io.WantCaptureKeyboard()

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			b.focused = true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			b.focused = false
		case sdl.WINDOWEVENT_ENTER:
			b.mouseInside = true
		case sdl.WINDOWEVENT_LEAVE:
			b.mouseInside = false
		}
		return false
	}

	return false
}

package glfwbackend

import (
	"math"
	"unicode"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

// Event is a GLFW window event as a value. GLFW itself only delivers input
// through callbacks; wrapping the payloads in value types lets the host
// queue, replay or synthesize events, and lets HandleEvent stay a plain
// function of its input.
type Event interface {
	implementsEvent()
}

// CursorPosEvent reports the pointer at a new position, in screen
// coordinates relative to the window origin.
type CursorPosEvent struct {
	X, Y float64
}

// MouseButtonEvent reports a mouse button press or release.
type MouseButtonEvent struct {
	Button glfw.MouseButton
	Action glfw.Action
	Mods   glfw.ModifierKey
}

// ScrollEvent reports scroll wheel movement.
type ScrollEvent struct {
	X, Y float64
}

// KeyEvent reports a key press, repeat or release.
type KeyEvent struct {
	Key      glfw.Key
	Scancode int
	Action   glfw.Action
	Mods     glfw.ModifierKey
}

// CharEvent reports a translated text input code point.
type CharEvent struct {
	Char rune
}

// FocusEvent reports the window gaining or losing input focus.
type FocusEvent struct {
	Focused bool
}

// CursorEnterEvent reports the pointer entering or leaving the window.
type CursorEnterEvent struct {
	Entered bool
}

func (CursorPosEvent) implementsEvent()   {}
func (MouseButtonEvent) implementsEvent() {}
func (ScrollEvent) implementsEvent()      {}
func (KeyEvent) implementsEvent()         {}
func (CharEvent) implementsEvent()        {}
func (FocusEvent) implementsEvent()       {}
func (CursorEnterEvent) implementsEvent() {}

// HandleEvent applies one window event to imgui's input state and reports
// whether imgui wants to capture it. A true result means the host should
// not act on the same event itself.
//
// Events the backend cannot map are ignored; dispatch never fails, so one
// odd event cannot stall the rest of the queue.
func (b *Backend) HandleEvent(event Event) bool {
	switch e := event.(type) {
	case CursorPosEvent:
		if b.maskCursorOutside && !b.mouseInside {
			return false
		}
		b.io.SetMousePosition(imgui.Vec2{
			X: float32(math.Max(e.X, 0)),
			Y: float32(math.Max(e.Y, 0)),
		})
		return b.io.WantCaptureMouse()

	case MouseButtonEvent:
		index := mouseButtonIndex(e.Button)
		if index < 0 {
			b.log.Debug("ignoring unmapped mouse button", zap.Int("button", int(e.Button)))
			return false
		}
		b.io.SetMouseButtonDown(index, e.Action != glfw.Release)
		return b.io.WantCaptureMouse()

	case ScrollEvent:
		// Accumulate: several scroll events can land between two frames
		// and imgui consumes the sum once per frame.
		b.io.AddMouseWheelDelta(float32(e.X), float32(e.Y))
		return b.io.WantCaptureMouse()

	case KeyEvent:
		if index, ok := keyIndex(e.Key); ok {
			if e.Action == glfw.Release {
				b.io.KeyRelease(index)
			} else {
				// Repeat counts as a press; imgui does its own repeat timing.
				b.io.KeyPress(index)
			}
		} else if e.Key != glfw.KeyUnknown {
			b.log.Debug("ignoring unmapped key", zap.Int("key", int(e.Key)))
		}
		b.applyModifiers()
		return b.io.WantCaptureKeyboard()

	case CharEvent:
		// Text widgets must not receive raw control bytes.
		if !unicode.IsControl(e.Char) {
			b.io.AddInputCharacters(string(e.Char))
		}
		return b.io.WantCaptureKeyboard()

	case FocusEvent:
		b.focused = e.Focused
		return false

	case CursorEnterEvent:
		b.mouseInside = e.Entered
		return false
	}

	return false
}

// InstallCallbacks registers the backend on the window's input callbacks.
// Callbacks that were already installed keep working: they are invoked
// after the backend whenever imgui does not capture the event.
func (b *Backend) InstallCallbacks() {
	w := b.glfwWindow

	var prevCursorPos glfw.CursorPosCallback
	prevCursorPos = w.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if !b.HandleEvent(CursorPosEvent{X: x, Y: y}) && prevCursorPos != nil {
			prevCursorPos(w, x, y)
		}
	})

	var prevMouseButton glfw.MouseButtonCallback
	prevMouseButton = w.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if !b.HandleEvent(MouseButtonEvent{Button: button, Action: action, Mods: mods}) && prevMouseButton != nil {
			prevMouseButton(w, button, action, mods)
		}
	})

	var prevScroll glfw.ScrollCallback
	prevScroll = w.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		if !b.HandleEvent(ScrollEvent{X: xoff, Y: yoff}) && prevScroll != nil {
			prevScroll(w, xoff, yoff)
		}
	})

	var prevKey glfw.KeyCallback
	prevKey = w.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if !b.HandleEvent(KeyEvent{Key: key, Scancode: scancode, Action: action, Mods: mods}) && prevKey != nil {
			prevKey(w, key, scancode, action, mods)
		}
	})

	var prevChar glfw.CharCallback
	prevChar = w.SetCharCallback(func(w *glfw.Window, char rune) {
		if !b.HandleEvent(CharEvent{Char: char}) && prevChar != nil {
			prevChar(w, char)
		}
	})

	var prevFocus glfw.FocusCallback
	prevFocus = w.SetFocusCallback(func(w *glfw.Window, focused bool) {
		b.HandleEvent(FocusEvent{Focused: focused})
		if prevFocus != nil {
			prevFocus(w, focused)
		}
	})

	var prevCursorEnter glfw.CursorEnterCallback
	prevCursorEnter = w.SetCursorEnterCallback(func(w *glfw.Window, entered bool) {
		b.HandleEvent(CursorEnterEvent{Entered: entered})
		if prevCursorEnter != nil {
			prevCursorEnter(w, entered)
		}
	})
}

package sdlbackend

import (
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	backends "github.com/glint-ui/imgui-backends"
)

type fakeIO struct {
	displaySize imgui.Vec2
	deltaTime   float32
	mousePos    imgui.Vec2
	buttonsDown map[int]bool
	wheelX      float32
	wheelY      float32
	keysDown    map[int]bool
	keyMap      map[int]int
	chars       string
	clipboard   imgui.Clipboard

	captureMouse    bool
	captureKeyboard bool

	shift, ctrl, alt, super bool
}

func newFakeIO() *fakeIO {
	return &fakeIO{
		buttonsDown: make(map[int]bool),
		keysDown:    make(map[int]bool),
		keyMap:      make(map[int]int),
	}
}

func (f *fakeIO) SetDisplaySize(value imgui.Vec2)  { f.displaySize = value }
func (f *fakeIO) SetDeltaTime(value float32)       { f.deltaTime = value }
func (f *fakeIO) SetMousePosition(value imgui.Vec2) { f.mousePos = value }
func (f *fakeIO) SetMouseButtonDown(index int, down bool) {
	f.buttonsDown[index] = down
}
func (f *fakeIO) AddMouseWheelDelta(horizontal, vertical float32) {
	f.wheelX += horizontal
	f.wheelY += vertical
}
func (f *fakeIO) KeyPress(key int)                { f.keysDown[key] = true }
func (f *fakeIO) KeyRelease(key int)              { f.keysDown[key] = false }
func (f *fakeIO) KeyMap(imguiKey, nativeKey int)  { f.keyMap[imguiKey] = nativeKey }
func (f *fakeIO) KeyCtrl(left, right int)         { f.ctrl = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) KeyShift(left, right int)        { f.shift = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) KeyAlt(left, right int)          { f.alt = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) KeySuper(left, right int)        { f.super = f.keysDown[left] || f.keysDown[right] }
func (f *fakeIO) AddInputCharacters(chars string) { f.chars += chars }
func (f *fakeIO) SetClipboard(board imgui.Clipboard) { f.clipboard = board }
func (f *fakeIO) WantCaptureMouse() bool          { return f.captureMouse }
func (f *fakeIO) WantCaptureKeyboard() bool       { return f.captureKeyboard }

var _ backends.IO = (*fakeIO)(nil)

type fakeWindow struct {
	width, height     int32
	fbWidth, fbHeight int32
	swaps             int
}

func (f *fakeWindow) GetSize() (int32, int32)           { return f.width, f.height }
func (f *fakeWindow) GLGetDrawableSize() (int32, int32) { return f.fbWidth, f.fbHeight }
func (f *fakeWindow) GLSwap()                           { f.swaps++ }

func newTestBackend(io backends.IO, window windowDevice) *Backend {
	return &Backend{
		io:            io,
		window:        window,
		log:           zap.NewNop(),
		fbScale:       [2]float32{1, 1},
		focused:       true,
		mouseInside:   true,
		currentCursor: cursorUnset,
	}
}

func TestProcessEventScrollAccumulates(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{})

	b.ProcessEvent(&sdl.MouseWheelEvent{X: 1, Y: 2})
	b.ProcessEvent(&sdl.MouseWheelEvent{X: 0, Y: 3})

	if io.wheelX != 1 || io.wheelY != 5 {
		t.Errorf("accumulated wheel = (%v, %v), want (1, 5)", io.wheelX, io.wheelY)
	}
}

func TestProcessEventKeyboard(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{})

	b.ProcessEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A},
	})
	if !io.keysDown[int(sdl.SCANCODE_A)] {
		t.Error("scancode A should be down after key-down")
	}

	b.ProcessEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_A},
	})
	if io.keysDown[int(sdl.SCANCODE_A)] {
		t.Error("scancode A should be up after key-up")
	}

	// Out-of-range scancodes are ignored without failing.
	b.ProcessEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.Scancode(maxNativeKeys + 7)},
	})
}

func TestProcessEventModifiers(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{})

	b.ProcessEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYDOWN,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LSHIFT},
	})
	if !io.shift {
		t.Error("shift flag should be set while left shift is down")
	}

	b.ProcessEvent(&sdl.KeyboardEvent{
		Type:   sdl.KEYUP,
		Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_LSHIFT},
	})
	if io.shift {
		t.Error("shift flag should clear after release")
	}
}

func TestProcessEventButtonLatch(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{})

	b.ProcessEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: uint8(sdl.BUTTON_LEFT)})
	if !b.buttonsDown[0] {
		t.Error("press must latch until the next frame")
	}
	if !io.buttonsDown[0] {
		t.Error("press must reach imgui immediately")
	}

	b.ProcessEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: uint8(sdl.BUTTON_LEFT)})
	if io.buttonsDown[0] {
		t.Error("release must clear the imgui button state")
	}
	if !b.buttonsDown[0] {
		t.Error("the latch survives the release so the click is visible to the next frame")
	}
}

func TestProcessEventUnmappedButton(t *testing.T) {
	io := newFakeIO()
	io.captureMouse = true
	b := newTestBackend(io, &fakeWindow{})

	if b.ProcessEvent(&sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: 9}) {
		t.Error("unmapped button must not report capture")
	}
	if len(io.buttonsDown) != 0 {
		t.Errorf("unmapped button wrote state: %v", io.buttonsDown)
	}
}

func TestProcessEventMotionClamped(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{})

	b.ProcessEvent(&sdl.MouseMotionEvent{X: -3, Y: 17})
	if io.mousePos.X != 0 || io.mousePos.Y != 17 {
		t.Errorf("mouse position = %v, want {0 17}", io.mousePos)
	}
}

func TestProcessEventQuit(t *testing.T) {
	b := newTestBackend(newFakeIO(), &fakeWindow{})

	if b.ShouldStop() {
		t.Fatal("fresh backend should not stop")
	}
	b.ProcessEvent(&sdl.QuitEvent{})
	if !b.ShouldStop() {
		t.Error("quit event should set the stop flag")
	}
}

func TestNewFrameUnfocusedHidesMouse(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{width: 640, height: 480, fbWidth: 640, fbHeight: 480})

	b.ProcessEvent(&sdl.WindowEvent{Event: sdl.WINDOWEVENT_FOCUS_LOST})
	b.NewFrame()

	if io.mousePos.X != noMousePos || io.mousePos.Y != noMousePos {
		t.Errorf("unfocused mouse position = %v, want the no-mouse sentinel", io.mousePos)
	}
	if io.displaySize.X != 640 || io.displaySize.Y != 480 {
		t.Errorf("display size = %v, want {640 480}", io.displaySize)
	}
}

func TestKeyIndexTotal(t *testing.T) {
	for code := -4; code < 2*maxNativeKeys; code++ {
		index, ok := keyIndex(sdl.Scancode(code))
		if ok && (index < 0 || index >= maxNativeKeys) {
			t.Fatalf("keyIndex(%d) = %d, outside the key-state array", code, index)
		}
	}
}

func TestMouseButtonIndex(t *testing.T) {
	tests := []struct {
		button uint32
		want   int
	}{
		{sdl.BUTTON_LEFT, 0},
		{sdl.BUTTON_RIGHT, 1},
		{sdl.BUTTON_MIDDLE, 2},
		{sdl.BUTTON_X1, 3},
		{sdl.BUTTON_X2, 4},
		{99, -1},
	}
	for _, tt := range tests {
		if got := mouseButtonIndex(uint8(tt.button)); got != tt.want {
			t.Errorf("mouseButtonIndex(%d) = %d, want %d", tt.button, got, tt.want)
		}
	}
}

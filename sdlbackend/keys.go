package sdlbackend

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

// maxNativeKeys matches SDL_NUM_SCANCODES and the size of imgui's native
// key-state array.
const maxNativeKeys = 512

// imguiKeyMap binds imgui's named keys to the SDL scancodes that drive
// them.
var imguiKeyMap = map[int]sdl.Scancode{
	imgui.KeyTab:         sdl.SCANCODE_TAB,
	imgui.KeyLeftArrow:   sdl.SCANCODE_LEFT,
	imgui.KeyRightArrow:  sdl.SCANCODE_RIGHT,
	imgui.KeyUpArrow:     sdl.SCANCODE_UP,
	imgui.KeyDownArrow:   sdl.SCANCODE_DOWN,
	imgui.KeyPageUp:      sdl.SCANCODE_PAGEUP,
	imgui.KeyPageDown:    sdl.SCANCODE_PAGEDOWN,
	imgui.KeyHome:        sdl.SCANCODE_HOME,
	imgui.KeyEnd:         sdl.SCANCODE_END,
	imgui.KeyInsert:      sdl.SCANCODE_INSERT,
	imgui.KeyDelete:      sdl.SCANCODE_DELETE,
	imgui.KeyBackspace:   sdl.SCANCODE_BACKSPACE,
	imgui.KeySpace:       sdl.SCANCODE_SPACE,
	imgui.KeyEnter:       sdl.SCANCODE_RETURN,
	imgui.KeyEscape:      sdl.SCANCODE_ESCAPE,
	imgui.KeyKeyPadEnter: sdl.SCANCODE_KP_ENTER,
	imgui.KeyA:           sdl.SCANCODE_A,
	imgui.KeyC:           sdl.SCANCODE_C,
	imgui.KeyV:           sdl.SCANCODE_V,
	imgui.KeyX:           sdl.SCANCODE_X,
	imgui.KeyY:           sdl.SCANCODE_Y,
	imgui.KeyZ:           sdl.SCANCODE_Z,
}

// keyIndex maps an SDL scancode to its slot in imgui's key-state array.
// Out-of-range scancodes yield ok=false; the function is total.
func keyIndex(scancode sdl.Scancode) (index int, ok bool) {
	if int(scancode) < 0 || int(scancode) >= maxNativeKeys {
		return 0, false
	}
	return int(scancode), true
}

// mouseButtonIndex maps an SDL button code to imgui's button index.
// Buttons imgui does not model yield -1.
func mouseButtonIndex(button uint8) int {
	switch uint32(button) {
	case sdl.BUTTON_LEFT:
		return 0
	case sdl.BUTTON_RIGHT:
		return 1
	case sdl.BUTTON_MIDDLE:
		return 2
	case sdl.BUTTON_X1:
		return 3
	case sdl.BUTTON_X2:
		return 4
	default:
		return -1
	}
}

func (b *Backend) setKeyMapping() {
	for imguiKey, scancode := range imguiKeyMap {
		b.io.KeyMap(imguiKey, int(scancode))
	}
}

// applyModifiers recomputes the combined modifier flags from the tracked
// left/right scancode states after every key change.
func (b *Backend) applyModifiers() {
	b.io.KeyShift(int(sdl.SCANCODE_LSHIFT), int(sdl.SCANCODE_RSHIFT))
	b.io.KeyCtrl(int(sdl.SCANCODE_LCTRL), int(sdl.SCANCODE_RCTRL))
	b.io.KeyAlt(int(sdl.SCANCODE_LALT), int(sdl.SCANCODE_RALT))
	b.io.KeySuper(int(sdl.SCANCODE_LGUI), int(sdl.SCANCODE_RGUI))
}

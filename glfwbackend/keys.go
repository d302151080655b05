package glfwbackend

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

// maxNativeKeys is the size of imgui's native key-state array. GLFW key
// codes above this cannot be tracked and are treated as unmapped.
const maxNativeKeys = 512

// imguiKeyMap binds imgui's named keys to the GLFW keys that drive them.
// imgui indexes its key-state array by native key code, so this is the
// only per-key table the backend needs; everything else passes through
// keyIndex unchanged.
var imguiKeyMap = map[int]glfw.Key{
	imgui.KeyTab:         glfw.KeyTab,
	imgui.KeyLeftArrow:   glfw.KeyLeft,
	imgui.KeyRightArrow:  glfw.KeyRight,
	imgui.KeyUpArrow:     glfw.KeyUp,
	imgui.KeyDownArrow:   glfw.KeyDown,
	imgui.KeyPageUp:      glfw.KeyPageUp,
	imgui.KeyPageDown:    glfw.KeyPageDown,
	imgui.KeyHome:        glfw.KeyHome,
	imgui.KeyEnd:         glfw.KeyEnd,
	imgui.KeyInsert:      glfw.KeyInsert,
	imgui.KeyDelete:      glfw.KeyDelete,
	imgui.KeyBackspace:   glfw.KeyBackspace,
	imgui.KeySpace:       glfw.KeySpace,
	imgui.KeyEnter:       glfw.KeyEnter,
	imgui.KeyEscape:      glfw.KeyEscape,
	imgui.KeyKeyPadEnter: glfw.KeyKPEnter,
	imgui.KeyA:           glfw.KeyA,
	imgui.KeyC:           glfw.KeyC,
	imgui.KeyV:           glfw.KeyV,
	imgui.KeyX:           glfw.KeyX,
	imgui.KeyY:           glfw.KeyY,
	imgui.KeyZ:           glfw.KeyZ,
}

// keyIndex maps a GLFW key to its slot in imgui's key-state array. Keys
// GLFW reports as unknown, and codes outside the array, yield ok=false.
// The function is total: no input makes it fail.
func keyIndex(key glfw.Key) (index int, ok bool) {
	if key == glfw.KeyUnknown || int(key) < 0 || int(key) >= maxNativeKeys {
		return 0, false
	}
	return int(key), true
}

// mouseButtonIndex maps a GLFW mouse button to imgui's button index.
// Buttons imgui does not model yield -1.
func mouseButtonIndex(button glfw.MouseButton) int {
	switch button {
	case glfw.MouseButtonLeft:
		return 0
	case glfw.MouseButtonRight:
		return 1
	case glfw.MouseButtonMiddle:
		return 2
	case glfw.MouseButton4:
		return 3
	case glfw.MouseButton5:
		return 4
	default:
		return -1
	}
}

// setKeyMapping registers imguiKeyMap with imgui. Called once from New.
func (b *Backend) setKeyMapping() {
	for imguiKey, nativeKey := range imguiKeyMap {
		b.io.KeyMap(imguiKey, int(nativeKey))
	}
}

// applyModifiers recomputes the combined modifier flags from the tracked
// left/right key states. Modifier events alone are not reliable across
// platforms, so the flags are derived after every key change.
func (b *Backend) applyModifiers() {
	b.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
	b.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
	b.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
	b.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
}

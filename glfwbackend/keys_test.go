package glfwbackend

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyIndexTotal(t *testing.T) {
	// Sweep a range well past GLFW's last key; no input may panic and
	// every result must be stable across calls.
	for code := -10; code < 2*maxNativeKeys; code++ {
		key := glfw.Key(code)
		index1, ok1 := keyIndex(key)
		index2, ok2 := keyIndex(key)
		if index1 != index2 || ok1 != ok2 {
			t.Fatalf("keyIndex(%d) is not deterministic", code)
		}
		if ok1 && (index1 < 0 || index1 >= maxNativeKeys) {
			t.Fatalf("keyIndex(%d) = %d, outside the key-state array", code, index1)
		}
	}
}

func TestKeyIndexKnownKeys(t *testing.T) {
	for _, key := range []glfw.Key{
		glfw.KeyTab, glfw.KeyLeft, glfw.KeyEnter, glfw.KeyEscape,
		glfw.KeyA, glfw.KeyZ, glfw.KeyF12, glfw.KeyKPEnter,
	} {
		index, ok := keyIndex(key)
		if !ok {
			t.Errorf("keyIndex(%d) reported unmapped for a standard key", key)
		}
		if index != int(key) {
			t.Errorf("keyIndex(%d) = %d, want the native code", key, index)
		}
	}
}

func TestKeyIndexUnmapped(t *testing.T) {
	if _, ok := keyIndex(glfw.KeyUnknown); ok {
		t.Error("glfw.KeyUnknown must report unmapped")
	}
	if _, ok := keyIndex(glfw.Key(maxNativeKeys)); ok {
		t.Error("keys outside the state array must report unmapped")
	}
}

func TestMouseButtonIndex(t *testing.T) {
	tests := []struct {
		button glfw.MouseButton
		want   int
	}{
		{glfw.MouseButtonLeft, 0},
		{glfw.MouseButtonRight, 1},
		{glfw.MouseButtonMiddle, 2},
		{glfw.MouseButton4, 3},
		{glfw.MouseButton5, 4},
		{glfw.MouseButton6, -1},
		{glfw.MouseButton8, -1},
	}
	for _, tt := range tests {
		if got := mouseButtonIndex(tt.button); got != tt.want {
			t.Errorf("mouseButtonIndex(%d) = %d, want %d", tt.button, got, tt.want)
		}
	}
}

func TestKeyMappingRegistered(t *testing.T) {
	io := newFakeIO()
	b := newTestBackend(io, &fakeWindow{})
	b.setKeyMapping()

	if len(io.keyMap) != len(imguiKeyMap) {
		t.Fatalf("registered %d key mappings, want %d", len(io.keyMap), len(imguiKeyMap))
	}
	for imguiKey, nativeKey := range imguiKeyMap {
		if io.keyMap[imguiKey] != int(nativeKey) {
			t.Errorf("imgui key %d mapped to %d, want %d", imguiKey, io.keyMap[imguiKey], nativeKey)
		}
	}
}

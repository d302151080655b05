package glfwbackend

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

func TestApplyCursorChangeDetection(t *testing.T) {
	window := &fakeWindow{}
	b := newTestBackend(newFakeIO(), window)

	b.applyCursor(imgui.MouseCursorArrow)
	if window.setCursorCalls != 1 {
		t.Fatalf("first reconciliation issued %d cursor calls, want 1", window.setCursorCalls)
	}

	// Same shape again and again: no further system calls.
	for i := 0; i < 5; i++ {
		b.applyCursor(imgui.MouseCursorArrow)
	}
	if window.setCursorCalls != 1 {
		t.Errorf("unchanged shape issued %d cursor calls, want 1", window.setCursorCalls)
	}

	b.applyCursor(imgui.MouseCursorTextInput)
	if window.setCursorCalls != 2 {
		t.Errorf("changed shape issued %d cursor calls, want 2", window.setCursorCalls)
	}
}

func TestApplyCursorHidden(t *testing.T) {
	window := &fakeWindow{}
	b := newTestBackend(newFakeIO(), window)

	b.applyCursor(imgui.MouseCursorNone)
	if window.setCursorCalls != 0 {
		t.Error("hiding the cursor must not set a cursor object")
	}
	if window.lastInputMode != glfw.CursorHidden {
		t.Errorf("input mode = %d, want glfw.CursorHidden", window.lastInputMode)
	}

	b.applyCursor(imgui.MouseCursorArrow)
	if window.lastInputMode != glfw.CursorNormal {
		t.Errorf("input mode = %d, want glfw.CursorNormal after unhiding", window.lastInputMode)
	}
	if window.setCursorCalls != 1 {
		t.Errorf("unhiding issued %d cursor calls, want 1", window.setCursorCalls)
	}
}

func TestApplyCursorUnavailableShapeFallsBack(t *testing.T) {
	window := &fakeWindow{}
	b := newTestBackend(newFakeIO(), window)

	// GLFW 3.3 has no resize-all cursor; the cache entry stays nil and the
	// arrow stands in. The system call still happens exactly once.
	b.applyCursor(imgui.MouseCursorResizeAll)
	if window.setCursorCalls != 1 {
		t.Errorf("fallback shape issued %d cursor calls, want 1", window.setCursorCalls)
	}

	b.applyCursor(imgui.MouseCursorResizeAll)
	if window.setCursorCalls != 1 {
		t.Errorf("repeated fallback shape issued %d cursor calls, want 1", window.setCursorCalls)
	}
}

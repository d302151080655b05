// Package backends connects windowing libraries to Dear ImGui via the
// imgui-go binding.
//
// The package itself only defines the contracts shared by the concrete
// backends; the actual bridges live in the subpackages:
//
//   - glfwbackend translates GLFW window events into imgui input state.
//   - sdlbackend does the same for SDL2.
//   - opengl renders finished imgui draw data with OpenGL 4.1.
//
// A backend owns no UI logic. It pushes window state (size, HiDPI scale,
// focus, cursor position) into imgui once per frame, forwards input events
// as they arrive, applies the cursor shape imgui requests, and bridges the
// system clipboard. Widgets, layout and fonts are imgui's business; window
// and GL context creation are the host's.
//
// # Typical loop
//
//	context := imgui.CreateContext(nil)
//	defer context.Destroy()
//
//	backend, err := glfwbackend.New(imgui.CurrentIO(), window,
//	    glfwbackend.WithRenderer(renderer))
//	if err != nil {
//	    return err
//	}
//	defer backend.Dispose()
//	backend.InstallCallbacks()
//
//	for !backend.ShouldStop() {
//	    backend.ProcessEvents()
//	    backend.NewFrame()
//	    imgui.NewFrame()
//
//	    // build UI
//
//	    imgui.Render()
//	    backend.Render(imgui.RenderedDrawData())
//	    backend.PostRender()
//	}
package backends

import "github.com/inkyblackness/imgui-go/v4"

// Platform is the window-side surface a backend exposes to the host loop.
// Both glfwbackend.Backend and sdlbackend.Backend implement it, so a host
// can be written against Platform and swap windowing libraries.
type Platform interface {
	// ShouldStop reports whether the window asked to close.
	ShouldStop() bool

	// ProcessEvents drains pending window events and dispatches them into
	// imgui. Call it once per loop iteration, at the frame boundary.
	ProcessEvents()

	// DisplaySize returns the logical window size in screen coordinates.
	DisplaySize() [2]float32

	// FramebufferSize returns the framebuffer size in pixels. On HiDPI
	// displays it differs from DisplaySize.
	FramebufferSize() [2]float32

	// NewFrame pushes window state into imgui input state. Call it once
	// per frame, before imgui.NewFrame and before building any UI.
	NewFrame()

	// ClipboardText returns the current clipboard text. An empty or
	// unavailable clipboard yields an error, which imgui treats as empty.
	ClipboardText() (string, error)

	// SetClipboardText stores text in the system clipboard.
	SetClipboardText(text string)

	// PostRender finishes the frame, typically by swapping buffers.
	PostRender()

	// Dispose releases resources owned by the backend.
	Dispose()
}

// Renderer turns finished imgui draw data into pixels. Backends never
// interpret draw data themselves; they forward it to whatever Renderer the
// host attached.
type Renderer interface {
	// PreRender clears the framebuffer before a new frame is drawn.
	PreRender(clearColor [3]float32)

	// Render draws the given draw data. The display and framebuffer sizes
	// carry the HiDPI scale the clip rectangles must be adjusted by.
	Render(displaySize [2]float32, framebufferSize [2]float32, drawData imgui.DrawData)

	// Dispose releases GPU resources owned by the renderer.
	Dispose()
}

// IO is the slice of imgui's input state the backends write into. It is
// satisfied by imgui.IO; tests substitute an in-memory fake.
type IO interface {
	SetDisplaySize(value imgui.Vec2)
	SetDeltaTime(value float32)
	SetMousePosition(value imgui.Vec2)
	SetMouseButtonDown(index int, down bool)
	AddMouseWheelDelta(horizontal, vertical float32)
	KeyPress(key int)
	KeyRelease(key int)
	KeyMap(imguiKey int, nativeKey int)
	KeyCtrl(leftCtrl int, rightCtrl int)
	KeyShift(leftShift int, rightShift int)
	KeyAlt(leftAlt int, rightAlt int)
	KeySuper(leftSuper int, rightSuper int)
	AddInputCharacters(chars string)
	SetClipboard(board imgui.Clipboard)
	WantCaptureMouse() bool
	WantCaptureKeyboard() bool
}

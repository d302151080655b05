// Package glfwbackend bridges GLFW window input to Dear ImGui.
//
// The backend owns no window and no UI state of its own: the host creates
// the GLFW window and the imgui context, and the backend shuttles state
// between them. Per frame that means pushing display size, HiDPI scale,
// delta time and mouse position into imgui (NewFrame), translating each
// window event into imgui input state (HandleEvent), and applying the
// cursor shape imgui requests (UpdateCursor).
package glfwbackend

import (
	"errors"
	"math"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"

	backends "github.com/glint-ui/imgui-backends"
)

// noMousePos is the position reported to imgui while the window is
// unfocused, so widgets do not show hover state for an inactive window.
const noMousePos = -math.MaxFloat32

// fallbackDeltaTime stands in when no previous frame time exists or the
// clock did not advance. imgui asserts on a non-positive delta.
const fallbackDeltaTime = float32(1.0 / 60.0)

// windowDevice is the slice of *glfw.Window the backend uses. Tests
// substitute a fake; everything else passes the real window.
type windowDevice interface {
	GetSize() (width, height int)
	GetFramebufferSize() (width, height int)
	GetCursorPos() (x, y float64)
	GetAttrib(attrib glfw.Hint) int
	SetCursor(c *glfw.Cursor)
	SetInputMode(mode glfw.InputMode, value int)
	GetClipboardString() string
	SetClipboardString(str string)
}

// Backend connects one GLFW window to one imgui context.
//
// All methods must be called from the thread that owns the GLFW context;
// the backend is single-threaded by design, driven by the host's loop.
type Backend struct {
	io     backends.IO
	window windowDevice

	// glfwWindow is the concrete window, needed where the windowDevice
	// slice is not enough (callbacks, buffer swap, close flag). Nil in
	// tests that drive the backend through fakes.
	glfwWindow *glfw.Window

	log      *zap.Logger
	renderer backends.Renderer

	clearColor [3]float32

	lastFrameTime time.Time
	fbScale       [2]float32

	focused           bool
	mouseInside       bool
	maskCursorOutside bool

	currentCursor int
	cursors       [imgui.MouseCursorCount]*glfw.Cursor
}

var _ backends.Platform = (*Backend)(nil)

// Option configures a Backend during New.
type Option func(*Backend)

// WithLogger routes backend diagnostics (mapping misses, cursor fallbacks)
// to the given logger instead of discarding them.
func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) { b.log = log }
}

// WithRenderer attaches a renderer so Render forwards draw data to it.
// Without a renderer the host calls UpdateCursor and renders itself.
func WithRenderer(r backends.Renderer) Option {
	return func(b *Backend) { b.renderer = r }
}

// WithClearColor sets the color the attached renderer clears with.
func WithClearColor(r, g, b float32) Option {
	return func(bk *Backend) { bk.clearColor = [3]float32{r, g, b} }
}

// WithMaskCursorOutside drops cursor-position events that arrive while the
// pointer is outside the window. By default such events are still honored,
// which keeps drags alive when the pointer briefly leaves the window.
func WithMaskCursorOutside() Option {
	return func(b *Backend) { b.maskCursorOutside = true }
}

// New creates a backend bound to the given imgui IO and window. It
// registers the clipboard bridge and the key map with imgui and creates
// the standard cursor set. The window's GLFW context must already exist.
func New(io imgui.IO, window *glfw.Window, opts ...Option) (*Backend, error) {
	if window == nil {
		return nil, errors.New("glfwbackend: nil window")
	}

	b := &Backend{
		io:            io,
		window:        window,
		glfwWindow:    window,
		log:           zap.NewNop(),
		clearColor:    [3]float32{0.1, 0.1, 0.12},
		fbScale:       [2]float32{1, 1},
		mouseInside:   true,
		currentCursor: cursorUnset,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.setKeyMapping()
	io.SetClipboard(Clipboard{window: window})
	b.createCursors()
	b.focused = window.GetAttrib(glfw.Focused) == glfw.True

	return b, nil
}

// NewFrame pushes window state into imgui. Call once per frame, before
// imgui.NewFrame and before dispatching any of that frame's events.
func (b *Backend) NewFrame() {
	displaySize := b.DisplaySize()
	b.io.SetDisplaySize(imgui.Vec2{X: displaySize[0], Y: displaySize[1]})
	b.fbScale = scaleFor(displaySize, b.FramebufferSize())

	now := time.Now()
	delta := fallbackDeltaTime
	if !b.lastFrameTime.IsZero() {
		if d := float32(now.Sub(b.lastFrameTime).Seconds()); d > 0 {
			delta = d
		}
	}
	b.lastFrameTime = now
	b.io.SetDeltaTime(delta)

	if b.focused {
		x, y := b.window.GetCursorPos()
		b.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		b.io.SetMousePosition(imgui.Vec2{X: noMousePos, Y: noMousePos})
	}
}

// Render updates the window cursor and forwards finished draw data to the
// attached renderer, if any. The draw data is never inspected here.
func (b *Backend) Render(drawData imgui.DrawData) {
	b.UpdateCursor()
	if b.renderer == nil {
		return
	}
	b.renderer.PreRender(b.clearColor)
	b.renderer.Render(b.DisplaySize(), b.FramebufferSize(), drawData)
}

// DisplaySize returns the logical window size in screen coordinates.
func (b *Backend) DisplaySize() [2]float32 {
	w, h := b.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferSize returns the framebuffer size in pixels.
func (b *Backend) FramebufferSize() [2]float32 {
	w, h := b.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferScale returns the per-axis ratio of framebuffer pixels to
// logical size, as computed by the last NewFrame. A window reporting zero
// logical size yields (1,1).
func (b *Backend) FramebufferScale() [2]float32 {
	return b.fbScale
}

// ShouldStop reports whether the window asked to close.
func (b *Backend) ShouldStop() bool {
	return b.glfwWindow.ShouldClose()
}

// ProcessEvents polls GLFW, which fires the installed callbacks.
func (b *Backend) ProcessEvents() {
	glfw.PollEvents()
}

// PostRender swaps the window buffers.
func (b *Backend) PostRender() {
	b.glfwWindow.SwapBuffers()
}

// Dispose destroys the cursor set and the attached renderer.
func (b *Backend) Dispose() {
	b.destroyCursors()
	if b.renderer != nil {
		b.renderer.Dispose()
	}
}

// scaleFor computes the framebuffer scale for a logical size. A zero axis
// falls back to 1 to avoid dividing by a degenerate window size.
func scaleFor(displaySize, framebufferSize [2]float32) [2]float32 {
	scale := [2]float32{1, 1}
	if displaySize[0] > 0 {
		scale[0] = framebufferSize[0] / displaySize[0]
	}
	if displaySize[1] > 0 {
		scale[1] = framebufferSize[1] / displaySize[1]
	}
	return scale
}

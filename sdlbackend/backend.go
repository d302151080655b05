// Package sdlbackend bridges SDL2 window input to Dear ImGui.
//
// It mirrors glfwbackend for hosts that drive their loop with SDL2: the
// host creates the window and GL context, polls SDL events, and hands
// them to ProcessEvent; the backend keeps imgui's input state in sync.
package sdlbackend

import (
	"errors"
	"math"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	backends "github.com/glint-ui/imgui-backends"
)

const noMousePos = -math.MaxFloat32

const fallbackDeltaTime = float32(1.0 / 60.0)

// mouseButtonCount is how many buttons imgui tracks.
const mouseButtonCount = 5

// windowDevice is the slice of *sdl.Window the backend uses.
type windowDevice interface {
	GetSize() (int32, int32)
	GLGetDrawableSize() (int32, int32)
	GLSwap()
}

// Backend connects one SDL2 window to one imgui context.
type Backend struct {
	io     backends.IO
	window windowDevice

	log      *zap.Logger
	renderer backends.Renderer

	clearColor [3]float32

	lastFrameTime time.Time
	fbScale       [2]float32

	focused           bool
	mouseInside       bool
	maskCursorOutside bool
	shouldStop        bool

	// buttonsDown latches presses seen since the last frame so a click
	// that is pressed and released between two frames is not lost.
	buttonsDown [mouseButtonCount]bool

	currentCursor int
	cursors       [imgui.MouseCursorCount]*sdl.Cursor
}

var _ backends.Platform = (*Backend)(nil)

// Option configures a Backend during New.
type Option func(*Backend)

// WithLogger routes backend diagnostics to the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Backend) { b.log = log }
}

// WithRenderer attaches a renderer so Render forwards draw data to it.
func WithRenderer(r backends.Renderer) Option {
	return func(b *Backend) { b.renderer = r }
}

// WithClearColor sets the color the attached renderer clears with.
func WithClearColor(r, g, b float32) Option {
	return func(bk *Backend) { bk.clearColor = [3]float32{r, g, b} }
}

// WithMaskCursorOutside drops mouse-motion events that arrive while the
// pointer is outside the window.
func WithMaskCursorOutside() Option {
	return func(b *Backend) { b.maskCursorOutside = true }
}

// New creates a backend bound to the given imgui IO and window. SDL video
// must already be initialized.
func New(io imgui.IO, window *sdl.Window, opts ...Option) (*Backend, error) {
	if window == nil {
		return nil, errors.New("sdlbackend: nil window")
	}

	b := &Backend{
		io:            io,
		window:        window,
		log:           zap.NewNop(),
		clearColor:    [3]float32{0.1, 0.1, 0.12},
		fbScale:       [2]float32{1, 1},
		focused:       true,
		mouseInside:   true,
		currentCursor: cursorUnset,
	}
	for _, opt := range opts {
		opt(b)
	}

	b.setKeyMapping()
	io.SetClipboard(Clipboard{})
	b.createCursors()

	return b, nil
}

// NewFrame pushes window state into imgui. Call once per frame, before
// imgui.NewFrame.
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
		x, y, state := sdl.GetMouseState()
		b.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
		for i, mask := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE, sdl.BUTTON_X1, sdl.BUTTON_X2} {
			b.io.SetMouseButtonDown(i, b.buttonsDown[i] || (state&sdl.Button(mask)) != 0)
			b.buttonsDown[i] = false
		}
	} else {
		b.io.SetMousePosition(imgui.Vec2{X: noMousePos, Y: noMousePos})
	}
}

// Render updates the cursor and forwards finished draw data to the
// attached renderer, if any.
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

// FramebufferSize returns the drawable size in pixels.
func (b *Backend) FramebufferSize() [2]float32 {
	w, h := b.window.GLGetDrawableSize()
	return [2]float32{float32(w), float32(h)}
}

// FramebufferScale returns the per-axis pixel ratio computed by the last
// NewFrame, (1,1) for a zero-size window.
func (b *Backend) FramebufferScale() [2]float32 {
	return b.fbScale
}

// ShouldStop reports whether an sdl.QuitEvent was seen.
func (b *Backend) ShouldStop() bool {
	return b.shouldStop
}

// ProcessEvents drains the SDL event queue through ProcessEvent.
func (b *Backend) ProcessEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		b.ProcessEvent(event)
	}
}

// PostRender swaps the window buffers.
func (b *Backend) PostRender() {
	b.window.GLSwap()
}

// Dispose frees the cursor set and the attached renderer.
func (b *Backend) Dispose() {
	b.destroyCursors()
	if b.renderer != nil {
		b.renderer.Dispose()
	}
}

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

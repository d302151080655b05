// Demo renders the imgui demo window through the SDL2 backend and the
// OpenGL renderer.
package main

import (
	"os"
	"runtime"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/glint-ui/imgui-backends/opengl"
	"github.com/glint-ui/imgui-backends/sdlbackend"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	log := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(os.Stdout),
		zapcore.InfoLevel,
	))
	defer func() { _ = log.Sync() }()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatal("failed to initialize sdl", zap.Error(err))
	}
	defer sdl.Quit()

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)

	window, err := sdl.CreateWindow("imgui-backends demo (SDL)",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 1280, 720,
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE|sdl.WINDOW_ALLOW_HIGHDPI)
	if err != nil {
		log.Fatal("failed to create window", zap.Error(err))
	}
	defer func() { _ = window.Destroy() }()

	glContext, err := window.GLCreateContext()
	if err != nil {
		log.Fatal("failed to create GL context", zap.Error(err))
	}
	defer sdl.GLDeleteContext(glContext)
	_ = sdl.GLSetSwapInterval(1)

	context := imgui.CreateContext(nil)
	defer context.Destroy()
	io := imgui.CurrentIO()

	renderer, err := opengl.NewRenderer(io)
	if err != nil {
		log.Fatal("failed to create renderer", zap.Error(err))
	}

	backend, err := sdlbackend.New(io, window,
		sdlbackend.WithRenderer(renderer),
		sdlbackend.WithLogger(log),
		sdlbackend.WithClearColor(0.45, 0.55, 0.6),
	)
	if err != nil {
		log.Fatal("failed to create backend", zap.Error(err))
	}
	defer backend.Dispose()

	sdl.StartTextInput()

	showDemo := true
	for !backend.ShouldStop() {
		backend.ProcessEvents()
		backend.NewFrame()
		imgui.NewFrame()

		if showDemo {
			imgui.ShowDemoWindow(&showDemo)
		}

		imgui.Begin("Backend")
		imgui.Text("SDL2 + OpenGL 4.1")
		imgui.Checkbox("Show demo window", &showDemo)
		imgui.End()

		imgui.Render()
		backend.Render(imgui.RenderedDrawData())
		backend.PostRender()
	}
}

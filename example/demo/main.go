// Demo renders the imgui demo window through the GLFW backend and the
// OpenGL renderer.
package main

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"

	"github.com/glint-ui/imgui-backends/glfwbackend"
	"github.com/glint-ui/imgui-backends/opengl"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}
	log := newLogger(cfg.Logging)
	defer func() { _ = log.Sync() }()

	if err := glfw.Init(); err != nil {
		log.Fatal("failed to initialize glfw", zap.Error(err))
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		log.Fatal("failed to create window", zap.Error(err))
	}
	window.MakeContextCurrent()
	if cfg.Window.VSync {
		glfw.SwapInterval(1)
	}

	context := imgui.CreateContext(nil)
	defer context.Destroy()
	io := imgui.CurrentIO()

	renderer, err := opengl.NewRenderer(io)
	if err != nil {
		log.Fatal("failed to create renderer", zap.Error(err))
	}

	backend, err := glfwbackend.New(io, window,
		glfwbackend.WithRenderer(renderer),
		glfwbackend.WithLogger(log),
		glfwbackend.WithClearColor(0.45, 0.55, 0.6),
	)
	if err != nil {
		log.Fatal("failed to create backend", zap.Error(err))
	}
	defer backend.Dispose()
	backend.InstallCallbacks()

	log.Info("demo running",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	showDemo := true
	counter := 0

	for !backend.ShouldStop() {
		backend.ProcessEvents()
		backend.NewFrame()
		imgui.NewFrame()

		if showDemo {
			imgui.ShowDemoWindow(&showDemo)
		}

		imgui.Begin("Backend")
		imgui.Text("GLFW + OpenGL 4.1")
		if imgui.Button("Click me") {
			counter++
			log.Debug("button clicked", zap.Int("count", counter))
		}
		imgui.SameLine()
		imgui.Text(fmt.Sprintf("clicks: %d", counter))
		imgui.Checkbox("Show demo window", &showDemo)
		imgui.End()

		imgui.Render()
		backend.Render(imgui.RenderedDrawData())
		backend.PostRender()
	}
}

package glfwbackend

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
	"go.uber.org/zap"
)

// cursorUnset marks that no cursor shape has been applied yet, so the
// first reconciliation always goes through.
const cursorUnset = -2

// standardCursorShapes maps imgui cursor shapes to the GLFW standard
// cursors that exist in GLFW 3.3. The resize-all, diagonal-resize and
// not-allowed shapes have no GLFW 3.3 counterpart; requests for them fall
// back to the arrow cursor.
var standardCursorShapes = map[int]glfw.StandardCursor{
	imgui.MouseCursorArrow:     glfw.ArrowCursor,
	imgui.MouseCursorTextInput: glfw.IBeamCursor,
	imgui.MouseCursorResizeNS:  glfw.VResizeCursor,
	imgui.MouseCursorResizeEW:  glfw.HResizeCursor,
	imgui.MouseCursorHand:      glfw.HandCursor,
}

func (b *Backend) createCursors() {
	for id, shape := range standardCursorShapes {
		b.cursors[id] = glfw.CreateStandardCursor(shape)
	}
}

func (b *Backend) destroyCursors() {
	for i, cursor := range b.cursors {
		if cursor != nil {
			cursor.Destroy()
			b.cursors[i] = nil
		}
	}
}

// UpdateCursor applies the cursor shape imgui requests for this frame.
// Call it once per frame after building the UI; Render does it for you
// when a renderer is attached.
func (b *Backend) UpdateCursor() {
	b.applyCursor(imgui.MouseCursor())
}

// applyCursor reconciles the requested shape against the last applied
// one. Cursor changes are system calls and imgui requests a shape every
// frame, so an unchanged shape must not touch the window at all.
func (b *Backend) applyCursor(requested int) {
	if requested == b.currentCursor {
		return
	}
	b.currentCursor = requested

	if requested == imgui.MouseCursorNone {
		b.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		return
	}

	b.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)

	var cursor *glfw.Cursor
	if requested >= 0 && requested < len(b.cursors) {
		cursor = b.cursors[requested]
	}
	if cursor == nil {
		cursor = b.cursors[imgui.MouseCursorArrow]
		b.log.Debug("cursor shape unavailable, using arrow", zap.Int("cursor", requested))
	}
	b.window.SetCursor(cursor)
}

package sdlbackend

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"
)

const cursorUnset = -2

// systemCursorShapes maps imgui cursor shapes to SDL system cursors. SDL
// provides the full set, including the diagonal resize shapes GLFW 3.3
// lacks.
var systemCursorShapes = map[int]sdl.SystemCursor{
	imgui.MouseCursorArrow:      sdl.SYSTEM_CURSOR_ARROW,
	imgui.MouseCursorTextInput:  sdl.SYSTEM_CURSOR_IBEAM,
	imgui.MouseCursorResizeAll:  sdl.SYSTEM_CURSOR_SIZEALL,
	imgui.MouseCursorResizeNS:   sdl.SYSTEM_CURSOR_SIZENS,
	imgui.MouseCursorResizeEW:   sdl.SYSTEM_CURSOR_SIZEWE,
	imgui.MouseCursorResizeNESW: sdl.SYSTEM_CURSOR_SIZENESW,
	imgui.MouseCursorResizeNWSE: sdl.SYSTEM_CURSOR_SIZENWSE,
	imgui.MouseCursorHand:       sdl.SYSTEM_CURSOR_HAND,
}

func (b *Backend) createCursors() {
	for id, shape := range systemCursorShapes {
		b.cursors[id] = sdl.CreateSystemCursor(shape)
	}
}

func (b *Backend) destroyCursors() {
	for i, cursor := range b.cursors {
		if cursor != nil {
			sdl.FreeCursor(cursor)
			b.cursors[i] = nil
		}
	}
}

// UpdateCursor applies the cursor shape imgui requests for this frame,
// touching SDL only when the shape changed since the last application.
func (b *Backend) UpdateCursor() {
	requested := imgui.MouseCursor()
	if requested == b.currentCursor {
		return
	}
	b.currentCursor = requested

	if requested == imgui.MouseCursorNone {
		sdl.ShowCursor(sdl.DISABLE)
		return
	}

	sdl.ShowCursor(sdl.ENABLE)

	cursor := b.cursors[imgui.MouseCursorArrow]
	if requested >= 0 && requested < len(b.cursors) && b.cursors[requested] != nil {
		cursor = b.cursors[requested]
	}
	sdl.SetCursor(cursor)
}

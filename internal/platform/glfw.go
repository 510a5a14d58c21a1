package platform

import (
	"fmt"

	"git.lost.host/meutraa/caeli/internal/window"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFW owns a window with a current OpenGL 3.3 core context. It must be
// created and used from the main thread.
type GLFW struct {
	win    *glfw.Window
	events window.Queue
}

func NewGLFW(title string, width, height int) (*GLFW, error) {
	if err := glfw.Init(); nil != err {
		return nil, fmt.Errorf("unable to initialise glfw: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if nil != err {
		glfw.Terminate()
		return nil, fmt.Errorf("unable to create window: %w", err)
	}
	win.MakeContextCurrent()

	w := &GLFW{win: win}
	win.SetKeyCallback(w.onKey)
	win.SetCloseCallback(func(*glfw.Window) {
		w.events.Push(window.Event{Kind: window.Closed})
	})
	return w, nil
}

func (w *GLFW) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape {
		if action == glfw.Press {
			w.events.Push(window.Event{Kind: window.Closed})
		}
		return
	}
	switch action {
	case glfw.Press:
		w.events.Push(window.Event{Kind: window.KeyDown, Key: int32(key)})
	case glfw.Release:
		w.events.Push(window.Event{Kind: window.KeyUp, Key: int32(key)})
	}
}

func (w *GLFW) PollEvent() (window.Event, bool) {
	if w.events.Len() == 0 {
		glfw.PollEvents()
	}
	return w.events.Pop()
}

func (w *GLFW) Display() {
	w.win.SwapBuffers()
}

func (w *GLFW) Close() {
	w.win.Destroy()
	glfw.Terminate()
}

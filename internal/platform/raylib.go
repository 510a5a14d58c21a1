// Package platform adapts raylib and GLFW windows to window.Window.
package platform

import (
	"git.lost.host/meutraa/caeli/internal/window"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Raylib turns raylib's per frame key state into events for a fixed set of
// keys. Drawing happens between rl.BeginDrawing and Display.
type Raylib struct {
	keys    []int32
	events  window.Queue
	scanned bool
}

func NewRaylib(title string, width, height int32, keys []int32) *Raylib {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(width, height, title)
	// Escape is reported as Closed instead of closing behind our back.
	rl.SetExitKey(0)
	return &Raylib{keys: keys}
}

func (w *Raylib) scan() {
	if rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape) {
		w.events.Push(window.Event{Kind: window.Closed})
	}
	for _, key := range w.keys {
		if rl.IsKeyPressed(key) {
			w.events.Push(window.Event{Kind: window.KeyDown, Key: key})
		}
		if rl.IsKeyReleased(key) {
			w.events.Push(window.Event{Kind: window.KeyUp, Key: key})
		}
	}
}

func (w *Raylib) PollEvent() (window.Event, bool) {
	if !w.scanned {
		w.scan()
		w.scanned = true
	}
	return w.events.Pop()
}

// Display ends the frame; raylib polls input again while it does.
func (w *Raylib) Display() {
	rl.EndDrawing()
	w.scanned = false
}

func (w *Raylib) Close() {
	rl.CloseWindow()
}

var (
	_ window.Window = (*Raylib)(nil)
	_ window.Window = (*GLFW)(nil)
)

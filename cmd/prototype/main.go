// Command prototype draws the track as coloured sections with the immediate
// renderer, one section per key.
package main

import (
	"errors"
	"log"
	"os"
	"runtime"
	"time"

	"git.lost.host/meutraa/caeli/internal/config"
	"git.lost.host/meutraa/caeli/internal/graphics"
	"git.lost.host/meutraa/caeli/internal/graphics/opengl"
	"git.lost.host/meutraa/caeli/internal/loop"
	"git.lost.host/meutraa/caeli/internal/platform"
	"git.lost.host/meutraa/caeli/internal/theme"
	"git.lost.host/meutraa/caeli/internal/track"
	"git.lost.host/meutraa/caeli/internal/window"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// draw fills each section across clip space, bottom half only, and
// separates them with divider lines.
func draw(r *graphics.Renderer, t *track.Track, th theme.Theme) {
	n := t.Len()
	if n == 0 {
		return
	}
	width := float32(2) / float32(n)
	for i := 0; i < n; i++ {
		active, _ := t.IsActivated(i)
		x := -1 + float32(i)*width
		r.DrawRectangle(x, -1, width, 1, graphics.ColorFromRGBA(th.Section(active)))
	}
	divider := graphics.ColorFromRGBA(th.Divider())
	for i := 1; i < n; i++ {
		x := -1 + float32(i)*width
		r.DrawLine(graphics.Point{X: x, Y: -1}, graphics.Point{X: x, Y: 0}, divider)
	}
	r.DrawLine(graphics.Point{X: -1, Y: 0}, graphics.Point{X: 1, Y: 0}, divider)
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	win, err := platform.NewGLFW("Cæli prototype", int(*config.Width), int(*config.Height))
	if nil != err {
		return err
	}
	defer win.Close()

	if err := opengl.Init(); nil != err {
		return err
	}
	log.Println("OpenGL", opengl.Version())

	renderer, err := graphics.NewRenderer(&opengl.Device{})
	if nil != err {
		return err
	}
	defer renderer.Close()

	var th theme.Theme = &theme.DefaultTheme{}
	bg := graphics.ColorFromRGBA(th.Background())
	renderer.SetClearColor(bg.R, bg.G, bg.B)

	t := track.New(*config.Lanes)

	loop.Run(loop.Period(*config.FPS), func(time.Time, time.Duration) bool {
		for ev, ok := win.PollEvent(); ok; ev, ok = win.PollEvent() {
			switch ev.Kind {
			case window.Closed:
				return false
			case window.KeyDown, window.KeyUp:
				section, err := config.KeyColumn(ev.Key)
				if nil != err {
					continue
				}
				if ev.Kind == window.KeyDown {
					err = t.Activate(section)
				} else {
					err = t.Deactivate(section)
				}
				if errors.Is(err, track.ErrSectionOutOfRange) {
					log.Println(err)
				}
			}
		}

		renderer.Clear()
		draw(renderer, t, th)
		renderer.Render()
		win.Display()
		return true
	})
	return nil
}

package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"git.lost.host/meutraa/caeli/internal/audio"
	"git.lost.host/meutraa/caeli/internal/config"
	"git.lost.host/meutraa/caeli/internal/game"
	"git.lost.host/meutraa/caeli/internal/parser"
	"git.lost.host/meutraa/caeli/internal/platform"
	"git.lost.host/meutraa/caeli/internal/scene"
	"git.lost.host/meutraa/caeli/internal/score"
	"git.lost.host/meutraa/caeli/internal/theme"
	"git.lost.host/meutraa/caeli/internal/window"
	"github.com/faiface/beep"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// How long the last note stays on screen before the run ends.
const tail = 5 * time.Second

// Decoration is drawn on top of the scene until its tween finishes.
type Decoration struct {
	tween  *gween.Tween
	render func(value float32)
}

type Program struct {
	Parser *parser.DefaultParser
	Scorer *score.DefaultScorer
	Theme  *theme.DefaultTheme
	Audio  *audio.Player
	Window *platform.Raylib

	graph *scene.Graph
	track *game.Track
	// Audio as seen by the track, nil while the speaker is down.
	sound game.Audio
	view  scene.View

	audioFile, chartFile string
	charts               []*game.Chart
	chart                *game.Chart

	width, height int32
	musicStarted  bool
	decorations   []*Decoration
	recorder      score.Recorder
}

func (p *Program) findSong(dir string) error {
	if err := filepath.Walk(dir, func(fp string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		switch strings.ToLower(path.Ext(info.Name())) {
		case ".ogg", ".mp3", ".wav":
			p.audioFile = fp
		case ".sm":
			p.chartFile = fp
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	if p.chartFile == "" {
		return errors.New("unable to find a .sm file in given directory")
	}
	return nil
}

func (p *Program) loadChart() error {
	if *config.Directory == "" {
		p.chart = game.DemoChart()
		log.Println("No song directory given, playing the demo chart")
		return nil
	}

	if err := p.findSong(*config.Directory); nil != err {
		return err
	}
	var err error
	p.charts, err = p.Parser.Parse(p.chartFile)
	if nil != err {
		return err
	}
	if len(p.charts) == 0 {
		return fmt.Errorf("no playable charts in %v", p.chartFile)
	}
	for i, c := range p.charts {
		log.Printf("%2v) %3v  %5v  %v\n", i, c.Difficulty.Msd, len(c.Notes), c.Difficulty.Name)
	}
	if *config.Difficulty < 0 || *config.Difficulty >= len(p.charts) {
		return fmt.Errorf("difficulty %d not in 0..%d", *config.Difficulty, len(p.charts)-1)
	}
	p.chart = p.charts[*config.Difficulty]
	return nil
}

func (p *Program) initAudio() error {
	p.Audio = audio.NewPlayer(audio.DefaultSampleRate)
	p.Audio.Rate = *config.Rate
	p.Audio.Volume = *config.Volume

	if err := p.Audio.Init(); nil != err {
		if p.audioFile != "" {
			return err
		}
		log.Println("Playing without sound:", err)
		return nil
	}
	p.sound = p.Audio

	if *config.TapSound != "" {
		if err := p.Audio.LoadSound(game.TapSound, *config.TapSound); nil != err {
			return err
		}
	} else {
		sr := p.Audio.SampleRate()
		p.Audio.AddSound(game.TapSound, audio.Click(sr, 880, 60*time.Millisecond), beep.Format{
			SampleRate:  sr,
			NumChannels: 2,
			Precision:   2,
		})
	}

	if p.audioFile != "" {
		return p.Audio.LoadMusic(p.audioFile)
	}
	return nil
}

func (p *Program) Init() error {
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{}
	p.Theme = &theme.DefaultTheme{}

	if err := p.loadChart(); nil != err {
		return err
	}

	matcher, err := game.NewMatcher(*config.Match, *config.Tolerance)
	if nil != err {
		return err
	}
	p.track = p.chart.Track(p.chart.Difficulty.Name, *config.Lanes, p.Theme)
	p.track.Matcher = matcher
	// Chart time runs from -delay so the first notes scroll in from the top.
	p.track.Notes.CurrentTime = -float32(config.Delay.Seconds())

	keys := config.KeyCodes()
	if len(keys) < len(p.track.Lanes) {
		log.Printf("Only %d of %d lanes have a key\n", len(keys), len(p.track.Lanes))
	} else {
		keys = keys[:len(p.track.Lanes)]
	}

	if err := p.initAudio(); nil != err {
		return err
	}

	if err := p.Scorer.Init(*config.Database); nil != err {
		return err
	}
	if histories, err := p.Scorer.Load(p.chart); nil != err {
		log.Println("unable to load score history:", err)
	} else if len(histories) > 0 {
		last := histories[len(histories)-1]
		log.Printf("Played %d times, last %v at %.4gx (%.1f%%)\n",
			len(histories), last.PlayedAt.Format(time.RFC822), last.Rate,
			100*score.Summarise(last.Inputs).Accuracy())
	}

	p.width, p.height = *config.Width, *config.Height
	p.Window = platform.NewRaylib("Cæli", p.width, p.height, keys)

	p.graph = scene.NewGraph()
	if _, err := p.track.CreateNode(p.graph, scene.Root); nil != err {
		return err
	}
	p.Resize()
	return nil
}

func (p *Program) Resize() {
	p.width = int32(rl.GetScreenWidth())
	p.height = int32(rl.GetScreenHeight())
	span := float32(len(p.track.Lanes)) * game.LaneWidth
	p.view = scene.NewView(*config.Scale, span, p.width, p.height, *config.BarOffsetFromBottom)
}

// inputTime is the chart time an input lands on, corrected by the global
// offset.
func (p *Program) inputTime() time.Duration {
	return time.Duration(float64(p.track.Notes.CurrentTime)*float64(time.Second)) - *config.Offset
}

// Frame runs one iteration of the loop and reports whether to keep going.
func (p *Program) Frame(dt time.Duration) bool {
	if rl.IsWindowResized() {
		p.Resize()
	}

	for ev, ok := p.Window.PollEvent(); ok; ev, ok = p.Window.PollEvent() {
		switch ev.Kind {
		case window.Closed:
			return false
		case window.KeyDown:
			p.press(ev.Key)
		case window.KeyUp:
			p.release(ev.Key)
		}
	}

	if err := p.track.Update(float32(dt.Seconds()*(*config.Rate)), p.graph); nil != err {
		log.Println(err)
	}
	if !p.musicStarted && p.track.Notes.CurrentTime >= 0 {
		p.musicStarted = true
		if p.audioFile != "" {
			if err := p.Audio.PlayMusic(); nil != err {
				log.Println("unable to play music:", err)
			}
		}
	}

	p.Render(float32(dt.Seconds()))
	p.Window.Display()

	return p.inputTime() < p.track.Notes.Last()+tail
}

func (p *Program) press(key int32) {
	lane, err := config.KeyColumn(key)
	if nil != err {
		log.Println("not a column index pressed")
		return
	}
	at := p.inputTime()
	matched, err := p.track.ActivateLane(lane, p.graph, p.sound, at)
	if errors.Is(err, game.ErrLaneOutOfRange) {
		log.Println(err)
		return
	} else if nil != err {
		log.Println(err)
	}
	p.recorder.Record(lane, at, matched)
	if !matched {
		return
	}

	log.Printf("hit lane %d at %v\n", lane, at)
	hit := p.Theme.LaneHit().Color
	x := float32(lane) * game.LaneWidth
	p.decorations = append(p.decorations, &Decoration{
		tween: gween.New(255, 0, 0.3, ease.OutQuad),
		render: func(alpha float32) {
			c := hit
			c.A = uint8(alpha)
			r := p.view.Project(x, -game.DetectionBarOffset, game.LaneWidth, game.DetectionBarOffset)
			rl.DrawRectangle(r.X, r.Y, r.Width, r.Height, c)
		},
	})
}

func (p *Program) release(key int32) {
	lane, err := config.KeyColumn(key)
	if nil != err {
		return
	}
	if err := p.track.DeactivateLane(lane, p.graph); nil != err {
		log.Println(err)
	}
}

func (p *Program) Render(dt float32) {
	rl.BeginDrawing()
	rl.ClearBackground(p.Theme.Background())

	p.graph.Walk(func(_ scene.Handle, n *scene.Node, x, y, _ float32) {
		if !n.Drawable() {
			return
		}
		r := p.view.Project(x, y, n.Width, n.Height)
		if r.Visible(p.width, p.height) {
			rl.DrawRectangle(r.X, r.Y, r.Width, r.Height, n.Material.Color)
		}
	})

	p.RenderDecorations(dt)
	p.RenderStatic()
}

func (p *Program) RenderDecorations(dt float32) {
	live := p.decorations[:0]
	for _, dec := range p.decorations {
		value, finished := dec.tween.Update(dt)
		dec.render(value)
		if !finished {
			live = append(live, dec)
		}
	}
	p.decorations = live
}

func (p *Program) RenderStatic() {
	if length := p.Audio.MusicLength(); length > 0 && p.track.Notes.CurrentTime > 0 {
		played := float64(p.track.Notes.CurrentTime) / length.Seconds()
		if played > 1 {
			played = 1
		}
		rl.DrawRectangle(0, 2, int32(float64(p.width)*played), 2, rl.White)
	}

	s := score.Summarise(p.recorder.Inputs())
	rl.DrawFPS(20, 3*24)
	rl.DrawText(fmt.Sprintf("   Time: %8.2f s", p.track.Notes.CurrentTime), 20, 5*24, 20, rl.White)
	rl.DrawText(fmt.Sprintf("  Notes: %6v", p.chart.NoteCount), 20, 6*24, 20, rl.White)
	rl.DrawText(fmt.Sprintf("   Hits: %6v", s.Hits), 20, 7*24, 20, p.Theme.LaneHit().Color)
	rl.DrawText(fmt.Sprintf(" Misses: %6v", s.Misses), 20, 8*24, 20, rl.Gray)
}

// Finish stores the run and releases everything Init acquired.
func (p *Program) Finish() {
	inputs := p.recorder.Inputs()
	s := score.Summarise(inputs)
	log.Printf("%d hits, %d misses (%.1f%%)\n", s.Hits, s.Misses, 100*s.Accuracy())
	for i, l := range s.Lanes {
		log.Printf("  lane %2d: %4d hits %4d misses\n", i, l.Hits, l.Misses)
	}
	if len(inputs) > 0 {
		if err := p.Scorer.Save(p.chart, inputs, *config.Rate); nil != err {
			log.Println("unable to save score:", err)
		}
	}

	p.Scorer.Deinit()
	if nil != p.Audio {
		p.Audio.Close()
	}
	if nil != p.Window {
		p.Window.Close()
	}
}

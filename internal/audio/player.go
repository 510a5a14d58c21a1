// Package audio plays the music stream of a song and named one-shot sounds
// through the beep speaker.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/vorbis"
	"github.com/faiface/beep/wav"
)

const DefaultSampleRate = beep.SampleRate(44100)

var (
	ErrUnknownSound   = errors.New("unknown sound")
	ErrNotInitialized = errors.New("speaker not initialized")
	ErrNoMusic        = errors.New("no music loaded")
)

type Player struct {
	sampleRate  beep.SampleRate
	initialized bool
	sounds      map[string]*beep.Buffer

	// Music playback speed, 1 is normal.
	Rate float64
	// Music gain in the effects.Volume sense, 0 is unchanged.
	Volume float64

	music       beep.StreamSeekCloser
	musicFormat beep.Format
	ctrl        *beep.Ctrl
}

func NewPlayer(sampleRate beep.SampleRate) *Player {
	return &Player{
		sampleRate: sampleRate,
		sounds:     map[string]*beep.Buffer{},
		Rate:       1,
	}
}

// Init starts the speaker with a buffer of one 60Hz frame.
func (p *Player) Init() error {
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(time.Second/60)); nil != err {
		return fmt.Errorf("unable to initialize speaker: %w", err)
	}
	p.initialized = true
	return nil
}

func (p *Player) SampleRate() beep.SampleRate {
	return p.sampleRate
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if nil != err {
		return nil, beep.Format{}, err
	}
	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unsupported audio file %v", path)
	}
	if nil != err {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("unable to decode %v: %w", path, err)
	}
	return streamer, format, nil
}

// AddSound buffers all of s under name, resampled to the speaker rate.
func (p *Player) AddSound(name string, s beep.Streamer, format beep.Format) {
	if format.SampleRate != p.sampleRate {
		s = beep.Resample(4, format.SampleRate, p.sampleRate, s)
		format.SampleRate = p.sampleRate
	}
	buffer := beep.NewBuffer(format)
	buffer.Append(s)
	p.sounds[name] = buffer
}

func (p *Player) LoadSound(name, path string) error {
	streamer, format, err := decode(path)
	if nil != err {
		return err
	}
	defer streamer.Close()
	p.AddSound(name, streamer, format)
	return nil
}

func (p *Player) PlaySound(name string) error {
	buffer, ok := p.sounds[name]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownSound, name)
	}
	if !p.initialized {
		return ErrNotInitialized
	}
	speaker.Play(buffer.Streamer(0, buffer.Len()))
	return nil
}

// LoadMusic opens path for streaming, stopping any music already loaded.
func (p *Player) LoadMusic(path string) error {
	streamer, format, err := decode(path)
	if nil != err {
		return err
	}
	p.StopMusic()
	if nil != p.music {
		p.music.Close()
	}
	p.music = streamer
	p.musicFormat = format
	log.Printf("Loaded %v (%v Hz, %v)\n", path, format.SampleRate, format.SampleRate.D(streamer.Len()))
	return nil
}

func (p *Player) MusicLength() time.Duration {
	if nil == p.music {
		return 0
	}
	return p.musicFormat.SampleRate.D(p.music.Len())
}

func (p *Player) PlayMusic() error {
	if nil == p.music {
		return ErrNoMusic
	}
	if !p.initialized {
		return ErrNotInitialized
	}
	if nil != p.ctrl {
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		return nil
	}
	ratio := float64(p.musicFormat.SampleRate) / float64(p.sampleRate) * p.Rate
	p.ctrl = &beep.Ctrl{Streamer: beep.ResampleRatio(4, ratio, p.music)}
	speaker.Play(&effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   p.Volume,
	})
	return nil
}

func (p *Player) StopMusic() {
	if nil == p.ctrl {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
}

func (p *Player) SeekMusic(at time.Duration) error {
	if nil == p.music {
		return ErrNoMusic
	}
	if p.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	n := p.musicFormat.SampleRate.N(at)
	if n < 0 {
		n = 0
	} else if n > p.music.Len() {
		n = p.music.Len()
	}
	return p.music.Seek(n)
}

func (p *Player) Close() {
	if p.initialized {
		speaker.Clear()
	}
	p.ctrl = nil
	if nil != p.music {
		p.music.Close()
		p.music = nil
	}
}

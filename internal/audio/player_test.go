package audio

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
)

func TestClickLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(1000)
	s := Click(sr, 440, 50*time.Millisecond)

	total := 0
	samples := make([][2]float64, 16)
	first := 0.0
	last := 0.0
	for {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			v := math.Abs(samples[i][0])
			if v > 1 || samples[i][0] != samples[i][1] {
				t.Log("sample", total+i, samples[i])
				t.Fail()
			}
			if total+i < 10 {
				first = math.Max(first, v)
			} else if total+i >= 40 {
				last = math.Max(last, v)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != 50 {
		t.Log("samples", total)
		t.Fail()
	}
	if last >= first {
		t.Log("click does not decay", first, last)
		t.Fail()
	}
	if s.Err() != nil {
		t.Fail()
	}
}

func TestPlaySoundWithoutSpeaker(t *testing.T) {
	p := NewPlayer(DefaultSampleRate)
	if err := p.PlaySound("tap"); !errors.Is(err, ErrUnknownSound) {
		t.Log(err)
		t.Fail()
	}

	format := beep.Format{SampleRate: DefaultSampleRate, NumChannels: 2, Precision: 2}
	p.AddSound("tap", Click(DefaultSampleRate, 880, 20*time.Millisecond), format)
	if p.sounds["tap"].Len() != DefaultSampleRate.N(20*time.Millisecond) {
		t.Log("buffered", p.sounds["tap"].Len())
		t.Fail()
	}
	if err := p.PlaySound("tap"); !errors.Is(err, ErrNotInitialized) {
		t.Log(err)
		t.Fail()
	}
}

func TestAddSoundResamples(t *testing.T) {
	p := NewPlayer(beep.SampleRate(2000))
	format := beep.Format{SampleRate: 1000, NumChannels: 2, Precision: 2}
	p.AddSound("low", Click(1000, 100, 100*time.Millisecond), format)
	got := p.sounds["low"].Len()
	if got < 180 || got > 220 {
		t.Log("resampled length", got)
		t.Fail()
	}
}

func TestMusicWithoutFile(t *testing.T) {
	p := NewPlayer(DefaultSampleRate)
	if err := p.PlayMusic(); !errors.Is(err, ErrNoMusic) {
		t.Fail()
	}
	if err := p.SeekMusic(time.Second); !errors.Is(err, ErrNoMusic) {
		t.Fail()
	}
	if p.MusicLength() != 0 {
		t.Fail()
	}
	p.StopMusic()
	p.Close()
}

func TestLoadUnsupported(t *testing.T) {
	p := NewPlayer(DefaultSampleRate)
	if err := p.LoadMusic("does-not-exist.flac"); err == nil {
		t.Fail()
	}
	if err := p.LoadSound("tap", "does-not-exist.wav"); err == nil {
		t.Fail()
	}
}

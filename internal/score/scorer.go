package score

import (
	"time"

	"git.lost.host/meutraa/caeli/internal/game"
)

// Input is one lane activation as observed by the game loop.
type Input struct {
	Lane    int
	Time    time.Duration
	Matched bool
}

type Scorer interface {
	Init(path string) error
	Deinit()

	// Save the state of this performance
	Save(chart *game.Chart, inputs []Input, rate float64) error

	// Load up previous state for the chart
	Load(chart *game.Chart) ([]History, error)
}

type History struct {
	Sum      string
	Inputs   []Input
	Rate     float64
	PlayedAt time.Time
}

type LaneSummary struct {
	Hits, Misses int
}

type Summary struct {
	Hits, Misses int
	Lanes        []LaneSummary
}

// Accuracy is the share of inputs that landed on a note.
func (s Summary) Accuracy() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Recorder collects the inputs of one play through.
type Recorder struct {
	inputs []Input
}

func (r *Recorder) Record(lane int, at time.Duration, matched bool) {
	r.inputs = append(r.inputs, Input{Lane: lane, Time: at, Matched: matched})
}

func (r *Recorder) Inputs() []Input {
	return r.inputs
}

func (r *Recorder) Reset() {
	r.inputs = nil
}

func Summarise(inputs []Input) Summary {
	var s Summary
	for _, i := range inputs {
		if i.Lane < 0 {
			continue
		}
		for len(s.Lanes) <= i.Lane {
			s.Lanes = append(s.Lanes, LaneSummary{})
		}
		if i.Matched {
			s.Hits++
			s.Lanes[i.Lane].Hits++
		} else {
			s.Misses++
			s.Lanes[i.Lane].Misses++
		}
	}
	return s
}

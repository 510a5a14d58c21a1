package game

import (
	"time"
)

type TapNote struct {
	Time time.Duration // The time the note should be hit
	Lane int           // The chart column
	Size float32       // Width as a multiple of the lane width
}

// Notes holds the scheduled notes of a track and the scroll cursor, in
// seconds, that they fall along.
type Notes struct {
	Notes       []TapNote
	CurrentTime float32
}

func (n *Notes) Add(note TapNote) {
	n.Notes = append(n.Notes, note)
}

func (n *Notes) Update(dt float32) {
	n.CurrentTime += dt
}

// Match reports the first note in lane that m considers a hit for input.
// Notes are never consumed, so the same note can match again.
func (n *Notes) Match(lane int, input time.Duration, m Matcher) (TapNote, bool) {
	for _, note := range n.Notes {
		if note.Lane != lane {
			continue
		}
		if m.Match(note.Time, input) {
			return note, true
		}
	}
	return TapNote{}, false
}

// Last returns the time of the latest note.
func (n *Notes) Last() time.Duration {
	var last time.Duration
	for _, note := range n.Notes {
		if note.Time > last {
			last = note.Time
		}
	}
	return last
}

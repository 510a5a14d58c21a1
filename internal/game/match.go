package game

import (
	"fmt"
	"time"
)

const DefaultTolerance = 100 * time.Millisecond

type Matcher interface {
	Match(note, input time.Duration) bool
}

// Bucket matches when the note and the input fall in the same tolerance sized
// slot of the timeline. Times either side of a slot boundary never match,
// however close they are.
type Bucket struct {
	Tolerance time.Duration
}

func (b Bucket) Match(note, input time.Duration) bool {
	tolerance := b.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return floorDiv(note, tolerance) == floorDiv(input, tolerance)
}

// Window matches when the input is at most Tolerance away from the note.
type Window struct {
	Tolerance time.Duration
}

func (w Window) Match(note, input time.Duration) bool {
	tolerance := w.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	d := input - note
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

func NewMatcher(kind string, tolerance time.Duration) (Matcher, error) {
	switch kind {
	case "", "bucket":
		return Bucket{Tolerance: tolerance}, nil
	case "window":
		return Window{Tolerance: tolerance}, nil
	}
	return nil, fmt.Errorf("unknown match mode %q", kind)
}

func floorDiv(a, b time.Duration) time.Duration {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

package game

import (
	"testing"
	"time"
)

type matchTest struct {
	Note, Input time.Duration
	Bucket      bool
	Window      bool
}

var matchTests = []matchTest{
	{Note: 500 * time.Millisecond, Input: 550 * time.Millisecond, Bucket: true, Window: true},
	{Note: 500 * time.Millisecond, Input: 650 * time.Millisecond, Bucket: false, Window: false},
	// The two sides of a bucket edge.
	{Note: 599 * time.Millisecond, Input: 601 * time.Millisecond, Bucket: false, Window: true},
	{Note: 501 * time.Millisecond, Input: 599 * time.Millisecond, Bucket: true, Window: true},
	{Note: 400 * time.Millisecond, Input: 500 * time.Millisecond, Bucket: false, Window: true},
	{Note: 0, Input: -50 * time.Millisecond, Bucket: false, Window: true},
	{Note: -10 * time.Millisecond, Input: -90 * time.Millisecond, Bucket: true, Window: true},
}

func TestBucket(t *testing.T) {
	m := Bucket{Tolerance: 100 * time.Millisecond}
	for _, test := range matchTests {
		if m.Match(test.Note, test.Input) != test.Bucket {
			t.Log("note", test.Note, "input", test.Input, "expected", test.Bucket)
			t.Fail()
		}
	}
}

func TestWindow(t *testing.T) {
	m := Window{Tolerance: 100 * time.Millisecond}
	for _, test := range matchTests {
		if m.Match(test.Note, test.Input) != test.Window {
			t.Log("note", test.Note, "input", test.Input, "expected", test.Window)
			t.Fail()
		}
	}
}

func TestZeroToleranceFallsBack(t *testing.T) {
	if !(Bucket{}).Match(510*time.Millisecond, 590*time.Millisecond) {
		t.Fail()
	}
	if (Window{}).Match(0, 101*time.Millisecond) {
		t.Fail()
	}
}

func TestNewMatcher(t *testing.T) {
	for kind, expected := range map[string]Matcher{
		"":       Bucket{Tolerance: time.Second},
		"bucket": Bucket{Tolerance: time.Second},
		"window": Window{Tolerance: time.Second},
	} {
		m, err := NewMatcher(kind, time.Second)
		if nil != err || m != expected {
			t.Log(kind, m, err)
			t.Fail()
		}
	}
	if _, err := NewMatcher("fuzzy", time.Second); nil == err {
		t.Fail()
	}
}

func TestNotesUpdateAccumulates(t *testing.T) {
	var n Notes
	for i := 0; i < 25; i++ {
		n.Update(0.016)
	}
	if d := n.CurrentTime - 0.4; d > 1e-5 || d < -1e-5 {
		t.Log("current time", n.CurrentTime)
		t.Fail()
	}
}

func TestDemoChart(t *testing.T) {
	c := DemoChart()
	if int(c.NoteCount) != len(c.Notes) || len(c.Notes) == 0 {
		t.Fail()
	}
	tr := c.Track("demo", 4, nil)
	if len(tr.Lanes) != 10 || len(tr.Notes.Notes) != len(c.Notes) {
		t.Log("lanes", len(tr.Lanes), "notes", len(tr.Notes.Notes))
		t.Fail()
	}
	for _, n := range c.Notes {
		if n.Lane < 0 || n.Lane >= 10 {
			t.Log("note outside lanes", n)
			t.Fail()
		}
	}
	if tr.Notes.Last() != c.Notes[len(c.Notes)-1].Time {
		t.Fail()
	}
}

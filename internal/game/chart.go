package game

import (
	"time"

	"git.lost.host/meutraa/caeli/internal/theme"
)

type Chart struct {
	Notes      []TapNote
	NoteCount  int64
	HoldCount  int64
	MineCount  int64
	Difficulty Difficulty
}

// Track builds a playable track with at least the chart's key count in lanes.
func (c *Chart) Track(name string, lanes int, th theme.Theme) *Track {
	if n := int(c.Difficulty.NKeys); n > lanes {
		lanes = n
	}
	t := NewTrack(name, lanes, th)
	for _, n := range c.Notes {
		t.AddNote(n.Time, n.Lane, n.Size)
	}
	return t
}

// DemoChart is played when no song directory is given: a run up and down all
// ten lanes, then chords on both hands.
func DemoChart() *Chart {
	c := &Chart{
		Difficulty: Difficulty{Name: "Demo", Msd: "1", NKeys: 10},
	}
	at := 2 * time.Second
	step := 400 * time.Millisecond
	for lane := 0; lane < 10; lane++ {
		c.Notes = append(c.Notes, TapNote{Time: at, Lane: lane, Size: 1})
		at += step
	}
	for lane := 9; lane >= 0; lane-- {
		c.Notes = append(c.Notes, TapNote{Time: at, Lane: lane, Size: 1})
		at += step / 2
	}
	for i := 0; i < 5; i++ {
		at += step
		c.Notes = append(c.Notes,
			TapNote{Time: at, Lane: i, Size: 1},
			TapNote{Time: at, Lane: 9 - i, Size: 1},
		)
	}
	c.NoteCount = int64(len(c.Notes))
	return c
}

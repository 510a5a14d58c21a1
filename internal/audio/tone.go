package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Click returns a sine of freq Hz lasting d that decays from full amplitude to
// silence, used as the tap cue when no sound file is configured.
func Click(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	played := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if played >= total {
			return 0, false
		}
		for i := range samples {
			if played >= total {
				return i, true
			}
			t := float64(played) / float64(sr)
			envelope := 1 - float64(played)/float64(total)
			v := 0.4 * envelope * envelope * math.Sin(2*math.Pi*freq*t)
			samples[i][0] = v
			samples[i][1] = v
			played++
		}
		return len(samples), true
	})
}

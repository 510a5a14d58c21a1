// Package loop runs the single threaded frame loop.
package loop

import (
	"time"
)

// Period returns the frame budget for the given rate, 60Hz when fps is not
// positive.
func Period(fps float64) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Duration(float64(time.Second) / fps)
}

// Run calls frame until it returns false, sleeping out whatever is left of
// period after each call. dt is the time since the previous frame started and
// is zero on the first.
func Run(period time.Duration, frame func(now time.Time, dt time.Duration) bool) {
	last := time.Now()
	for {
		now := time.Now()
		deadline := now.Add(period)
		dt := now.Sub(last)
		last = now

		if !frame(now, dt) {
			return
		}

		if remaining := time.Until(deadline); remaining > 0 {
			time.Sleep(remaining)
		}
	}
}

package loop

import (
	"testing"
	"time"
)

func TestPeriod(t *testing.T) {
	for fps, expected := range map[float64]time.Duration{
		60:  16666666 * time.Nanosecond,
		0:   16666666 * time.Nanosecond,
		120: 8333333 * time.Nanosecond,
		1:   time.Second,
	} {
		if got := Period(fps); got != expected {
			t.Log(fps, got, expected)
			t.Fail()
		}
	}
}

func TestRunStopsAndCaps(t *testing.T) {
	frames := 0
	var dts []time.Duration
	start := time.Now()
	Run(5*time.Millisecond, func(now time.Time, dt time.Duration) bool {
		frames++
		dts = append(dts, dt)
		return frames < 4
	})
	elapsed := time.Since(start)

	if frames != 4 {
		t.Log("frames", frames)
		t.Fail()
	}
	if dts[0] > time.Millisecond {
		t.Log("first dt", dts[0])
		t.Fail()
	}
	for _, dt := range dts[1:] {
		if dt < 5*time.Millisecond {
			t.Log("frame shorter than its budget", dt)
			t.Fail()
		}
	}
	// Three sleeps; the last frame returns without one.
	if elapsed < 15*time.Millisecond {
		t.Log("elapsed", elapsed)
		t.Fail()
	}
}

package track

import (
	"errors"
	"testing"
)

func states(t *Track) []bool {
	out := make([]bool, t.Len())
	for i := range out {
		out[i], _ = t.IsActivated(i)
	}
	return out
}

func equal(p, q []bool) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

func TestNewIsInactive(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 128} {
		tr := New(n)
		if tr.Len() != n || !equal(states(tr), make([]bool, n)) {
			t.Log("sections", n, states(tr))
			t.Fail()
		}
	}
	if New(-3).Len() != 0 {
		t.Fail()
	}
}

func TestActivateDeactivate(t *testing.T) {
	tr := New(5)
	tr.Activate(1)
	tr.Activate(3)
	tr.Deactivate(1)
	if expected := []bool{false, false, false, true, false}; !equal(states(tr), expected) {
		t.Log("out     ", states(tr))
		t.Log("expected", expected)
		t.Fail()
	}
}

func TestOutOfRange(t *testing.T) {
	tr := New(10)
	tr.Activate(4)
	before := states(tr)

	for _, i := range []int{-1, 10, 11, 1 << 20} {
		if err := tr.Activate(i); !errors.Is(err, ErrSectionOutOfRange) {
			t.Log("activate", i, err)
			t.Fail()
		}
		if err := tr.Deactivate(i); !errors.Is(err, ErrSectionOutOfRange) {
			t.Log("deactivate", i, err)
			t.Fail()
		}
		if _, err := tr.IsActivated(i); !errors.Is(err, ErrSectionOutOfRange) {
			t.Log("is activated", i, err)
			t.Fail()
		}
	}

	if !equal(states(tr), before) {
		t.Log("out     ", states(tr))
		t.Log("expected", before)
		t.Fail()
	}
}

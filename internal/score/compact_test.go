package score

import (
	"testing"
	"time"
)

var compactTests = map[*([]Input)]([]InputsCompact){
	{}: {},
	{{Lane: 0, Time: 100, Matched: true}, {Lane: 3, Time: 200}}: {
		{Lane: 0, Times: []time.Duration{100}, Matched: []bool{true}},
		{Lane: 1, Times: []time.Duration{}},
		{Lane: 2, Times: []time.Duration{}},
		{Lane: 3, Times: []time.Duration{200}, Matched: []bool{false}},
	},
	{{Lane: 1, Time: 2}, {Lane: 1, Time: 1, Matched: true}}: {
		{Lane: 0, Times: []time.Duration{}},
		{Lane: 1, Times: []time.Duration{2, 1}, Matched: []bool{false, true}},
	},
	{{Lane: 0, Time: 5}}: {
		{Lane: 0, Times: []time.Duration{5}, Matched: []bool{false}},
	},
}

func TestCompactInputs(t *testing.T) {
	equal := func(p, q []InputsCompact) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			pi, qi := p[i], q[i]
			if pi.Lane != qi.Lane {
				return false
			}
			if len(pi.Times) != len(qi.Times) || len(pi.Matched) != len(qi.Matched) {
				return false
			}
			for j := 0; j < len(pi.Times); j++ {
				if pi.Times[j] != qi.Times[j] || pi.Matched[j] != qi.Matched[j] {
					return false
				}
			}
		}
		return true
	}

	for in, expected := range compactTests {
		out := compactInputs(*in)
		if !equal(out, expected) {
			t.Log("out     ", out)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestUncompactInputs(t *testing.T) {
	equal := func(p, q []Input) bool {
		if len(p) != len(q) {
			return false
		}
		for i := 0; i < len(p); i++ {
			if p[i] != q[i] {
				return false
			}
		}
		return true
	}

	for expected, in := range compactTests {
		out := uncompactInputs(in)
		if !equal(out, *expected) {
			t.Log("in      ", in)
			t.Log("expected", *expected)
			t.Fail()
		}
	}
}

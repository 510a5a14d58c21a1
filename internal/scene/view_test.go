package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewProject(t *testing.T) {
	v := NewView(64, 10, 800, 600, 96)
	assert.InDelta(t, 80, v.OriginX, 1e-6)
	assert.InDelta(t, 504, v.OriginY, 1e-6)

	// A lane wide note resting on the bar.
	assert.Equal(t, Rect{X: 80, Y: 440, Width: 64, Height: 64}, v.Project(0, 0, 1, 1))
	// Third lane, one second up, thin.
	assert.Equal(t, Rect{X: 208, Y: 432, Width: 64, Height: 8}, v.Project(2, 1, 1, 0.12))
}

func TestViewProjectNeverCollapses(t *testing.T) {
	v := View{Scale: 64}
	r := v.Project(0, 0, 0.001, 0.001)
	assert.Equal(t, int32(1), r.Width)
	assert.Equal(t, int32(1), r.Height)
}

func TestRectVisible(t *testing.T) {
	tests := map[Rect]bool{
		{X: 0, Y: 0, Width: 10, Height: 10}:      true,
		{X: -5, Y: -5, Width: 10, Height: 10}:    true,
		{X: -10, Y: 0, Width: 10, Height: 10}:    false,
		{X: 0, Y: 600, Width: 10, Height: 10}:    false,
		{X: 799, Y: 599, Width: 10, Height: 10}:  true,
		{X: 100, Y: -200, Width: 10, Height: 50}: false,
	}
	for r, expected := range tests {
		if r.Visible(800, 600) != expected {
			t.Log(r, expected)
			t.Fail()
		}
	}
}

package scene

import "github.com/chewxy/math32"

// Rect is a rectangle in window pixels, Y growing downwards.
type Rect struct {
	X, Y, Width, Height int32
}

// View projects world units, Y growing upwards, onto the window. The world
// origin lands on (OriginX, OriginY).
type View struct {
	Scale            float32
	OriginX, OriginY float32
}

// NewView centres a content span of width world units horizontally and places
// the world origin barOffset pixels above the bottom edge.
func NewView(scale, span float32, width, height, barOffset int32) View {
	return View{
		Scale:   scale,
		OriginX: (float32(width) - span*scale) / 2,
		OriginY: float32(height - barOffset),
	}
}

// Project returns the pixel rectangle covered by a node of the given size
// whose lower left corner is at world (x, y).
func (v View) Project(x, y, width, height float32) Rect {
	left := math32.Round(v.OriginX + x*v.Scale)
	top := math32.Round(v.OriginY - (y+height)*v.Scale)
	right := math32.Round(v.OriginX + (x+width)*v.Scale)
	bottom := math32.Round(v.OriginY - y*v.Scale)
	return Rect{
		X:      int32(left),
		Y:      int32(top),
		Width:  int32(math32.Max(right-left, 1)),
		Height: int32(math32.Max(bottom-top, 1)),
	}
}

// Visible reports whether r overlaps a width by height window.
func (r Rect) Visible(width, height int32) bool {
	return r.X < width && r.Y < height && r.X+r.Width > 0 && r.Y+r.Height > 0
}

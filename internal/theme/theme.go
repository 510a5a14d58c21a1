package theme

import (
	"image/color"

	"git.lost.host/meutraa/caeli/internal/scene"
)

type Theme interface {
	LaneIdle() scene.Material
	LaneActive() scene.Material
	LaneHit() scene.Material
	Note(lane int) scene.Material
	DetectionBar() scene.Material
	Background() color.RGBA

	// Section colours for the immediate-mode prototype.
	Section(active bool) color.RGBA
	Divider() color.RGBA
}

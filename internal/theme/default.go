package theme

import (
	"image/color"

	"git.lost.host/meutraa/caeli/internal/scene"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) LaneIdle() scene.Material {
	return scene.Material{Color: laneIdle}
}

func (t *DefaultTheme) LaneActive() scene.Material {
	return scene.Material{Color: laneActive}
}

func (t *DefaultTheme) LaneHit() scene.Material {
	return scene.Material{Color: laneHit}
}

func (t *DefaultTheme) Note(lane int) scene.Material {
	return scene.Material{Color: getNoteColor(lane)}
}

func (t *DefaultTheme) DetectionBar() scene.Material {
	return scene.Material{Color: bar}
}

func (t *DefaultTheme) Background() color.RGBA {
	return background
}

func (t *DefaultTheme) Section(active bool) color.RGBA {
	if active {
		return sectionActive
	}
	return sectionIdle
}

func (t *DefaultTheme) Divider() color.RGBA {
	return color.RGBA{255, 255, 255, 255}
}

var (
	laneIdle      = color.RGBA{51, 51, 51, 255}
	laneActive    = color.RGBA{128, 128, 128, 255}
	laneHit       = color.RGBA{0, 236, 128, 255}
	bar           = color.RGBA{236, 30, 0, 255}
	background    = color.RGBA{0, 0, 0, 255}
	sectionIdle   = color.RGBA{51, 51, 51, 255}
	sectionActive = color.RGBA{128, 128, 128, 255}

	// Lanes mirror around the centre so both hands see the same palette.
	noteColors = map[int]color.RGBA{
		0:  {236, 30, 0, 255},    // red
		1:  {0, 118, 236, 255},   // blue
		2:  {106, 0, 236, 255},   // purple
		3:  {236, 195, 0, 255},   // yellow
		4:  {236, 0, 106, 255},   // pink
		-1: {255, 255, 255, 255}, // other white
	}
)

func getNoteColor(lane int) color.RGBA {
	if lane >= 5 && lane < 10 {
		lane = 9 - lane
	}
	col, ok := noteColors[lane]
	if !ok {
		return noteColors[-1]
	}
	return col
}

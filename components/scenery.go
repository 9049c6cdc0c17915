package components

import (
	"github.com/automoto/pecking-order/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SceneryData is the pre-rendered backdrop and the drifting clouds
type SceneryData struct {
	Course     assets.Course
	Background *ebiten.Image // sky and hills
	CloudX     []float64     // current x per course cloud
}

var Scenery = donburi.NewComponentType[SceneryData]()

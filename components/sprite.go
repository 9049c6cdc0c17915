package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is a single image drawn centred on X, Y
type SpriteData struct {
	Image    *ebiten.Image
	X, Y     float64
	Rotation float64
	Scale    float64
	Alpha    float64
}

var Sprite = donburi.NewComponentType[SpriteData]()

package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// AutoDestroyData marks entities that are removed once their time runs out
type AutoDestroyData struct {
	SecondsRemaining float64
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()

// ParticleKind selects the image a particle is drawn with
type ParticleKind int

const (
	ParticleFeather ParticleKind = iota
	ParticleEgg
)

// ParticleData is one piece of the winner burst. Progress runs 0 to 1 along
// an eased tween and every visual property is interpolated from it.
type ParticleData struct {
	Kind       ParticleKind
	OriginX    float64
	OriginY    float64
	TravelX    float64
	TravelY    float64
	Spin       float64 // radians over the whole flight
	StartScale float64
	EndScale   float64
	Color      color.RGBA
	Progress   *gween.Tween
	T          float64
}

var Particle = donburi.NewComponentType[ParticleData]()

// OverlayKind identifies a HUD overlay entity
type OverlayKind int

const (
	OverlayCountdown OverlayKind = iota
	OverlayWinner
)

// OverlayData is a line of large centred text with pop and fade tweens
type OverlayData struct {
	Kind  OverlayKind
	Text  string
	Color color.RGBA
	Scale float64
	Alpha float64
	Pop   *gween.Tween // scale, nil once settled
	Fade  *gween.Tween // alpha, nil while fully shown
}

var Overlay = donburi.NewComponentType[OverlayData]()

// FlashData tints a sprite while a timer runs
type FlashData struct {
	Seconds float64 // remaining, negative = until removed
	Tint    color.RGBA
}

var Flash = donburi.NewComponentType[FlashData]()

package factory

import (
	"image/color"

	"github.com/automoto/pecking-order/archetypes"
	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScenery loads the course and pre-renders the sky and hills.
func CreateScenery(ecs *ecs.ECS, course assets.Course) *donburi.Entry {
	entry := archetypes.Scenery.Spawn(ecs)

	width, height := cfg.C.Width, cfg.C.Height
	bg := ebiten.NewImage(width, height)

	// Sky in horizontal bands from top to horizon
	const bands = 24
	bandH := float32(height) / bands
	for i := 0; i < bands; i++ {
		c := lerpColor(cfg.Scenery.Sky, cfg.Scenery.SkyLow, float64(i)/float64(bands-1))
		vector.FillRect(bg, 0, float32(i)*bandH, float32(width), bandH+1, c, false)
	}

	for _, h := range course.Hills {
		c := cfg.Scenery.Hill
		if h.Shade {
			c = cfg.Scenery.HillShade
		}
		assets.FillEllipse(bg, h.X+h.Width/2, h.Y+h.Height/2, h.Width/2, h.Height/2, c)
	}

	cloudX := make([]float64, len(course.Clouds))
	for i, c := range course.Clouds {
		cloudX[i] = c.X
	}

	components.Scenery.SetValue(entry, components.SceneryData{
		Course:     course,
		Background: bg,
		CloudX:     cloudX,
	})
	return entry
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

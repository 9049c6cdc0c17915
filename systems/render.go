package systems

import (
	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/fonts"
	"github.com/automoto/pecking-order/race"
	"github.com/automoto/pecking-order/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawRacers renders every bird at its on-screen box with its name above it.
func DrawRacers(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Racer.Each(ecs.World, func(e *donburi.Entry) {
		r := components.Racer.Get(e).Racer
		anim := components.Animation.Get(e)

		img := currentFrame(anim)
		if img == nil {
			return
		}
		geo := birdGeoM(img, r.ScreenX(), r.ScreenY(), r.W, r.H, r.Rotation, false)

		if e.HasComponent(components.Flash) {
			assets.DrawTinted(screen, img, geo, components.Flash.Get(e).Tint)
		} else {
			drawOp.GeoM = geo
			drawOp.ColorScale.Reset()
			screen.DrawImage(img, drawOp)
		}

		drawNameLabel(screen, r)
	})
}

// DrawPredator renders the owl while it hunts or carries.
func DrawPredator(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Predator.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Predator.Get(e).Predator
		if !p.Visible() {
			return
		}
		img := currentFrame(components.Animation.Get(e))
		if img == nil {
			return
		}
		// Faces left on the way in, right while carrying off.
		flip := p.Phase == race.PredatorHunting
		drawOp.GeoM = birdGeoM(img, p.X, p.Y, p.W, p.H, 0, flip)
		drawOp.ColorScale.Reset()
		screen.DrawImage(img, drawOp)
	})
}

// DrawParticles renders celebration feathers and eggs.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Particle.Each(ecs.World, func(e *donburi.Entry) {
		s := components.Sprite.Get(e)
		if s.Image == nil || s.Alpha <= 0 {
			return
		}
		p := components.Particle.Get(e)

		b := s.Image.Bounds()
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		drawOp.GeoM.Scale(s.Scale, s.Scale)
		drawOp.GeoM.Rotate(s.Rotation)
		drawOp.GeoM.Translate(s.X, s.Y)

		drawOp.ColorScale.Reset()
		drawOp.ColorScale.ScaleWithColor(p.Color)
		drawOp.ColorScale.ScaleAlpha(float32(s.Alpha))
		screen.DrawImage(s.Image, drawOp)
	})
}

func currentFrame(anim *components.AnimationData) *ebiten.Image {
	frame := 0
	if anim.CurrentAnimation != nil {
		frame = anim.CurrentAnimation.Frame()
	}
	return assets.BirdFrame(anim.Sprite, frame)
}

// birdGeoM fits a frame into the box at (x, y, w, h), rotated about its centre.
func birdGeoM(img *ebiten.Image, x, y, w, h, rotation float64, flip bool) ebiten.GeoM {
	b := img.Bounds()
	fw, fh := float64(b.Dx()), float64(b.Dy())

	var geo ebiten.GeoM
	geo.Translate(-fw/2, -fh/2)
	sx, sy := w/fw, h/fh
	if flip {
		sx = -sx
	}
	geo.Scale(sx, sy)
	geo.Rotate(rotation)
	geo.Translate(x+w/2, y+h/2)
	return geo
}

func drawNameLabel(screen *ebiten.Image, r *race.Racer) {
	if r.Name == "" {
		return
	}
	face := fonts.Label.Get()
	bounds := text.BoundString(face, r.Name)
	x := int(r.ScreenX()+r.W/2) - bounds.Dx()/2
	y := int(r.ScreenY()) - 2

	text.Draw(screen, r.Name, face, x+1, y+1, cfg.RaceHUD.NameLabelShadow)
	text.Draw(screen, r.Name, face, x, y, cfg.RaceHUD.NameLabelColor)
}

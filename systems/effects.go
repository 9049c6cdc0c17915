package systems

import (
	"time"

	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var presentationRand race.Rand

// SetEffectsSeed fixes the random source behind particle bursts. A zero
// seed keeps them time seeded.
func SetEffectsSeed(seed int64) {
	if seed == 0 {
		presentationRand = nil
		return
	}
	presentationRand = race.NewRand(seed)
}

func effectsRand() race.Rand {
	if presentationRand == nil {
		presentationRand = race.NewRand(time.Now().UnixNano())
	}
	return presentationRand
}

// UpdateEffects advances particles, overlays, flashes and auto-destroy timers
func UpdateEffects(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	updateParticles(ecs, dt)
	updateOverlays(ecs, dt)
	updateFlashEffects(ecs, dt)
	updateAutoDestroy(ecs, dt)
}

func updateParticles(ecs *ecs.ECS, dt float64) {
	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		if p.Progress != nil {
			v, _ := p.Progress.Update(float32(dt))
			p.T = float64(v)
		}
		applyParticle(p, components.Sprite.Get(e))
	})
}

// applyParticle places a particle's sprite at its eased progress: moving
// out from the origin, spinning, growing and fading to nothing.
func applyParticle(p *components.ParticleData, s *components.SpriteData) {
	t := p.T
	s.X = p.OriginX + p.TravelX*t
	s.Y = p.OriginY + p.TravelY*t
	s.Rotation = p.Spin * t
	s.Scale = p.StartScale + (p.EndScale-p.StartScale)*t
	s.Alpha = 1 - t
}

func updateOverlays(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.Overlay.Each(ecs.World, func(e *donburi.Entry) {
		ov := components.Overlay.Get(e)
		if ov.Pop != nil {
			v, done := ov.Pop.Update(float32(dt))
			ov.Scale = float64(v)
			if done {
				ov.Pop = nil
			}
		}
		if ov.Fade != nil {
			v, done := ov.Fade.Update(float32(dt))
			ov.Alpha = float64(v)
			if done {
				toDestroy = append(toDestroy, e)
			}
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

// updateFlashEffects counts timed flashes down and drops expired ones.
// Negative timers stay until their owner removes them.
func updateFlashEffects(ecs *ecs.ECS, dt float64) {
	var expired []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Seconds < 0 {
			return
		}
		flash.Seconds -= dt
		if flash.Seconds <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		e.RemoveComponent(components.Flash)
	}
}

// updateAutoDestroy removes entities whose time has run out
func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.SecondsRemaining -= dt
		if ad.SecondsRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		e.Remove()
	}
}

package factory

import (
	"math"

	"github.com/automoto/pecking-order/archetypes"
	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ParticleSpec is one burst particle before it becomes an entity.
type ParticleSpec struct {
	Kind     components.ParticleKind
	Angle    float64 // radians
	Distance float64
	Duration float64
	Spin     float64 // radians
	EndScale float64
	ColorIdx int
}

// PlanCelebration draws the burst layout: the first FeatherFraction of the
// particles are feathers, the rest eggs, all flying out from one point.
func PlanCelebration(c cfg.CelebrationConfig, rnd race.Rand) []ParticleSpec {
	feathers := int(math.Round(float64(c.Particles) * c.FeatherFraction))
	specs := make([]ParticleSpec, c.Particles)
	for i := range specs {
		s := ParticleSpec{
			Angle:    rnd.Float64() * 2 * math.Pi,
			Spin:     (rnd.Float64()*2 - 1) * c.MaxSpin * math.Pi / 180,
			EndScale: 1 + rnd.Float64(),
		}
		if i < feathers {
			s.Kind = components.ParticleFeather
			s.Distance = c.FeatherDistanceMin + rnd.Float64()*(c.FeatherDistanceMax-c.FeatherDistanceMin)
			s.Duration = c.FeatherDuration
			s.ColorIdx = rnd.Intn(len(c.FeatherTint))
		} else {
			s.Kind = components.ParticleEgg
			s.Distance = c.EggDistanceMin + rnd.Float64()*(c.EggDistanceMax-c.EggDistanceMin)
			s.Duration = c.EggDuration
			s.ColorIdx = rnd.Intn(len(c.EggColors))
		}
		specs[i] = s
	}
	return specs
}

// SpawnCelebration bursts feathers and eggs from (x, y).
func SpawnCelebration(ecs *ecs.ECS, x, y float64, rnd race.Rand) {
	c := cfg.Celebration
	for _, s := range PlanCelebration(c, rnd) {
		entry := archetypes.Particle.Spawn(ecs)

		img := assets.FeatherImage()
		tint := c.FeatherTint[s.ColorIdx]
		if s.Kind == components.ParticleEgg {
			img = assets.EggImage()
			tint = c.EggColors[s.ColorIdx]
		}

		components.Particle.SetValue(entry, components.ParticleData{
			Kind:       s.Kind,
			OriginX:    x,
			OriginY:    y,
			TravelX:    math.Cos(s.Angle) * s.Distance,
			TravelY:    math.Sin(s.Angle) * s.Distance,
			Spin:       s.Spin,
			StartScale: c.StartScale,
			EndScale:   s.EndScale,
			Color:      tint,
			Progress:   gween.New(0, 1, float32(s.Duration), ease.OutQuart),
		})
		components.Sprite.SetValue(entry, components.SpriteData{
			Image: img,
			X:     x,
			Y:     y,
			Scale: c.StartScale,
			Alpha: 1,
		})
		components.AutoDestroy.SetValue(entry, components.AutoDestroyData{
			SecondsRemaining: s.Duration,
		})
	}
}

// SpawnWinnerOverlay shows "<name> wins!" popping in from a small scale.
func SpawnWinnerOverlay(ecs *ecs.ECS, name string) *donburi.Entry {
	h := cfg.RaceHUD
	entry := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(entry, components.OverlayData{
		Kind:  components.OverlayWinner,
		Text:  name + h.WinnerSuffix,
		Color: h.WinnerColor,
		Scale: h.WinnerPopScale,
		Alpha: 1,
		Pop:   gween.New(float32(h.WinnerPopScale), 1, float32(h.WinnerPop), ease.OutBack),
	})
	return entry
}

// SpawnCountdownOverlay creates the countdown overlay, showing label.
func SpawnCountdownOverlay(ecs *ecs.ECS, label string) *donburi.Entry {
	entry := archetypes.Overlay.Spawn(ecs)
	components.Overlay.SetValue(entry, components.OverlayData{
		Kind:  components.OverlayCountdown,
		Text:  label,
		Color: cfg.RaceHUD.CountdownColor,
		Scale: 1,
		Alpha: 1,
	})
	return entry
}

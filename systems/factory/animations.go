package factory

import (
	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/assets/animations"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
)

// GenerateAnimations creates an AnimationData component for a bird sprite key.
// Sheets are painted on first use, so this also warms the sprite cache.
func GenerateAnimations(sprite string) *components.AnimationData {
	animData := &components.AnimationData{
		Sprite:     sprite,
		Animations: make(map[cfg.AnimationKey]*animations.Animation, len(cfg.BirdAnimations)),
		CurrentKey: cfg.AnimGlide,
	}

	for key, def := range cfg.BirdAnimations {
		animData.Animations[key] = animations.NewAnimation(def.First, def.Last, def.Step, def.Speed)
	}
	animData.CurrentAnimation = animData.Animations[cfg.AnimGlide]

	for i := 0; i < cfg.BirdFrames; i++ {
		_ = assets.BirdFrame(sprite, i)
	}

	return animData
}

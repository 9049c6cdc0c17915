package components

import (
	"github.com/automoto/pecking-order/assets/animations"
	"github.com/automoto/pecking-order/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Sprite           string // Bird sheet key
	CurrentAnimation *animations.Animation
	CurrentKey       config.AnimationKey
	Animations       map[config.AnimationKey]*animations.Animation
}

func (a *AnimationData) SetAnimation(key config.AnimationKey) {
	if a.CurrentKey == key && a.CurrentAnimation != nil {
		return
	}

	anim, ok := a.Animations[key]
	if !ok {
		return
	}
	a.CurrentAnimation = anim
	a.CurrentKey = key
	a.CurrentAnimation.Restart()
}

var Animation = donburi.NewComponentType[AnimationData]()

package systems

import (
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRacers mirrors each racer's session state onto its entity, picks
// the matching animation and tints birds the predator has marked.
func UpdateRacers(ecs *ecs.ECS) {
	tags.Racer.Each(ecs.World, func(e *donburi.Entry) {
		racer := components.Racer.Get(e).Racer
		state := components.State.Get(e)
		anim := components.Animation.Get(e)

		syncState(state, racer.State)
		if state.Changed() {
			anim.SetAnimation(cfg.AnimationFor(state.CurrentState))
			updateMarkedTint(e, state.CurrentState)
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})

	tags.Predator.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if components.Predator.Get(e).Predator.Visible() {
			anim.SetAnimation(cfg.AnimFlap)
		}
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}
	})
}

// syncState records a new racer state and counts ticks spent in it.
func syncState(state *components.StateData, current cfg.RacerStateID) {
	if current != state.CurrentState {
		state.PreviousState = state.CurrentState
		state.CurrentState = current
		state.StateTimer = 0
		return
	}
	state.StateTimer++
}

func updateMarkedTint(e *donburi.Entry, state cfg.RacerStateID) {
	marked := state == cfg.RacerSeized || state == cfg.RacerCarried
	switch {
	case marked && !e.HasComponent(components.Flash):
		donburi.Add(e, components.Flash, &components.FlashData{
			Seconds: -1,
			Tint:    cfg.Birds.PredatorTint,
		})
	case !marked && e.HasComponent(components.Flash):
		e.RemoveComponent(components.Flash)
	}
}

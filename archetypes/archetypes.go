package archetypes

import (
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	RaceState = newArchetype(
		cfg.Default,
		components.Race,
	)
	Scenery = newArchetype(
		cfg.Default,
		tags.Scenery,
		components.Scenery,
	)
	Racer = newArchetype(
		cfg.Default,
		tags.Racer,
		components.Racer,
		components.Animation,
		components.State,
	)
	Predator = newArchetype(
		cfg.Default,
		tags.Predator,
		components.Predator,
		components.Animation,
	)
	Particle = newArchetype(
		cfg.Default,
		tags.Particle,
		components.Particle,
		components.Sprite,
		components.AutoDestroy,
	)
	Overlay = newArchetype(
		cfg.Overlay,
		tags.Overlay,
		components.Overlay,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := append(append([]donburi.IComponentType(nil), a.components...), cs...)
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		all...,
	))
	return e
}

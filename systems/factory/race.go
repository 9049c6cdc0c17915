package factory

import (
	"github.com/automoto/pecking-order/archetypes"
	"github.com/automoto/pecking-order/components"
	"github.com/automoto/pecking-order/race"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRace spawns the race singleton around an unstarted session.
func CreateRace(ecs *ecs.ECS, session *race.Session) *donburi.Entry {
	entry := archetypes.RaceState.Spawn(ecs)
	components.Race.SetValue(entry, components.RaceData{
		Session: session,
	})
	return entry
}

// CreateRacers spawns one entity per racer in the started session, plus
// the predator.
func CreateRacers(ecs *ecs.ECS, session *race.Session) {
	for _, r := range session.Racers() {
		entry := archetypes.Racer.Spawn(ecs)
		components.Racer.SetValue(entry, components.RacerData{Racer: r})
		components.Animation.Set(entry, GenerateAnimations(r.Sprite))
		components.State.SetValue(entry, components.StateData{
			CurrentState:  r.State,
			PreviousState: r.State,
		})
	}

	if p := session.Predator(); p != nil {
		entry := archetypes.Predator.Spawn(ecs)
		components.Predator.SetValue(entry, components.PredatorData{Predator: p})
		components.Animation.Set(entry, GenerateAnimations(p.Sprite))
	}
}

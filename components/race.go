package components

import (
	"github.com/automoto/pecking-order/race"
	"github.com/yohamta/donburi"
)

// RaceData holds the race session driven by the race scene (singleton component)
type RaceData struct {
	Session *race.Session
	Inputs  []string     // Name fields as submitted
	Events  []race.Event // Events drained this tick
	Done    bool         // Results are showing
}

var Race = donburi.NewComponentType[RaceData]()

// RacerData links an entity to a racer in the session
type RacerData struct {
	Racer *race.Racer
}

var Racer = donburi.NewComponentType[RacerData]()

// PredatorData links an entity to the session's predator
type PredatorData struct {
	Predator *race.Predator
}

var Predator = donburi.NewComponentType[PredatorData]()

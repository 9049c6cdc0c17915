package components

import (
	"github.com/automoto/pecking-order/config"
	"github.com/yohamta/donburi"
)

// StateData tracks the racer state seen by the presentation layer so
// systems can react to transitions.
type StateData struct {
	CurrentState  config.RacerStateID
	PreviousState config.RacerStateID
	StateTimer    int // ticks in the current state
}

// Changed reports whether the state changed on the last sync.
func (s *StateData) Changed() bool {
	return s.StateTimer == 0
}

var State = donburi.NewComponentType[StateData]()

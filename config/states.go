package config

import rc "github.com/automoto/pecking-order/shared/raceconfig"

// Type aliases so presentation code can use config.RaceStateID etc.
type RaceStateID = rc.RaceStateID
type RacerStateID = rc.RacerStateID

// Re-export race state constants.
const (
	RaceStateIdle      = rc.RaceStateIdle
	RaceStateCountdown = rc.RaceStateCountdown
	RaceStateRacing    = rc.RaceStateRacing
	RaceStateFinished  = rc.RaceStateFinished
)

// Re-export racer state constants.
const (
	RacerWaiting   = rc.RacerWaiting
	RacerFlying    = rc.RacerFlying
	RacerLooping   = rc.RacerLooping
	RacerSeized    = rc.RacerSeized
	RacerCarried   = rc.RacerCarried
	RacerCelebrate = rc.RacerCelebrate
	RacerDropping  = rc.RacerDropping
	RacerDone      = rc.RacerDone
)

// Re-export the catalog (same reference, no copy).
var SpriteCatalog = rc.SpriteCatalog

const PredatorSprite = rc.PredatorSprite

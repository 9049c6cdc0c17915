// Package raceconfig defines the race tuning values and state identifiers
// shared by the headless race core and the game client. It must have zero
// dependencies on ebiten or any graphics library so the race core and the
// terminal runner stay headless.
package raceconfig

// RaceStateID represents the current state of a race session.
type RaceStateID int

const (
	RaceStateIdle      RaceStateID = iota // Waiting for names
	RaceStateCountdown                    // "3", "2", "1", "Go!"
	RaceStateRacing                       // Birds in flight
	RaceStateFinished                     // Every racer accounted for
)

func (s RaceStateID) String() string {
	switch s {
	case RaceStateIdle:
		return "idle"
	case RaceStateCountdown:
		return "countdown"
	case RaceStateRacing:
		return "racing"
	case RaceStateFinished:
		return "finished"
	}
	return "unknown"
}

// RacerStateID identifies what a single racer is doing.
type RacerStateID int

const (
	RacerWaiting   RacerStateID = iota // On the start line
	RacerFlying                        // Normal travel
	RacerLooping                       // Performing a loop trick
	RacerSeized                        // Targeted by the predator, out of the running
	RacerCarried                       // Being carried off screen
	RacerCelebrate                     // Winner flying to the podium / hovering
	RacerDropping                      // Loser falling off screen
	RacerDone                          // Terminal, no longer drawn in the lanes
)

// Tuning holds every number that shapes a race. Durations are seconds,
// distances are pixels in the logical screen space.
type Tuning struct {
	MaxPlayers int

	// Countdown
	CountdownLabels   []string
	CountdownInterval float64

	// Lanes
	TrackTopMargin float64 // Reserved above the lanes
	LaneMaxSpacing float64
	RacerWidth     float64 // Bounding box incl. name label
	RacerHeight    float64

	// Travel
	TrackInset     float64 // Travel ends at screen width minus this
	FinishOffset   float64 // Finish threshold is screen width minus this
	BaseDuration   float64
	SpeedFactorMin float64
	SpeedFactorMax float64

	// Swoop flair
	SwoopAmplitudeMin float64 // Fraction of lane spacing
	SwoopAmplitudeMax float64
	SwoopPeriodBase   float64
	SwoopPeriodJitter float64
	TiltMaxDegrees    float64

	// Speed change
	SpeedChangeChance     float64
	SpeedChangeDelayMin   float64
	SpeedChangeDelayMax   float64
	SpeedMultiplierMin    float64
	SpeedMultiplierMax    float64
	SpeedMultiplierMargin float64 // Minimum distance from 1.0
	SpeedMultiplierDraws  int     // Redraws before forcing the margin
	SpeedRampDuration     float64

	// Loop trick
	LoopChance      float64
	LoopStartMin    float64 // Fraction of the travel duration
	LoopStartMax    float64
	LoopDuration    float64
	LoopRadius      float64
	LoopRevolutions float64

	// Predator capture
	CaptureChance     float64
	CaptureDelayMin   float64 // Seconds after "Go!"
	CaptureDelayMax   float64
	InterceptDuration float64
	CarryDuration     float64
	CarryRise         float64 // How far above the screen the pair exits

	// Finish effects
	DropDuration    float64
	CelebrateFlight float64
	CelebrateRise   float64 // Podium height above the screen centre
	BobHeight       float64
	BobPeriod       float64
}

// DefaultTuning returns the stock race tuning.
func DefaultTuning() Tuning {
	return Tuning{
		MaxPlayers: 5,

		CountdownLabels:   []string{"3", "2", "1", "Go!"},
		CountdownInterval: 1.0,

		TrackTopMargin: 60,
		LaneMaxSpacing: 120,
		RacerWidth:     96,
		RacerHeight:    64,

		TrackInset:     120,
		FinishOffset:   30,
		BaseDuration:   11,
		SpeedFactorMin: 0.9,
		SpeedFactorMax: 1.1,

		SwoopAmplitudeMin: 0.5,
		SwoopAmplitudeMax: 0.8,
		SwoopPeriodBase:   1.2,
		SwoopPeriodJitter: 0.8,
		TiltMaxDegrees:    15,

		SpeedChangeChance:     0.4,
		SpeedChangeDelayMin:   2,
		SpeedChangeDelayMax:   5,
		SpeedMultiplierMin:    0.7,
		SpeedMultiplierMax:    1.6,
		SpeedMultiplierMargin: 0.2,
		SpeedMultiplierDraws:  8,
		SpeedRampDuration:     1.5,

		LoopChance:      0.1,
		LoopStartMin:    0.5,
		LoopStartMax:    0.9,
		LoopDuration:    1.2,
		LoopRadius:      40,
		LoopRevolutions: 1,

		CaptureChance:     0.2,
		CaptureDelayMin:   3,
		CaptureDelayMax:   6,
		InterceptDuration: 1.0,
		CarryDuration:     1.2,
		CarryRise:         160,

		DropDuration:    0.8,
		CelebrateFlight: 1.6,
		CelebrateRise:   140,
		BobHeight:       15,
		BobPeriod:       1.0,
	}
}

// SpriteCatalog lists the bird sprite keys racers are drawn from. The game
// client maps each key to a palette; the race core only needs the keys.
var SpriteCatalog = []string{
	"brown_pelican",
	"little_penguin",
	"musk_duck",
	"american_goldfinch",
	"common_raven",
	"franklins_gull",
	"killdeer",
	"annas_hummingbird",
	"painted_bunting",
	"bald_eagle",
	"trumpeter_swan",
}

// PredatorSprite is the sprite key used for the capture sequence.
const PredatorSprite = "great_horned_owl"

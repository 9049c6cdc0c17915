package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// AnimationKey names an animation on a bird sprite.
type AnimationKey int

const (
	AnimFlap AnimationKey = iota // Normal wing beat
	AnimGlide                    // Wings held, used while dropping or carried
	AnimHover                    // Fast beat for the winner's hover
)

// BirdFrames is the number of frames in a generated bird sheet.
const BirdFrames = 2

// BirdAnimations maps each animation to its frame range on the bird sheet.
var BirdAnimations = map[AnimationKey]AnimationDef{
	AnimFlap:  {First: 0, Last: 1, Step: 1, Speed: 8},
	AnimGlide: {First: 0, Last: 0, Step: 1, Speed: 0},
	AnimHover: {First: 0, Last: 1, Step: 1, Speed: 4},
}

// AnimationFor picks the animation for a racer state.
func AnimationFor(state RacerStateID) AnimationKey {
	switch state {
	case RacerCelebrate:
		return AnimHover
	case RacerDropping, RacerCarried, RacerWaiting:
		return AnimGlide
	}
	return AnimFlap
}

package race

import (
	"math"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Racer is one player's bird. Terminal flags flip at most once, false to true.
type Racer struct {
	Index  int
	Name   string
	Sprite string
	Looper bool // Performs a loop trick during the race

	Finished bool
	Captured bool
	Winner   bool
	Loser    bool
	State    rc.RacerStateID

	// Base position (top-left) and the flair offsets drawn on top of it.
	X, Y             float64
	OffsetX, OffsetY float64
	Rotation         float64 // radians
	W, H             float64

	Duration  float64 // travel duration at time scale 1
	TimeScale float64

	laneY       float64
	travel      *gween.Tween
	travelDone  bool
	paused      bool
	seized      bool // out of finish eligibility, predator incoming
	swoop       *oscillator
	tilt        *oscillator
	ramp        *effect
	loop        *effect
	drop        *effect
	flight      *effect
	flightFromX float64
	flightFromY float64
	flightToX   float64
	flightToY   float64
	bob         *oscillator
	body        *resolv.Object
}

// ScreenX is the left edge as drawn, including flair.
func (r *Racer) ScreenX() float64 { return r.X + r.OffsetX }

// ScreenY is the top edge as drawn, including flair.
func (r *Racer) ScreenY() float64 { return r.Y + r.OffsetY }

// Right is the on-screen right edge used by finish detection.
func (r *Racer) Right() float64 { return r.ScreenX() + r.W }

// Active reports whether the racer can still cross the finish line.
func (r *Racer) Active() bool {
	return !r.Finished && !r.Captured && !r.seized && !r.Winner && !r.Loser
}

// Paused reports whether the racer's travel is frozen.
func (r *Racer) Paused() bool { return r.paused }

func (r *Racer) place(laneY float64, t rc.Tuning) {
	r.laneY = laneY
	r.X = 0
	r.Y = laneY
	r.W = t.RacerWidth
	r.H = t.RacerHeight
	r.TimeScale = 1
	r.State = rc.RacerWaiting
}

// prepare builds the paused travel tween and the swoop/tilt flair.
func (r *Racer) prepare(travelTo, laneSpacing float64, t rc.Tuning, rnd Rand) {
	r.Duration = t.BaseDuration * between(rnd, t.SpeedFactorMin, t.SpeedFactorMax)
	r.travel = gween.New(0, float32(travelTo), float32(r.Duration), ease.Linear)

	amplitude := between(rnd, t.SwoopAmplitudeMin*laneSpacing, t.SwoopAmplitudeMax*laneSpacing)
	period := t.SwoopPeriodBase + rnd.Float64()*t.SwoopPeriodJitter
	r.swoop = newOscillator(0, amplitude, period, ease.InOutSine)

	tiltTo := between(rnd, -t.TiltMaxDegrees, t.TiltMaxDegrees) * math.Pi / 180
	r.tilt = newOscillator(0, tiltTo, period, ease.InOutSine)
}

// release starts the travel motion.
func (r *Racer) release() {
	r.State = rc.RacerFlying
}

func (r *Racer) startSpeedRamp(to, duration float64) {
	r.ramp = newEffect(r.TimeScale, to, duration, ease.InOutSine)
}

func (r *Racer) startLoop(t rc.Tuning) {
	r.State = rc.RacerLooping
	r.loop = newEffect(0, 2*math.Pi*t.LoopRevolutions, t.LoopDuration, ease.InOutSine)
}

func (r *Racer) seize() {
	r.seized = true
	if r.State == rc.RacerFlying {
		r.State = rc.RacerSeized
	}
}

// advance moves the racer one tick. Only in-lane motion lives here; the
// finish and capture motions are driven by the session.
func (r *Racer) advance(dt float64, t rc.Tuning) {
	if r.ramp != nil {
		r.TimeScale = r.ramp.update(dt)
	}

	switch r.State {
	case rc.RacerFlying, rc.RacerLooping, rc.RacerSeized:
		if r.paused {
			return
		}
		x, done := r.travel.Update(float32(dt * r.TimeScale))
		r.X = float64(x)
		r.travelDone = done

		r.OffsetY = r.swoop.update(dt)
		r.Rotation = r.tilt.update(dt)
		r.OffsetX = 0
		if r.loop != nil && !r.loop.over {
			theta := r.loop.update(dt)
			r.OffsetX = t.LoopRadius * math.Sin(theta)
			r.OffsetY -= t.LoopRadius * (1 - math.Cos(theta))
			r.Rotation = -theta
		}
	case rc.RacerDropping:
		r.Y = r.drop.update(dt)
		r.Rotation += dt * 6
	case rc.RacerCelebrate:
		if r.flight != nil && !r.flight.over {
			p := r.flight.update(dt)
			r.X = r.flightFromX + (r.flightToX-r.flightFromX)*p
			r.Y = r.flightFromY + (r.flightToY-r.flightFromY)*p
		}
		if r.bob != nil {
			r.OffsetY = r.bob.update(dt)
		}
	}
}

// celebrate sends the winner to the podium above the announcement.
func (r *Racer) celebrate(centerX, centerY float64, t rc.Tuning) {
	r.State = rc.RacerCelebrate
	r.paused = true
	r.flightFromX, r.flightFromY = r.ScreenX(), r.ScreenY()
	r.X, r.Y = r.flightFromX, r.flightFromY
	r.OffsetX, r.OffsetY, r.Rotation = 0, 0, 0
	r.flightToX = centerX - r.W/2
	r.flightToY = centerY - t.CelebrateRise - r.H/2
	r.flight = newEffect(0, 1, t.CelebrateFlight, ease.InOutQuad)
}

func (r *Racer) startBob(t rc.Tuning) {
	r.bob = newOscillator(0, t.BobHeight, t.BobPeriod, ease.InOutSine)
}

// fall drops a loser below the bottom of the screen.
func (r *Racer) fall(screenHeight float64, t rc.Tuning) {
	r.State = rc.RacerDropping
	r.paused = true
	r.X, r.Y = r.ScreenX(), r.ScreenY()
	r.OffsetX, r.OffsetY = 0, 0
	r.drop = newEffect(r.Y, screenHeight+r.H+40, t.DropDuration, ease.InQuad)
}

package race

import (
	rc "github.com/automoto/pecking-order/shared/raceconfig"
	"github.com/tanema/gween/ease"
)

// PredatorPhase is where the predator is in its single capture run.
type PredatorPhase int

const (
	PredatorPerched  PredatorPhase = iota // Off screen, not yet launched
	PredatorHunting                       // Homing onto the target
	PredatorCarrying                      // Leaving with the target
	PredatorGone                          // Capture complete
)

// Predator snatches at most one racer per race.
type Predator struct {
	Sprite string
	Phase  PredatorPhase
	Target *Racer

	X, Y float64
	W, H float64

	fromX, fromY float64
	intercept    *effect
	carry        *effect
	carryFromX   float64
	carryFromY   float64
	carryToX     float64
	carryToY     float64
}

func newPredator(perchX, perchY float64, t rc.Tuning) *Predator {
	return &Predator{
		Sprite: rc.PredatorSprite,
		X:      perchX,
		Y:      perchY,
		W:      t.RacerWidth * 1.25,
		H:      t.RacerHeight * 1.25,
	}
}

// Visible reports whether the predator is on its way in or out.
func (p *Predator) Visible() bool {
	return p.Phase == PredatorHunting || p.Phase == PredatorCarrying
}

func (p *Predator) hunt(target *Racer, t rc.Tuning) {
	p.Target = target
	p.Phase = PredatorHunting
	p.fromX, p.fromY = p.X, p.Y
	p.intercept = newEffect(0, 1, t.InterceptDuration, ease.OutQuad)
	target.seize()
}

// aim is where the predator must be to grab the target: talons over its back.
func (p *Predator) aim() (float64, float64) {
	r := p.Target
	return r.ScreenX() + (r.W-p.W)/2, r.ScreenY() - p.H*0.6
}

func (p *Predator) update(dt float64) {
	switch p.Phase {
	case PredatorHunting:
		progress := p.intercept.update(dt)
		tx, ty := p.aim()
		p.X = p.fromX + (tx-p.fromX)*progress
		p.Y = p.fromY + (ty-p.fromY)*progress
	case PredatorCarrying:
		progress := p.carry.update(dt)
		p.X = p.carryFromX + (p.carryToX-p.carryFromX)*progress
		p.Y = p.carryFromY + (p.carryToY-p.carryFromY)*progress
		r := p.Target
		r.X = p.X - (r.W-p.W)/2
		r.Y = p.Y + p.H*0.6
	}
}

// strike freezes the target and starts the carry off the top of the screen.
func (p *Predator) strike(width float64, t rc.Tuning) {
	r := p.Target
	r.paused = true
	r.State = rc.RacerCarried
	r.X, r.Y = r.ScreenX(), r.ScreenY()
	r.OffsetX, r.OffsetY, r.Rotation = 0, 0, 0

	p.X, p.Y = p.aim()
	p.Phase = PredatorCarrying
	p.carryFromX, p.carryFromY = p.X, p.Y
	p.carryToX = p.X + width*0.25
	p.carryToY = -t.CarryRise - p.H
	p.carry = newEffect(0, 1, t.CarryDuration, ease.InQuad)
}

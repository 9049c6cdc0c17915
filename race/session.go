package race

import (
	"errors"
	"log"
	"math"
	"time"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
)

var ErrAlreadyStarted = errors.New("race: session already started")

// Options configures one race. Width and Height are the logical screen size.
type Options struct {
	Width, Height float64
	Tuning        rc.Tuning
	Catalog       []string
	// Where the predator waits before it launches, usually off screen.
	PerchX, PerchY float64
	Rand           Rand
}

// DefaultOptions returns stock tuning for a screen of the given size with a
// time-seeded random source.
func DefaultOptions(width, height float64) Options {
	t := rc.DefaultTuning()
	return Options{
		Width:   width,
		Height:  height,
		Tuning:  t,
		Catalog: rc.SpriteCatalog,
		PerchX:  width + t.RacerWidth,
		PerchY:  -t.RacerHeight * 2,
	}
}

// Session is one race, from name entry to the final standings. It is
// advanced by Update with a fixed tick and is discarded afterwards; its start
// latch never reopens.
type Session struct {
	opts Options
	t    rc.Tuning
	rnd  Rand

	started bool
	state   rc.RaceStateID
	clock   float64
	goAt    float64

	racers      []*Racer
	laneSpacing float64
	order       *FinishOrder
	detector    *FinishDetector
	predator    *Predator
	winner      *Racer
	countdown   string

	timeline timeline
	events   []Event
}

func NewSession(opts Options) *Session {
	if opts.Catalog == nil {
		opts.Catalog = rc.SpriteCatalog
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(time.Now().UnixNano())
	}
	return &Session{
		opts:  opts,
		t:     opts.Tuning,
		rnd:   opts.Rand,
		state: rc.RaceStateIdle,
	}
}

// LaneSpacing is the vertical distance between lanes for n racers.
func LaneSpacing(height float64, n int, t rc.Tuning) float64 {
	if n <= 0 {
		return t.LaneMaxSpacing
	}
	return math.Min(t.LaneMaxSpacing, (height-t.TrackTopMargin)/float64(n))
}

// Start builds the roster and begins the countdown. With no usable names the
// session stays idle and can be started again; once a race has begun every
// further call returns ErrAlreadyStarted.
func (s *Session) Start(inputs []string) error {
	if s.started {
		return ErrAlreadyStarted
	}

	racers, err := BuildRoster(inputs, s.t.MaxPlayers, s.opts.Catalog, s.rnd)
	if err != nil {
		return err
	}
	s.started = true
	s.racers = racers

	n := len(racers)
	s.order = NewFinishOrder(n)
	s.laneSpacing = LaneSpacing(s.opts.Height, n, s.t)
	s.detector = NewFinishDetector(s.opts.Width, s.opts.Height, s.opts.Width-s.t.FinishOffset, s.t)
	s.predator = newPredator(s.opts.PerchX, s.opts.PerchY, s.t)

	travelTo := s.opts.Width - s.t.TrackInset
	for i, r := range racers {
		r.place(s.t.TrackTopMargin+float64(i)*s.laneSpacing, s.t)
		r.prepare(travelTo, s.laneSpacing, s.t, s.rnd)
		s.detector.Track(r)
	}

	s.state = rc.RaceStateCountdown
	s.scheduleCountdown()
	s.scheduleFlair()
	s.timeline.run(s.clock)
	return nil
}

func (s *Session) scheduleCountdown() {
	labels := s.t.CountdownLabels
	last := len(labels) - 1
	s.goAt = float64(last) * s.t.CountdownInterval

	for i, label := range labels {
		label := label
		if i == last {
			s.timeline.schedule(s.goAt, func() { s.release(label) })
			continue
		}
		s.timeline.schedule(float64(i)*s.t.CountdownInterval, func() {
			s.countdown = label
			s.emit(Event{Kind: EventCountdown, Label: label})
		})
	}
	s.timeline.schedule(s.goAt+s.t.CountdownInterval, func() { s.countdown = "" })
}

// scheduleFlair draws every random race decision up front, racer by racer,
// so a seed fully determines the race.
func (s *Session) scheduleFlair() {
	for _, r := range s.racers {
		r := r
		if chance(s.rnd, s.t.SpeedChangeChance) {
			at := s.goAt + between(s.rnd, s.t.SpeedChangeDelayMin, s.t.SpeedChangeDelayMax)
			m := s.drawMultiplier()
			s.timeline.schedule(at, func() { s.changeSpeed(r, m) })
		}
		if chance(s.rnd, s.t.LoopChance) {
			r.Looper = true
			at := s.goAt + between(s.rnd, s.t.LoopStartMin, s.t.LoopStartMax)*r.Duration
			s.timeline.schedule(at, func() { s.loop(r) })
		}
	}

	if chance(s.rnd, s.t.CaptureChance) {
		at := s.goAt + between(s.rnd, s.t.CaptureDelayMin, s.t.CaptureDelayMax)
		s.timeline.schedule(at, s.launchPredator)
	}
}

// drawMultiplier redraws until the multiplier is far enough from 1. After
// the allowed redraws the last draw is pushed out to the margin.
func (s *Session) drawMultiplier() float64 {
	m := 1.0
	for i := 0; i < s.t.SpeedMultiplierDraws; i++ {
		m = between(s.rnd, s.t.SpeedMultiplierMin, s.t.SpeedMultiplierMax)
		if math.Abs(m-1) >= s.t.SpeedMultiplierMargin {
			return m
		}
	}
	if m >= 1 {
		return 1 + s.t.SpeedMultiplierMargin
	}
	return 1 - s.t.SpeedMultiplierMargin
}

func (s *Session) release(label string) {
	s.countdown = label
	s.state = rc.RaceStateRacing
	for _, r := range s.racers {
		r.release()
	}
	s.emit(Event{Kind: EventGo, Label: label})
}

func (s *Session) changeSpeed(r *Racer, m float64) {
	if r.paused || r.Finished {
		return
	}
	r.startSpeedRamp(m, s.t.SpeedRampDuration)
	s.emit(Event{Kind: EventSpeedChange, Racer: r, Value: m})
}

func (s *Session) loop(r *Racer) {
	if r.State != rc.RacerFlying {
		return
	}
	r.startLoop(s.t)
	s.emit(Event{Kind: EventLoop, Racer: r})
}

// launchPredator picks its target among racers still in the running. With
// nobody left the capture is dropped.
func (s *Session) launchPredator() {
	if s.state != rc.RaceStateRacing {
		return
	}
	var candidates []*Racer
	for _, r := range s.racers {
		if r.Active() {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return
	}

	target := candidates[s.rnd.Intn(len(candidates))]
	s.detector.Untrack(target)
	s.predator.hunt(target, s.t)
	s.emit(Event{Kind: EventPredatorAppears, Racer: target})
}

// Update advances the race by dt seconds.
func (s *Session) Update(dt float64) {
	if !s.started {
		return
	}
	s.clock += dt
	s.timeline.run(s.clock)
	if s.state == rc.RaceStateCountdown {
		return
	}

	for _, r := range s.racers {
		r.advance(dt, s.t)
	}
	s.predator.update(dt)
	s.pollEffects()

	if s.state == rc.RaceStateRacing {
		s.detectFinishes()
		if s.order.Complete() {
			s.state = rc.RaceStateFinished
			s.emit(Event{Kind: EventFinished, Results: s.order.Results()})
		}
	}
}

// pollEffects reacts to every effect that completed this tick.
func (s *Session) pollEffects() {
	for _, r := range s.racers {
		switch r.State {
		case rc.RacerLooping:
			if completed(r.loop) {
				r.State = rc.RacerFlying
				if r.seized {
					r.State = rc.RacerSeized
				}
			}
		case rc.RacerDropping:
			if completed(r.drop) {
				r.State = rc.RacerDone
				r.Finished = true
				s.appendFinisher(r, false)
				s.emit(Event{Kind: EventDropped, Racer: r})
			}
		case rc.RacerCelebrate:
			if r.bob == nil && completed(r.flight) {
				r.startBob(s.t)
			}
		}
	}

	p := s.predator
	switch p.Phase {
	case PredatorHunting:
		if completed(p.intercept) {
			p.strike(s.opts.Width, s.t)
			s.emit(Event{Kind: EventStrike, Racer: p.Target})
		}
	case PredatorCarrying:
		if completed(p.carry) {
			p.Phase = PredatorGone
			r := p.Target
			r.State = rc.RacerDone
			r.Captured = true
			r.Finished = true
			s.appendFinisher(r, true)
			s.emit(Event{Kind: EventCaptured, Racer: r})
		}
	}
}

func (s *Session) detectFinishes() {
	for _, r := range s.detector.Crossed(s.racers) {
		s.detector.Untrack(r)
		if s.winner == nil {
			s.winner = r
			r.Winner = true
			r.Finished = true
			s.appendFinisher(r, false)
			r.celebrate(s.opts.Width/2, s.opts.Height/2, s.t)
			s.emit(Event{Kind: EventWinner, Racer: r})
			continue
		}
		r.Loser = true
		r.fall(s.opts.Height, s.t)
		s.emit(Event{Kind: EventLoser, Racer: r})
	}
}

func (s *Session) appendFinisher(r *Racer, captured bool) {
	if err := s.order.Append(r.Index, r.Name, captured); err != nil {
		log.Printf("[race] Warning: %v", err)
	}
}

func (s *Session) emit(e Event) {
	e.At = s.clock
	s.events = append(s.events, e)
}

// Drain returns and clears the events queued since the last call.
func (s *Session) Drain() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Session) State() rc.RaceStateID { return s.state }
func (s *Session) Started() bool         { return s.started }
func (s *Session) Racers() []*Racer      { return s.racers }
func (s *Session) Predator() *Predator   { return s.predator }
func (s *Session) Winner() *Racer        { return s.winner }
func (s *Session) Elapsed() float64      { return s.clock }
func (s *Session) Tuning() rc.Tuning     { return s.t }
func (s *Session) Width() float64        { return s.opts.Width }
func (s *Session) Height() float64       { return s.opts.Height }

// Countdown is the overlay label currently showing, empty once it clears.
func (s *Session) Countdown() string { return s.countdown }

// Threshold is the finish line X coordinate.
func (s *Session) Threshold() float64 { return s.opts.Width - s.t.FinishOffset }

// LaneSpacing is the lane layout of the running race.
func (s *Session) LaneSpacing() float64 { return s.laneSpacing }

// Order is the live finish order, nil before the race starts.
func (s *Session) Order() *FinishOrder { return s.order }

// Results is the final standings, nil until the race finishes.
func (s *Session) Results() []Result {
	if s.state != rc.RaceStateFinished {
		return nil
	}
	return s.order.Results()
}

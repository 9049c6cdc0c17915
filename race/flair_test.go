package race

import (
	"math"
	"testing"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
)

func flairOptions(rnd Rand, speedChance, loopChance float64) Options {
	opts := noCapture(testOptions(rnd))
	t := opts.Tuning
	t.SpeedChangeChance = speedChance
	t.LoopChance = loopChance
	opts.Tuning = t
	return opts
}

// runUntil ticks the session until its clock reaches at.
func runUntil(s *Session, at float64) []Event {
	var events []Event
	for s.Elapsed() < at {
		s.Update(1.0 / TickRate)
		events = append(events, s.Drain()...)
	}
	return events
}

func TestLoopTrickTiming(t *testing.T) {
	s := NewSession(flairOptions(&fixedRand{floats: []float64{0.5}}, 0, 1))
	if err := s.Start([]string{"Ada"}); err != nil {
		t.Fatal(err)
	}
	r := s.Racers()[0]
	if !r.Looper {
		t.Fatal("racer should be a looper")
	}

	tn := s.Tuning()
	goAt := float64(len(tn.CountdownLabels)-1) * tn.CountdownInterval
	frac := tn.LoopStartMin + 0.5*(tn.LoopStartMax-tn.LoopStartMin)
	want := goAt + frac*r.Duration

	events := runUntil(s, want+tn.LoopDuration/2)
	loops := eventsOf(events, EventLoop)
	if len(loops) != 1 {
		t.Fatalf("%d loop events, want 1", len(loops))
	}
	if math.Abs(loops[0].At-want) > 1.5/TickRate {
		t.Fatalf("loop at %v, want %v", loops[0].At, want)
	}
	if r.State != rc.RacerLooping {
		t.Fatalf("state mid-loop = %v", r.State)
	}

	runUntil(s, want+tn.LoopDuration+2.0/TickRate)
	if r.State != rc.RacerFlying {
		t.Fatalf("state after loop = %v, want flying", r.State)
	}
	if r.OffsetX != 0 {
		t.Fatalf("loop offset left behind: %v", r.OffsetX)
	}
}

func TestLoopSkippedUnlessFlying(t *testing.T) {
	s := NewSession(flairOptions(&fixedRand{floats: []float64{0.5}}, 0, 0))
	if err := s.Start([]string{"Ada", "Lin", "Bo"}); err != nil {
		t.Fatal(err)
	}
	runUntil(s, 4)
	s.Drain()

	racers := s.Racers()
	racers[0].seize()
	racers[1].fall(s.Height(), s.Tuning())
	racers[2].celebrate(s.Width()/2, s.Height()/2, s.Tuning())

	for _, r := range racers {
		before := r.State
		s.loop(r)
		if r.State != before || r.loop != nil {
			t.Errorf("%s: loop started from %v", r.Name, before)
		}
	}
	if got := eventsOf(s.Drain(), EventLoop); len(got) != 0 {
		t.Fatalf("%d loop events, want none", len(got))
	}
}

func TestSpeedChangeRampsToMultiplier(t *testing.T) {
	// 0.9 everywhere: delay 2+0.9*3 s after Go, multiplier 0.7+0.9*0.9.
	s := NewSession(flairOptions(&fixedRand{floats: []float64{0.9}}, 1, 0))
	if err := s.Start([]string{"Ada"}); err != nil {
		t.Fatal(err)
	}
	r := s.Racers()[0]

	tn := s.Tuning()
	goAt := float64(len(tn.CountdownLabels)-1) * tn.CountdownInterval
	at := goAt + tn.SpeedChangeDelayMin + 0.9*(tn.SpeedChangeDelayMax-tn.SpeedChangeDelayMin)
	wantM := tn.SpeedMultiplierMin + 0.9*(tn.SpeedMultiplierMax-tn.SpeedMultiplierMin)

	events := runUntil(s, at+2.0/TickRate)
	changes := eventsOf(events, EventSpeedChange)
	if len(changes) != 1 {
		t.Fatalf("%d speed change events, want 1", len(changes))
	}
	if math.Abs(changes[0].At-at) > 1.5/TickRate {
		t.Fatalf("speed change at %v, want %v", changes[0].At, at)
	}
	if math.Abs(changes[0].Value-wantM) > 1e-9 {
		t.Fatalf("multiplier = %v, want %v", changes[0].Value, wantM)
	}
	if r.TimeScale <= 1 || r.TimeScale >= wantM {
		t.Fatalf("time scale mid-ramp = %v, want between 1 and %v", r.TimeScale, wantM)
	}

	runUntil(s, at+tn.SpeedRampDuration+2.0/TickRate)
	if math.Abs(r.TimeScale-wantM) > 1e-6 {
		t.Fatalf("time scale after ramp = %v, want %v", r.TimeScale, wantM)
	}
	if !r.Active() {
		t.Fatal("racer finished before the ramp completed")
	}
}

func TestSpeedChangeIgnoredWhenStopped(t *testing.T) {
	s := NewSession(flairOptions(&fixedRand{floats: []float64{0.5}}, 0, 0))
	if err := s.Start([]string{"Ada", "Lin"}); err != nil {
		t.Fatal(err)
	}
	runUntil(s, 4)
	s.Drain()

	paused, finished := s.Racers()[0], s.Racers()[1]
	paused.paused = true
	finished.Finished = true

	for _, r := range []*Racer{paused, finished} {
		s.changeSpeed(r, 1.5)
		if r.ramp != nil || r.TimeScale != 1 {
			t.Errorf("%s: ramp started, time scale %v", r.Name, r.TimeScale)
		}
	}
	if got := eventsOf(s.Drain(), EventSpeedChange); len(got) != 0 {
		t.Fatalf("%d speed change events, want none", len(got))
	}
}

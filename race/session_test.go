package race

import (
	"errors"
	"math"
	"testing"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
)

func TestStartWithNoNamesStaysIdle(t *testing.T) {
	s := NewSession(testOptions(NewRand(1)))
	if err := s.Start([]string{"", "   "}); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("err = %v, want ErrEmptyRoster", err)
	}
	if s.State() != rc.RaceStateIdle || s.Started() {
		t.Fatalf("state = %v started = %v, want idle and open", s.State(), s.Started())
	}
	s.Update(5)
	if s.State() != rc.RaceStateIdle {
		t.Fatalf("state after update = %v", s.State())
	}
	// The latch is still open, so a corrected form can start the race.
	if err := s.Start([]string{"Ada"}); err != nil {
		t.Fatalf("second start: %v", err)
	}
	if s.State() != rc.RaceStateCountdown {
		t.Fatalf("state = %v, want countdown", s.State())
	}
}

func TestDoubleStartIsRejected(t *testing.T) {
	s := NewSession(testOptions(NewRand(1)))
	if err := s.Start([]string{"Ada", "Lin"}); err != nil {
		t.Fatal(err)
	}
	racers := s.Racers()
	if err := s.Start([]string{"Eve"}); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("err = %v, want ErrAlreadyStarted", err)
	}
	if len(s.Racers()) != len(racers) || s.Racers()[0] != racers[0] {
		t.Fatal("second start changed the roster")
	}
}

func TestCountdownSequence(t *testing.T) {
	s := NewSession(noCapture(testOptions(NewRand(3))))
	if err := s.Start([]string{"Ada", "Lin"}); err != nil {
		t.Fatal(err)
	}

	var labels []string
	var times []float64
	collect := func() {
		for _, e := range s.Drain() {
			if e.Kind == EventCountdown || e.Kind == EventGo {
				labels = append(labels, e.Label)
				times = append(times, e.At)
			}
		}
	}
	collect()
	if s.Countdown() != "3" {
		t.Fatalf("Countdown() = %q right after start, want 3", s.Countdown())
	}

	for s.State() == rc.RaceStateCountdown {
		for _, r := range s.Racers() {
			if r.X != 0 || r.State != rc.RacerWaiting {
				t.Fatalf("racer %s moved during countdown", r.Name)
			}
		}
		s.Update(1.0 / TickRate)
		collect()
	}

	want := []string{"3", "2", "1", "Go!"}
	if len(labels) != len(want) {
		t.Fatalf("labels = %q, want %q", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Fatalf("labels = %q, want %q", labels, want)
		}
		if math.Abs(times[i]-float64(i)) > 1.5/TickRate {
			t.Fatalf("label %q at %.3fs, want ~%ds", labels[i], times[i], i)
		}
	}
	if s.State() != rc.RaceStateRacing {
		t.Fatalf("state after Go = %v", s.State())
	}

	for i := 0; i < TickRate+2; i++ {
		s.Update(1.0 / TickRate)
	}
	if s.Countdown() != "" {
		t.Fatalf("overlay still showing %q", s.Countdown())
	}
}

func TestLaneLayout(t *testing.T) {
	tn := rc.DefaultTuning()
	if got := LaneSpacing(600, 2, tn); got != 120 {
		t.Fatalf("two racers: spacing %v, want capped 120", got)
	}
	if got := LaneSpacing(460, 5, tn); got != 80 {
		t.Fatalf("five racers on a short screen: spacing %v, want 80", got)
	}

	s := NewSession(testOptions(NewRand(1)))
	s.Start([]string{"a", "b", "c"})
	for i, r := range s.Racers() {
		want := tn.TrackTopMargin + float64(i)*s.LaneSpacing()
		if r.Y != want {
			t.Fatalf("racer %d lane y = %v, want %v", i, r.Y, want)
		}
	}
	if s.Threshold() != 800-tn.FinishOffset {
		t.Fatalf("threshold = %v", s.Threshold())
	}
}

func TestAdaLinWithoutCapture(t *testing.T) {
	s := NewSession(noCapture(testOptions(&fixedRand{})))
	events := runToEnd(t, s, []string{"Ada", "Lin"})

	if n := s.Order().Len(); n != 2 {
		t.Fatalf("order length = %d, want 2", n)
	}
	got := Lines(s.Results())
	if len(got) != 2 || got[0] != "1. Ada" || got[1] != "2. Lin" {
		t.Fatalf("results = %q", got)
	}
	for _, r := range s.Results() {
		if r.Captured {
			t.Fatalf("unexpected captured entry %+v", r)
		}
	}
	if len(eventsOf(events, EventPredatorAppears)) != 0 {
		t.Fatal("predator appeared with capture disabled")
	}

	// Identical racers cross on the same tick: roster order breaks the tie.
	if w := s.Winner(); w == nil || w.Name != "Ada" {
		t.Fatalf("winner = %+v, want Ada", w)
	}
	lin := s.Racers()[1]
	if !lin.Loser || !lin.Finished || lin.Captured {
		t.Fatalf("Lin flags = %+v", lin)
	}
	if len(eventsOf(events, EventDropped)) != 1 {
		t.Fatal("loser never finished dropping")
	}
}

func TestLinCapturedBeforeAnyoneFinishes(t *testing.T) {
	rnd := &fixedRand{pick: func(n int) int { return 1 }}
	s := NewSession(alwaysCapture(testOptions(rnd)))
	events := runToEnd(t, s, []string{"Ada", "Lin", "Bo"})

	captured := eventsOf(events, EventCaptured)
	if len(captured) != 1 || captured[0].Racer.Name != "Lin" {
		t.Fatalf("captured events = %+v", captured)
	}
	if first := s.Order().Names()[0]; first != "Lin" {
		t.Fatalf("Lin should have been appended first, order = %q", s.Order().Names())
	}

	res := s.Results()
	if last := res[len(res)-1]; last.Name != "Lin" || !last.Captured {
		t.Fatalf("last result = %+v, want captured Lin", last)
	}
	lin := s.Racers()[1]
	if !lin.Captured || !lin.Finished || lin.Winner || lin.Loser {
		t.Fatalf("Lin flags = %+v", lin)
	}
	if s.Predator().Phase != PredatorGone {
		t.Fatalf("predator phase = %v", s.Predator().Phase)
	}

	// Strike comes after the predator appears and before the capture lands.
	appear := eventsOf(events, EventPredatorAppears)[0].At
	strike := eventsOf(events, EventStrike)[0].At
	if !(appear < strike && strike < captured[0].At) {
		t.Fatalf("capture timeline out of order: %v %v %v", appear, strike, captured[0].At)
	}
}

func TestCaptureTargetCannotFinish(t *testing.T) {
	rnd := &fixedRand{pick: func(n int) int { return 0 }}
	s := NewSession(alwaysCapture(testOptions(rnd)))
	events := runToEnd(t, s, []string{"Ada", "Lin"})

	for _, e := range eventsOf(events, EventWinner) {
		if e.Racer.Name == "Ada" {
			t.Fatal("seized racer crossed the finish line")
		}
	}
	if w := s.Winner(); w == nil || w.Name != "Lin" {
		t.Fatalf("winner = %+v, want Lin", w)
	}
}

func TestSpeedMultiplierKeepsMargin(t *testing.T) {
	tn := rc.DefaultTuning()

	// 0.35 maps to 0.7 + 0.35*0.9 = 1.015, too close to 1.
	s := NewSession(Options{Tuning: tn, Rand: &fixedRand{floats: []float64{0.35, 0.35, 0.35, 0.35, 0.35, 0.35, 0.35, 0.35, 0.9}}})
	if m := s.drawMultiplier(); m != 1+tn.SpeedMultiplierMargin {
		t.Fatalf("forced multiplier = %v, want %v", m, 1+tn.SpeedMultiplierMargin)
	}

	s = NewSession(Options{Tuning: tn, Rand: &fixedRand{floats: []float64{0.35, 0.9}}})
	m := s.drawMultiplier()
	if want := 0.7 + 0.9*0.9; math.Abs(m-want) > 1e-9 {
		t.Fatalf("redrawn multiplier = %v, want %v", m, want)
	}
}

func TestRandomRacesAlwaysComplete(t *testing.T) {
	rosters := [][]string{
		{"Ada"},
		{"Ada", "Lin"},
		{"Ada", "Lin", "Bo"},
		{"Ada", "Lin", "Bo", "Cy"},
		{"Ada", "Lin", "Bo", "Cy", "Di"},
		{"Sam", "Sam", "Sam"},
	}
	for seed := int64(0); seed < 120; seed++ {
		names := rosters[int(seed)%len(rosters)]
		opts := testOptions(NewRand(seed))
		if seed%2 == 0 {
			opts = alwaysCapture(opts)
		}
		s := NewSession(opts)
		events := runToEnd(t, s, names)

		if got := len(eventsOf(events, EventFinished)); got != 1 {
			t.Fatalf("seed %d: %d finished events", seed, got)
		}
		if s.Order().Len() != len(names) {
			t.Fatalf("seed %d: order length %d, want %d", seed, s.Order().Len(), len(names))
		}

		seenSprite := make(map[string]bool)
		for _, r := range s.Racers() {
			if seenSprite[r.Sprite] {
				t.Fatalf("seed %d: duplicate sprite %q", seed, r.Sprite)
			}
			seenSprite[r.Sprite] = true

			terminal := 0
			for _, f := range []bool{r.Winner, r.Loser, r.Captured} {
				if f {
					terminal++
				}
			}
			if terminal != 1 || !r.Finished {
				t.Fatalf("seed %d: racer %s ends in %d terminal states", seed, r.Name, terminal)
			}
		}

		res := s.Results()
		sawCaptured := false
		for _, r := range res {
			if r.Captured {
				sawCaptured = true
			} else if sawCaptured {
				t.Fatalf("seed %d: natural finisher after a captured one: %q", seed, Lines(res))
			}
		}
		if len(eventsOf(events, EventWinner)) > 1 {
			t.Fatalf("seed %d: more than one winner", seed)
		}
	}
}

func TestFinishedSessionKeepsAnimatingWinner(t *testing.T) {
	s := NewSession(noCapture(testOptions(&fixedRand{})))
	runToEnd(t, s, []string{"Ada"})
	w := s.Winner()
	for i := 0; i < TickRate*3; i++ {
		s.Update(1.0 / TickRate)
	}
	if w.State != rc.RacerCelebrate {
		t.Fatalf("winner state = %v", w.State)
	}
	wantY := s.Height()/2 - s.Tuning().CelebrateRise - w.H/2
	if math.Abs(w.Y-wantY) > 0.5 {
		t.Fatalf("winner y = %v, want podium %v", w.Y, wantY)
	}
	if w.bob == nil {
		t.Fatal("winner never started bobbing")
	}
}

package race

import "testing"

// fixedRand returns scripted floats (the last one repeats), picks pick(n)
// for Intn and never reorders on Shuffle.
type fixedRand struct {
	floats []float64
	next   int
	pick   func(n int) int
}

func (f *fixedRand) Float64() float64 {
	if len(f.floats) == 0 {
		return 0.5
	}
	v := f.floats[f.next]
	if f.next < len(f.floats)-1 {
		f.next++
	}
	return v
}

func (f *fixedRand) Intn(n int) int {
	if f.pick != nil {
		return f.pick(n)
	}
	return n - 1
}

func (f *fixedRand) Shuffle(n int, swap func(i, j int)) {}

func testOptions(rnd Rand) Options {
	opts := DefaultOptions(800, 600)
	opts.Rand = rnd
	return opts
}

func noCapture(opts Options) Options {
	t := opts.Tuning
	t.CaptureChance = 0
	opts.Tuning = t
	return opts
}

func alwaysCapture(opts Options) Options {
	t := opts.Tuning
	t.CaptureChance = 1
	opts.Tuning = t
	return opts
}

func runToEnd(t *testing.T, s *Session, names []string) []Event {
	t.Helper()
	events, err := Simulate(s, names, TickRate*60)
	if err != nil {
		t.Fatalf("Simulate(%v): %v", names, err)
	}
	return events
}

func eventsOf(events []Event, kind EventKind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}

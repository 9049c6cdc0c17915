package race

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateFinisher = errors.New("race: racer already in finish order")
	ErrOrderFull         = errors.New("race: finish order is full")
)

// FinishOrder is the append-only arrival list. It never grows past the
// roster size and never holds a racer twice. Racers are keyed by roster
// index so two players may share a name.
type FinishOrder struct {
	size     int
	names    []string
	captured []bool
	seen     map[int]bool
}

func NewFinishOrder(size int) *FinishOrder {
	return &FinishOrder{
		size:  size,
		names: make([]string, 0, size),
		seen:  make(map[int]bool, size),
	}
}

// Append records a racer's arrival.
func (o *FinishOrder) Append(index int, name string, captured bool) error {
	if o.seen[index] {
		return fmt.Errorf("%w: %q", ErrDuplicateFinisher, name)
	}
	if len(o.names) >= o.size {
		return ErrOrderFull
	}
	o.seen[index] = true
	o.names = append(o.names, name)
	o.captured = append(o.captured, captured)
	return nil
}

func (o *FinishOrder) Len() int { return len(o.names) }

// Complete reports whether every racer has arrived.
func (o *FinishOrder) Complete() bool { return len(o.names) == o.size }

// Names returns a copy of the raw arrival order.
func (o *FinishOrder) Names() []string {
	return append([]string(nil), o.names...)
}

// Result is one line of the final standings.
type Result struct {
	Rank     int
	Name     string
	Captured bool
}

func (r Result) String() string {
	return fmt.Sprintf("%d. %s", r.Rank, r.Name)
}

// Results ranks every natural finisher in arrival order, then every captured
// racer in capture order.
func (o *FinishOrder) Results() []Result {
	out := make([]Result, 0, len(o.names))
	for pass := 0; pass < 2; pass++ {
		wantCaptured := pass == 1
		for i, name := range o.names {
			if o.captured[i] != wantCaptured {
				continue
			}
			out = append(out, Result{Rank: len(out) + 1, Name: name, Captured: wantCaptured})
		}
	}
	return out
}

// Lines renders results as "1. Ada".
func Lines(results []Result) []string {
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = r.String()
	}
	return lines
}

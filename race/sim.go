package race

import (
	"errors"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
)

// TickRate matches the game's fixed update rate.
const TickRate = 60

var ErrStalled = errors.New("race: did not finish within the tick limit")

// Simulate starts s and advances it at TickRate until it finishes, returning
// every event in order. maxTicks bounds runaway races.
func Simulate(s *Session, inputs []string, maxTicks int) ([]Event, error) {
	if err := s.Start(inputs); err != nil {
		return nil, err
	}

	events := s.Drain()
	dt := 1.0 / TickRate
	for i := 0; i < maxTicks; i++ {
		s.Update(dt)
		events = append(events, s.Drain()...)
		if s.State() == rc.RaceStateFinished {
			return events, nil
		}
	}
	return events, ErrStalled
}

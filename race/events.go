package race

// EventKind identifies something the presentation layer may want to react to
// with a sound, an overlay or particles.
type EventKind int

const (
	EventCountdown       EventKind = iota // Label holds "3", "2" or "1"
	EventGo                               // Label holds "Go!", motion starts
	EventSpeedChange                      // Value holds the new multiplier
	EventLoop                             // Racer starts a loop trick
	EventPredatorAppears                  // Racer is the chosen target
	EventStrike                           // Predator reached the target
	EventCaptured                         // Carry finished, racer appended
	EventWinner                           // First crossing
	EventLoser                            // Later crossing, drop starts
	EventDropped                          // Drop finished, racer appended
	EventFinished                         // Every racer accounted for
)

func (k EventKind) String() string {
	switch k {
	case EventCountdown:
		return "countdown"
	case EventGo:
		return "go"
	case EventSpeedChange:
		return "speed-change"
	case EventLoop:
		return "loop"
	case EventPredatorAppears:
		return "predator"
	case EventStrike:
		return "strike"
	case EventCaptured:
		return "captured"
	case EventWinner:
		return "winner"
	case EventLoser:
		return "loser"
	case EventDropped:
		return "dropped"
	case EventFinished:
		return "finished"
	}
	return "unknown"
}

// Event is one observable step of a race.
type Event struct {
	Kind    EventKind
	At      float64 // Session clock, seconds since Start
	Label   string
	Racer   *Racer
	Value   float64
	Results []Result
}

package animations

// Animation steps through a frame range at a fixed number of ticks per
// frame. A speed of 0 holds the first frame.
type Animation struct {
	First        int
	Last         int
	Step         int     // how many indices do we move per frame
	SpeedInTps   float32 // how many ticks before next frame
	frameCounter float32
	frame        int
	Looped       bool
}

func (a *Animation) Update() {
	if a.SpeedInTps <= 0 {
		a.frame = a.First
		return
	}
	a.frameCounter -= 1.0
	if a.frameCounter < 0.0 {
		a.frameCounter = a.SpeedInTps
		a.frame += a.Step
		if a.frame > a.Last {
			a.Looped = true
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.frameCounter = a.SpeedInTps
	a.Looped = false
}

// SetSpeed changes the tick rate without restarting the cycle.
func (a *Animation) SetSpeed(speed float32) {
	a.SpeedInTps = speed
	if a.frameCounter > speed {
		a.frameCounter = speed
	}
}

func NewAnimation(first, last, step int, speed float32) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		frameCounter: speed,
		frame:        first,
	}
}

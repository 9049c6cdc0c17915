package race

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// effect is a single eased value change with a completion signal. The done
// channel is closed exactly once, on the tick the tween reaches its end.
type effect struct {
	tween *gween.Tween
	value float64
	done  chan struct{}
	over  bool
}

func newEffect(from, to, duration float64, easing ease.TweenFunc) *effect {
	return &effect{
		tween: gween.New(float32(from), float32(to), float32(duration), easing),
		value: from,
		done:  make(chan struct{}),
	}
}

func (e *effect) update(dt float64) float64 {
	if e.over {
		return e.value
	}
	v, finished := e.tween.Update(float32(dt))
	e.value = float64(v)
	if finished {
		e.over = true
		close(e.done)
	}
	return e.value
}

// Done is closed when the effect completes.
func (e *effect) Done() <-chan struct{} {
	return e.done
}

// completed polls a completion signal without blocking.
func completed(e *effect) bool {
	if e == nil {
		return false
	}
	select {
	case <-e.Done():
		return true
	default:
		return false
	}
}

// oscillator swings between two values forever, easing each half swing.
type oscillator struct {
	seq      *gween.Sequence
	from, to float32
	half     float32
	easing   ease.TweenFunc
	value    float64
}

func newOscillator(from, to, half float64, easing ease.TweenFunc) *oscillator {
	o := &oscillator{
		from:   float32(from),
		to:     float32(to),
		half:   float32(half),
		easing: easing,
		value:  from,
	}
	o.seq = gween.NewSequence()
	o.seq.Add(
		gween.New(o.from, o.to, o.half, easing),
		gween.New(o.to, o.from, o.half, easing),
	)
	return o
}

func (o *oscillator) update(dt float64) float64 {
	v, _, cycled := o.seq.Update(float32(dt))
	o.value = float64(v)
	if cycled {
		o.seq.Reset()
	}
	return o.value
}

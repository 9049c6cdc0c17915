package race

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestEffectSignalsOnce(t *testing.T) {
	e := newEffect(0, 10, 1, ease.Linear)
	if completed(e) {
		t.Fatal("completed before running")
	}
	e.update(0.5)
	if completed(e) {
		t.Fatal("completed halfway")
	}
	if v := e.update(0.6); v != 10 {
		t.Fatalf("value = %v, want 10", v)
	}
	if !completed(e) {
		t.Fatal("not completed after its duration")
	}
	// Further updates must not close the channel again.
	e.update(1)
	if !completed(e) {
		t.Fatal("completion lost")
	}
}

func TestCompletedNil(t *testing.T) {
	if completed(nil) {
		t.Fatal("nil effect reported complete")
	}
}

func TestOscillatorStaysInRange(t *testing.T) {
	o := newOscillator(0, 20, 0.5, ease.InOutSine)
	for i := 0; i < 600; i++ {
		v := o.update(1.0 / 60)
		if v < -0.001 || v > 20.001 {
			t.Fatalf("tick %d: value %v out of [0, 20]", i, v)
		}
	}
}

package animations

import "testing"

func TestAnimationCyclesFrames(t *testing.T) {
	a := NewAnimation(0, 1, 1, 2)

	var frames []int
	for i := 0; i < 9; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}

	want := []int{0, 0, 1, 1, 1, 0, 0, 0, 1}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, want %v", frames, want)
		}
	}
	if !a.Looped {
		t.Error("Looped should be set after wrapping")
	}
}

func TestAnimationZeroSpeedHolds(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0)
	for i := 0; i < 10; i++ {
		a.Update()
		if a.Frame() != 0 {
			t.Fatalf("frame %d at tick %d, want 0", a.Frame(), i)
		}
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(0, 1, 1, 0.5)
	for i := 0; i < 5; i++ {
		a.Update()
	}
	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Errorf("after Restart frame=%d looped=%v, want 0 false", a.Frame(), a.Looped)
	}
}

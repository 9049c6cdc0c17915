package factory

import (
	"image/color"
	"math"
	"testing"

	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
)

func TestPlanCelebrationSplit(t *testing.T) {
	specs := PlanCelebration(cfg.Celebration, race.NewRand(7))
	if len(specs) != 120 {
		t.Fatalf("particles = %d, want 120", len(specs))
	}

	var feathers, eggs int
	for _, s := range specs {
		switch s.Kind {
		case components.ParticleFeather:
			feathers++
			if s.Distance < 250 || s.Distance > 600 || s.Duration != 3 {
				t.Errorf("feather out of range: %+v", s)
			}
			if s.ColorIdx >= len(cfg.Celebration.FeatherTint) {
				t.Errorf("feather color index %d out of range", s.ColorIdx)
			}
		case components.ParticleEgg:
			eggs++
			if s.Distance < 150 || s.Distance > 400 || s.Duration != 2 {
				t.Errorf("egg out of range: %+v", s)
			}
			if s.ColorIdx >= len(cfg.Celebration.EggColors) {
				t.Errorf("egg color index %d out of range", s.ColorIdx)
			}
		}
		if math.Abs(s.Spin) > 4*math.Pi+1e-9 {
			t.Errorf("spin %v exceeds two turns", s.Spin)
		}
		if s.EndScale < 1 || s.EndScale >= 2 {
			t.Errorf("end scale %v outside [1,2)", s.EndScale)
		}
	}
	if feathers != 72 || eggs != 48 {
		t.Errorf("feathers=%d eggs=%d, want 72 and 48", feathers, eggs)
	}
}

func TestPlanCelebrationSeeded(t *testing.T) {
	a := PlanCelebration(cfg.Celebration, race.NewRand(3))
	b := PlanCelebration(cfg.Celebration, race.NewRand(3))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs for the same seed", i)
		}
	}
}

func TestLerpColor(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 100, G: 100, B: 0, A: 255}
	if got := lerpColor(a, b, 0); got != a {
		t.Errorf("lerp at 0 = %v", got)
	}
	if got := lerpColor(a, b, 1); got != b {
		t.Errorf("lerp at 1 = %v", got)
	}
	if got := lerpColor(a, b, 0.5); got.R != 50 || got.B != 100 {
		t.Errorf("lerp at 0.5 = %v", got)
	}
}

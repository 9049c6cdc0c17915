package systems

import (
	"math"
	"testing"

	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
	"github.com/automoto/pecking-order/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func TestEventSound(t *testing.T) {
	cases := map[race.EventKind]cfg.SoundID{
		race.EventCountdown:       cfg.SoundCountdownTick,
		race.EventGo:              cfg.SoundGo,
		race.EventSpeedChange:     cfg.SoundSpeedChange,
		race.EventLoop:            cfg.SoundNone,
		race.EventPredatorAppears: cfg.SoundPredator,
		race.EventStrike:          cfg.SoundStrike,
		race.EventCaptured:        cfg.SoundNone,
		race.EventWinner:          cfg.SoundWinner,
		race.EventLoser:           cfg.SoundLoserDrop,
		race.EventDropped:         cfg.SoundNone,
		race.EventFinished:        cfg.SoundResults,
	}
	for kind, want := range cases {
		if got := eventSound(kind); got != want {
			t.Errorf("eventSound(%s) = %d, want %d", kind, got, want)
		}
	}
}

func TestCountdownColor(t *testing.T) {
	if got := countdownColor("3"); got != cfg.RaceHUD.CountdownColor {
		t.Errorf("countdownColor(3) = %v", got)
	}
	if got := countdownColor("Go!"); got != cfg.RaceHUD.GoColor {
		t.Errorf("countdownColor(Go!) = %v", got)
	}
}

func TestSyncCountdownOverlay(t *testing.T) {
	e := newTestECS()
	entry := factory.SpawnCountdownOverlay(e, "3")

	syncCountdownOverlay(e, "3")
	ov := components.Overlay.Get(entry)
	if ov.Pop != nil {
		t.Error("unchanged label should not pop")
	}

	syncCountdownOverlay(e, "2")
	if ov.Text != "2" || ov.Pop == nil || ov.Scale != countdownPop {
		t.Errorf("after label change: %+v", ov)
	}

	syncCountdownOverlay(e, "")
	if ov.Fade == nil {
		t.Fatal("cleared label should start the fade")
	}

	// Run the fade to completion; the overlay removes itself.
	ticks := int(cfg.RaceHUD.CountdownFade*float64(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateEffects(e)
	}
	if entry.Valid() {
		t.Error("countdown overlay should be removed after fading")
	}
}

func TestWinnerOverlayPops(t *testing.T) {
	e := newTestECS()
	entry := factory.SpawnWinnerOverlay(e, "Ada")
	ov := components.Overlay.Get(entry)
	if ov.Text != "Ada wins!" {
		t.Errorf("Text = %q", ov.Text)
	}

	for i := 0; i < cfg.C.TPS; i++ {
		UpdateEffects(e)
	}
	if ov.Pop != nil {
		t.Error("pop should settle within a second")
	}
	if math.Abs(ov.Scale-1) > 1e-3 {
		t.Errorf("settled scale = %v, want 1", ov.Scale)
	}
	if !entry.Valid() {
		t.Error("winner overlay should stay on screen")
	}
}

func TestApplyParticle(t *testing.T) {
	p := &components.ParticleData{
		OriginX: 100, OriginY: 50,
		TravelX: 200, TravelY: -100,
		Spin:       2,
		StartScale: 0.3,
		EndScale:   1.3,
	}
	s := &components.SpriteData{}

	applyParticle(p, s)
	if s.X != 100 || s.Y != 50 || s.Alpha != 1 || s.Scale != 0.3 {
		t.Errorf("at t=0: %+v", s)
	}

	p.T = 0.5
	applyParticle(p, s)
	if s.X != 200 || s.Y != 0 || s.Rotation != 1 || s.Alpha != 0.5 || math.Abs(s.Scale-0.8) > 1e-9 {
		t.Errorf("at t=0.5: %+v", s)
	}

	p.T = 1
	applyParticle(p, s)
	if s.Alpha != 0 || s.X != 300 {
		t.Errorf("at t=1: %+v", s)
	}
}

func TestAutoDestroy(t *testing.T) {
	e := newTestECS()
	entry := e.World.Entry(e.World.Create(components.AutoDestroy))
	components.AutoDestroy.SetValue(entry, components.AutoDestroyData{SecondsRemaining: 0.5})

	for i := 0; i < cfg.C.TPS/2-1; i++ {
		updateAutoDestroy(e, 1.0/float64(cfg.C.TPS))
	}
	if !entry.Valid() {
		t.Fatal("entity removed too early")
	}
	updateAutoDestroy(e, 1.0/float64(cfg.C.TPS))
	updateAutoDestroy(e, 1.0/float64(cfg.C.TPS))
	if entry.Valid() {
		t.Error("entity should be removed once its time runs out")
	}
}

func TestSyncState(t *testing.T) {
	s := &components.StateData{CurrentState: cfg.RacerWaiting, PreviousState: cfg.RacerWaiting}

	syncState(s, cfg.RacerWaiting)
	if s.Changed() || s.StateTimer != 1 {
		t.Errorf("same state: %+v", s)
	}

	syncState(s, cfg.RacerFlying)
	if !s.Changed() || s.PreviousState != cfg.RacerWaiting || s.CurrentState != cfg.RacerFlying {
		t.Errorf("after change: %+v", s)
	}
}

func TestResultLines(t *testing.T) {
	lines := ResultLines([]race.Result{
		{Rank: 1, Name: "Ada"},
		{Rank: 2, Name: "Bo", Captured: true},
	})
	if len(lines) != 2 {
		t.Fatalf("lines = %d", len(lines))
	}
	if lines[0].Text != "1. Ada" || lines[0].Captured {
		t.Errorf("line 0 = %+v", lines[0])
	}
	if lines[1].Text != "2. Bo"+cfg.RaceHUD.CapturedSuffix || !lines[1].Captured {
		t.Errorf("line 1 = %+v", lines[1])
	}
}

func TestDriftCloud(t *testing.T) {
	c := assets.Cloud{Width: 100, Speed: 60}
	if got := driftCloud(10, c, 0.5, 960); got != 40 {
		t.Errorf("drift = %v, want 40", got)
	}
	if got := driftCloud(959, c, 0.5, 960); got != -100 {
		t.Errorf("wrap = %v, want -100", got)
	}
	slow := assets.Cloud{Width: 50}
	if got := driftCloud(0, slow, 1, 960); got != cfg.Scenery.CloudDriftPx {
		t.Errorf("default speed drift = %v", got)
	}
}

func TestStepVolume(t *testing.T) {
	cases := []struct {
		v    float64
		dir  int
		want float64
	}{
		{0.5, 1, 0.6},
		{0.5, -1, 0.4},
		{1, 1, 1},
		{0, -1, 0},
		{0.55, 1, 0.7},
	}
	for _, c := range cases {
		if got := stepVolume(c.v, c.dir, 0.1); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("stepVolume(%v, %d) = %v, want %v", c.v, c.dir, got, c.want)
		}
	}
}

func TestFormatVolumeBar(t *testing.T) {
	if got := formatVolumeBar(0.3); got != "[|||.......] 30%" {
		t.Errorf("formatVolumeBar(0.3) = %q", got)
	}
	if got := formatVolumeBar(1); got != "[||||||||||] 100%" {
		t.Errorf("formatVolumeBar(1) = %q", got)
	}
}

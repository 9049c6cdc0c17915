package systems

import (
	"image/color"

	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/race"
	"github.com/automoto/pecking-order/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// countdownPop is how far each countdown label starts enlarged.
const countdownPop = 1.4

// UpdateRace advances the session by one tick and turns its events into
// sounds, particles and overlays.
func UpdateRace(e *ecs.ECS) {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return
	}
	rd := components.Race.Get(entry)
	if rd.Session == nil {
		return
	}

	rd.Session.Update(1.0 / float64(cfg.C.TPS))
	rd.Events = rd.Session.Drain()
	for _, ev := range rd.Events {
		handleRaceEvent(e, rd, ev)
	}

	syncCountdownOverlay(e, rd.Session.Countdown())
}

func handleRaceEvent(e *ecs.ECS, rd *components.RaceData, ev race.Event) {
	if sound := eventSound(ev.Kind); sound != cfg.SoundNone {
		PlaySFX(e, sound)
	}

	switch ev.Kind {
	case race.EventWinner:
		s := rd.Session
		factory.SpawnCelebration(e, s.Width()/2, s.Height()/2, effectsRand())
		factory.SpawnWinnerOverlay(e, ev.Racer.Name)
	case race.EventFinished:
		rd.Done = true
		FadeOutMusic(e)
	}
}

// eventSound maps a race event to the effect it plays, SoundNone for silent ones.
func eventSound(kind race.EventKind) cfg.SoundID {
	switch kind {
	case race.EventCountdown:
		return cfg.SoundCountdownTick
	case race.EventGo:
		return cfg.SoundGo
	case race.EventSpeedChange:
		return cfg.SoundSpeedChange
	case race.EventPredatorAppears:
		return cfg.SoundPredator
	case race.EventStrike:
		return cfg.SoundStrike
	case race.EventWinner:
		return cfg.SoundWinner
	case race.EventLoser:
		return cfg.SoundLoserDrop
	case race.EventFinished:
		return cfg.SoundResults
	}
	return cfg.SoundNone
}

// syncCountdownOverlay keeps the countdown overlay showing label, popping
// it on each change and fading it out once the label clears.
func syncCountdownOverlay(e *ecs.ECS, label string) {
	entry := countdownOverlay(e)
	if entry == nil {
		return
	}
	ov := components.Overlay.Get(entry)

	if label == "" {
		if ov.Fade == nil {
			ov.Fade = gween.New(1, 0, float32(cfg.RaceHUD.CountdownFade), ease.InQuad)
		}
		return
	}
	if ov.Text == label {
		return
	}

	ov.Text = label
	ov.Color = countdownColor(label)
	ov.Scale = countdownPop
	ov.Alpha = 1
	ov.Pop = gween.New(countdownPop, 1, 0.3, ease.OutQuad)
}

func countdownOverlay(e *ecs.ECS) *donburi.Entry {
	var found *donburi.Entry
	components.Overlay.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Overlay.Get(entry).Kind == components.OverlayCountdown {
			found = entry
		}
	})
	return found
}

// countdownColor is the Go colour for the final label, the countdown colour otherwise.
func countdownColor(label string) color.RGBA {
	labels := cfg.Race.CountdownLabels
	if len(labels) > 0 && label == labels[len(labels)-1] {
		return cfg.RaceHUD.GoColor
	}
	return cfg.RaceHUD.CountdownColor
}

// IsRaceFinished reports whether the results are showing.
func IsRaceFinished(e *ecs.ECS) bool {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return false
	}
	return components.Race.Get(entry).Done
}

// RaceSession returns the running session, nil outside the race scene.
func RaceSession(e *ecs.ECS) *race.Session {
	entry, ok := components.Race.First(e.World)
	if !ok {
		return nil
	}
	return components.Race.Get(entry).Session
}

package systems

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/automoto/pecking-order/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// toastSeconds is how long a settings change stays on screen.
const toastSeconds = 1.5

var (
	toastText  string
	toastTimer float64
)

// UpdateSettings handles the global hotkeys: mute, fullscreen, music
// volume and the debug overlay. Changes are saved right away.
func UpdateSettings(e *ecs.ECS) {
	if toastTimer > 0 {
		toastTimer -= 1.0 / float64(cfg.C.TPS)
	}

	input := getOrCreateInput(e)
	s := GetOrCreateSettings(e)

	if GetAction(input, cfg.ActionMute).JustPressed {
		s.Settings.Muted = !s.Settings.Muted
		SetMuted(s.Settings.Muted)
		s.Dirty = true
		showToast(formatToggle("Sound", !s.Settings.Muted))
	}
	if GetAction(input, cfg.ActionFullscreen).JustPressed {
		s.Settings.Fullscreen = !s.Settings.Fullscreen
		ebiten.SetFullscreen(s.Settings.Fullscreen)
		s.Dirty = true
	}
	if GetAction(input, cfg.ActionMusicUp).JustPressed {
		changeMusicVolume(s, 1)
	}
	if GetAction(input, cfg.ActionMusicDown).JustPressed {
		changeMusicVolume(s, -1)
	}
	if GetAction(input, cfg.ActionDebug).JustPressed {
		debugVisible = !debugVisible
	}

	if s.Dirty {
		if err := s.Store.SaveSettings(s.Settings); err != nil {
			log.Printf("[settings] Warning: %v", err)
		}
		s.Dirty = false
	}
}

func changeMusicVolume(s *components.SettingsData, direction int) {
	s.Settings.MusicVolume = stepVolume(s.Settings.MusicVolume, direction, cfg.Audio.VolumeStep)
	SetMusicVolume(s.Settings.MusicVolume)
	s.Dirty = true
	showToast("Music " + formatVolumeBar(s.Settings.MusicVolume))
}

// stepVolume moves v one step up or down, snapping to the step grid and
// staying within 0..1.
func stepVolume(v float64, direction int, step float64) float64 {
	if step <= 0 {
		return v
	}
	steps := math.Round(v/step) + float64(direction)
	return clampVolume(math.Round(steps*step*100) / 100)
}

// formatVolumeBar creates a visual volume bar
func formatVolumeBar(volume float64) string {
	filled := int(math.Round(volume * 10))
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("|", filled), strings.Repeat(".", 10-filled), int(math.Round(volume*100)))
}

// formatToggle formats a boolean as On/Off
func formatToggle(label string, on bool) string {
	if on {
		return label + " On"
	}
	return label + " Off"
}

func showToast(s string) {
	toastText = s
	toastTimer = toastSeconds
}

// DrawSettingsToast shows the last settings change in the top right corner.
func DrawSettingsToast(e *ecs.ECS, screen *ebiten.Image) {
	if toastTimer <= 0 || toastText == "" {
		return
	}
	face := fonts.Small.Get()
	w := text.BoundString(face, toastText).Dx()
	x := cfg.C.Width - w - 16
	vector.FillRect(screen, float32(x-8), 8, float32(w+16), 24, cfg.BlackOverlay, false)
	text.Draw(screen, toastText, face, x, 25, cfg.White)
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the live audio and window state.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		settings := globalStore.LoadSettings()
		settings.MusicVolume = globalMusicVolume
		settings.SFXVolume = globalSFXVolume
		settings.Muted = globalMuted
		settings.Fullscreen = ebiten.IsFullscreen()
		components.Settings.SetValue(entry, components.SettingsData{
			Store:    globalStore,
			Settings: settings,
		})
	}
	return components.Settings.Get(entry)
}

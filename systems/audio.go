package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/pecking-order/assets"
	"github.com/automoto/pecking-order/components"
	cfg "github.com/automoto/pecking-order/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalAudioFS      fs.FS
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// SetAudioOverrides points the loader at a directory of replacement sound
// files. Must be called before the first sound is loaded.
func SetAudioOverrides(fsys fs.FS) {
	globalAudioFS = fsys
}

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, globalAudioFS)
	})
}

// PreloadAllSFX decodes every sound effect at startup so the first
// countdown tick does not stall.
func PreloadAllSFX() {
	initGlobalAudio()

	for _, path := range cfg.Sound.SFXPaths {
		_ = globalAudioLoader.PreloadSFX(path)
	}
}

// UpdateAudio processes pending SFX and manages music fades
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	entry, ok := components.Audio.First(e.World)
	if ok {
		audioData := components.Audio.Get(entry)
		for _, soundID := range audioData.PendingSFX {
			playSFX(soundID)
		}
		audioData.PendingSFX = audioData.PendingSFX[:0]
		audioData.MusicVolume = globalMusicVolume
		audioData.SFXVolume = globalSFXVolume
		audioData.Muted = globalMuted
		audioData.MusicPlayer = globalMusicPlayer
		audioData.CurrentMusicKey = globalMusicKey
	}
}

func playSFX(soundID cfg.SoundID) {
	volume := sfxVolume(soundID)
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// sfxVolume is the effective volume for one sound, 0 when muted.
func sfxVolume(soundID cfg.SoundID) float64 {
	if globalMuted {
		return 0
	}
	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	if volume > 1 {
		volume = 1
	}
	return volume
}

func musicVolume() float64 {
	if globalMuted {
		return 0
	}
	return globalMusicVolume
}

// PlayMusic starts looping music with the given path. A path that is
// already playing is left alone so scene changes do not restart it.
func PlayMusic(e *ecs.ECS, musicPath string) {
	initGlobalAudio()

	if globalMusicKey == musicPath && globalFadeTimer == 0 {
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		globalMusicPlayer = nil
		globalMusicKey = ""
		return
	}

	player.SetVolume(musicVolume())
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic(e *ecs.ECS) {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = musicVolume()
}

// StopMusic immediately stops the current music
func StopMusic(e *ecs.ECS) {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// PlaySFX queues a sound effect to be played on the next UpdateAudio
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetMusicVolume changes the music volume (0.0 - 1.0)
func SetMusicVolume(volume float64) {
	globalMusicVolume = clampVolume(volume)
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = clampVolume(volume)
}

// SetMuted silences music and effects without forgetting their volumes.
func SetMuted(muted bool) {
	globalMuted = muted
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(musicVolume())
	}
}

func GetMusicVolume() float64 { return globalMusicVolume }
func GetSFXVolume() float64   { return globalSFXVolume }
func IsMuted() bool           { return globalMuted }

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			Muted:       globalMuted,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

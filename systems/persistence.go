package systems

import (
	"github.com/automoto/pecking-order/persistence"
	"github.com/hajimehoshi/ebiten/v2"
)

var globalStore = persistence.NewStore(nil)

// InitPersistence opens saved data storage. On failure the game keeps
// running with a memory-only store.
func InitPersistence() error {
	s, err := persistence.Open(persistence.AppName)
	globalStore = s
	return err
}

// SavedData returns the store opened by InitPersistence.
func SavedData() *persistence.Store {
	return globalStore
}

// ApplySettingsGlobal pushes saved settings into the audio globals and the
// window. Used at startup before any scene exists.
func ApplySettingsGlobal(s persistence.Settings) {
	SetMusicVolume(s.MusicVolume)
	SetSFXVolume(s.SFXVolume)
	SetMuted(s.Muted)
	ebiten.SetFullscreen(s.Fullscreen)
}

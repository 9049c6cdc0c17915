// Package persistence saves the player names and settings between runs.
// gdata puts them in localStorage on the web and in the user data directory
// on desktop.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "pecking-order"

	namesItem    = "names"
	settingsItem = "settings"

	// NameSlots is the number of name fields on the setup form.
	NameSlots = 5
)

// Settings represents the audio and display settings stored on disk.
type Settings struct {
	MusicVolume float64 `yaml:"musicVolume"`
	SFXVolume   float64 `yaml:"sfxVolume"`
	Muted       bool    `yaml:"muted"`
	Fullscreen  bool    `yaml:"fullscreen"`
}

func DefaultSettings() Settings {
	return Settings{
		MusicVolume: 0.5,
		SFXVolume:   0.7,
	}
}

// Store reads and writes saved data. A Store without a manager runs in
// memory-only mode: loads return defaults and saves are no-ops.
type Store struct {
	m *gdata.Manager
}

// Open initializes gdata for appName. On failure it still returns a usable
// memory-only Store alongside the error.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return &Store{}, err
	}
	return &Store{m: m}, nil
}

// NewStore wraps an existing manager, which may be nil.
func NewStore(m *gdata.Manager) *Store {
	return &Store{m: m}
}

// Enabled reports whether saves reach storage.
func (s *Store) Enabled() bool {
	return s != nil && s.m != nil
}

// LoadNames returns the last saved names, always exactly NameSlots long.
// Missing or corrupt data yields blank slots.
func (s *Store) LoadNames() []string {
	if !s.Enabled() {
		return PadNames(nil)
	}

	data, err := s.m.LoadItem(namesItem)
	if err != nil {
		log.Printf("Warning: Could not load player names: %v", err)
		return PadNames(nil)
	}
	if len(data) == 0 {
		return PadNames(nil)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		log.Printf("Warning: Could not parse saved player names: %v", err)
		return PadNames(nil)
	}
	return PadNames(names)
}

// SaveNames stores the raw form contents as a JSON array.
func (s *Store) SaveNames(names []string) error {
	if !s.Enabled() {
		return nil
	}

	data, err := json.Marshal(PadNames(names))
	if err != nil {
		return fmt.Errorf("encode player names: %w", err)
	}
	if err := s.m.SaveItem(namesItem, data); err != nil {
		return fmt.Errorf("save player names: %w", err)
	}
	return nil
}

// LoadSettings returns the saved settings or the defaults.
func (s *Store) LoadSettings() Settings {
	if !s.Enabled() {
		return DefaultSettings()
	}

	data, err := s.m.LoadItem(settingsItem)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return DefaultSettings()
	}
	if len(data) == 0 {
		return DefaultSettings()
	}

	settings := DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return DefaultSettings()
	}
	return settings.clamped()
}

func (s *Store) SaveSettings(settings Settings) error {
	if !s.Enabled() {
		return nil
	}

	data, err := yaml.Marshal(settings.clamped())
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.m.SaveItem(settingsItem, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (st Settings) clamped() Settings {
	st.MusicVolume = clamp01(st.MusicVolume)
	st.SFXVolume = clamp01(st.SFXVolume)
	return st
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// PadNames truncates or pads names to NameSlots entries.
func PadNames(names []string) []string {
	out := make([]string, NameSlots)
	copy(out, names)
	return out
}

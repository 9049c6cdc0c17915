package components

import (
	"github.com/automoto/pecking-order/persistence"
	"github.com/yohamta/donburi"
)

// SettingsData holds the persisted player settings (singleton component)
type SettingsData struct {
	Store    *persistence.Store
	Settings persistence.Settings
	Dirty    bool // Needs saving
}

var Settings = donburi.NewComponentType[SettingsData]()

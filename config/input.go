package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionStart
	ActionBack
	ActionFullscreen
	ActionMute
	ActionMusicUp
	ActionMusicDown
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionStart: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionMute: {
				Keys: []ebiten.Key{ebiten.KeyF9},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionMusicUp: {
				Keys: []ebiten.Key{ebiten.KeyF8},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionMusicDown: {
				Keys: []ebiten.Key{ebiten.KeyF7},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}

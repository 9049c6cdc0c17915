package config

import (
	"image/color"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// SetupConfig contains the name entry screen configuration
type SetupConfig struct {
	Title       string
	Subtitle    string
	Placeholder string // Printf pattern, takes the 1-based slot number
	StartLabel  string
	Background  color.RGBA
	PanelColor  color.RGBA
	InputWidth  int
	InputHeight int
}

// RaceHUDConfig contains the countdown, winner and results overlay configuration
type RaceHUDConfig struct {
	CountdownDim   color.RGBA
	CountdownColor color.RGBA
	GoColor        color.RGBA
	CountdownFade  float64 // seconds for the overlay to fade after "Go!"

	WinnerSuffix   string
	WinnerColor    color.RGBA
	WinnerPop      float64 // seconds for the winner text to pop in
	WinnerPopScale float64 // start scale of the pop

	ResultsTitle     string
	ResultsPanel     color.RGBA
	ResultsColor     color.RGBA
	CapturedColor    color.RGBA
	CapturedSuffix   string
	ResultsTop       float64
	ResultsLineGap   float64
	ResultsPanelPadX float64
	ReturnHint       string

	NameLabelColor  color.RGBA
	NameLabelShadow color.RGBA
}

// CelebrationConfig contains the winner particle burst configuration
type CelebrationConfig struct {
	Particles       int
	FeatherFraction float64

	FeatherDistanceMin float64
	FeatherDistanceMax float64
	FeatherDuration    float64
	EggDistanceMin     float64
	EggDistanceMax     float64
	EggDuration        float64

	StartScale  float64
	MaxSpin     float64 // degrees either way
	EggColors   []color.RGBA
	FeatherTint []color.RGBA
}

// SceneryConfig contains the course backdrop configuration
type SceneryConfig struct {
	Course       string // TMX path inside the embedded assets
	Sky          color.RGBA
	SkyLow       color.RGBA
	Cloud        color.RGBA
	Hill         color.RGBA
	HillShade    color.RGBA
	FinishPoleA  color.RGBA
	FinishPoleB  color.RGBA
	LaneGuide    color.RGBA
	CloudDriftPx float64 // pixels per second
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool  // Draw finish zone and racer boxes
	Seed      int64 // 0 = time seeded
	NoCapture bool  // Disable the predator
	AssetsDir string
}

// Global configuration instances
var C *Config
var Race rc.Tuning
var Setup SetupConfig
var RaceHUD RaceHUDConfig
var Celebration CelebrationConfig
var Scenery SceneryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Pink         = color.RGBA{R: 255, G: 150, B: 200, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "Pecking Order",
	}

	Race = rc.DefaultTuning()

	Setup = SetupConfig{
		Title:       "PECKING ORDER",
		Subtitle:    "Enter up to five racers",
		Placeholder: "Player %d",
		StartLabel:  "Start Race",
		Background:  color.RGBA{R: 24, G: 40, B: 64, A: 255},
		PanelColor:  color.RGBA{R: 34, G: 56, B: 88, A: 255},
		InputWidth:  260,
		InputHeight: 28,
	}

	RaceHUD = RaceHUDConfig{
		CountdownDim:   color.RGBA{R: 0, G: 0, B: 0, A: 120},
		CountdownColor: BrightOrange,
		GoColor:        BrightGreen,
		CountdownFade:  0.5,

		WinnerSuffix:   " wins!",
		WinnerColor:    BrightYellow,
		WinnerPop:      0.6,
		WinnerPopScale: 0.2,

		ResultsTitle:     "Results",
		ResultsPanel:     color.RGBA{R: 0, G: 0, B: 0, A: 170},
		ResultsColor:     White,
		CapturedColor:    LightRed,
		CapturedSuffix:   " (snatched)",
		ResultsTop:       300,
		ResultsLineGap:   26,
		ResultsPanelPadX: 24,
		ReturnHint:       "Esc or click the title for a new race",

		NameLabelColor:  White,
		NameLabelShadow: color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}

	Celebration = CelebrationConfig{
		Particles:       120,
		FeatherFraction: 0.6,

		FeatherDistanceMin: 250,
		FeatherDistanceMax: 600,
		FeatherDuration:    3.0,
		EggDistanceMin:     150,
		EggDistanceMax:     400,
		EggDuration:        2.0,

		StartScale: 0.3,
		MaxSpin:    720,
		EggColors: []color.RGBA{
			Pink,
			Orange,
			Yellow,
			LightGreen,
			LightBlue,
			color.RGBA{R: 190, G: 120, B: 255, A: 255},
		},
		FeatherTint: []color.RGBA{
			White,
			color.RGBA{R: 240, G: 230, B: 210, A: 255},
			color.RGBA{R: 200, G: 200, B: 210, A: 255},
		},
	}

	Scenery = SceneryConfig{
		Course:       "courses/meadow.tmx",
		Sky:          color.RGBA{R: 120, G: 190, B: 240, A: 255},
		SkyLow:       color.RGBA{R: 190, G: 225, B: 250, A: 255},
		Cloud:        color.RGBA{R: 255, G: 255, B: 255, A: 220},
		Hill:         color.RGBA{R: 110, G: 170, B: 80, A: 255},
		HillShade:    color.RGBA{R: 85, G: 140, B: 60, A: 255},
		FinishPoleA:  White,
		FinishPoleB:  color.RGBA{R: 30, G: 30, B: 30, A: 255},
		LaneGuide:    color.RGBA{R: 255, G: 255, B: 255, A: 40},
		CloudDriftPx: 8,
	}
}

package config

import "image/color"

// BirdPalette holds the colors used to paint a generated bird sprite.
type BirdPalette struct {
	Body   color.RGBA
	Wing   color.RGBA
	Belly  color.RGBA
	Beak   color.RGBA
	Eye    color.RGBA
	Crest  bool    // Draw a small crest on the head
	Beak2x bool    // Long beak (pelican, hummingbird)
	Scale  float64 // Body size relative to the racer box
}

// BirdConfig maps catalog sprite keys to palettes
type BirdConfig struct {
	Palettes     map[string]BirdPalette
	Fallback     BirdPalette
	FrameWidth   int
	FrameHeight  int
	PredatorTint color.RGBA // Flash applied to a seized racer
}

var Birds BirdConfig

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func init() {
	eye := rgb(20, 20, 20)

	Birds = BirdConfig{
		FrameWidth:   96,
		FrameHeight:  64,
		PredatorTint: color.RGBA{R: 255, G: 80, B: 80, A: 110},
		Fallback: BirdPalette{
			Body: rgb(160, 160, 160), Wing: rgb(120, 120, 120), Belly: rgb(210, 210, 210),
			Beak: rgb(240, 180, 40), Eye: eye, Scale: 0.8,
		},
		Palettes: map[string]BirdPalette{
			"brown_pelican": {
				Body: rgb(140, 110, 80), Wing: rgb(90, 70, 50), Belly: rgb(230, 220, 200),
				Beak: rgb(230, 170, 60), Eye: eye, Beak2x: true, Scale: 0.95,
			},
			"little_penguin": {
				Body: rgb(60, 90, 140), Wing: rgb(40, 60, 100), Belly: rgb(245, 245, 245),
				Beak: rgb(40, 40, 40), Eye: eye, Scale: 0.7,
			},
			"musk_duck": {
				Body: rgb(70, 60, 50), Wing: rgb(50, 45, 40), Belly: rgb(110, 100, 90),
				Beak: rgb(30, 30, 30), Eye: eye, Scale: 0.8,
			},
			"american_goldfinch": {
				Body: rgb(250, 215, 40), Wing: rgb(30, 30, 30), Belly: rgb(255, 240, 120),
				Beak: rgb(240, 150, 80), Eye: eye, Scale: 0.65,
			},
			"common_raven": {
				Body: rgb(30, 30, 40), Wing: rgb(15, 15, 25), Belly: rgb(50, 50, 65),
				Beak: rgb(20, 20, 20), Eye: rgb(200, 200, 220), Scale: 0.9,
			},
			"franklins_gull": {
				Body: rgb(235, 235, 240), Wing: rgb(130, 140, 150), Belly: rgb(255, 255, 255),
				Beak: rgb(200, 40, 40), Eye: eye, Crest: true, Scale: 0.8,
			},
			"killdeer": {
				Body: rgb(150, 110, 70), Wing: rgb(110, 80, 50), Belly: rgb(250, 250, 245),
				Beak: rgb(25, 25, 25), Eye: rgb(220, 60, 40), Scale: 0.7,
			},
			"annas_hummingbird": {
				Body: rgb(60, 160, 90), Wing: rgb(90, 110, 100), Belly: rgb(220, 60, 130),
				Beak: rgb(30, 30, 30), Eye: eye, Beak2x: true, Scale: 0.55,
			},
			"painted_bunting": {
				Body: rgb(60, 90, 220), Wing: rgb(90, 190, 70), Belly: rgb(230, 40, 50),
				Beak: rgb(120, 120, 130), Eye: eye, Scale: 0.6,
			},
			"bald_eagle": {
				Body: rgb(80, 55, 35), Wing: rgb(60, 40, 25), Belly: rgb(100, 70, 45),
				Beak: rgb(250, 200, 40), Eye: eye, Crest: true, Scale: 1.0,
			},
			"trumpeter_swan": {
				Body: rgb(250, 250, 250), Wing: rgb(225, 225, 230), Belly: rgb(255, 255, 255),
				Beak: rgb(20, 20, 20), Eye: eye, Scale: 0.95,
			},
			PredatorSprite: {
				Body: rgb(120, 90, 60), Wing: rgb(85, 60, 40), Belly: rgb(200, 180, 140),
				Beak: rgb(60, 60, 60), Eye: rgb(250, 200, 30), Crest: true, Scale: 1.0,
			},
		},
	}
}

// PaletteFor returns the palette for a sprite key, or the fallback.
func PaletteFor(sprite string) BirdPalette {
	if p, ok := Birds.Palettes[sprite]; ok {
		return p
	}
	return Birds.Fallback
}

package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Countdown
	SoundCountdownTick
	SoundGo
	// Race flair
	SoundSpeedChange
	SoundPredator
	SoundStrike
	// Finish
	SoundWinner
	SoundLoserDrop
	SoundResults
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	DefaultMusicVol   float64
	DefaultSFXVol     float64
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
	VolumeStep        float64
}

// ToneSpec describes the synthesised fallback for a sound with no file.
type ToneSpec struct {
	Freq     float64 // Hz at the start
	FreqEnd  float64 // Hz at the end, sweeps linearly
	Duration float64 // seconds
	Noise    float64 // 0..1 mix of white noise
	Pulses   int     // amplitude pulses across the duration, 0 = one envelope
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	Music             string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
	Tones             map[SoundID]ToneSpec
	MusicTones        []float64 // Hz, the synthesised backing loop
	MusicNoteLength   float64   // seconds per note
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		DefaultMusicVol:   0.5,
		DefaultSFXVol:     0.7,
		MusicFadeDuration: 60,
		VolumeStep:        0.1,
	}

	Sound = SoundConfig{
		Music: "audio/bg1.mp3",
		SFXPaths: map[SoundID]string{
			SoundCountdownTick: "audio/sparrow1.mp3",
			SoundGo:            "audio/flapping.mp3",
			SoundSpeedChange:   "audio/crow.mp3",
			SoundPredator:      "audio/owl.mp3",
			SoundStrike:        "audio/poof.mp3",
			SoundWinner:        "audio/complete1.mp3",
			SoundLoserDrop:     "audio/thud.mp3",
			SoundResults:       "audio/parrots2.mp3",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCountdownTick: 0.8,
			SoundLoserDrop:     0.6,
			SoundStrike:        1.2,
		},
		Tones: map[SoundID]ToneSpec{
			SoundCountdownTick: {Freq: 2600, FreqEnd: 3400, Duration: 0.12},
			SoundGo:            {Freq: 180, FreqEnd: 140, Duration: 0.6, Noise: 0.7, Pulses: 6},
			SoundSpeedChange:   {Freq: 520, FreqEnd: 380, Duration: 0.35, Noise: 0.3, Pulses: 2},
			SoundPredator:      {Freq: 330, FreqEnd: 300, Duration: 0.9, Pulses: 2},
			SoundStrike:        {Freq: 900, FreqEnd: 120, Duration: 0.25, Noise: 0.8},
			SoundWinner:        {Freq: 523, FreqEnd: 1046, Duration: 0.8},
			SoundLoserDrop:     {Freq: 110, FreqEnd: 55, Duration: 0.2, Noise: 0.4},
			SoundResults:       {Freq: 1400, FreqEnd: 2200, Duration: 0.7, Noise: 0.2, Pulses: 5},
		},
		MusicTones:      []float64{392, 440, 494, 523, 494, 440, 392, 330},
		MusicNoteLength: 0.35,
	}
}

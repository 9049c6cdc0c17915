package assets

import (
	"encoding/binary"
	"math"
	"math/rand"

	cfg "github.com/automoto/pecking-order/config"
)

// SynthesizeTone renders a tone as 16-bit little-endian stereo PCM, the
// format an audio.Context player reads.
func SynthesizeTone(spec cfg.ToneSpec, sampleRate int) []byte {
	n := int(spec.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	noise := rand.New(rand.NewSource(int64(spec.Freq*1000 + spec.Duration*10)))

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := spec.Freq + (spec.FreqEnd-spec.Freq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)*(1-spec.Noise) + (noise.Float64()*2-1)*spec.Noise
		v *= envelope(t, spec.Pulses) * 0.6

		putSample(out[i*4:], v)
	}
	return out
}

// SynthesizeMusic renders the backing loop: one soft note per entry.
func SynthesizeMusic(notes []float64, noteLength float64, sampleRate int) []byte {
	per := int(noteLength * float64(sampleRate))
	if per <= 0 || len(notes) == 0 {
		return nil
	}
	out := make([]byte, per*len(notes)*4)
	for k, freq := range notes {
		for i := 0; i < per; i++ {
			t := float64(i) / float64(per)
			ts := float64(i) / float64(sampleRate)
			v := math.Sin(2*math.Pi*freq*ts) + 0.3*math.Sin(2*math.Pi*freq*2*ts)
			v *= envelope(t, 0) * 0.18
			putSample(out[(k*per+i)*4:], v)
		}
	}
	return out
}

// envelope is a quick attack and linear release; pulses chops it into
// that many bursts.
func envelope(t float64, pulses int) float64 {
	if pulses > 1 {
		t = math.Mod(t*float64(pulses), 1)
	}
	const attack = 0.05
	if t < attack {
		return t / attack
	}
	return 1 - (t-attack)/(1-attack)
}

func putSample(b []byte, v float64) {
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s := int16(v * math.MaxInt16)
	binary.LittleEndian.PutUint16(b[0:], uint16(s))
	binary.LittleEndian.PutUint16(b[2:], uint16(s))
}

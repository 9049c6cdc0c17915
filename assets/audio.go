package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"strings"

	cfg "github.com/automoto/pecking-order/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

var errNoAudioFile = errors.New("no audio file")

// AudioLoader handles loading and caching of audio assets. Files come from
// an optional override directory; anything missing is synthesised.
type AudioLoader struct {
	sfxCache  map[string][]byte // Cache decoded audio bytes for SFX
	context   *audio.Context
	overrides fs.FS
	warned    map[string]bool
}

// NewAudioLoader creates a new audio loader with the given context.
// overrides may be nil.
func NewAudioLoader(ctx *audio.Context, overrides fs.FS) *AudioLoader {
	return &AudioLoader{
		sfxCache:  make(map[string][]byte),
		context:   ctx,
		overrides: overrides,
		warned:    make(map[string]bool),
	}
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
// Call this at startup to avoid decode lag on first play.
func (l *AudioLoader) PreloadSFX(p string) error {
	if _, ok := l.sfxCache[p]; ok {
		return nil
	}

	decoded, err := l.decodeFile(p)
	if err != nil {
		if !errors.Is(err, errNoAudioFile) {
			l.warnOnce(p, err)
		}
		tone, ok := toneFor(p)
		if !ok {
			return fmt.Errorf("no file or tone for %s", p)
		}
		decoded = SynthesizeTone(tone, l.context.SampleRate())
	}

	l.sfxCache[p] = decoded
	return nil
}

// LoadSFX returns a new player each time over the cached decoded bytes.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[p]))
}

// LoadMusic returns a looping player for the music track, or for the
// synthesised loop when no file is available.
func (l *AudioLoader) LoadMusic(p string) (*audio.Player, error) {
	stream, length, err := l.openStream(p)
	if err != nil {
		if !errors.Is(err, errNoAudioFile) {
			l.warnOnce(p, err)
		}
		pcm := SynthesizeMusic(cfg.Sound.MusicTones, cfg.Sound.MusicNoteLength, l.context.SampleRate())
		stream, length = bytes.NewReader(pcm), int64(len(pcm))
	}

	loop := audio.NewInfiniteLoop(stream, length)
	return l.context.NewPlayer(loop)
}

func (l *AudioLoader) decodeFile(p string) ([]byte, error) {
	stream, _, err := l.openStream(p)
	if err != nil {
		return nil, err
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}

// openStream finds the first candidate file in the overrides and decodes it
// by extension.
func (l *AudioLoader) openStream(p string) (io.ReadSeeker, int64, error) {
	if l.overrides == nil {
		return nil, 0, errNoAudioFile
	}

	for _, candidate := range CandidatePaths(p) {
		data, err := fs.ReadFile(l.overrides, candidate)
		if err != nil {
			continue
		}

		sr := l.context.SampleRate()
		switch strings.ToLower(path.Ext(candidate)) {
		case ".mp3":
			stream, err := mp3.DecodeWithSampleRate(sr, bytes.NewReader(data))
			if err != nil {
				return nil, 0, fmt.Errorf("failed to decode mp3 %s: %w", candidate, err)
			}
			return stream, stream.Length(), nil
		case ".ogg":
			stream, err := vorbis.DecodeWithSampleRate(sr, bytes.NewReader(data))
			if err != nil {
				return nil, 0, fmt.Errorf("failed to decode ogg %s: %w", candidate, err)
			}
			return stream, stream.Length(), nil
		case ".wav":
			stream, err := wav.DecodeWithSampleRate(sr, bytes.NewReader(data))
			if err != nil {
				return nil, 0, fmt.Errorf("failed to decode wav %s: %w", candidate, err)
			}
			return stream, stream.Length(), nil
		}
	}
	return nil, 0, errNoAudioFile
}

func (l *AudioLoader) warnOnce(p string, err error) {
	if l.warned[p] {
		return
	}
	l.warned[p] = true
	log.Printf("[audio] Warning: %v, using synthesised sound", err)
}

// CandidatePaths lists the files tried for a configured sound path: the path
// itself, then the same name with the other supported extensions.
func CandidatePaths(p string) []string {
	base := strings.TrimSuffix(p, path.Ext(p))
	out := []string{p}
	for _, ext := range []string{".mp3", ".ogg", ".wav"} {
		if c := base + ext; c != p {
			out = append(out, c)
		}
	}
	return out
}

func toneFor(p string) (cfg.ToneSpec, bool) {
	for id, sfxPath := range cfg.Sound.SFXPaths {
		if sfxPath == p {
			tone, ok := cfg.Sound.Tones[id]
			return tone, ok
		}
	}
	return cfg.ToneSpec{}, false
}

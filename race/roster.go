package race

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoster        = errors.New("race: no player names")
	ErrSpritePoolTooSmall = errors.New("race: not enough sprites for roster")
)

// NormalizeNames looks at no more than maxPlayers input fields, trims each
// one and drops the blanks. Order is preserved.
func NormalizeNames(inputs []string, maxPlayers int) []string {
	if len(inputs) > maxPlayers {
		inputs = inputs[:maxPlayers]
	}

	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		if name := strings.TrimSpace(in); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// BuildRoster turns the raw input fields into racers, each with a sprite
// drawn without replacement from catalog.
func BuildRoster(inputs []string, maxPlayers int, catalog []string, rnd Rand) ([]*Racer, error) {
	names := NormalizeNames(inputs, maxPlayers)
	if len(names) == 0 {
		return nil, ErrEmptyRoster
	}
	if len(catalog) < len(names) {
		return nil, ErrSpritePoolTooSmall
	}

	sprites := shuffled(catalog, rnd)[:len(names)]

	racers := make([]*Racer, len(names))
	for i, name := range names {
		racers[i] = &Racer{
			Index:  i,
			Name:   name,
			Sprite: sprites[i],
		}
	}
	return racers, nil
}

// shuffled returns a Fisher-Yates shuffled copy of src.
func shuffled(src []string, rnd Rand) []string {
	out := append([]string(nil), src...)
	rnd.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

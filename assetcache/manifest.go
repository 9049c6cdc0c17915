package assetcache

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Strategy decides how a cached asset is served.
type Strategy string

const (
	// CacheFirst serves from the cache and only asks the origin on a miss.
	CacheFirst Strategy = "cache-first"
	// StaleWhileRevalidate serves from the cache and refreshes the entry
	// in the background.
	StaleWhileRevalidate Strategy = "stale-while-revalidate"
)

var ErrInvalidManifest = errors.New("assetcache: invalid manifest")

//go:embed manifest.yaml
var defaultManifest []byte

type Asset struct {
	Path     string `yaml:"path"`
	Optional bool   `yaml:"optional"`
}

// Manifest is the versioned list of assets to precache.
type Manifest struct {
	Version  string   `yaml:"version"`
	Strategy Strategy `yaml:"strategy"`
	Assets   []Asset  `yaml:"assets"`
}

// DefaultManifest returns the manifest shipped with the web build.
func DefaultManifest() (Manifest, error) {
	return ParseManifest(defaultManifest)
}

func ParseManifest(data []byte) (Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if m.Strategy == "" {
		m.Strategy = CacheFirst
	}
	if err := m.validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func (m Manifest) validate() error {
	if m.Version == "" {
		return fmt.Errorf("%w: missing version", ErrInvalidManifest)
	}
	switch m.Strategy {
	case CacheFirst, StaleWhileRevalidate:
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidManifest, m.Strategy)
	}

	seen := make(map[string]bool, len(m.Assets))
	for _, a := range m.Assets {
		if !strings.HasPrefix(a.Path, "/") {
			return fmt.Errorf("%w: asset path %q must start with /", ErrInvalidManifest, a.Path)
		}
		if seen[a.Path] {
			return fmt.Errorf("%w: duplicate asset %q", ErrInvalidManifest, a.Path)
		}
		seen[a.Path] = true
	}
	return nil
}

package race

import (
	"errors"
	"testing"

	rc "github.com/automoto/pecking-order/shared/raceconfig"
)

func TestNormalizeNames(t *testing.T) {
	tests := []struct {
		name   string
		inputs []string
		want   []string
	}{
		{"trims and drops blanks", []string{"  Ada ", "", "   ", "Lin"}, []string{"Ada", "Lin"}},
		{"only first five fields", []string{"", "b", "c", "d", "e", "f"}, []string{"b", "c", "d", "e"}},
		{"all blank", []string{" ", "\t", ""}, []string{}},
		{"nil", nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeNames(tt.inputs, 5)
			if len(got) != len(tt.want) {
				t.Fatalf("NormalizeNames(%q) = %q, want %q", tt.inputs, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("NormalizeNames(%q) = %q, want %q", tt.inputs, got, tt.want)
				}
			}
		})
	}
}

func TestBuildRosterEmpty(t *testing.T) {
	_, err := BuildRoster([]string{"", "  "}, 5, rc.SpriteCatalog, NewRand(1))
	if !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("err = %v, want ErrEmptyRoster", err)
	}
}

func TestBuildRosterSmallCatalog(t *testing.T) {
	_, err := BuildRoster([]string{"a", "b", "c"}, 5, []string{"x", "y"}, NewRand(1))
	if !errors.Is(err, ErrSpritePoolTooSmall) {
		t.Fatalf("err = %v, want ErrSpritePoolTooSmall", err)
	}
}

func TestBuildRosterDistinctSprites(t *testing.T) {
	names := []string{"Ada", "Lin", "Bo", "Cy", "Di"}
	for seed := int64(0); seed < 200; seed++ {
		racers, err := BuildRoster(names, 5, rc.SpriteCatalog, NewRand(seed))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if len(racers) != len(names) {
			t.Fatalf("seed %d: got %d racers, want %d", seed, len(racers), len(names))
		}
		seen := make(map[string]bool)
		for i, r := range racers {
			if r.Name != names[i] || r.Index != i {
				t.Fatalf("seed %d: racer %d = %q/%d", seed, i, r.Name, r.Index)
			}
			if seen[r.Sprite] {
				t.Fatalf("seed %d: sprite %q assigned twice", seed, r.Sprite)
			}
			seen[r.Sprite] = true
		}
	}
}

func TestBuildRosterLeavesCatalogAlone(t *testing.T) {
	catalog := []string{"a", "b", "c", "d"}
	if _, err := BuildRoster([]string{"x", "y"}, 5, catalog, NewRand(7)); err != nil {
		t.Fatal(err)
	}
	if catalog[0] != "a" || catalog[1] != "b" || catalog[2] != "c" || catalog[3] != "d" {
		t.Fatalf("catalog mutated: %v", catalog)
	}
}

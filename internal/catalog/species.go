package catalog

import (
	"fmt"
	"math/rand"
	"time"
)

// Species is an immutable fish species definition.
type Species struct {
	Name       string
	HungerTime time.Duration
	// Art[i] is shown until time fed reaches ArtAges[i]; len(Art) == len(ArtAges)+1.
	Art     []string
	ArtAges []time.Duration
	Colors  []string
}

type speciesDef struct {
	HungerTime float64   `yaml:"hunger_time"`
	Art        []string  `yaml:"art"`
	ArtAges    []float64 `yaml:"art_ages"`
	Colors     []string  `yaml:"colors"`
}

func (d speciesDef) build(name string) (*Species, error) {
	if d.HungerTime <= 0 {
		return nil, fmt.Errorf("species %q: hunger_time must be positive", name)
	}
	if len(d.Art) == 0 {
		return nil, fmt.Errorf("species %q: art is required", name)
	}
	if len(d.Art) != len(d.ArtAges)+1 {
		return nil, fmt.Errorf("species %q: %d art variants need %d art_ages, got %d", name, len(d.Art), len(d.Art)-1, len(d.ArtAges))
	}
	ages := make([]time.Duration, len(d.ArtAges))
	for i, a := range d.ArtAges {
		ages[i] = Seconds(a)
		if i > 0 && ages[i] < ages[i-1] {
			return nil, fmt.Errorf("species %q: art_ages must be ascending", name)
		}
	}
	return &Species{
		Name:       name,
		HungerTime: Seconds(d.HungerTime),
		Art:        append([]string(nil), d.Art...),
		ArtAges:    ages,
		Colors:     append([]string(nil), d.Colors...),
	}, nil
}

// ArtFor returns the art variant for a fish that has been fed for timeFed.
func (s *Species) ArtFor(timeFed time.Duration) string {
	return s.Art[s.Stage(timeFed)]
}

// Stage returns the index of the art variant for timeFed.
func (s *Species) Stage(timeFed time.Duration) int {
	stage := 0
	for _, age := range s.ArtAges {
		if timeFed < age {
			break
		}
		stage++
	}
	return stage
}

// Color picks one of the species colors, or "" when it has none.
func (s *Species) Color(rng *rand.Rand) string {
	if len(s.Colors) == 0 {
		return ""
	}
	return s.Colors[rng.Intn(len(s.Colors))]
}

// Seconds converts float seconds to a duration rounded to the microsecond.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond)
}

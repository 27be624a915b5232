package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// NamePlaceholder is replaced with the fish's name when a quote is rendered.
const NamePlaceholder = "{name}"

// Mood buckets, picked from stress.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodNormal  Mood = "normal"
	MoodUnhappy Mood = "unhappy"
)

const (
	happyStress  = 0.2
	normalStress = 0.4
	hungryQuotes = 0.4
)

// MoodFor returns the mood bucket for a stress level.
func MoodFor(stress float64) Mood {
	switch {
	case stress < happyStress:
		return MoodHappy
	case stress < normalStress:
		return MoodNormal
	default:
		return MoodUnhappy
	}
}

// Personality is an immutable set of quotes keyed by mood.
type Personality struct {
	Name    string
	Happy   []string
	Normal  []string
	Unhappy []string
	Hungry  []string
}

type personalityDef struct {
	HappyQuotes   []string `yaml:"happy_quotes"`
	NormalQuotes  []string `yaml:"normal_quotes"`
	UnhappyQuotes []string `yaml:"unhappy_quotes"`
	HungryQuotes  []string `yaml:"hungry_quotes"`
}

func (d personalityDef) build(name string) (*Personality, error) {
	lists := map[string][]string{
		"happy_quotes":   d.HappyQuotes,
		"normal_quotes":  d.NormalQuotes,
		"unhappy_quotes": d.UnhappyQuotes,
		"hungry_quotes":  d.HungryQuotes,
	}
	for key, quotes := range lists {
		if len(quotes) == 0 {
			return nil, fmt.Errorf("personality %q: %s must not be empty", name, key)
		}
	}
	return &Personality{
		Name:    name,
		Happy:   append([]string(nil), d.HappyQuotes...),
		Normal:  append([]string(nil), d.NormalQuotes...),
		Unhappy: append([]string(nil), d.UnhappyQuotes...),
		Hungry:  append([]string(nil), d.HungryQuotes...),
	}, nil
}

// Quote picks a quote for the given stress and hunger and fills in name.
// Hungry quotes join the candidates once hunger passes 0.4.
func (p *Personality) Quote(name string, stress, hunger float64, rng *rand.Rand) string {
	var candidates []string
	switch MoodFor(stress) {
	case MoodHappy:
		candidates = append(candidates, p.Happy...)
	case MoodNormal:
		candidates = append(candidates, p.Normal...)
	default:
		candidates = append(candidates, p.Unhappy...)
	}
	if hunger > hungryQuotes {
		candidates = append(candidates, p.Hungry...)
	}
	quote := candidates[rng.Intn(len(candidates))]
	return strings.ReplaceAll(quote, NamePlaceholder, name)
}

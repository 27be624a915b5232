package engine

import (
	"math/rand"
	"time"

	"afish/internal/catalog"
	"afish/internal/storage"
)

// starterFish is what a brand-new tank comes with.
var starterFish = []struct {
	name, species, personality string
}{
	{"Molly", "Mosquitofish", "Energetic"},
	{"Bubbles", "Goldfish", "Laid Back"},
	{"Silver", "Goldfish", "Energetic"},
}

// Builder creates fish from catalog entries and from snapshots.
type Builder struct {
	catalog *catalog.Catalog
	now     Clock
	rng     *rand.Rand
}

func NewBuilder(c *catalog.Catalog, now Clock, rng *rand.Rand) *Builder {
	return &Builder{catalog: c, now: now, rng: rng}
}

func (b *Builder) Catalog() *catalog.Catalog { return b.catalog }

func (b *Builder) lookup(speciesName, personalityName string) (*catalog.Species, *catalog.Personality, error) {
	s, err := b.catalog.Species(speciesName)
	if err != nil {
		return nil, nil, err
	}
	p, err := b.catalog.Personality(personalityName)
	if err != nil {
		return nil, nil, err
	}
	return s, p, nil
}

// Build returns a new fish that is mildly hungry, a third of the way to
// starving. Times stay on whole microseconds so snapshots restore exactly.
func (b *Builder) Build(name, speciesName, personalityName string) (*Fish, error) {
	s, p, err := b.lookup(speciesName, personalityName)
	if err != nil {
		return nil, err
	}
	now := b.now()
	return &Fish{
		name:        name,
		species:     s,
		personality: p,
		color:       s.Color(b.rng),
		birth:       now,
		lastFed:     now.Add(-(s.HungerTime / 3).Round(time.Microsecond)),
		lastCheckin: now,
		stress:      DefaultStress,
		now:         b.now,
		rng:         b.rng,
	}, nil
}

// FromRecord rebuilds a fish from its snapshot.
func (b *Builder) FromRecord(rec storage.FishRecord) (*Fish, error) {
	s, p, err := b.lookup(rec.Species, rec.Personality)
	if err != nil {
		return nil, err
	}
	return &Fish{
		name:        rec.Name,
		species:     s,
		personality: p,
		color:       s.Color(b.rng),
		birth:       storage.FromSeconds(rec.Birth),
		lastFed:     storage.FromSeconds(rec.LastFed),
		lastCheckin: storage.FromSeconds(rec.LastCheckin),
		timeFed:     storage.DurationFromSeconds(rec.TimeFed),
		stress:      clamp01(rec.Stress),
		now:         b.now,
		rng:         b.rng,
	}, nil
}

// Starter builds the fish a new tank starts with, skipping any the catalog
// does not know.
func (b *Builder) Starter() []*Fish {
	var out []*Fish
	for _, s := range starterFish {
		f, err := b.Build(s.name, s.species, s.personality)
		if err != nil {
			continue
		}
		out = append(out, f)
	}
	return out
}

// RandomPersonality picks one of the catalog personalities.
func (b *Builder) RandomPersonality() string {
	names := b.catalog.PersonalityNames()
	return names[b.rng.Intn(len(names))]
}

// TankFromRecord rebuilds a tank. Fish whose species or personality is
// missing from the catalog are skipped and returned as errors so the caller
// can report them. A snapshot holding more fish than cfg allows raises the
// capacity rather than dropping fish.
func (b *Builder) TankFromRecord(rec *storage.TankRecord, cfg TankConfig) (*Tank, []error) {
	cfg.Width = rec.Width
	cfg.Height = rec.Height
	if len(rec.Fish) > cfg.MaxFish {
		cfg.MaxFish = len(rec.Fish)
	}
	t := NewTank(cfg, b.now)
	t.waste = rec.Waste

	var skipped []error
	for _, fr := range rec.Fish {
		f, err := b.FromRecord(fr)
		if err != nil {
			skipped = append(skipped, err)
			continue
		}
		t.fish = append(t.fish, f)
	}

	switch {
	case rec.LastCheckin != nil:
		t.lastCheckin = storage.FromSeconds(*rec.LastCheckin)
	case len(t.fish) > 0:
		// Older snapshots do not carry the tank's checkin time.
		earliest := t.fish[0].lastCheckin
		for _, f := range t.fish[1:] {
			if f.lastCheckin.Before(earliest) {
				earliest = f.lastCheckin
			}
		}
		t.lastCheckin = earliest
	}
	return t, skipped
}

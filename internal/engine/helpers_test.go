package engine

import (
	"math/rand"
	"testing"
	"time"

	"afish/internal/catalog"
	"afish/internal/storage"
)

const (
	devSpecies     = "DEV_FISH"
	devPersonality = "DEV_PERSONALITY"
)

var epoch = time.Unix(0, 0)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Set(t time.Time)         { c.t = t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func devCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	species := []byte(`
DEV_FISH:
  hunger_time: 10
  art: [baby, juvenile, adult]
  art_ages: [10, 100]
  colors: ["#f00"]
SLOW_FISH:
  hunger_time: 86400
  art: [small, big]
  art_ages: [3600]
  colors: []
`)
	personalities := []byte(`
DEV_PERSONALITY:
  happy_quotes: [happy]
  normal_quotes: [normal]
  unhappy_quotes: [unhappy]
  hungry_quotes: [hungry]
`)
	c, err := catalog.Parse(species, personalities)
	if err != nil {
		t.Fatalf("parse dev catalog: %v", err)
	}
	return c
}

func newTestBuilder(t *testing.T, clock *fakeClock) *Builder {
	t.Helper()
	return NewBuilder(devCatalog(t), clock.Now, rand.New(rand.NewSource(1)))
}

// zeroFish is the DEV_FISH with every timestamp at the epoch and no stress.
func zeroFish(t *testing.T, b *Builder, name string) *Fish {
	t.Helper()
	f, err := b.FromRecord(storage.FishRecord{
		Name:        name,
		Species:     devSpecies,
		Personality: devPersonality,
	})
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	return f
}

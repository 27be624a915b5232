package engine

import (
	"fmt"
	"math/rand"
	"time"

	"afish/internal/catalog"
	"afish/internal/storage"
)

const (
	// Day is the longest stretch a single checkin advances state by.
	Day = 24 * time.Hour

	// FeedThreshold is the hunger a fish must pass before feeding resets it.
	FeedThreshold = 0.2

	// DefaultStress is the stress of a newly built fish.
	DefaultStress = 0.25

	// stressOnset is the hunger at which stress starts to build.
	stressOnset = 0.5
	// stressWeightPerDay is the blend weight of a full day's checkin.
	stressWeightPerDay = 0.5
)

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the wall clock truncated to the microsecond, the precision
// snapshots keep.
func SystemClock() time.Time {
	return time.Now().Truncate(time.Microsecond)
}

// Fish is one simulated fish. Its state only moves forward through checkins.
type Fish struct {
	name        string
	species     *catalog.Species
	personality *catalog.Personality
	color       string

	birth       time.Time
	lastFed     time.Time
	lastCheckin time.Time
	timeFed     time.Duration
	stress      float64

	now Clock
	rng *rand.Rand
}

func (f *Fish) Name() string                      { return f.name }
func (f *Fish) Species() *catalog.Species         { return f.species }
func (f *Fish) Personality() *catalog.Personality { return f.personality }
func (f *Fish) Color() string                     { return f.color }
func (f *Fish) Birth() time.Time                  { return f.birth }
func (f *Fish) LastFed() time.Time                { return f.lastFed }
func (f *Fish) LastCheckin() time.Time            { return f.lastCheckin }
func (f *Fish) TimeFed() time.Duration            { return f.timeFed }
func (f *Fish) Stress() float64                   { return f.stress }

// HungerAt is the fraction of the species' hunger time elapsed since the last
// feeding. It is 0 right after eating, 1 when starved, and keeps growing past 1.
func (f *Fish) HungerAt(t time.Time) float64 {
	return float64(t.Sub(f.lastFed)) / float64(f.species.HungerTime)
}

func (f *Fish) Hunger() float64 {
	return f.HungerAt(f.now())
}

// FeedAt feeds the fish at t. A fish that is not hungry enough ignores the
// food. Reports whether it ate.
func (f *Fish) FeedAt(t time.Time) bool {
	if f.HungerAt(t) <= FeedThreshold {
		return false
	}
	f.lastFed = t
	return true
}

func (f *Fish) Feed() bool {
	return f.FeedAt(f.now())
}

// StressAt is the stress hunger alone causes at t: zero until hunger passes
// one half, rising to 1 at full starvation.
func (f *Fish) StressAt(t time.Time) float64 {
	return clamp01((f.HungerAt(t) - stressOnset) / (1 - stressOnset))
}

// CheckinAt advances the fish to t, moving at most one Day of state.
// Stress is blended toward the instantaneous stress at the end of the step,
// and time fed grows by the part of the step before the fish starved.
// A t before the last checkin is ignored.
func (f *Fish) CheckinAt(t time.Time) {
	if t.Before(f.lastCheckin) {
		return
	}
	delta := t.Sub(f.lastCheckin)
	if delta > Day {
		delta = Day
	}

	weight := stressWeightPerDay * float64(delta) / float64(Day)
	current := f.StressAt(f.lastCheckin.Add(delta))
	f.stress = clamp01((1-weight)*f.stress + weight*current)

	starve := f.lastFed.Add(f.species.HungerTime)
	fed := starve.Sub(f.lastCheckin)
	if fed > delta {
		fed = delta
	}
	if fed > 0 {
		f.timeFed += fed
	}

	f.lastCheckin = t
}

func (f *Fish) Checkin() {
	f.CheckinAt(f.now())
}

// Status checks the fish in and returns its name, species and a quote.
func (f *Fish) Status() string {
	now := f.now()
	f.CheckinAt(now)
	quote := f.personality.Quote(f.name, f.stress, f.HungerAt(now), f.rng)
	return fmt.Sprintf("%s (%s): %s", f.name, f.species.Name, quote)
}

// Art is the species art for how long the fish has been fed.
func (f *Fish) Art() string {
	return f.species.ArtFor(f.timeFed)
}

func (f *Fish) Mood() catalog.Mood {
	return catalog.MoodFor(f.stress)
}

// Record returns the persisted form of the fish.
func (f *Fish) Record() storage.FishRecord {
	return storage.FishRecord{
		Name:        f.name,
		Species:     f.species.Name,
		Personality: f.personality.Name,
		Birth:       storage.ToSeconds(f.birth),
		LastFed:     storage.ToSeconds(f.lastFed),
		Stress:      f.stress,
		LastCheckin: storage.ToSeconds(f.lastCheckin),
		TimeFed:     f.timeFed.Seconds(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

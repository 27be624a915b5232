package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"afish/internal/catalog"
	"afish/internal/storage"
)

const (
	// DefaultMaxFish is the tank capacity when config does not set one.
	DefaultMaxFish = 10

	// CleanThreshold is the waste level above which cleaning does anything.
	CleanThreshold = 0.15

	// wastePerFishDay is how much waste one fish adds per day.
	wastePerFishDay = 0.05
)

// TankConfig holds the tank settings that are not part of the simulation.
type TankConfig struct {
	Width   int
	Height  int
	MaxFish int
}

// DefaultTankConfig returns the documented defaults.
func DefaultTankConfig() TankConfig {
	return TankConfig{
		Width:   storage.DefaultWidth,
		Height:  storage.DefaultHeight,
		MaxFish: DefaultMaxFish,
	}
}

// RemoveResult reports the outcome of Tank.Remove.
type RemoveResult int

const (
	Removed RemoveResult = iota
	NotFound
)

// Message is the user-facing text for removing name.
func (r RemoveResult) Message(name string) string {
	if r == Removed {
		return fmt.Sprintf("Removed %s", name)
	}
	return fmt.Sprintf("Error, could not remove %s", name)
}

// CleanResult reports the outcome of Tank.Clean.
type CleanResult int

const (
	Cleaned CleanResult = iota
	StillClean
)

func (r CleanResult) String() string {
	if r == Cleaned {
		return "The tank is now clean"
	}
	return "The tank is still clean"
}

// Tank owns its fish and the waste they produce. A single mutex guards the
// fish list, waste and checkin time for every operation, so an animation
// timer may read the tank while the user feeds or cleans.
type Tank struct {
	mu sync.Mutex

	width   int
	height  int
	maxFish int

	waste       float64
	lastCheckin time.Time
	fish        []*Fish

	now Clock
}

// NewTank returns an empty tank checked in at now.
func NewTank(cfg TankConfig, now Clock) *Tank {
	if cfg.Width <= 0 {
		cfg.Width = storage.DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = storage.DefaultHeight
	}
	if cfg.MaxFish <= 0 {
		cfg.MaxFish = DefaultMaxFish
	}
	return &Tank{
		width:       cfg.Width,
		height:      cfg.Height,
		maxFish:     cfg.MaxFish,
		lastCheckin: now(),
		now:         now,
	}
}

func (t *Tank) Width() int   { return t.width }
func (t *Tank) Height() int  { return t.height }
func (t *Tank) MaxFish() int { return t.maxFish }

func (t *Tank) Waste() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.waste
}

func (t *Tank) LastCheckin() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastCheckin
}

func (t *Tank) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.fish)
}

// Fish returns the fish in display order. The slice is a copy; the fish are not.
func (t *Tank) Fish() []*Fish {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]*Fish(nil), t.fish...)
}

// IsFull reports whether the tank is at capacity.
func (t *Tank) IsFull() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.fish) >= t.maxFish
}

// Has reports whether a fish with name (case-insensitive) lives in the tank.
func (t *Tank) Has(name string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, f := range t.fish {
		if strings.EqualFold(f.name, name) {
			return true
		}
	}
	return false
}

// Add appends f unless the tank is full. Reports whether it was added.
func (t *Tank) Add(f *Fish) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.fish) >= t.maxFish {
		return false
	}
	t.fish = append(t.fish, f)
	return true
}

// Remove takes out the first fish named exactly name.
func (t *Tank) Remove(name string) RemoveResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, f := range t.fish {
		if f.name == name {
			t.fish = append(t.fish[:i], t.fish[i+1:]...)
			return Removed
		}
	}
	return NotFound
}

// Feed checks the tank in and offers food to every fish. Returns how many ate.
func (t *Tank) Feed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	t.checkinLocked(now)
	fed := 0
	for _, f := range t.fish {
		if f.FeedAt(now) {
			fed++
		}
	}
	return fed
}

// Clean checks the tank in and removes the waste if there is enough of it.
func (t *Tank) Clean() CleanResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkinLocked(t.now())
	if t.waste > CleanThreshold {
		t.waste = 0
		return Cleaned
	}
	return StillClean
}

// CheckinAt brings the tank and every fish up to at, one day at a time,
// oldest day first. A time before the last checkin is ignored.
func (t *Tank) CheckinAt(at time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkinLocked(at)
}

func (t *Tank) Checkin() {
	t.CheckinAt(t.now())
}

func (t *Tank) checkinLocked(at time.Time) {
	if at.Before(t.lastCheckin) {
		return
	}
	// The first step covers the remainder shorter than a day; every later
	// step is exactly one day and ends at at.
	steps := 0
	if gap := at.Sub(t.lastCheckin); gap > Day {
		steps = int((gap - 1) / Day)
	}
	for k := steps; k >= 0; k-- {
		t.step(at.Add(-time.Duration(k) * Day))
	}
}

func (t *Tank) step(boundary time.Time) {
	for _, f := range t.fish {
		f.CheckinAt(boundary)
	}
	elapsed := boundary.Sub(t.lastCheckin)
	t.waste += wastePerFishDay * float64(elapsed) / float64(Day) * float64(len(t.fish))
	t.lastCheckin = boundary
}

// Statuses checks the tank in and returns one numbered status line per fish.
func (t *Tank) Statuses() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.checkinLocked(t.now())
	out := make([]string, 0, len(t.fish))
	for i, f := range t.fish {
		out = append(out, fmt.Sprintf("%d. %s", i+1, f.Status()))
	}
	return out
}

// FishView is a read-only summary of one fish for renderers and reports.
type FishView struct {
	Name        string
	Species     string
	Personality string
	Art         string
	Color       string
	Stage       int
	Hunger      float64
	Stress      float64
	Mood        catalog.Mood
	Age         time.Duration
	TimeFed     time.Duration
	LastFed     time.Time
}

// Views summarizes every fish at the current time without checking in.
func (t *Tank) Views() []FishView {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	out := make([]FishView, 0, len(t.fish))
	for _, f := range t.fish {
		out = append(out, FishView{
			Name:        f.name,
			Species:     f.species.Name,
			Personality: f.personality.Name,
			Art:         f.Art(),
			Color:       f.color,
			Stage:       f.species.Stage(f.timeFed),
			Hunger:      f.HungerAt(now),
			Stress:      f.stress,
			Mood:        f.Mood(),
			Age:         now.Sub(f.birth),
			TimeFed:     f.timeFed,
			LastFed:     f.lastFed,
		})
	}
	return out
}

// Record returns the persisted form of the tank.
func (t *Tank) Record() *storage.TankRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	last := storage.ToSeconds(t.lastCheckin)
	rec := &storage.TankRecord{
		Width:       t.width,
		Height:      t.height,
		Waste:       t.waste,
		LastCheckin: &last,
		Fish:        make([]storage.FishRecord, 0, len(t.fish)),
	}
	for _, f := range t.fish {
		rec.Fish = append(rec.Fish, f.Record())
	}
	return rec
}

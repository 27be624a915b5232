package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"afish/internal/catalog"
	"afish/internal/storage"
)

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Catalog *catalog.Catalog
	Store   storage.Store
	Tank    TankConfig
	Logger  *slog.Logger
	Clock   Clock
	Rand    *rand.Rand
}

// Service is one session with the tank: it loads the snapshot, runs the
// shell's operations and saves the result.
type Service struct {
	store   storage.Store
	builder *Builder
	tank    *Tank
	cfg     TankConfig
	log     *slog.Logger
	now     Clock

	fresh bool
}

func NewService(opts Options) *Service {
	if opts.Clock == nil {
		opts.Clock = SystemClock
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tank.MaxFish <= 0 {
		opts.Tank.MaxFish = DefaultMaxFish
	}
	return &Service{
		store:   opts.Store,
		builder: NewBuilder(opts.Catalog, opts.Clock, opts.Rand),
		cfg:     opts.Tank,
		log:     opts.Logger,
		now:     opts.Clock,
	}
}

func (s *Service) Tank() *Tank               { return s.tank }
func (s *Service) Builder() *Builder         { return s.builder }
func (s *Service) Catalog() *catalog.Catalog { return s.builder.Catalog() }
func (s *Service) Fresh() bool               { return s.fresh }
func (s *Service) Now() time.Time            { return s.now() }

// Open loads the saved tank, or starts a new one stocked with the starter
// fish when nothing has been saved. The tank is checked in to now.
func (s *Service) Open(ctx context.Context) error {
	rec, err := s.store.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoSnapshot):
		s.tank = NewTank(s.cfg, s.now)
		for _, f := range s.builder.Starter() {
			s.tank.Add(f)
		}
		s.fresh = true
		s.log.Info("created new tank", "fish", s.tank.Len())
		return nil
	case err != nil:
		return fmt.Errorf("load tank: %w", err)
	}

	tank, skipped := s.builder.TankFromRecord(rec, s.cfg)
	for _, err := range skipped {
		s.log.Warn("skipping fish from snapshot", "error", err)
	}
	before := tank.LastCheckin()
	tank.Checkin()
	s.tank = tank
	s.log.Info("loaded tank",
		"fish", tank.Len(),
		"away", s.now().Sub(before).Round(time.Second).String(),
		"waste", fmt.Sprintf("%.3f", tank.Waste()),
	)
	return nil
}

// Adopt builds a fish and puts it in the tank. An empty personality picks
// one at random.
func (s *Service) Adopt(name, speciesName, personalityName string) (*Fish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if s.tank.IsFull() {
		return nil, CapacityError{Limit: s.tank.MaxFish()}
	}
	if s.tank.Has(name) {
		return nil, NameTakenError{Name: name}
	}
	if strings.TrimSpace(personalityName) == "" {
		personalityName = s.builder.RandomPersonality()
	}

	f, err := s.builder.Build(name, speciesName, personalityName)
	if err != nil {
		return nil, err
	}
	s.tank.Checkin()
	if !s.tank.Add(f) {
		return nil, CapacityError{Limit: s.tank.MaxFish()}
	}
	s.log.Info("adopted fish", "name", name, "species", speciesName, "personality", personalityName)
	return f, nil
}

// Release removes the fish called name.
func (s *Service) Release(name string) RemoveResult {
	res := s.tank.Remove(name)
	s.log.Info("release", "name", name, "removed", res == Removed)
	return res
}

// FeedResult reports how many fish ate out of how many were offered food.
type FeedResult struct {
	Fed   int
	Total int
}

func (s *Service) Feed() FeedResult {
	fed := s.tank.Feed()
	res := FeedResult{Fed: fed, Total: s.tank.Len()}
	s.log.Info("feed", "fed", res.Fed, "total", res.Total)
	return res
}

func (s *Service) Clean() CleanResult {
	res := s.tank.Clean()
	s.log.Info("clean", "result", res.String())
	return res
}

// Statuses returns one status line per fish.
func (s *Service) Statuses() []string {
	return s.tank.Statuses()
}

// Save checks the tank in and replaces the stored snapshot.
func (s *Service) Save(ctx context.Context) error {
	s.tank.Checkin()
	if err := s.store.Save(ctx, s.tank.Record()); err != nil {
		return fmt.Errorf("save tank: %w", err)
	}
	s.log.Debug("saved tank", "fish", s.tank.Len())
	return nil
}

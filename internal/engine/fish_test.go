package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"afish/internal/catalog"
	"afish/internal/storage"
)

func TestHungerIsLinear(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	cases := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{2500 * time.Millisecond, 0.25},
		{5 * time.Second, 0.5},
		{10 * time.Second, 1.0},
		{20 * time.Second, 2.0},
	}
	for _, tc := range cases {
		if got := f.HungerAt(epoch.Add(tc.at)); got != tc.want {
			t.Fatalf("HungerAt(+%v)=%v, want %v", tc.at, got, tc.want)
		}
	}

	clock.Advance(5 * time.Second)
	if got := f.Hunger(); got != 0.5 {
		t.Fatalf("Hunger()=%v, want 0.5", got)
	}
}

func TestFeed(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	if f.FeedAt(epoch.Add(time.Second)) {
		t.Fatalf("fish at hunger 0.1 should not eat")
	}
	if !f.LastFed().Equal(epoch) {
		t.Fatalf("last fed moved on a no-op feed: %v", f.LastFed())
	}

	// Exactly at the threshold is still a no-op.
	if f.FeedAt(epoch.Add(2 * time.Second)) {
		t.Fatalf("fish at hunger 0.2 should not eat")
	}

	clock.Set(epoch.Add(3 * time.Second))
	if !f.Feed() {
		t.Fatalf("fish at hunger 0.3 should eat")
	}
	if !f.LastFed().Equal(clock.Now()) {
		t.Fatalf("last fed=%v, want %v", f.LastFed(), clock.Now())
	}

	if f.Feed() {
		t.Fatalf("fish that just ate should not eat again")
	}
}

func TestStressFromHunger(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	cases := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{5 * time.Second, 0},
		{7500 * time.Millisecond, 0.5},
		{10 * time.Second, 1},
		{time.Hour, 1},
	}
	for _, tc := range cases {
		if got := f.StressAt(epoch.Add(tc.at)); got != tc.want {
			t.Fatalf("StressAt(+%v)=%v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestTimeFedAccumulatesOnlyWhileFed(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	f.CheckinAt(epoch.Add(100 * time.Second))
	if f.TimeFed() != 10*time.Second {
		t.Fatalf("time fed=%v, want 10s", f.TimeFed())
	}

	f.lastFed = epoch.Add(100 * time.Second)
	f.CheckinAt(epoch.Add(200 * time.Second))
	if f.TimeFed() != 20*time.Second {
		t.Fatalf("time fed=%v, want 20s", f.TimeFed())
	}

	f.lastFed = epoch.Add(200 * time.Second)
	f.CheckinAt(epoch.Add(205 * time.Second))
	if f.TimeFed() != 25*time.Second {
		t.Fatalf("time fed=%v, want 25s", f.TimeFed())
	}
}

func TestTimeFedNeverDecreases(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	f.CheckinAt(epoch.Add(time.Hour))
	before := f.TimeFed()

	// Starved long before this step began.
	f.CheckinAt(epoch.Add(2 * time.Hour))
	if f.TimeFed() != before {
		t.Fatalf("time fed changed from %v to %v while starved", before, f.TimeFed())
	}
	if f.TimeFed() > f.LastCheckin().Sub(f.Birth()) {
		t.Fatalf("time fed %v exceeds lifetime %v", f.TimeFed(), f.LastCheckin().Sub(f.Birth()))
	}
}

func TestCheckinIsIdempotent(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	at := epoch.Add(8 * time.Second)
	f.CheckinAt(at)
	stress, fed := f.Stress(), f.TimeFed()

	f.CheckinAt(at)
	if f.Stress() != stress || f.TimeFed() != fed {
		t.Fatalf("second checkin changed state: stress %v->%v, fed %v->%v", stress, f.Stress(), fed, f.TimeFed())
	}
}

func TestCheckinStepIsCappedAtOneDay(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	at := epoch.Add(3 * Day)
	f.CheckinAt(at)

	// Full weight would be 1.5 with an uncapped delta; capped it is 0.5
	// toward the instantaneous stress of 1.
	if f.Stress() != 0.5 {
		t.Fatalf("stress=%v, want 0.5", f.Stress())
	}
	if f.TimeFed() != 10*time.Second {
		t.Fatalf("time fed=%v, want 10s", f.TimeFed())
	}
	if !f.LastCheckin().Equal(at) {
		t.Fatalf("last checkin=%v, want %v", f.LastCheckin(), at)
	}
}

func TestStressStaysInRange(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	f.CheckinAt(epoch.Add(Day))
	if !(f.Stress() > 0 && f.Stress() <= 1) {
		t.Fatalf("stress after a starving day=%v, want (0, 1]", f.Stress())
	}

	for i := 2; i < 40; i++ {
		f.CheckinAt(epoch.Add(time.Duration(i) * Day))
		if f.Stress() < 0 || f.Stress() > 1 {
			t.Fatalf("day %d: stress=%v out of range", i, f.Stress())
		}
	}
	if math.Abs(f.Stress()-1) > 1e-9 {
		t.Fatalf("stress after weeks of starving=%v, want ~1", f.Stress())
	}

	// Feeding brings it back down over time.
	f.lastFed = epoch.Add(40 * Day)
	f.CheckinAt(epoch.Add(40*Day + 2*time.Second))
	if f.Stress() >= 1 {
		t.Fatalf("stress did not ease after feeding: %v", f.Stress())
	}
}

func TestCheckinIgnoresThePast(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	f.CheckinAt(epoch.Add(time.Minute))
	stress, fed, last := f.Stress(), f.TimeFed(), f.LastCheckin()

	f.CheckinAt(epoch.Add(time.Second))
	if f.Stress() != stress || f.TimeFed() != fed || !f.LastCheckin().Equal(last) {
		t.Fatalf("checkin into the past changed the fish")
	}
}

func TestStatus(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	if got := f.Status(); got != "Fishy (DEV_FISH): happy" {
		t.Fatalf("Status()=%q", got)
	}

	clock.Set(epoch.Add(3 * Day))
	f.Checkin()
	if got := f.Status(); got != "Fishy (DEV_FISH): unhappy" && got != "Fishy (DEV_FISH): hungry" {
		t.Fatalf("Status() of a starving fish=%q", got)
	}
	if !f.LastCheckin().Equal(clock.Now()) {
		t.Fatalf("Status did not check in")
	}
}

func TestArtGrowsWithTimeFed(t *testing.T) {
	clock := &fakeClock{t: epoch}
	f := zeroFish(t, newTestBuilder(t, clock), "Fishy")

	if f.Art() != "baby" {
		t.Fatalf("art=%q, want baby", f.Art())
	}
	for i := 1; i <= 11; i++ {
		now := epoch.Add(time.Duration(i) * 10 * time.Second)
		f.CheckinAt(now)
		f.FeedAt(now)
	}
	if f.TimeFed() < 100*time.Second {
		t.Fatalf("time fed=%v, want at least 100s", f.TimeFed())
	}
	if f.Art() != "adult" {
		t.Fatalf("art=%q, want adult", f.Art())
	}
}

func TestBuildDefaults(t *testing.T) {
	now := time.Unix(1700000000, 0)
	clock := &fakeClock{t: now}
	b := newTestBuilder(t, clock)

	f, err := b.Build("Nemo", devSpecies, devPersonality)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !f.Birth().Equal(now) || !f.LastCheckin().Equal(now) {
		t.Fatalf("birth=%v last checkin=%v, want %v", f.Birth(), f.LastCheckin(), now)
	}
	if math.Abs(f.Hunger()-1.0/3) > 1e-6 {
		t.Fatalf("starting hunger=%v, want ~1/3", f.Hunger())
	}
	if f.Stress() != DefaultStress || f.TimeFed() != 0 {
		t.Fatalf("stress=%v time fed=%v", f.Stress(), f.TimeFed())
	}
	if f.Species().Name != devSpecies || f.Personality().Name != devPersonality {
		t.Fatalf("wrong definitions attached")
	}
	if f.Color() != "#f00" {
		t.Fatalf("color=%q, want #f00", f.Color())
	}

	other, _ := b.Build("Dory", devSpecies, devPersonality)
	if other.Species() != f.Species() {
		t.Fatalf("species definitions should be shared, not copied")
	}
}

func TestBuildNotFound(t *testing.T) {
	b := newTestBuilder(t, &fakeClock{t: epoch})

	var nf catalog.NotFoundError
	if _, err := b.Build("Nemo", "Shark", devPersonality); !errors.As(err, &nf) || nf.Kind != "species" {
		t.Fatalf("unknown species err=%v", err)
	}
	if _, err := b.Build("Nemo", devSpecies, "Moody"); !errors.As(err, &nf) || nf.Kind != "personality" {
		t.Fatalf("unknown personality err=%v", err)
	}
	if _, err := b.FromRecord(storage.FishRecord{Name: "x", Species: "Shark", Personality: devPersonality}); !errors.As(err, &nf) {
		t.Fatalf("FromRecord unknown species err=%v", err)
	}
}

func TestFishRecordRoundTrip(t *testing.T) {
	b := newTestBuilder(t, &fakeClock{t: epoch})
	rec := storage.FishRecord{
		Name:        "Bubbles",
		Species:     devSpecies,
		Personality: devPersonality,
		Birth:       1700000000.5,
		LastFed:     1700003600.25,
		Stress:      0.3125,
		LastCheckin: 1700007200.125,
		TimeFed:     1234.5,
	}

	f, err := b.FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if got := f.Record(); got != rec {
		t.Fatalf("record round trip:\n got %+v\nwant %+v", got, rec)
	}

	g, err := b.FromRecord(f.Record())
	if err != nil {
		t.Fatalf("FromRecord #2: %v", err)
	}
	if g.Name() != f.Name() || !g.Birth().Equal(f.Birth()) || !g.LastFed().Equal(f.LastFed()) ||
		!g.LastCheckin().Equal(f.LastCheckin()) || g.Stress() != f.Stress() || g.TimeFed() != f.TimeFed() ||
		g.Species() != f.Species() || g.Personality() != f.Personality() {
		t.Fatalf("fish round trip mismatch")
	}
}

func TestFromRecordMissingTimeFed(t *testing.T) {
	data := []byte(`{"fish": [{"name": "Old", "species": "DEV_FISH", "personality": "DEV_PERSONALITY",
		"birth": 100, "last_fed": 150, "stress": 0.2, "last_checkin": 160}]}`)
	rec, err := storage.DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	f, err := newTestBuilder(t, &fakeClock{t: epoch}).FromRecord(rec.Fish[0])
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if f.TimeFed() != 0 {
		t.Fatalf("time fed=%v, want 0", f.TimeFed())
	}
	if !f.LastFed().Equal(time.Unix(150, 0)) {
		t.Fatalf("last fed=%v", f.LastFed())
	}
}

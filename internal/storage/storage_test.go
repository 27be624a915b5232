package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func sampleRecord() *TankRecord {
	last := 1700000100.25
	return &TankRecord{
		Width:       40,
		Height:      12,
		Waste:       0.3,
		LastCheckin: &last,
		Fish: []FishRecord{
			{Name: "Molly", Species: "Mosquitofish", Personality: "Energetic", Birth: 1700000000, LastFed: 1700000050.5, Stress: 0.25, LastCheckin: 1700000100.25, TimeFed: 42.5},
			{Name: "Bubbles", Species: "Goldfish", Personality: "Laid Back", Birth: 1700000001, LastFed: 1700000060, Stress: 0.1, LastCheckin: 1700000100.25, TimeFed: 0},
		},
	}
}

func assertSameRecord(t *testing.T, got, want *TankRecord) {
	t.Helper()
	if got.Width != want.Width || got.Height != want.Height || got.Waste != want.Waste {
		t.Fatalf("tank fields=%+v, want %+v", got, want)
	}
	if (got.LastCheckin == nil) != (want.LastCheckin == nil) {
		t.Fatalf("last_checkin presence mismatch")
	}
	if got.LastCheckin != nil && *got.LastCheckin != *want.LastCheckin {
		t.Fatalf("last_checkin=%v, want %v", *got.LastCheckin, *want.LastCheckin)
	}
	if len(got.Fish) != len(want.Fish) {
		t.Fatalf("fish count=%d, want %d", len(got.Fish), len(want.Fish))
	}
	for i := range want.Fish {
		if got.Fish[i] != want.Fish[i] {
			t.Fatalf("fish[%d]=%+v, want %+v", i, got.Fish[i], want.Fish[i])
		}
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewJSONStore(filepath.Join(t.TempDir(), "nested", "afish"))

	if _, err := s.Load(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("Load on empty store err=%v, want ErrNoSnapshot", err)
	}

	want := sampleRecord()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameRecord(t, got, want)
}

func TestDecodeSnapshotDefaults(t *testing.T) {
	data := []byte(`{"fish": [{"name": "Old", "species": "Goldfish", "personality": "Grumpy",
		"birth": 10, "last_fed": 20, "stress": 0.5, "last_checkin": 30}]}`)

	rec, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if rec.Width != DefaultWidth || rec.Height != DefaultHeight || rec.Waste != DefaultWaste {
		t.Fatalf("defaults not applied: %+v", rec)
	}
	if rec.LastCheckin != nil {
		t.Fatalf("expected no tank last_checkin")
	}
	if len(rec.Fish) != 1 || rec.Fish[0].TimeFed != 0 {
		t.Fatalf("time_fed should default to 0: %+v", rec.Fish)
	}
}

func TestDecodeSnapshotMalformed(t *testing.T) {
	if _, err := DecodeSnapshot([]byte(`{"width": 30}`)); !errors.Is(err, ErrMalformedSnapshot) {
		t.Fatalf("missing fish err=%v, want ErrMalformedSnapshot", err)
	}
	if _, err := DecodeSnapshot([]byte(`{"width": "wide", "fish": []}`)); err == nil {
		t.Fatalf("expected type error")
	}
	if _, err := DecodeSnapshot([]byte(`{"fish": []}`)); err != nil {
		t.Fatalf("empty tank rejected: %v", err)
	}
}

func TestJSONStoreLeavesNoTempFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "afish")
	s := NewJSONStore(path)
	if err := s.Save(ctx, &TankRecord{Width: 30, Height: 10}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}
	rec, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if rec.Fish == nil || len(rec.Fish) != 0 {
		t.Fatalf("nil fish should be saved as an empty list, got %v", rec.Fish)
	}
}

func TestSQLiteStoreRoundTripAndReplace(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLiteStore(ctx, filepath.Join(t.TempDir(), "afish.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	if _, err := s.Load(ctx); !errors.Is(err, ErrNoSnapshot) {
		t.Fatalf("Load on empty db err=%v, want ErrNoSnapshot", err)
	}

	want := sampleRecord()
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertSameRecord(t, got, want)

	// A second save replaces, it never appends.
	want.Fish = want.Fish[1:]
	want.LastCheckin = nil
	want.Waste = 0
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save #2: %v", err)
	}
	got, err = s.Load(ctx)
	if err != nil {
		t.Fatalf("Load #2: %v", err)
	}
	assertSameRecord(t, got, want)
}

func TestOpenStoreBackends(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	js, err := OpenStore(ctx, "json", filepath.Join(dir, "afish"))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if _, ok := js.(*JSONStore); !ok {
		t.Fatalf("json backend returned %T", js)
	}

	ss, err := OpenStore(ctx, "SQLite", filepath.Join(dir, "afish.db"))
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	defer ss.Close()
	if _, ok := ss.(*SQLiteStore); !ok {
		t.Fatalf("sqlite backend returned %T", ss)
	}

	if _, err := OpenStore(ctx, "yaml", filepath.Join(dir, "x")); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestSecondsConversion(t *testing.T) {
	for _, s := range []float64{0, 10, 1700000000.5, 1700000123.456789, 1.25} {
		if got := ToSeconds(FromSeconds(s)); got != s {
			t.Fatalf("round trip %v -> %v", s, got)
		}
	}
	tm := time.Unix(1700000000, 123456000)
	if !FromSeconds(ToSeconds(tm)).Equal(tm) {
		t.Fatalf("time round trip lost precision: %v", FromSeconds(ToSeconds(tm)))
	}
	if DurationFromSeconds(2.5) != 2500*time.Millisecond {
		t.Fatalf("DurationFromSeconds(2.5)=%v", DurationFromSeconds(2.5))
	}
}

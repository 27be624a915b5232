package storage

import (
	"math"
	"time"
)

// Snapshot defaults for fields older save files may not carry.
const (
	DefaultWidth  = 30
	DefaultHeight = 10
	DefaultWaste  = 0.0
)

// TankRecord is the persisted form of a tank. Timestamps are float seconds
// since the Unix epoch.
type TankRecord struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Waste  float64 `json:"waste"`
	// LastCheckin is absent in older snapshots.
	LastCheckin *float64     `json:"last_checkin,omitempty"`
	Fish        []FishRecord `json:"fish"`
}

// FishRecord is the persisted form of one fish.
type FishRecord struct {
	Name        string  `json:"name" db:"name"`
	Species     string  `json:"species" db:"species"`
	Personality string  `json:"personality" db:"personality"`
	Birth       float64 `json:"birth" db:"birth"`
	LastFed     float64 `json:"last_fed" db:"last_fed"`
	Stress      float64 `json:"stress" db:"stress"`
	LastCheckin float64 `json:"last_checkin" db:"last_checkin"`
	TimeFed     float64 `json:"time_fed" db:"time_fed"`
}

// NewTankRecord returns an empty record with the documented defaults.
func NewTankRecord() *TankRecord {
	return &TankRecord{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Waste:  DefaultWaste,
	}
}

// ToSeconds converts t to float seconds since the Unix epoch.
func ToSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// FromSeconds converts float seconds to a time rounded to the microsecond.
func FromSeconds(s float64) time.Time {
	sec, frac := math.Modf(s)
	usec := int64(math.Round(frac * 1e6))
	return time.Unix(int64(sec), usec*int64(time.Microsecond))
}

// DurationFromSeconds converts float seconds to a duration rounded to the microsecond.
func DurationFromSeconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Microsecond)
}

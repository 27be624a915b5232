// Package export writes CSV reports of the tank.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"

	"afish/internal/engine"
)

// Row is one fish in a status report.
type Row struct {
	TakenAt      string  `csv:"taken_at"`
	Name         string  `csv:"name"`
	Species      string  `csv:"species"`
	Personality  string  `csv:"personality"`
	Mood         string  `csv:"mood"`
	Stage        int     `csv:"stage"`
	Hunger       float64 `csv:"hunger"`
	Stress       float64 `csv:"stress"`
	AgeDays      float64 `csv:"age_days"`
	TimeFedHours float64 `csv:"time_fed_hours"`
	LastFed      string  `csv:"last_fed"`
	Color        string  `csv:"-"`
}

// Rows builds report rows from fish views taken at now.
func Rows(views []engine.FishView, now time.Time) []Row {
	rows := make([]Row, 0, len(views))
	for _, v := range views {
		rows = append(rows, Row{
			TakenAt:      now.UTC().Format(time.RFC3339),
			Name:         v.Name,
			Species:      v.Species,
			Personality:  v.Personality,
			Mood:         string(v.Mood),
			Stage:        v.Stage,
			Hunger:       round3(v.Hunger),
			Stress:       round3(v.Stress),
			AgeDays:      round3(v.Age.Hours() / 24),
			TimeFedHours: round3(v.TimeFed.Hours()),
			LastFed:      v.LastFed.UTC().Format(time.RFC3339),
			Color:        v.Color,
		})
	}
	return rows
}

// Write writes rows to w. The header is skipped when appending to a report
// that already has one.
func Write(w io.Writer, rows []Row, header bool) error {
	if header {
		if err := gocsv.Marshal(rows, w); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		return nil
	}
	if len(rows) == 0 {
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func round3(v float64) float64 {
	return float64(int64(v*1000+0.5)) / 1000
}

package ui

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Ago is t relative to now, e.g. "3 hours ago".
func Ago(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// Age is how long ago birth was, without a suffix, e.g. "2 days".
func Age(birth, now time.Time) string {
	return strings.TrimSpace(humanize.RelTime(birth, now, "", ""))
}

// Meter draws frac (clamped to [0,1]) as a bar of width cells.
func Meter(frac float64, width int) string {
	if width <= 3 {
		width = 3
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

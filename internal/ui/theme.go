package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Aquarium theme (CLI + TUI).
// Kept small: reusable styles and a few emojis.

const (
	IconFish  = "🐟"
	IconFood  = "🍤"
	IconClean = "🫧"
	IconPlus  = "➕"
	IconDone  = "✅"
	IconInfo  = "ℹ️"
	IconWarn  = "⚠️"
	IconError = "🧨"
	IconBook  = "📖"
	IconSave  = "💾"
)

var (
	cPrimary = lipgloss.Color("39")  // water blue
	cAccent  = lipgloss.Color("45")  // cyan
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cSand    = lipgloss.Color("180") // gravel
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	Glass  = lipgloss.NewStyle().Foreground(cMuted)
	Water  = lipgloss.NewStyle().Foreground(cPrimary)
	Gravel = lipgloss.NewStyle().Foreground(cSand)
	Murky  = lipgloss.NewStyle().Foreground(lipgloss.Color("64"))
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// MoodText colors a mood name.
func MoodText(mood string) string {
	switch strings.ToLower(strings.TrimSpace(mood)) {
	case "happy":
		return Good.Render("happy")
	case "normal":
		return H2.Render("normal")
	case "unhappy":
		return Bad.Render("unhappy")
	default:
		return Muted.Render(mood)
	}
}

// WasteText colors a waste level against the clean threshold.
func WasteText(waste, threshold float64) string {
	s := fmt.Sprintf("%.2f", waste)
	switch {
	case waste > 2*threshold:
		return Bad.Render(s)
	case waste > threshold:
		return Warn.Render(s)
	default:
		return Good.Render(s)
	}
}

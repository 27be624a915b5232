package tui

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"afish/internal/engine"
	"afish/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	tick time.Duration
	rng  *rand.Rand

	width  int
	height int

	sprites  []*ui.Sprite
	views    []engine.FishView
	selected int

	lastLog string
}

type tickMsg time.Time

type savedMsg struct {
	err error
}

func newBoardModel(ctx context.Context, svc *engine.Service, tick time.Duration) boardModel {
	m := boardModel{
		ctx:     ctx,
		svc:     svc,
		tick:    tick,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		lastLog: "Welcome back.",
	}
	if svc.Fresh() {
		m.lastLog = "A new tank, with a few fish to start."
	}
	m.sync()
	return m
}

func (m boardModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m boardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m boardModel) saveCmd() tea.Cmd {
	return func() tea.Msg {
		return savedMsg{err: m.svc.Save(m.ctx)}
	}
}

// sync matches sprites to the fish in the tank, keeping the position of
// fish that are already swimming.
func (m *boardModel) sync() {
	tank := m.svc.Tank()
	m.views = tank.Views()
	byName := make(map[string]*ui.Sprite, len(m.sprites))
	for _, s := range m.sprites {
		byName[s.Name] = s
	}
	sprites := make([]*ui.Sprite, 0, len(m.views))
	for _, v := range m.views {
		if s, ok := byName[v.Name]; ok {
			s.Art = v.Art
			s.Color = v.Color
			sprites = append(sprites, s)
			delete(byName, v.Name)
			continue
		}
		sprites = append(sprites, ui.NewSprite(v.Name, v.Art, v.Color, tank.Width(), tank.Height(), m.rng))
	}
	m.sprites = sprites
	if m.selected >= len(m.views) {
		m.selected = len(m.views) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.svc.Tank().Checkin()
		m.sync()
		ui.Swim(m.sprites, m.svc.Tank().Width(), m.svc.Tank().Height(), m.rng)
		return m, m.tickCmd()
	case savedMsg:
		if msg.err != nil {
			m.lastLog = "Save failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Saved at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.views)-1 {
				m.selected++
			}
			return m, nil
		case "f":
			res := m.svc.Feed()
			m.lastLog = fmt.Sprintf("%s %d of %d fish ate.", ui.IconFood, res.Fed, res.Total)
			m.sync()
			return m, nil
		case "c":
			res := m.svc.Clean()
			m.lastLog = ui.IconClean + " " + res.String() + "."
			m.sync()
			return m, nil
		case "t", "enter":
			lines := m.svc.Statuses()
			if m.selected < 0 || m.selected >= len(lines) {
				m.lastLog = "No fish to talk to."
				return m, nil
			}
			m.lastLog = lines[m.selected]
			return m, nil
		case "s":
			m.lastLog = "Saving…"
			return m, m.saveCmd()
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	tank := m.svc.Tank()
	header := m.renderHeader()
	water := ui.RenderTank(tank.Width(), tank.Height(), m.sprites, tank.Waste() > engine.CleanThreshold)
	sidebar := m.renderSidebar()

	left := strings.Split(water, "\n")
	right := strings.Split(sidebar, "\n")
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}
	leftW := tank.Width() + 2

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l, r := strings.Repeat(" ", leftW), ""
		if i < len(left) {
			l = left[i]
		}
		if i < len(right) {
			r = right[i]
		}
		body.WriteString(l)
		body.WriteString("   ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n\n" + body.String() + "\n" + m.renderFish() + "\n" + m.renderFooter()
}

func (m boardModel) renderHeader() string {
	tank := m.svc.Tank()
	return fmt.Sprintf("%s | %d/%d fish | waste %s",
		ui.Heading(ui.IconFish, "afish"),
		tank.Len(), tank.MaxFish(),
		ui.WasteText(tank.Waste(), engine.CleanThreshold),
	)
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("Keys")}
	lines = append(lines, "- ↑/↓ or j/k: select")
	lines = append(lines, "- t/enter: talk")
	lines = append(lines, "- f: feed")
	lines = append(lines, "- c: clean")
	lines = append(lines, "- s: save")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderFish() string {
	if len(m.views) == 0 {
		return ui.Muted.Render("(the tank is empty)")
	}
	now := m.svc.Now()
	var out []string
	for i, v := range m.views {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s%s %s hunger %s %s, fed %s",
			cursor,
			padRight(v.Name, 12),
			padRight(v.Species, 13),
			ui.Meter(v.Hunger, 10),
			ui.MoodText(string(v.Mood)),
			ui.Ago(v.LastFed, now),
		))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}

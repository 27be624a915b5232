package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r     rune
	color string
}

// tankGrid lays out the frame, the surface, the water and the sprites.
// Sprites that do not fit are clipped at the glass.
func tankGrid(width, height int, sprites []*Sprite) [][]cell {
	rows := make([][]cell, 0, height+3)
	rows = append(rows, frameRow('+', '=', width))
	rows = append(rows, frameRow('|', '~', width))
	for i := 0; i < height; i++ {
		rows = append(rows, frameRow('|', ' ', width))
	}
	rows = append(rows, frameRow('+', '#', width))

	for _, s := range sprites {
		if s.Y < 0 || s.Y >= height {
			continue
		}
		row := rows[s.Y+2]
		for i, r := range []rune(s.Text()) {
			x := s.X + i + 1
			if x < 1 || x > width {
				continue
			}
			row[x] = cell{r: r, color: s.Color}
		}
	}
	return rows
}

func frameRow(edge, fill rune, width int) []cell {
	row := make([]cell, width+2)
	row[0] = cell{r: edge}
	for i := 1; i <= width; i++ {
		row[i] = cell{r: fill}
	}
	row[width+1] = cell{r: edge}
	return row
}

// TankRows draws the tank as plain text, one string per row.
func TankRows(width, height int, sprites []*Sprite) []string {
	grid := tankGrid(width, height, sprites)
	out := make([]string, len(grid))
	for i, row := range grid {
		var b strings.Builder
		for _, c := range row {
			b.WriteRune(c.r)
		}
		out[i] = b.String()
	}
	return out
}

// RenderTank draws the tank with colors. Murky water tints the surface.
func RenderTank(width, height int, sprites []*Sprite, murky bool) string {
	grid := tankGrid(width, height, sprites)
	surface := Water
	if murky {
		surface = Murky
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		edge := Glass
		switch {
		case i == 1:
			lines[i] = edge.Render(string(row[0].r)) + surface.Render(runes(row[1:width+1])) + edge.Render(string(row[width+1].r))
			continue
		case i == len(grid)-1:
			lines[i] = edge.Render("+") + Gravel.Render(runes(row[1:width+1])) + edge.Render("+")
			continue
		case i == 0:
			lines[i] = edge.Render(runes(row))
			continue
		}
		var b strings.Builder
		b.WriteString(edge.Render(string(row[0].r)))
		b.WriteString(renderRuns(row[1 : width+1]))
		b.WriteString(edge.Render(string(row[width+1].r)))
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderRuns styles consecutive cells of the same color together.
func renderRuns(cells []cell) string {
	var b strings.Builder
	for start := 0; start < len(cells); {
		end := start + 1
		for end < len(cells) && cells[end].color == cells[start].color {
			end++
		}
		text := runes(cells[start:end])
		if c := cells[start].color; c != "" {
			text = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(text)
		}
		b.WriteString(text)
		start = end
	}
	return b.String()
}

func runes(cells []cell) string {
	r := make([]rune, len(cells))
	for i, c := range cells {
		r[i] = c.r
	}
	return string(r)
}

package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"afish/internal/engine"
)

// RunBoard shows the animated tank until the user quits. The caller saves.
func RunBoard(ctx context.Context, svc *engine.Service, out io.Writer, tick time.Duration) error {
	m := newBoardModel(ctx, svc, tick)
	p := tea.NewProgram(m, tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"dungeonescape/internal/engine"
)

// RunHistory opens the interactive run-history browser.
func RunHistory(ctx context.Context, svc *engine.Service, out io.Writer) error {
	m := newHistoryModel(ctx, svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"dungeonescape/internal/engine"
	"dungeonescape/internal/storage"
	"dungeonescape/internal/ui"
)

const historyLimit = 50

type historyModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	runs     []storage.Run
	loot     map[int64][]string
	expanded map[int64]bool
	selected int

	spinner spinner.Model
	loading bool
	lastLog string
	err     error
}

type loadedMsg struct {
	runs []storage.Run
	err  error
}

type lootMsg struct {
	id    int64
	items []string
	err   error
}

func newHistoryModel(ctx context.Context, svc *engine.Service) historyModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return historyModel{
		ctx:      ctx,
		svc:      svc,
		loot:     map[int64][]string{},
		expanded: map[int64]bool{},
		spinner:  s,
		loading:  true,
		lastLog:  "Loading…",
	}
}

func (m historyModel) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m historyModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		runs, err := m.svc.History(m.ctx, historyLimit)
		return loadedMsg{runs: runs, err: err}
	}
}

func (m historyModel) lootCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		items, err := m.svc.Loot(m.ctx, id)
		return lootMsg{id: id, items: items, err: err}
	}
}

func (m historyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.runs = msg.runs
		if m.selected >= len(m.runs) {
			m.selected = len(m.runs) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		m.lastLog = fmt.Sprintf("%d runs.", len(m.runs))
		return m, nil
	case lootMsg:
		if msg.err != nil {
			m.lastLog = "Loot load failed: " + msg.err.Error()
			return m, nil
		}
		m.loot[msg.id] = msg.items
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.runs)-1 {
				m.selected++
			}
			return m, nil
		case "enter", " ":
			if m.selected < 0 || m.selected >= len(m.runs) {
				return m, nil
			}
			run := m.runs[m.selected]
			m.expanded[run.ID] = !m.expanded[run.ID]
			if m.expanded[run.ID] {
				if _, ok := m.loot[run.ID]; !ok {
					return m, m.lootCmd(run.ID)
				}
			}
			return m, nil
		}
	}
	return m, nil
}

func (m historyModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	var b strings.Builder
	b.WriteString(ui.Heading(ui.IconScroll, "Run History") + "\n\n")

	if m.loading {
		b.WriteString(m.spinner.View() + " Loading…\n")
		return b.String()
	}
	if len(m.runs) == 0 {
		b.WriteString(ui.Muted.Render("No runs yet. Play one with `descape play`.") + "\n")
		b.WriteString("\n" + m.footer())
		return b.String()
	}

	for i, run := range m.runs {
		line := fmt.Sprintf("%s #%d %s — %s | %s %d | %s %d | %s",
			ui.OutcomeIcon(run.Outcome), run.ID, run.PlayerName,
			ui.OutcomeText(run.Outcome),
			ui.IconCoin, run.Coins,
			ui.IconSword, run.EnemiesDefeated,
			ui.Muted.Render(run.FinishedAt.Local().Format("2006-01-02 15:04")))
		cursor := "  "
		if i == m.selected {
			cursor = ui.Gold.Render("> ")
		}
		b.WriteString(cursor + line + "\n")

		if m.expanded[run.ID] {
			items, ok := m.loot[run.ID]
			switch {
			case !ok:
				b.WriteString("      " + ui.Muted.Render("loading loot…") + "\n")
			case len(items) == 0:
				b.WriteString("      " + ui.Muted.Render("no loot") + "\n")
			default:
				for _, item := range items {
					b.WriteString("      " + ui.Muted.Render("• "+item) + "\n")
				}
			}
		}
	}

	b.WriteString("\n" + ui.Muted.Render(m.lastLog) + "\n")
	b.WriteString(m.footer())
	return b.String()
}

func (m historyModel) footer() string {
	return ui.Dim.Render("j/k move · enter loot · r refresh · q quit") + "\n"
}

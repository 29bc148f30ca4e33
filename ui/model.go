package ui

import (
	"context"
	"strings"
	"time"

	"system-indicators/config"
	"system-indicators/engine"
	"system-indicators/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Sweeper is the part of the engine the display drives
type Sweeper interface {
	Sweep(ctx context.Context) []models.Label
}

// Model holds the display state
type Model struct {
	ctx      context.Context
	sweeper  Sweeper
	geometry config.Geometry
	labels   []models.Label
	width    int
	height   int
	now      func() time.Time
}

// NewModel builds a model; the first sweep runs as soon as the program starts
func NewModel(ctx context.Context, sweeper Sweeper, geometry config.Geometry) Model {
	return Model{
		ctx:      ctx,
		sweeper:  sweeper,
		geometry: geometry,
		now:      time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return m.sweepCmd()
}

// sweepCmd runs a sweep off the update loop
func (m Model) sweepCmd() tea.Cmd {
	return func() tea.Msg {
		return sweepMsg{labels: m.sweeper.Sweep(m.ctx)}
	}
}

// tickCmd fires at the top of the next wall-clock second
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(engine.NextDelay(m.now()), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.ctx.Err() != nil {
			return m, tea.Quit
		}
		return m, m.sweepCmd()

	case sweepMsg:
		m.labels = msg.labels
		// the next tick is only scheduled once this sweep is done
		return m, m.tickCmd()
	}
	return m, nil
}

func (m Model) View() string {
	row := RenderRow(m.labels)

	width := m.geometry.Width
	if m.width > 0 {
		avail := m.width - m.geometry.X
		if avail < 1 {
			avail = 1
		}
		if width == 0 || width > avail {
			width = avail
		}
	}
	style := lipgloss.NewStyle().MarginLeft(m.geometry.X)
	if width > 0 {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}

	top := m.geometry.Y
	if m.height > 0 && top >= m.height {
		top = m.height - 1
	}
	return strings.Repeat("\n", top) + style.Render(row)
}

package ui

import (
	"context"
	"errors"

	"system-indicators/config"

	tea "github.com/charmbracelet/bubbletea"
)

// Run draws the indicator row until the user quits or ctx is cancelled
func Run(ctx context.Context, sweeper Sweeper, geometry config.Geometry) error {
	p := tea.NewProgram(
		NewModel(ctx, sweeper, geometry),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

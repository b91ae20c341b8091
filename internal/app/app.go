package app

import (
	"errors"
	"fmt"

	"github.com/atomicstack/segmented-pager/internal/pager"
	"github.com/atomicstack/segmented-pager/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Sync       pager.SyncMode
	Geometry   pager.GeometryModel
	Style      pager.Style
	Pages      []ui.PageSpec
}

// Options converts the application config to screen options.
func (c Config) Options() ui.Options {
	return ui.Options{
		Pages:      c.Pages,
		Style:      c.Style,
		Sync:       c.Sync,
		Geometry:   c.Geometry,
		Width:      c.Width,
		Height:     c.Height,
		ShowFooter: c.ShowFooter,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model, err := ui.NewModel(cfg.Options())
	if err != nil {
		return fmt.Errorf("build pager: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

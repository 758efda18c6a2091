// Package tui renders the terminal about screen.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-app-info/internal/logger"
	"github.com/MKhiriev/go-app-info/models"
)

type TUI struct {
	logger *logger.Logger
	opts   []tea.ProgramOption
}

func New(logger *logger.Logger, opts ...tea.ProgramOption) *TUI {
	return &TUI{logger: logger, opts: opts}
}

// About shows info until the user quits or ctx is done.
func (t *TUI) About(ctx context.Context, info models.AppInfoResponse) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.opts...)

	_, err := tea.NewProgram(newAboutModel(info, t.logger), opts...).Run()
	return err
}

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/roadmap/internal/logger"
)

// Run starts the interactive UI on the alternate screen and blocks until
// the user quits or ctx is cancelled.
func Run(ctx context.Context, p Planner, log *logger.Logger, opt Options) error {
	m := New(ctx, p, log, opt)
	prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := prog.Run()
	if fm, ok := final.(Model); ok {
		fm.release()
	}
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/onewave/wavecli/internal/shared"
	"github.com/onewave/wavecli/internal/ui"
)

// TUI launches the interactive terminal interface.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	dataDir, err := shared.DataDir()
	if err != nil {
		return fmt.Errorf("failed to resolve data directory: %w", err)
	}
	fileLogger, err := shared.NewFileLogger(filepath.Join(dataDir, "tui.log"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	// offline rendering until the first load completes
	r.store.RestoreSnapshots()

	model := ui.NewModel(ctx, r.store, r.gate, r.config.Lists)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
